package notation

import (
	"bytes"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestDecodeUTF8WithBOM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.input")
	defer teardown()
	//
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("$title 六段\n")...)
	r, err := Decode(bytes.NewReader(in))
	assert.NoError(t, err)
	out, _ := io.ReadAll(r)
	assert.Equal(t, "$title 六段\n", string(out))
}

func TestReadShiftJIS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.input")
	defer teardown()
	//
	sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte("テン｜ツン 歌\n"))
	if err != nil {
		t.Fatal(err)
	}
	units, err := Read(bytes.NewReader(sjis))
	assert.NoError(t, err)
	if assert.Len(t, units, 1) {
		assert.Equal(t, []string{"テ", "ン"}, units[0].Cell.Main)
		assert.Equal(t, []string{"ツ", "ン"}, units[0].Cell.High)
		assert.Equal(t, []string{"歌"}, units[0].Cell.Lyrics)
	}
}
