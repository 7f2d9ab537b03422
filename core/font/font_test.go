package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.font")
	defer teardown()
	//
	for k, v := range map[string]string{
		"Noto Sans CJK JP":              "noto_sans_cjk_jp",
		"/usr/share/fonts/ipa/ipag.ttf": "ipag",
		"  MS-Gothic.TTF ":              "ms-gothic",
		"fonts/Source.Han.Sans":         "source.han.sans",
		`C:\Windows\Fonts\YuGothM.ttc`:  "yugothm",
	} {
		assert.Equal(t, v, NormalizeFontname(k), k)
	}
}

func TestPackagedTypeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.font")
	defer teardown()
	//
	f := PackagedFont()
	assert.Equal(t, "Go Sans", f.Fontname)
	tc, err := f.PrepareCase(8, 144)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, float32(8), tc.PtSize())
	assert.Equal(t, float64(144), tc.DPI())
	assert.Equal(t, f, tc.ScalableFontParent())
	metrics := tc.Face().Metrics()
	t.Logf("interline spacing for [%s]@%.1fbp is %s", f.Fontname, tc.PtSize(), metrics.Height)
	assert.True(t, metrics.Height > 0)
}

func TestPrepareCaseRejectsSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.font")
	defer teardown()
	//
	_, err := PackagedFont().PrepareCase(0, 72)
	assert.Error(t, err)
	_, err = PackagedFont().PrepareCase(4, 72)
	assert.NoError(t, err, "half-sized glyphs must be possible")
	_, err = PackagedFont().PrepareCase(MaxSize+1, 72)
	assert.Error(t, err)
}

func TestLoadMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.font")
	defer teardown()
	//
	_, err := LoadOpenTypeFont("does/not/exist.ttf")
	assert.Error(t, err)
}
