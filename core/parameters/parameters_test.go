package parameters

import (
	"testing"

	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	p := Defaults()
	assert.Equal(t, 30*dimen.BP, p.D(P_CSIZE))
	assert.Equal(t, 16, p.N(P_CNUM))
	assert.Equal(t, 10, p.N(P_RNUM))
	assert.Equal(t, 35*dimen.BP, p.D(P_RSEP))
	assert.Equal(t, float32(16), p.F(P_NOTE_SIZE))
	assert.Equal(t, float32(12), p.F(P_PAGENUM_SIZE))
	assert.Equal(t, "", p.S(P_TITLE))
}

func TestLaterDirectiveWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	regs := NewRegisters()
	assert.True(t, regs.Apply("csize", "40", true))
	assert.True(t, regs.Apply("csize", "50", true))
	assert.Equal(t, 50*dimen.BP, regs.Params().D(P_CSIZE))
}

func TestIgnoredDirectives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	regs := NewRegisters()
	assert.False(t, regs.Apply("tempo", "120", true), "unknown name")
	assert.False(t, regs.Apply("csize", "", false), "missing value")
	assert.False(t, regs.Apply("csize", "big", true), "not a number")
	assert.False(t, regs.Apply("cnum", "0", true), "count < 1")
	assert.False(t, regs.Apply("note_size", "-3", true), "negative size")
	assert.Equal(t, Defaults(), regs.Params())
}

func TestDirectiveKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	regs := NewRegisters()
	regs.Apply("title", "六段", true)
	regs.Apply("cnum", "12.7", true)
	regs.Apply("rsep", "10mm", true)
	regs.Apply("lnote_size", "9.5", true)
	p := regs.Params()
	assert.Equal(t, "六段", p.S(P_TITLE))
	assert.Equal(t, 12, p.N(P_CNUM))
	assert.Equal(t, 10*dimen.MM, p.D(P_RSEP))
	assert.Equal(t, float32(9.5), p.F(P_LNOTE_SIZE))
	assert.Equal(t, dimen.FromPoints(9.5), p.FD(P_LNOTE_SIZE))
}

func TestParamsAreSnapshots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	regs := NewRegisters()
	p := regs.Params()
	regs.Apply("csize", "99", true)
	assert.Equal(t, 30*dimen.BP, p.D(P_CSIZE))
}

func TestAllDirectiveNamesKnown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	for _, name := range []string{"title", "author", "csize", "cnum", "rnum", "rsep",
		"title_width", "title_sep", "pagenum_margin", "note_size", "hnote_size",
		"lnote_size", "noteex_size", "hnoteex_size", "title_size", "author_size",
		"pagenum_size"} {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
}

func TestFontSizeLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	regs := NewRegisters()
	assert.False(t, regs.Apply("title_size", "600", true), "larger than any typecase")
	assert.Equal(t, float32(20), regs.Params().F(P_TITLE_SIZE))
	assert.True(t, regs.Apply("title_size", "500", true))
	assert.Equal(t, float32(500), regs.Params().F(P_TITLE_SIZE))
}

func TestGridBlockLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	regs := NewRegisters()
	assert.False(t, regs.Apply("cnum", "1200", true), "30bp x 1200 overflows")
	assert.Equal(t, 16, regs.Params().N(P_CNUM))
	assert.True(t, regs.Apply("cnum", "1000", true))
	assert.Equal(t, 1000, regs.Params().N(P_CNUM))
	assert.False(t, regs.Apply("csize", "40", true), "40bp x 1000 overflows")
	assert.Equal(t, 30*dimen.BP, regs.Params().D(P_CSIZE))
	//
	regs = NewRegisters()
	assert.False(t, regs.Apply("rnum", "505", true))
	assert.True(t, regs.Apply("rnum", "500", true))
	assert.False(t, regs.Apply("rsep", "40", true), "(30+40)bp x 500 overflows")
}
