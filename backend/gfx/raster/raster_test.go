package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/kuchi/backend/gfx"
	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/kuchi/core/font"
	"github.com/npillmayer/kuchi/core/font/fontregistry"
	"github.com/npillmayer/kuchi/engine/glyphing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func packagedRegistry() *fontregistry.Registry {
	fr := fontregistry.NewRegistry()
	fr.StoreFont(font.PackagedFontName, font.PackagedFont())
	return fr
}

func ops() []gfx.DrawOp {
	cell := dimen.RectFromTopRight(dimen.Point{X: 60 * dimen.BP, Y: 10 * dimen.BP}, 30*dimen.BP, 30*dimen.BP)
	return []gfx.DrawOp{
		gfx.Rectangle(gfx.GridRole, cell, gfx.GridGray),
		gfx.Text(gfx.MainRole, "A#", 16, dimen.Point{X: 45 * dimen.BP, Y: 17 * dimen.BP}, glyphing.TopToBottom),
		gfx.Text(gfx.PageNumberRole, "( 1 / 2 )", 12, dimen.Point{X: 10 * dimen.BP, Y: 90 * dimen.BP}, glyphing.LeftToRight),
	}
}

func TestRasterPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.backend")
	defer teardown()
	//
	doc := New(packagedRegistry(), font.PackagedFontName, 1)
	size := dimen.Point{X: 100 * dimen.BP, Y: 100 * dimen.BP}
	assert.NoError(t, gfx.ReplayPage(doc, size, ops()))
	assert.Equal(t, 1, doc.PageCount())
	img := doc.Image(0)
	assert.Equal(t, 100, img.Bounds().Dx())
	// the cell outline is stroked in gray
	assert.Equal(t, gfx.GridGray, img.RGBAAt(30, 10))
	assert.Equal(t, gfx.GridGray, img.RGBAAt(60, 25))
	// text leaves some dark pixels
	dark := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if c := img.RGBAAt(x, y); c.R < 0x80 {
				dark++
			}
		}
	}
	assert.True(t, dark > 0, "expected text to be drawn")
}

func TestMissingFontIsFatal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.backend")
	defer teardown()
	//
	doc := New(fontregistry.NewRegistry(), "MS-Gothic", 1)
	err := gfx.ReplayPage(doc, dimen.DINA4, ops())
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestSavePages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.backend")
	defer teardown()
	//
	dir := t.TempDir()
	size := dimen.Point{X: 100 * dimen.BP, Y: 100 * dimen.BP}
	doc := New(packagedRegistry(), font.PackagedFontName, 1)
	assert.NoError(t, doc.Save(filepath.Join(dir, "empty.png")))
	_, err := os.Stat(filepath.Join(dir, "empty.png"))
	assert.True(t, os.IsNotExist(err), "no pages, no file")
	//
	assert.NoError(t, gfx.ReplayPage(doc, size, ops()))
	assert.NoError(t, doc.Save(filepath.Join(dir, "one.png")))
	_, err = os.Stat(filepath.Join(dir, "one.png"))
	assert.NoError(t, err)
	//
	assert.NoError(t, gfx.ReplayPage(doc, size, ops()))
	assert.NoError(t, doc.Save(filepath.Join(dir, "two.png")))
	for _, name := range []string{"two-001.png", "two-002.png"} {
		_, err = os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.backend")
	defer teardown()
	//
	doc := New(packagedRegistry(), font.PackagedFontName, 1)
	assert.NoError(t, gfx.ReplayPage(doc, dimen.Point{X: 10 * dimen.BP, Y: 10 * dimen.BP}, nil))
	err := doc.Save(filepath.Join(t.TempDir(), "no", "such", "dir.png"))
	assert.Error(t, err)
	assert.Equal(t, core.EIO, core.Code(err))
}

func TestPageFileNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.backend")
	defer teardown()
	//
	assert.Equal(t, []string{"a/score.png"}, PageFileNames("a/score.png", 1))
	assert.Equal(t, []string{"a/score-001.png", "a/score-002.png"}, PageFileNames("a/score.png", 2))
}
