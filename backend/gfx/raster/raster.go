/*
Package raster implements a gfx backend which draws pages into images and
saves them as PNG files.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"strings"

	"github.com/npillmayer/kuchi/backend/gfx"
	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/kuchi/core/font/fontregistry"
	"github.com/npillmayer/kuchi/engine/glyphing"
	"github.com/npillmayer/kuchi/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'kuchi.backend'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.backend")
}

// DefaultScale is the default number of pixels per big point (144 dpi).
const DefaultScale = 2.0

// Document is a sequence of raster pages.
type Document struct {
	registry *fontregistry.Registry
	fontname string
	scale    float64
	pages    []*Page
}

var _ gfx.Document = &Document{}

// New creates a raster document. Text is set in font fontname, which has to
// be present in registry fr. scale is the number of pixels per big point.
func New(fr *fontregistry.Registry, fontname string, scale float64) *Document {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Document{
		registry: fr,
		fontname: fontname,
		scale:    scale,
	}
}

// PageCount returns the number of pages created so far.
func (doc *Document) PageCount() int {
	return len(doc.pages)
}

// Image returns the image of page n, starting at 0.
func (doc *Document) Image(n int) *image.RGBA {
	return doc.pages[n].img
}

func (doc *Document) px(d dimen.DU) int {
	return int(math.Round(d.Points() * doc.scale))
}

// NewPage is part of interface gfx.Document.
func (doc *Document) NewPage(size dimen.Point) (gfx.Page, error) {
	w, h := doc.px(size.X), doc.px(size.Y)
	if w <= 0 || h <= 0 {
		return nil, core.Error(core.EINVALID, "invalid page size %v", size)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	p := &Page{doc: doc, img: img}
	doc.pages = append(doc.pages, p)
	tracer().Debugf("raster page %d: %dx%d px", len(doc.pages), w, h)
	return p, nil
}

// Save is part of interface gfx.Document. A single page is written to path,
// several pages are written to files with a page number appended to the
// stem of path. All pages are encoded before any file is written, and either
// all files are written or none.
func (doc *Document) Save(path string) error {
	if len(doc.pages) == 0 {
		tracer().Infof("document has no pages, nothing to save")
		return nil
	}
	names := PageFileNames(path, len(doc.pages))
	encoded := make([][]byte, len(doc.pages))
	for i, p := range doc.pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, p.img); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot encode page %d", i+1)
		}
		encoded[i] = buf.Bytes()
	}
	return gfx.WriteFiles(names, encoded)
}

// PageFileNames returns the file names for n pages saved to path.
func PageFileNames(path string, n int) []string {
	if n == 1 {
		return []string{path}
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s-%03d%s", stem, i+1, ext)
	}
	return names
}

// Page is a raster page.
type Page struct {
	doc  *Document
	img  *image.RGBA
	face xfont.Face
	dir  glyphing.Direction
	size float32
}

// SetFont is part of interface gfx.Page.
func (p *Page) SetFont(dir glyphing.Direction, size float32) error {
	tc, err := p.doc.registry.TypeCase(p.doc.fontname, size, 72*p.doc.scale)
	if err != nil {
		return err
	}
	p.face, p.dir, p.size = tc.Face(), dir, size
	return nil
}

// DrawRect is part of interface gfx.Page.
func (p *Page) DrawRect(r dimen.Rect, stroke color.Color) {
	x0, y0 := p.doc.px(r.TopL.X), p.doc.px(r.TopL.Y)
	x1, y1 := p.doc.px(r.BotR.X), p.doc.px(r.BotR.Y)
	for x := x0; x <= x1; x++ {
		p.img.Set(x, y0, stroke)
		p.img.Set(x, y1, stroke)
	}
	for y := y0; y <= y1; y++ {
		p.img.Set(x0, y, stroke)
		p.img.Set(x1, y, stroke)
	}
}

// DrawText is part of interface gfx.Page.
func (p *Page) DrawText(at dimen.Point, text string) {
	if p.face == nil {
		tracer().Errorf("no font set, cannot draw %q", text)
		return
	}
	drawer := &xfont.Drawer{Dst: p.img, Src: image.Black, Face: p.face}
	x, y := p.doc.px(at.X), p.doc.px(at.Y)
	if p.dir == glyphing.LeftToRight {
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(text)
		return
	}
	// vertical text: one em per grapheme, centered on the anchor
	em := fixed.Int26_6(math.Round(float64(p.size) * p.doc.scale * 64))
	ascent := p.face.Metrics().Ascent
	top := fixed.I(y)
	for _, g := range monospace.Graphemes(text) {
		adv := xfont.MeasureString(p.face, g)
		drawer.Dot = fixed.Point26_6{X: fixed.I(x) - adv/2, Y: top + ascent}
		drawer.DrawString(g)
		top += em
	}
}
