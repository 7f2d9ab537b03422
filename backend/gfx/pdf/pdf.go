/*
Package pdf implements a gfx backend which writes a score as a single,
paginated PDF document.

The score font is embedded into the document. Glyph metrics for placing
vertical text are taken from the font's typecases, prepared at 72 dpi, so
that one pixel of a face equals one PDF point.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pdf

import (
	"bytes"
	"image/color"

	"github.com/npillmayer/kuchi/backend/gfx"
	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/kuchi/core/font/fontregistry"
	"github.com/npillmayer/kuchi/engine/glyphing"
	"github.com/npillmayer/kuchi/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/signintech/gopdf"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'kuchi.backend'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.backend")
}

// fontFamily is the name of the embedded score font within a document.
const fontFamily = "score"

// gridLineWidth is the stroke width of cell outlines, in points.
const gridLineWidth = 0.5

// Document is a PDF document under construction.
type Document struct {
	registry *fontregistry.Registry
	fontname string
	out      *gopdf.GoPdf
	pages    int
	err      error // first fatal error
}

var _ gfx.Document = &Document{}

// New creates a PDF document. Text is set in font fontname, which has to be
// present in registry fr.
func New(fr *fontregistry.Registry, fontname string) *Document {
	return &Document{registry: fr, fontname: fontname}
}

// PageCount returns the number of pages created so far.
func (doc *Document) PageCount() int {
	return doc.pages
}

// NewPage is part of interface gfx.Document.
func (doc *Document) NewPage(size dimen.Point) (gfx.Page, error) {
	if doc.err != nil {
		return nil, doc.err
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, core.Error(core.EINVALID, "invalid page size %v", size)
	}
	pagesize := gopdf.Rect{W: size.X.Points(), H: size.Y.Points()}
	if doc.out == nil {
		if doc.err = doc.start(pagesize); doc.err != nil {
			return nil, doc.err
		}
	}
	doc.out.AddPageWithOption(gopdf.PageOption{PageSize: &pagesize})
	doc.pages++
	tracer().Debugf("pdf page %d: %v", doc.pages, size)
	return &Page{doc: doc, index: doc.pages}, nil
}

// start sets up the PDF writer and embeds the score font.
func (doc *Document) start(pagesize gopdf.Rect) error {
	tc, err := doc.registry.TypeCase(doc.fontname, 12, 72)
	if err != nil {
		return err
	}
	out := &gopdf.GoPdf{}
	out.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: pagesize})
	if err = out.AddTTFFontData(fontFamily, tc.ScalableFontParent().Binary); err != nil {
		return core.WrapError(err, core.EINVALID, "font %s cannot be embedded into PDF", doc.fontname)
	}
	doc.out = out
	return nil
}

// Save is part of interface gfx.Document. All pages go into a single file at
// path. A document without pages is not written.
func (doc *Document) Save(path string) error {
	if doc.err != nil {
		return doc.err
	}
	if doc.pages == 0 {
		tracer().Infof("document has no pages, nothing to save")
		return nil
	}
	var buf bytes.Buffer
	if err := doc.out.Write(&buf); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot produce PDF for %s", path)
	}
	return gfx.WriteFiles([]string{path}, [][]byte{buf.Bytes()})
}

// Page is a page of a PDF document. Pages have to be drawn in order: once a
// new page has been created, drawing onto earlier pages is an error.
type Page struct {
	doc   *Document
	index int
	face  xfont.Face
	dir   glyphing.Direction
	size  float32
}

func (p *Page) current() bool {
	if p.index != p.doc.pages {
		tracer().Errorf("page %d is closed, cannot draw", p.index)
		return false
	}
	return true
}

// SetFont is part of interface gfx.Page.
func (p *Page) SetFont(dir glyphing.Direction, size float32) error {
	tc, err := p.doc.registry.TypeCase(p.doc.fontname, size, 72)
	if err != nil {
		return err
	}
	if err = p.doc.out.SetFont(fontFamily, "", float64(size)); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot select font size %g", size)
	}
	p.face, p.dir, p.size = tc.Face(), dir, size
	return nil
}

// DrawRect is part of interface gfx.Page.
func (p *Page) DrawRect(r dimen.Rect, stroke color.Color) {
	if !p.current() {
		return
	}
	c := color.RGBAModel.Convert(stroke).(color.RGBA)
	p.doc.out.SetStrokeColor(c.R, c.G, c.B)
	p.doc.out.SetLineWidth(gridLineWidth)
	p.doc.out.RectFromUpperLeftWithStyle(r.Left().Points(), r.Top().Points(),
		r.Width().Points(), r.Height().Points(), "D")
}

// DrawText is part of interface gfx.Page. Glyphs missing from the font are
// traced and left out.
func (p *Page) DrawText(at dimen.Point, text string) {
	if !p.current() {
		return
	}
	if p.face == nil {
		tracer().Errorf("no font set, cannot draw %q", text)
		return
	}
	x, y := at.X.Points(), at.Y.Points()
	if p.dir == glyphing.LeftToRight {
		p.show(x, y, text)
		return
	}
	// vertical text: one em per grapheme, centered on the anchor
	ascent := points(p.face.Metrics().Ascent)
	for _, g := range monospace.Graphemes(text) {
		w := points(xfont.MeasureString(p.face, g))
		p.show(x-w/2, y+ascent, g)
		y += float64(p.size)
	}
}

// show sets text with its baseline starting at (x, y).
func (p *Page) show(x, y float64, text string) {
	p.doc.out.SetXY(x, y)
	if err := p.doc.out.Text(text); err != nil {
		tracer().Errorf("cannot set %q: %v", text, err)
	}
}

func points(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
