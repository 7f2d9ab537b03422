package layout

import (
	"github.com/npillmayer/kuchi/backend/gfx"
	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/kuchi/core/parameters"
	"github.com/npillmayer/kuchi/engine/glyphing"
	"github.com/npillmayer/kuchi/engine/glyphing/monospace"
	"github.com/npillmayer/kuchi/input/notation"
)

// Score is the result of laying out a notation file.
type Score struct {
	Params parameters.Params
	Pages  []*Page
}

// Layout lays out a sequence of notation units. A sequence without cells
// results in a score without pages.
func Layout(units []notation.Unit) (*Score, error) {
	params, err := applyDirectives(units)
	if err != nil {
		return nil, err
	}
	alloc := newAllocator(params)
	w := &walker{params: params, alloc: alloc}
	for _, u := range units {
		if u.Kind == notation.CellUnit {
			w.place(u.Cell)
		}
	}
	w.flush()
	alloc.numberPages()
	tracer().Infof("layout produced %d page(s)", len(alloc.pages))
	return &Score{Params: params, Pages: alloc.pages}, nil
}

func applyDirectives(units []notation.Unit) (parameters.Params, error) {
	regs := parameters.NewRegisters()
	for _, u := range units {
		switch u.Kind {
		case notation.DirectiveUnit:
			d := u.Directive
			if !regs.Apply(d.Name, d.Value, d.HasValue) {
				tracer().Debugf("line %d: directive %v changed nothing", d.Line, d)
			}
		case notation.CellUnit:
		default:
			return parameters.Params{}, core.Error(core.EINTERNAL, "unknown unit kind %d", u.Kind)
		}
	}
	return regs.Params(), nil
}

// Render replays the pages of a score into a document.
func (s *Score) Render(doc gfx.Document) error {
	for _, page := range s.Pages {
		if err := gfx.ReplayPage(doc, page.Size, page.Ops); err != nil {
			return core.WrapError(err, core.Code(err), "cannot render page %d", page.Index)
		}
	}
	return nil
}

// --- Grid walk -------------------------------------------------------------

// annotation is a high annotation waiting to be drawn. It remembers the page
// it has been declared on.
type annotation struct {
	page   *Page
	glyphs []string
	ext    notation.ExtMark
	cell   dimen.Rect
}

type walker struct {
	params   parameters.Params
	alloc    *allocator
	page     *Page // nil if no page is open
	col, row int
	pending  *annotation
}

func (w *walker) place(cell notation.Cell) {
	if w.page == nil {
		w.page = w.alloc.newPage()
	}
	r := w.alloc.cellRect(w.col, w.row)
	w.page.add(gfx.Rectangle(gfx.GridRole, r, gfx.GridGray))
	w.flush()
	w.mainGlyphs(cell, r)
	if cell.HasHigh() {
		w.pending = &annotation{
			page:   w.page,
			glyphs: cell.High,
			ext:    cell.HighExt,
			cell:   r,
		}
	}
	w.lyrics(cell, r)
	w.advance()
}

// advance moves to the next grid position. Columns run first; closing a page
// leaves a pending annotation alone, as it carries its own page.
func (w *walker) advance() {
	w.col++
	if w.col < w.params.N(parameters.P_CNUM) {
		return
	}
	w.col = 0
	w.row++
	if w.row < w.params.N(parameters.P_RNUM) {
		return
	}
	w.row = 0
	tracer().Debugf("closing page %d", w.page.Index)
	w.page = nil
}

func (w *walker) mainGlyphs(cell notation.Cell, r dimen.Rect) {
	csize := w.params.D(parameters.P_CSIZE)
	note := w.params.FD(parameters.P_NOTE_SIZE)
	at := dimen.Point{X: r.CenterX(), Y: r.Top() + (csize-note)/2}
	glyphs(w.page, gfx.MainRole, cell.Main, w.params.F(parameters.P_NOTE_SIZE), at)
	if !cell.MainExt.IsSet() {
		return
	}
	ex := w.params.FD(parameters.P_NOTEEX_SIZE)
	at = dimen.Point{X: r.Right() - ex/2, Y: r.Top() + (csize-ex)/2}
	if cell.MainExt == notation.ExtStop {
		at = at.Shift(dimen.Point{X: 2 * dimen.BP, Y: -ex})
	}
	w.page.add(gfx.Text(gfx.MainExtRole, cell.MainExt.String(),
		w.params.F(parameters.P_NOTEEX_SIZE), at, glyphing.TopToBottom))
}

// flush draws the pending annotation half a cell below the top of its
// declaring cell, i.e. between that cell and its successor.
func (w *walker) flush() {
	a := w.pending
	if a == nil {
		return
	}
	w.pending = nil
	csize := w.params.D(parameters.P_CSIZE)
	note := w.params.FD(parameters.P_NOTE_SIZE)
	at := dimen.Point{X: a.cell.CenterX(), Y: a.cell.Top() + (csize-note)/2 + csize/2 + 2*dimen.BP}
	glyphs(a.page, gfx.HighRole, a.glyphs, w.params.F(parameters.P_HNOTE_SIZE), at)
	if !a.ext.IsSet() {
		return
	}
	hex := w.params.FD(parameters.P_HNOTEEX_SIZE)
	at = dimen.Point{X: a.cell.Right() - hex/2, Y: a.cell.Top() + (csize-hex)/2 + csize/2}
	if a.ext == notation.ExtStop {
		at = at.Shift(dimen.Point{X: 1 * dimen.BP, Y: -hex/2 - 2*dimen.BP})
	}
	a.page.add(gfx.Text(gfx.HighExtRole, a.ext.String(),
		w.params.F(parameters.P_HNOTEEX_SIZE), at, glyphing.TopToBottom))
}

// glyphs sets one or two glyphs. A second glyph is set at half size, right
// of and slightly below the first one.
func glyphs(page *Page, role gfx.Role, g []string, size float32, at dimen.Point) {
	if len(g) == 0 {
		return
	}
	page.add(gfx.Text(role, g[0], size, at, glyphing.TopToBottom))
	if len(g) > 1 {
		offset := dimen.Point{X: dimen.FromPoints(float64(size) / 2), Y: 2 * dimen.BP}
		page.add(gfx.Text(role, g[1], size/2, at.Shift(offset), glyphing.TopToBottom))
	}
}

// lyrics stacks syllables to the right of the cell. The last syllable is set
// nearest to the cell; every syllable is centered vertically by its length.
// Syllables too long to be measured are dropped.
func (w *walker) lyrics(cell notation.Cell, r dimen.Rect) {
	csize := int64(w.params.D(parameters.P_CSIZE))
	l := w.params.FD(parameters.P_LNOTE_SIZE)
	for i := range cell.Lyrics {
		s := cell.Lyrics[len(cell.Lyrics)-1-i]
		n := int64(monospace.Count(s))
		x, okx := dimen.Checked(int64(r.Right()+l/2+2*dimen.BP) + int64(l+2*dimen.BP)*int64(i))
		y, oky := dimen.Checked(int64(r.Top()) + (csize-n*int64(l))/2)
		if !okx || !oky {
			tracer().Errorf("line %d: lyric of %d characters does not fit onto a page, dropped", cell.Line, n)
			continue
		}
		at := dimen.Point{X: x, Y: y}
		w.page.add(gfx.Text(gfx.LyricRole, s, w.params.F(parameters.P_LNOTE_SIZE), at, glyphing.TopToBottom))
	}
}
