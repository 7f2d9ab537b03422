package layout

import (
	"fmt"

	"github.com/npillmayer/kuchi/backend/gfx"
	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/kuchi/core/parameters"
	"github.com/npillmayer/kuchi/engine/glyphing"
	"github.com/npillmayer/kuchi/engine/glyphing/monospace"
)

// Sheet is the physical paper size of score pages.
var Sheet = dimen.DINA4.Landscape()

// Page is a page of a score, holding the drawing operations placed on it.
type Page struct {
	Index      int // starting at 1
	Size       dimen.Point
	TitleDrawn bool
	Ops        []gfx.DrawOp
}

func (p *Page) add(op gfx.DrawOp) {
	p.Ops = append(p.Ops, op)
}

// OpsWithRole returns the drawing operations of a page with a given role.
func (p *Page) OpsWithRole(role gfx.Role) []gfx.DrawOp {
	var ops []gfx.DrawOp
	for _, op := range p.Ops {
		if op.Role == role {
			ops = append(ops, op)
		}
	}
	return ops
}

func (p *Page) String() string {
	return fmt.Sprintf("page %d (%d ops)", p.Index, len(p.Ops))
}

// allocator creates pages. The grid block, made of the body and the title
// column, is centered on the sheet.
type allocator struct {
	params parameters.Params
	title  dimen.Rect // title column
	body   dimen.Rect // area of the grid
	pages  []*Page
}

func newAllocator(params parameters.Params) *allocator {
	csize := params.D(parameters.P_CSIZE)
	rsep := params.D(parameters.P_RSEP)
	titleW := params.D(parameters.P_TITLE_WIDTH)
	titleSep := params.D(parameters.P_TITLE_SEP)
	bodyW := (csize + rsep) * dimen.DU(params.N(parameters.P_RNUM))
	w := bodyW + titleW + titleSep
	h := csize * dimen.DU(params.N(parameters.P_CNUM))
	if w > Sheet.X || h > Sheet.Y {
		tracer().Errorf("grid block of %s x %s does not fit onto the sheet", w, h)
	}
	topR := dimen.Point{
		X: Sheet.X - (Sheet.X-w)/2,
		Y: (Sheet.Y - h) / 2,
	}
	alloc := &allocator{params: params}
	alloc.title = dimen.RectFromTopRight(topR, titleW, h)
	alloc.body = dimen.RectFromTopRight(topR.Shift(dimen.Point{X: -(titleW + titleSep)}), bodyW, h)
	tracer().Debugf("title column at %v, body at %v", alloc.title, alloc.body)
	return alloc
}

// newPage creates a page and sets the title block onto it.
func (alloc *allocator) newPage() *Page {
	page := &Page{
		Index: len(alloc.pages) + 1,
		Size:  Sheet,
	}
	alloc.pages = append(alloc.pages, page)
	alloc.titleBlock(page)
	tracer().Debugf("opened page %d", page.Index)
	return page
}

func (alloc *allocator) titleBlock(page *Page) {
	if title := alloc.params.S(parameters.P_TITLE); title != "" {
		size := alloc.params.FD(parameters.P_TITLE_SIZE)
		alloc.setTitleText(page, gfx.TitleRole, title, parameters.P_TITLE_SIZE,
			alloc.title.Right()-size, 1, 6)
	}
	if author := alloc.params.S(parameters.P_AUTHOR); author != "" {
		size := alloc.params.FD(parameters.P_AUTHOR_SIZE)
		alloc.setTitleText(page, gfx.AuthorRole, author, parameters.P_AUTHOR_SIZE,
			alloc.title.Right()-(alloc.title.Width()-size), 5, 6)
	}
	page.TitleDrawn = true
}

// setTitleText sets text vertically into the title column at x. The part of
// the column not covered by the text is split num:(den-num) above and below.
func (alloc *allocator) setTitleText(page *Page, role gfx.Role, text string,
	key parameters.ScoreParameter, x dimen.DU, num, den int64) {
	//
	size := int64(alloc.params.FD(key))
	n := int64(monospace.Count(text))
	y, ok := dimen.Checked(int64(alloc.title.Top()) + (int64(alloc.title.Height())-n*size)*num/den)
	if !ok {
		tracer().Errorf("%s of %d characters does not fit onto a page, dropped", role, n)
		return
	}
	page.add(gfx.Text(role, text, alloc.params.F(key), dimen.Point{X: x, Y: y}, glyphing.TopToBottom))
}

// cellRect returns the rectangle of the cell at a grid position.
func (alloc *allocator) cellRect(col, row int) dimen.Rect {
	csize := alloc.params.D(parameters.P_CSIZE)
	rsep := alloc.params.D(parameters.P_RSEP)
	topR := dimen.Point{
		X: alloc.body.Right() - (csize+rsep)*dimen.DU(row) - rsep,
		Y: alloc.body.Top() + csize*dimen.DU(col),
	}
	return dimen.RectFromTopRight(topR, csize, csize)
}

// numberPages stamps every page with a label ( i / N ), centered
// horizontally at a fixed distance from the bottom edge. The label width is
// measured in half-em units.
func (alloc *allocator) numberPages() {
	size := alloc.params.F(parameters.P_PAGENUM_SIZE)
	halfEm := alloc.params.FD(parameters.P_PAGENUM_SIZE) / 2
	margin := alloc.params.D(parameters.P_PAGENUM_MARGIN)
	total := len(alloc.pages)
	for _, page := range alloc.pages {
		label := fmt.Sprintf("( %d / %d )", page.Index, total)
		width := dimen.DU(monospace.Width(label)) * halfEm
		at := dimen.Point{
			X: (page.Size.X - width) / 2,
			Y: page.Size.Y - margin,
		}
		page.add(gfx.Text(gfx.PageNumberRole, label, size, at, glyphing.LeftToRight))
	}
}
