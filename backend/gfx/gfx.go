package gfx

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/kuchi/engine/glyphing"
)

// Document is an output document, consisting of pages.
type Document interface {
	NewPage(size dimen.Point) (Page, error) // size is already oriented
	Save(path string) error
}

// Page is a page of a document. Coordinates are page-local, starting at the
// top-left corner.
type Page interface {
	// SetFont selects the font size and writing direction for subsequent text.
	SetFont(dir glyphing.Direction, size float32) error
	// DrawRect strokes the outline of a rectangle.
	DrawRect(r dimen.Rect, stroke color.Color)
	// DrawText places text at an anchor. For vertical text the anchor is the
	// top center of the first glyph, for horizontal text it is the left end
	// of the baseline.
	DrawText(at dimen.Point, text string)
}

// OpKind is the kind of a drawing operation.
type OpKind int

// Kinds of drawing operations
const (
	RectOp OpKind = iota
	TextOp
)

// Role tells which part of the score a drawing operation belongs to.
type Role int

// Roles of drawing operations
const (
	GridRole Role = iota
	MainRole
	MainExtRole
	HighRole
	HighExtRole
	LyricRole
	TitleRole
	AuthorRole
	PageNumberRole
)

var roleNames = [...]string{"grid", "main", "main-ext", "high", "high-ext", "lyric",
	"title", "author", "pagenum"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "?"
	}
	return roleNames[r]
}

// GridGray is the stroke color for the cell outlines.
var GridGray = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}

// DrawOp is a drawing instruction, either a rectangle or a text.
type DrawOp struct {
	Kind   OpKind
	Role   Role
	Rect   dimen.Rect  // rectangle to stroke
	Stroke color.RGBA  // stroke color of rectangle
	Text   string      // text to set
	Size   float32     // font size in big points
	At     dimen.Point // anchor of text
	Dir    glyphing.Direction
}

// Rectangle creates a rectangle drawing operation.
func Rectangle(role Role, r dimen.Rect, stroke color.RGBA) DrawOp {
	return DrawOp{Kind: RectOp, Role: role, Rect: r, Stroke: stroke}
}

// Text creates a text drawing operation.
func Text(role Role, text string, size float32, at dimen.Point, dir glyphing.Direction) DrawOp {
	return DrawOp{Kind: TextOp, Role: role, Text: text, Size: size, At: at, Dir: dir}
}

func (op DrawOp) String() string {
	if op.Kind == RectOp {
		return fmt.Sprintf("%s rect %v", op.Role, op.Rect)
	}
	return fmt.Sprintf("%s text %s %.2f %v %q", op.Role, op.Dir, op.Size, op.At, op.Text)
}

// ReplayPage creates a new page in doc and plays a list of drawing
// operations onto it. Font errors abort the replay.
func ReplayPage(doc Document, size dimen.Point, ops []DrawOp) error {
	page, err := doc.NewPage(size)
	if err != nil {
		return err
	}
	fontSet := false
	var dir glyphing.Direction
	var fsize float32
	for _, op := range ops {
		switch op.Kind {
		case RectOp:
			page.DrawRect(op.Rect, op.Stroke)
		case TextOp:
			if !fontSet || op.Dir != dir || op.Size != fsize {
				if err = page.SetFont(op.Dir, op.Size); err != nil {
					return err
				}
				fontSet, dir, fsize = true, op.Dir, op.Size
			}
			page.DrawText(op.At, op.Text)
		default:
			return core.Error(core.EINTERNAL, "unknown drawing operation %d", op.Kind)
		}
	}
	tracer().Debugf("replayed %d operations", len(ops))
	return nil
}
