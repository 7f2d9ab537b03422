package gfx

import (
	"bufio"
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/kuchi/engine/glyphing"
)

// Recorder is a document which records drawing operations.
type Recorder struct {
	Pages []*RecordedPage
}

// RecordedPage is a page of a Recorder. Pages see only drawing primitives,
// so recorded operations carry default roles.
type RecordedPage struct {
	Size dimen.Point
	Ops  []DrawOp
	dir  glyphing.Direction
	size float32
}

var _ Document = &Recorder{}
var _ Page = &RecordedPage{}

// NewRecorder creates an empty recording document.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewPage is part of interface Document.
func (rec *Recorder) NewPage(size dimen.Point) (Page, error) {
	p := &RecordedPage{Size: size}
	rec.Pages = append(rec.Pages, p)
	return p, nil
}

// SetFont is part of interface Page.
func (p *RecordedPage) SetFont(dir glyphing.Direction, size float32) error {
	if size <= 0 {
		return core.Error(core.EINVALID, "invalid font size %g", size)
	}
	p.dir, p.size = dir, size
	return nil
}

// DrawRect is part of interface Page.
func (p *RecordedPage) DrawRect(r dimen.Rect, stroke color.Color) {
	p.Ops = append(p.Ops, Rectangle(GridRole, r, rgba(stroke)))
}

// DrawText is part of interface Page.
func (p *RecordedPage) DrawText(at dimen.Point, text string) {
	p.Ops = append(p.Ops, Text(MainRole, text, p.size, at, p.dir))
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// WriteLog writes the recorded operations in a line-oriented format.
func (rec *Recorder) WriteLog(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, p := range rec.Pages {
		fmt.Fprintf(bw, "page %d %.2f %.2f\n", i+1, p.Size.X.Points(), p.Size.Y.Points())
		for _, op := range p.Ops {
			switch op.Kind {
			case RectOp:
				fmt.Fprintf(bw, "rect %.2f %.2f %.2f %.2f #%02x%02x%02x\n",
					op.Rect.TopL.X.Points(), op.Rect.TopL.Y.Points(),
					op.Rect.BotR.X.Points(), op.Rect.BotR.Y.Points(),
					op.Stroke.R, op.Stroke.G, op.Stroke.B)
			case TextOp:
				fmt.Fprintf(bw, "text %s %.2f at %.2f %.2f %q\n", op.Dir, op.Size,
					op.At.X.Points(), op.At.Y.Points(), op.Text)
			}
		}
	}
	return bw.Flush()
}

// Save is part of interface Document. It writes the log to path.
func (rec *Recorder) Save(path string) error {
	var buf bytes.Buffer
	if err := rec.WriteLog(&buf); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot format log")
	}
	return WriteFiles([]string{path}, [][]byte{buf.Bytes()})
}

// LoggedText is a text operation read back from a log.
type LoggedText struct {
	Page int
	Dir  glyphing.Direction
	Size float32
	At   dimen.Point
	Text string
}

// ReadLog reads the text operations of a log written by WriteLog.
func ReadLog(r io.Reader) ([]LoggedText, error) {
	var texts []LoggedText
	scanner := bufio.NewScanner(r)
	lineno, page := 0, 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "page "):
			page++
		case strings.HasPrefix(line, "text "):
			var dir string
			var size, x, y float64
			var text string
			if _, err := fmt.Sscanf(line, "text %s %f at %f %f %q", &dir, &size, &x, &y, &text); err != nil {
				return texts, core.WrapError(err, core.EPARSE, "log line %d: %s", lineno, line)
			}
			d, ok := glyphing.ParseDirection(dir)
			if !ok {
				return texts, core.Error(core.EPARSE, "log line %d: unknown direction %s", lineno, dir)
			}
			texts = append(texts, LoggedText{
				Page: page,
				Dir:  d,
				Size: float32(size),
				At:   dimen.Point{X: dimen.FromPoints(x), Y: dimen.FromPoints(y)},
				Text: text,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return texts, core.WrapError(err, core.EIO, "cannot read log")
	}
	return texts, nil
}
