package notation

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/engine/glyphing/monospace"
)

const (
	commentMarker   = "#"
	directiveMarker = "$"
	placeholder     = "＃"
	sharp           = "#"
	groupSlots      = 3
	maxGlyphs       = 2
)

// ErrInvalidCellFormat is the cause of errors for cell lines which do not
// yield a main glyph.
var ErrInvalidCellFormat = errors.New("invalid cell format")

func isSeparator(r rune) bool {
	return r == '|' || r == '｜'
}

// ParseLine parses a single line of input. Blank lines and comments produce
// no unit, signalled by a return value of false.
func ParseLine(line string, lineno int) (Unit, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], commentMarker) {
		return Unit{}, false, nil
	}
	if strings.HasPrefix(fields[0], directiveMarker) {
		d := Directive{
			Name: strings.TrimPrefix(fields[0], directiveMarker),
			Line: lineno,
		}
		if len(fields) > 1 {
			d.Value, d.HasValue = fields[1], true
		}
		return DirectiveOf(d), true, nil
	}
	cell, err := parseCell(fields[0], fields[1:], lineno)
	if err != nil {
		return Unit{}, false, err
	}
	return CellOf(cell), true, nil
}

func parseCell(grid string, lyrics []string, lineno int) (Cell, error) {
	groups := splitGroups(grid)
	if len(groups) == 0 {
		return Cell{}, invalidCell(lineno, grid, "no sub-groups")
	}
	for len(groups) < groupSlots {
		groups = append(groups, "")
	}
	cell := Cell{Line: lineno}
	cell.Main, cell.MainExt = parseGroup(groups[0], lineno)
	if len(cell.Main) == 0 {
		return Cell{}, invalidCell(lineno, grid, "no main glyph")
	}
	cell.High, cell.HighExt = parseGroup(groups[1], lineno)
	if len(cell.High) == 0 {
		if cell.HighExt.IsSet() {
			tracer().Infof("line %d: extension mark without high glyph ignored", lineno)
		}
		cell.High, cell.HighExt = nil, NoExt
	}
	// groups[2] is reserved
	if len(lyrics) > 0 {
		cell.Lyrics = append([]string(nil), lyrics...)
	}
	return cell, nil
}

// splitGroups splits the grid field at separators. Trailing empty groups are
// dropped, inner empty groups are kept.
func splitGroups(grid string) []string {
	var groups []string
	start := 0
	for i, r := range grid {
		if isSeparator(r) {
			groups = append(groups, grid[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	groups = append(groups, grid[start:])
	for len(groups) > 0 && groups[len(groups)-1] == "" {
		groups = groups[:len(groups)-1]
	}
	return groups
}

// parseGroup splits a sub-group into glyphs and an optional trailing
// extension mark.
func parseGroup(group string, lineno int) ([]string, ExtMark) {
	clusters := monospace.Graphemes(group)
	ext := NoExt
	if n := len(clusters); n > 0 {
		if mark, ok := extMarks[clusters[n-1]]; ok {
			ext = mark
			clusters = clusters[:n-1]
		}
	}
	if len(clusters) > maxGlyphs {
		tracer().Infof("line %d: dropping glyphs beyond the second one in %q", lineno, group)
		clusters = clusters[:maxGlyphs]
	}
	if len(clusters) == 0 {
		return nil, ext
	}
	glyphs := make([]string, len(clusters))
	for i, c := range clusters {
		glyphs[i] = ReplacePlaceholder(c)
	}
	return glyphs, ext
}

// ReplacePlaceholder replaces fullwidth '＃' by ASCII '#'.
// Applying it more than once does not change the result.
func ReplacePlaceholder(s string) string {
	return strings.ReplaceAll(s, placeholder, sharp)
}

func invalidCell(lineno int, grid, reason string) error {
	return core.WrapError(ErrInvalidCellFormat, core.EPARSE,
		"line %d: invalid cell format %q: %s", lineno, grid, reason)
}

// Parse reads notation lines from r, which has to deliver UTF-8 text, and
// returns the units in input order. The first invalid cell aborts parsing.
func Parse(r io.Reader) ([]Unit, error) {
	var units []Unit
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		unit, ok, err := ParseLine(scanner.Text(), lineno)
		if err != nil {
			return nil, err
		}
		if ok {
			units = append(units, unit)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read notation input")
	}
	tracer().Debugf("parsed %d units from %d lines", len(units), lineno)
	return units, nil
}

// Read decodes notation input (see Decode) and parses it.
func Read(r io.Reader) ([]Unit, error) {
	text, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}
