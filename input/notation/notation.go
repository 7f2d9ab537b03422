package notation

import (
	"fmt"
	"strings"
)

// ExtMark is an extension mark, indicating a sustained or stopped note.
type ExtMark rune

// Canonical extension marks.
const (
	NoExt      ExtMark = 0
	ExtSustain ExtMark = '〜'
	ExtStop    ExtMark = 'ッ'
)

// extMarks maps recognized extension glyphs to their canonical form.
var extMarks = map[string]ExtMark{
	"〜": ExtSustain,
	"～": ExtSustain, // fullwidth tilde
	"ッ": ExtStop,
	"っ": ExtStop,
}

// IsSet is true for any mark other than NoExt.
func (ex ExtMark) IsSet() bool {
	return ex != NoExt
}

func (ex ExtMark) String() string {
	if ex == NoExt {
		return ""
	}
	return string(rune(ex))
}

// Directive is a configuration line `$name value`.
type Directive struct {
	Name     string // without the '$' marker
	Value    string
	HasValue bool
	Line     int
}

func (d Directive) String() string {
	if !d.HasValue {
		return fmt.Sprintf("$%s", d.Name)
	}
	return fmt.Sprintf("$%s %s", d.Name, d.Value)
}

// Cell is a notated event of the grid.
type Cell struct {
	Main    []string // one or two glyphs, never empty
	MainExt ExtMark
	High    []string // zero, one or two glyphs
	HighExt ExtMark
	Lyrics  []string // in input order; the last one is set closest to the cell
	Line    int
}

// HasHigh is true if the cell declares a secondary annotation.
func (c Cell) HasHigh() bool {
	return len(c.High) > 0
}

func (c Cell) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(c.Main, ""))
	b.WriteString(c.MainExt.String())
	if c.HasHigh() {
		b.WriteByte('|')
		b.WriteString(strings.Join(c.High, ""))
		b.WriteString(c.HighExt.String())
	}
	for _, l := range c.Lyrics {
		b.WriteByte(' ')
		b.WriteString(l)
	}
	return b.String()
}

// UnitKind discriminates units.
type UnitKind int

// Kinds of units
const (
	DirectiveUnit UnitKind = iota
	CellUnit
)

// Unit is either a directive or a cell, depending on Kind.
type Unit struct {
	Kind      UnitKind
	Directive Directive
	Cell      Cell
}

// DirectiveOf wraps a directive into a unit.
func DirectiveOf(d Directive) Unit {
	return Unit{Kind: DirectiveUnit, Directive: d}
}

// CellOf wraps a cell into a unit.
func CellOf(c Cell) Unit {
	return Unit{Kind: CellUnit, Cell: c}
}

func (u Unit) String() string {
	switch u.Kind {
	case DirectiveUnit:
		return u.Directive.String()
	case CellUnit:
		return u.Cell.String()
	}
	return "<unknown unit>"
}
