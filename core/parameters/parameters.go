/*
Package parameters holds the layout parameters of a score.

Parameters start out with fixed defaults and may be overridden by
directives of the notation input. Once all directives have been applied,
registers are frozen into an immutable Params value, which is handed to
the layout engine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"math"
	"strconv"

	"github.com/npillmayer/kuchi/core/dimen"
	"github.com/npillmayer/kuchi/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kuchi.core'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.core")
}

// ScoreParameter is a key for a layout parameter.
type ScoreParameter int

const (
	none ScoreParameter = iota
	P_TITLE
	P_AUTHOR
	P_CSIZE
	P_CNUM
	P_RNUM
	P_RSEP
	P_TITLE_WIDTH
	P_TITLE_SEP
	P_PAGENUM_MARGIN
	P_NOTE_SIZE
	P_HNOTE_SIZE
	P_LNOTE_SIZE
	P_NOTEEX_SIZE
	P_HNOTEEX_SIZE
	P_TITLE_SIZE
	P_AUTHOR_SIZE
	P_PAGENUM_SIZE
	P_STOPPER
)

type kind int

const (
	textKind kind = iota
	dimenKind
	countKind
	fontsizeKind
)

var directives = map[string]ScoreParameter{
	"title":          P_TITLE,
	"author":         P_AUTHOR,
	"csize":          P_CSIZE,
	"cnum":           P_CNUM,
	"rnum":           P_RNUM,
	"rsep":           P_RSEP,
	"title_width":    P_TITLE_WIDTH,
	"title_sep":      P_TITLE_SEP,
	"pagenum_margin": P_PAGENUM_MARGIN,
	"note_size":      P_NOTE_SIZE,
	"hnote_size":     P_HNOTE_SIZE,
	"lnote_size":     P_LNOTE_SIZE,
	"noteex_size":    P_NOTEEX_SIZE,
	"hnoteex_size":   P_HNOTEEX_SIZE,
	"title_size":     P_TITLE_SIZE,
	"author_size":    P_AUTHOR_SIZE,
	"pagenum_size":   P_PAGENUM_SIZE,
}

func (p ScoreParameter) kind() kind {
	switch p {
	case P_TITLE, P_AUTHOR:
		return textKind
	case P_CSIZE, P_RSEP, P_TITLE_WIDTH, P_TITLE_SEP, P_PAGENUM_MARGIN:
		return dimenKind
	case P_CNUM, P_RNUM:
		return countKind
	}
	return fontsizeKind
}

// Lookup returns the parameter key for a directive name.
func Lookup(name string) (ScoreParameter, bool) {
	p, ok := directives[name]
	return p, ok
}

// Registers is the mutable set of parameters during the directive pass.
type Registers struct {
	base [P_STOPPER]interface{}
}

// NewRegisters creates registers populated with default values.
func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_TITLE] = ""                // a string
	p[P_AUTHOR] = ""               // a string
	p[P_CSIZE] = 30 * dimen.BP     // dimension
	p[P_CNUM] = 16                 // cells per row
	p[P_RNUM] = 10                 // rows per page
	p[P_RSEP] = 35 * dimen.BP      // dimension
	p[P_TITLE_WIDTH] = 60 * dimen.BP
	p[P_TITLE_SEP] = 10 * dimen.BP
	p[P_PAGENUM_MARGIN] = 30 * dimen.BP
	p[P_NOTE_SIZE] = float32(16) // font sizes in bp
	p[P_HNOTE_SIZE] = float32(12)
	p[P_LNOTE_SIZE] = float32(8)
	p[P_NOTEEX_SIZE] = float32(8)
	p[P_HNOTEEX_SIZE] = float32(8)
	p[P_TITLE_SIZE] = float32(20)
	p[P_AUTHOR_SIZE] = float32(16)
	p[P_PAGENUM_SIZE] = float32(12)
}

// Push sets a parameter. The value has to be of the type of the parameter's
// default.
func (regs *Registers) Push(key ScoreParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of score parameters")
	}
	regs.base[key] = value
}

// Apply interprets a directive and sets the corresponding parameter.
// It returns false if the directive did not change any parameter: unknown
// names, missing values and values which do not parse are ignored.
func (regs *Registers) Apply(name, value string, hasValue bool) bool {
	key, ok := Lookup(name)
	if !ok {
		tracer().Debugf("ignoring unknown directive $%s", name)
		return false
	}
	if !hasValue {
		tracer().Infof("ignoring directive $%s without value", name)
		return false
	}
	v, err := convert(key.kind(), value)
	if err == nil {
		candidate := regs.base
		candidate[key] = v
		if !blockFits(&candidate) {
			err = errBlock
		}
	}
	if err != nil {
		tracer().Errorf("ignoring directive $%s: %v", name, err)
		return false
	}
	tracer().Debugf("directive $%s = %v", name, v)
	regs.Push(key, v)
	return true
}

func convert(k kind, value string) (interface{}, error) {
	switch k {
	case dimenKind:
		d, err := dimen.ParseDimen(value, dimen.BP)
		if err != nil {
			return nil, err
		}
		if d < 0 {
			return nil, errNegative
		}
		return d, nil
	case countKind:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errNumber
		}
		if f < 1 || f > math.MaxInt32 {
			return nil, errCount
		}
		return int(f), nil
	case fontsizeKind:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, errNumber
		}
		if f <= 0 {
			return nil, errNegative
		}
		if f > font.MaxSize {
			return nil, errFontSize
		}
		return float32(f), nil
	}
	return value, nil
}

// blockFits is true if the grid block, i.e. all cells of a page plus the
// title column, may be measured in dimensions.
func blockFits(p *[P_STOPPER]interface{}) bool {
	csize := float64(p[P_CSIZE].(dimen.DU))
	rsep := float64(p[P_RSEP].(dimen.DU))
	titleW := float64(p[P_TITLE_WIDTH].(dimen.DU)) + float64(p[P_TITLE_SEP].(dimen.DU))
	h := csize * float64(p[P_CNUM].(int))
	w := (csize+rsep)*float64(p[P_RNUM].(int)) + titleW
	return h <= dimen.Infinity && w <= dimen.Infinity
}

// Params returns an immutable snapshot of the current register values.
func (regs *Registers) Params() Params {
	return Params{base: regs.base}
}

// Params is a frozen set of layout parameters.
type Params struct {
	base [P_STOPPER]interface{}
}

// Defaults returns the parameters without any directive applied.
func Defaults() Params {
	return NewRegisters().Params()
}

// Get returns the value of a parameter.
func (p Params) Get(key ScoreParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of score parameters")
	}
	return p.base[key]
}

// S returns a text parameter.
func (p Params) S(key ScoreParameter) string {
	return p.Get(key).(string)
}

// N returns a count parameter.
func (p Params) N(key ScoreParameter) int {
	return p.Get(key).(int)
}

// D returns a dimension parameter.
func (p Params) D(key ScoreParameter) dimen.DU {
	return p.Get(key).(dimen.DU)
}

// F returns a font size parameter, in big points.
func (p Params) F(key ScoreParameter) float32 {
	return p.Get(key).(float32)
}

// FD returns a font size parameter as a dimension.
func (p Params) FD(key ScoreParameter) dimen.DU {
	return dimen.FromPoints(float64(p.F(key)))
}
