/*
Package glyphing holds definitions for setting glyphs on a page.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

// Direction is the direction to typeset text in.
type Direction int

// Direction to typeset text in.
//
// Score notation, lyrics and titles run top to bottom; page labels run left
// to right.
const (
	LeftToRight Direction = iota
	TopToBottom
)

func (dir Direction) String() string {
	switch dir {
	case LeftToRight:
		return "ltr"
	case TopToBottom:
		return "ttb"
	}
	return "?"
}

// ParseDirection is the inverse of String.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "ltr":
		return LeftToRight, true
	case "ttb":
		return TopToBottom, true
	}
	return LeftToRight, false
}
