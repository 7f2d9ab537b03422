/*
Package notation reads kuchi-shōka tablature notation.

Input is line-oriented. Every line is one of

	# comment                   first token starts with '#'
	$name value                 a directive, overriding a layout parameter
	main|high|- lyric lyric …   a cell of the grid

The grid field of a cell consists of up to three sub-groups, separated by
'|' or '｜'. The first sub-group holds the main glyphs, the second one the
secondary ("high") glyphs; a third one is reserved and currently ignored.
A sub-group holds one or two glyphs, optionally followed by an extension
mark ('〜' or 'ッ'). Fields after the grid field are lyric syllables.

The fullwidth placeholder '＃' is replaced by an ASCII '#' in glyphs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kuchi.input'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.input")
}
