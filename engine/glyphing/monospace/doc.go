/*
Package monospace measures text for monospace output.

Notation glyphs, lyrics and titles are set on a fixed em-grid: every
grapheme cluster occupies one em when running top to bottom. Horizontal
text is measured in half-em units, with East Asian wide characters counting
double.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kuchi.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.glyphs")
}
