/*
Package gfx is the bridge between the layout engine and concrete output formats.

The layout engine produces lists of drawing operations (DrawOp) per page.
Replaying these operations onto a Document is the only step which touches
an output format. Backends implement Document and Page.

A Recorder is a Document which keeps drawing operations in memory and saves
them as a line-oriented log, which may be read back with ReadLog.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kuchi.backend'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.backend")
}
