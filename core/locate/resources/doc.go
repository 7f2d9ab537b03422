/*
Package resources resolves resources for the score typesetter.

Currently the only kind of resource is a font. Fonts are looked up by
name, in this order: the packaged font (by its name "gofont"), a font file
path, and a system font found by file name in the platform's font folders.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'kuchi.resources'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.resources")
}
