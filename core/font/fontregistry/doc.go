/*
Package fontregistry manages a registry for loaded fonts.

Each document conversion owns a registry of its own. Type cases are derived
from registered fonts on demand and cached by font name, size and resolution.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'kuchi.font'
func tracer() tracing.Trace {
	return tracing.Select("kuchi.font")
}
