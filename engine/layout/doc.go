/*
Package layout places notation cells on pages.

Overview

Layout works in three strictly sequential passes over a notation file:

1. All directives are applied, in file order, resulting in frozen layout
parameters. Directives therefore affect every cell, regardless of their
position in the file.

2. Cells are walked over a fixed grid. Cells of a row are stacked top to
bottom, rows are set right to left, and a page is opened whenever a cell
needs a position and no page is open. A cell's secondary ("high") annotation
is set between the cell and its successor. It is held in a single pending
slot and drawn when the next cell is processed or, for the last cell, at the
end of the pass. It is always drawn onto the page which was current when the
annotation was declared.

3. Every page is stamped with a page label "( i / N )".

Layout produces drawing operations only. Rendering is done by replaying the
operations into a gfx.Document.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kuchi.engine'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.engine")
}
