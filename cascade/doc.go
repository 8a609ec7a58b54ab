/*
Package cascade resolves a stack of style refinements into a concrete style.

Resolution is done in two passes. The first pass folds the layers of a single
element, from lowest to highest precedence: for each property the value of
the highest layer setting it wins. The second pass fills in what no layer has
set. Geometry and paint properties fall back to a fixed baseline, while text
properties fall back to the resolved text style of the enclosing element.
Only text crosses element boundaries.

Resolution is a pure function of its inputs. Inputs are never modified, and
results share no memory with them, so resolving disjoint subtrees in parallel
needs no locking.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'refine.cascade'
func tracer() tracing.Trace {
	return tracing.Select("refine.cascade")
}
