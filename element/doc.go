/*
Package element builds trees of element descriptions and resolves their styles.

Each element carries a stack of style refinements:

    defaults   component defaults, lowest precedence
    style      call-site style
    overlays   one per interaction state (hover, focus, active, disabled),
               applied only while the state is active

Resolving a tree walks it top-down. The resolved text style of an element
is handed down to its children, the only data shared between elements.
Subtrees may therefore be resolved in parallel, see ResolveTreeParallel.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package element

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'refine.element'
func tracer() tracing.Trace {
	return tracing.Select("refine.element")
}
