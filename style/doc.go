/*
Package style defines style refinements and resolved styles.

A StyleRefinement is a partial style: every field is either set or unset.
Unset fields do not mean "zero", they mean "take the value from the next
layer below". Refinements are stacked by package cascade and resolved into a
Style, where every field is concrete.

Style properties are segmented into groups, in the spirit of CSS:

    Display     display, visibility, position, z-index, overflow, inset
    Dimension   width, height, min-/max-sizes
    Margins     margin-*
    Padding     padding-*
    Border      border widths, color and radii
    Flex        flex container and flex item parameters
    Color       background, box-shadow, cursor
    Text        text color, font, line height, decoration

Text properties are special: they are inherited from the enclosing element.

Underline decoration is an all-or-nothing record. The first mutation of any
of its parts materializes it with defaults for the other parts; clearing it
is an explicit value, different from never having touched it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'refine.style'
func tracer() tracing.Trace {
	return tracing.Select("refine.style")
}
