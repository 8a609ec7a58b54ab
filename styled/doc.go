/*
Package styled provides a fluent builder for style refinements.

A Builder wraps a refinement and offers one method per styling affordance.
Every method sets one property (or a small, fixed group of properties) and
returns the builder, so calls may be chained:

    r := styled.New().
        Flex().FlexCol().ItemsCenter().
        P(styled.S4).Gap(styled.S2).
        Bg(unit.Rgb(0xf8fafc)).Rounded(styled.RadiusMd).ShadowSm().
        TextColor(unit.Rgb(0x0f172a)).TextSm().
        Refinement()

If two calls set the same property, the later call wins. Setters never fail.
Values outside of the predefined scales are traced and ignored.

Names follow the utility classes of Tailwind CSS.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'refine.styled'
func tracer() tracing.Trace {
	return tracing.Select("refine.styled")
}
