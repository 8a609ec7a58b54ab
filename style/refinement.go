package style

import (
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/unit"
)

// StyleRefinement is a partial style. Every field is either set (Just) or
// unset (Nothing). The zero value is a refinement with nothing set.
//
// A refinement is owned by the element description which created it.
// Clearing a property is expressed by setting an explicit value, e.g. an
// empty shadow list.
type StyleRefinement struct {
	// Display group
	Display    maybe.Maybe[Display]
	Visibility maybe.Maybe[Visibility]
	Position   maybe.Maybe[Position]
	ZIndex     maybe.Maybe[uint32]
	Overflow   PointRefinement[Overflow]
	Inset      EdgesRefinement[unit.Length]

	// Dimension group
	Size    SizeRefinement[unit.Length]
	MinSize SizeRefinement[unit.Length]
	MaxSize SizeRefinement[unit.Length]

	// Box model
	Margin       EdgesRefinement[unit.Length]
	Padding      EdgesRefinement[unit.Length]
	BorderWidths EdgesRefinement[unit.Length]

	// Flex group
	Gap            SizeRefinement[unit.Length]
	FlexDirection  maybe.Maybe[FlexDirection]
	FlexWrap       maybe.Maybe[FlexWrap]
	FlexGrow       maybe.Maybe[float32]
	FlexShrink     maybe.Maybe[float32]
	FlexBasis      maybe.Maybe[unit.Length]
	AlignItems     maybe.Maybe[AlignItems]
	AlignSelf      maybe.Maybe[AlignSelf]
	AlignContent   maybe.Maybe[JustifyContent]
	JustifyContent maybe.Maybe[JustifyContent]

	// Paint
	Background  maybe.Maybe[Fill]
	BorderColor maybe.Maybe[unit.Hsla]
	CornerRadii CornersRefinement[unit.Length]
	BoxShadow   maybe.Maybe[[]BoxShadow] // replaced as a whole, never appended to
	MouseCursor maybe.Maybe[CursorStyle]

	// Text is inherited by enclosed elements
	Text TextStyleRefinement
}

// Refine merges a refinement of higher precedence into r: every field set in
// higher overwrites the field in r. The shadow list is taken over as a whole
// and copied, so r does not share memory with higher.
func (r *StyleRefinement) Refine(higher *StyleRefinement) {
	if higher == nil {
		return
	}
	r.Display = higher.Display.Or(r.Display)
	r.Visibility = higher.Visibility.Or(r.Visibility)
	r.Position = higher.Position.Or(r.Position)
	r.ZIndex = higher.ZIndex.Or(r.ZIndex)
	r.Overflow.Refine(higher.Overflow)
	r.Inset.Refine(higher.Inset)
	r.Size.Refine(higher.Size)
	r.MinSize.Refine(higher.MinSize)
	r.MaxSize.Refine(higher.MaxSize)
	r.Margin.Refine(higher.Margin)
	r.Padding.Refine(higher.Padding)
	r.BorderWidths.Refine(higher.BorderWidths)
	r.Gap.Refine(higher.Gap)
	r.FlexDirection = higher.FlexDirection.Or(r.FlexDirection)
	r.FlexWrap = higher.FlexWrap.Or(r.FlexWrap)
	r.FlexGrow = higher.FlexGrow.Or(r.FlexGrow)
	r.FlexShrink = higher.FlexShrink.Or(r.FlexShrink)
	r.FlexBasis = higher.FlexBasis.Or(r.FlexBasis)
	r.AlignItems = higher.AlignItems.Or(r.AlignItems)
	r.AlignSelf = higher.AlignSelf.Or(r.AlignSelf)
	r.AlignContent = higher.AlignContent.Or(r.AlignContent)
	r.JustifyContent = higher.JustifyContent.Or(r.JustifyContent)
	r.Background = higher.Background.Or(r.Background)
	r.BorderColor = higher.BorderColor.Or(r.BorderColor)
	r.CornerRadii.Refine(higher.CornerRadii)
	if shadows, ok := higher.BoxShadow.Get(); ok {
		r.BoxShadow = maybe.Just(cloneShadows(shadows))
	}
	r.MouseCursor = higher.MouseCursor.Or(r.MouseCursor)
	r.Text.Refine(&higher.Text)
}

// Clone returns a deep copy of r.
func (r *StyleRefinement) Clone() StyleRefinement {
	c := *r
	if shadows, ok := r.BoxShadow.Get(); ok {
		c.BoxShadow = maybe.Just(cloneShadows(shadows))
	}
	return c
}

// ApplyTo returns base with every field set in r replaced, excluding text
// properties. Text properties are inherited from the enclosing element and
// are resolved separately, see TextStyleRefinement.ApplyTo.
func (r *StyleRefinement) ApplyTo(base Style) Style {
	s := base
	s.Display = r.Display.WithDefault(base.Display)
	s.Visibility = r.Visibility.WithDefault(base.Visibility)
	s.Position = r.Position.WithDefault(base.Position)
	s.ZIndex = r.ZIndex.WithDefault(base.ZIndex)
	s.Overflow = r.Overflow.ApplyTo(base.Overflow)
	s.Inset = r.Inset.ApplyTo(base.Inset)
	s.Size = r.Size.ApplyTo(base.Size)
	s.MinSize = r.MinSize.ApplyTo(base.MinSize)
	s.MaxSize = r.MaxSize.ApplyTo(base.MaxSize)
	s.Margin = r.Margin.ApplyTo(base.Margin)
	s.Padding = r.Padding.ApplyTo(base.Padding)
	s.BorderWidths = r.BorderWidths.ApplyTo(base.BorderWidths)
	s.Gap = r.Gap.ApplyTo(base.Gap)
	s.FlexDirection = r.FlexDirection.WithDefault(base.FlexDirection)
	s.FlexWrap = r.FlexWrap.WithDefault(base.FlexWrap)
	s.FlexGrow = r.FlexGrow.WithDefault(base.FlexGrow)
	s.FlexShrink = r.FlexShrink.WithDefault(base.FlexShrink)
	s.FlexBasis = r.FlexBasis.WithDefault(base.FlexBasis)
	s.AlignItems = r.AlignItems.WithDefault(base.AlignItems)
	s.AlignSelf = r.AlignSelf.WithDefault(base.AlignSelf)
	s.AlignContent = r.AlignContent.WithDefault(base.AlignContent)
	s.JustifyContent = r.JustifyContent.WithDefault(base.JustifyContent)
	s.Background = r.Background.WithDefault(base.Background)
	s.BorderColor = r.BorderColor.WithDefault(base.BorderColor)
	s.CornerRadii = r.CornerRadii.ApplyTo(base.CornerRadii)
	s.BoxShadow = cloneShadows(r.BoxShadow.WithDefault(base.BoxShadow))
	if s.BoxShadow == nil {
		s.BoxShadow = []BoxShadow{}
	}
	s.MouseCursor = r.MouseCursor.WithDefault(base.MouseCursor)
	return s
}

// IsEmpty is true if no field is set.
func (r *StyleRefinement) IsEmpty() bool {
	return len(r.Properties()) == 0
}
