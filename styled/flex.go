package styled

import (
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/style"
	"github.com/npillmayer/refine/unit"
)

func (b Builder) FlexCol() Builder        { return b.direction(style.FlexColumn) }
func (b Builder) FlexColReverse() Builder { return b.direction(style.FlexColumnReverse) }
func (b Builder) FlexRow() Builder        { return b.direction(style.FlexRow) }
func (b Builder) FlexRowReverse() Builder { return b.direction(style.FlexRowReverse) }

func (b Builder) direction(d style.FlexDirection) Builder {
	b.style.FlexDirection = maybe.Just(d)
	return b
}

// Flex1 lets a flex item grow and shrink, ignoring its initial size.
func (b Builder) Flex1() Builder {
	return b.flex(1, 1, maybe.Just(unit.Relative(0)))
}

// FlexAuto lets a flex item grow and shrink, respecting its initial size.
func (b Builder) FlexAuto() Builder {
	return b.flex(1, 1, maybe.Just(unit.Auto()))
}

// FlexInitial lets a flex item shrink but not grow.
func (b Builder) FlexInitial() Builder {
	return b.flex(0, 1, maybe.Just(unit.Auto()))
}

// FlexNone keeps a flex item from growing or shrinking. The basis is left
// untouched.
func (b Builder) FlexNone() Builder {
	return b.flex(0, 0, maybe.Nothing[unit.Length]())
}

// flex sets grow and shrink, and the basis if it is given.
func (b Builder) flex(grow, shrink float32, basis maybe.Maybe[unit.Length]) Builder {
	b.style.FlexGrow = maybe.Just(grow)
	b.style.FlexShrink = maybe.Just(shrink)
	b.style.FlexBasis = basis.Or(b.style.FlexBasis)
	return b
}

// FlexGrow lets a flex item grow to fill available space.
func (b Builder) FlexGrow() Builder {
	b.style.FlexGrow = maybe.Just(float32(1))
	return b
}

// FlexGrow0 keeps a flex item from growing.
func (b Builder) FlexGrow0() Builder {
	b.style.FlexGrow = maybe.Just(float32(0))
	return b
}

// FlexShrink lets a flex item shrink if needed.
func (b Builder) FlexShrink() Builder {
	b.style.FlexShrink = maybe.Just(float32(1))
	return b
}

// FlexShrink0 keeps a flex item from shrinking.
func (b Builder) FlexShrink0() Builder {
	b.style.FlexShrink = maybe.Just(float32(0))
	return b
}

// FlexBasis sets the initial main size of a flex item.
func (b Builder) FlexBasis(l unit.Length) Builder {
	b.style.FlexBasis = maybe.Just(l)
	return b
}

func (b Builder) FlexWrap() Builder        { return b.wrap(style.Wrap) }
func (b Builder) FlexWrapReverse() Builder { return b.wrap(style.WrapReverse) }
func (b Builder) FlexNowrap() Builder      { return b.wrap(style.NoWrap) }

func (b Builder) wrap(w style.FlexWrap) Builder {
	b.style.FlexWrap = maybe.Just(w)
	return b
}

// --- Alignment -------------------------------------------------------------

// Items* align flex items on the cross axis of the container.
func (b Builder) ItemsStart() Builder    { return b.items(style.AlignFlexStart) }
func (b Builder) ItemsEnd() Builder      { return b.items(style.AlignFlexEnd) }
func (b Builder) ItemsCenter() Builder   { return b.items(style.AlignCenter) }
func (b Builder) ItemsBaseline() Builder { return b.items(style.AlignBaseline) }
func (b Builder) ItemsStretch() Builder  { return b.items(style.AlignStretch) }

func (b Builder) items(a style.AlignItems) Builder {
	b.style.AlignItems = maybe.Just(a)
	return b
}

// Self* override the cross axis alignment for a single flex item.
func (b Builder) SelfAuto() Builder     { return b.self(style.SelfAuto) }
func (b Builder) SelfStart() Builder    { return b.self(style.SelfStart) }
func (b Builder) SelfEnd() Builder      { return b.self(style.SelfEnd) }
func (b Builder) SelfCenter() Builder   { return b.self(style.SelfCenter) }
func (b Builder) SelfStretch() Builder  { return b.self(style.SelfStretch) }
func (b Builder) SelfBaseline() Builder { return b.self(style.SelfBaseline) }

func (b Builder) self(a style.AlignSelf) Builder {
	b.style.AlignSelf = maybe.Just(a)
	return b
}

// Justify* distribute flex items along the main axis.
func (b Builder) JustifyStart() Builder   { return b.justify(style.JustifyStart) }
func (b Builder) JustifyEnd() Builder     { return b.justify(style.JustifyEnd) }
func (b Builder) JustifyCenter() Builder  { return b.justify(style.JustifyCenter) }
func (b Builder) JustifyBetween() Builder { return b.justify(style.JustifySpaceBetween) }
func (b Builder) JustifyAround() Builder  { return b.justify(style.JustifySpaceAround) }
func (b Builder) JustifyEvenly() Builder  { return b.justify(style.JustifySpaceEvenly) }

func (b Builder) justify(j style.JustifyContent) Builder {
	b.style.JustifyContent = maybe.Just(j)
	return b
}

// Content* distribute lines of a wrapping flex container on the cross axis.
func (b Builder) ContentStart() Builder   { return b.content(style.JustifyFlexStart) }
func (b Builder) ContentEnd() Builder     { return b.content(style.JustifyFlexEnd) }
func (b Builder) ContentCenter() Builder  { return b.content(style.JustifyCenter) }
func (b Builder) ContentBetween() Builder { return b.content(style.JustifySpaceBetween) }
func (b Builder) ContentAround() Builder  { return b.content(style.JustifySpaceAround) }
func (b Builder) ContentEvenly() Builder  { return b.content(style.JustifySpaceEvenly) }
func (b Builder) ContentStretch() Builder { return b.content(style.JustifyStretch) }

func (b Builder) content(j style.JustifyContent) Builder {
	b.style.AlignContent = maybe.Just(j)
	return b
}
