package styled

import (
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/style"
	"github.com/npillmayer/refine/unit"
)

// Builder mutates a style refinement. Builders are small values sharing the
// refinement they have been created for; use New or On to create one.
type Builder struct {
	style *style.StyleRefinement
}

// New creates a builder for a fresh, empty refinement.
func New() Builder {
	return Builder{style: &style.StyleRefinement{}}
}

// On creates a builder mutating r in place.
func On(r *style.StyleRefinement) Builder {
	if r == nil {
		r = &style.StyleRefinement{}
	}
	return Builder{style: r}
}

// Refinement returns the refinement b is working on.
func (b Builder) Refinement() *style.StyleRefinement {
	return b.style
}

// Style applies f to the underlying refinement, for properties without a
// dedicated builder method.
func (b Builder) Style(f func(*style.StyleRefinement)) Builder {
	f(b.style)
	return b
}

// ZIndex sets the stacking order.
func (b Builder) ZIndex(z uint32) Builder {
	b.style.ZIndex = maybe.Just(z)
	return b
}

// Full sets width and height to the full size of the enclosing box.
func (b Builder) Full() Builder {
	b.style.Size.Width = maybe.Just(unit.Relative(1))
	b.style.Size.Height = maybe.Just(unit.Relative(1))
	return b
}

// Relative sets position: relative.
func (b Builder) Relative() Builder {
	b.style.Position = maybe.Just(style.PositionRelative)
	return b
}

// Absolute sets position: absolute.
func (b Builder) Absolute() Builder {
	b.style.Position = maybe.Just(style.PositionAbsolute)
	return b
}

// Block sets display: block.
func (b Builder) Block() Builder {
	b.style.Display = maybe.Just(style.DisplayBlock)
	return b
}

// Flex sets display: flex.
func (b Builder) Flex() Builder {
	b.style.Display = maybe.Just(style.DisplayFlex)
	return b
}

// Hidden removes the element from layout (display: none).
func (b Builder) Hidden() Builder {
	b.style.Display = maybe.Just(style.DisplayNone)
	return b
}

// Visible sets visibility: visible.
func (b Builder) Visible() Builder {
	b.style.Visibility = maybe.Just(style.Visible)
	return b
}

// Invisible hides the element, which still occupies its space.
func (b Builder) Invisible() Builder {
	b.style.Visibility = maybe.Just(style.Hidden)
	return b
}

func (b Builder) OverflowHidden() Builder {
	return b.overflow(style.OverflowHidden, true, true)
}

func (b Builder) OverflowHiddenX() Builder {
	return b.overflow(style.OverflowHidden, true, false)
}

func (b Builder) OverflowHiddenY() Builder {
	return b.overflow(style.OverflowHidden, false, true)
}

func (b Builder) OverflowScroll() Builder {
	return b.overflow(style.OverflowScroll, true, true)
}

func (b Builder) OverflowScrollX() Builder {
	return b.overflow(style.OverflowScroll, true, false)
}

func (b Builder) OverflowScrollY() Builder {
	return b.overflow(style.OverflowScroll, false, true)
}

func (b Builder) overflow(o style.Overflow, x, y bool) Builder {
	if x {
		b.style.Overflow.X = maybe.Just(o)
	}
	if y {
		b.style.Overflow.Y = maybe.Just(o)
	}
	return b
}

// --- Cursors ---------------------------------------------------------------

// Cursor sets the mouse cursor shown while hovering the element.
func (b Builder) Cursor(c style.CursorStyle) Builder {
	b.style.MouseCursor = maybe.Just(c)
	return b
}

func (b Builder) cursor(keyword string) Builder {
	return b.Cursor(style.CursorKeywords[keyword])
}

func (b Builder) CursorDefault() Builder      { return b.cursor("default") }
func (b Builder) CursorPointer() Builder      { return b.cursor("pointer") }
func (b Builder) CursorText() Builder         { return b.cursor("text") }
func (b Builder) CursorMove() Builder         { return b.cursor("move") }
func (b Builder) CursorNotAllowed() Builder   { return b.cursor("not-allowed") }
func (b Builder) CursorContextMenu() Builder  { return b.cursor("context-menu") }
func (b Builder) CursorCrosshair() Builder    { return b.cursor("crosshair") }
func (b Builder) CursorVerticalText() Builder { return b.cursor("vertical-text") }
func (b Builder) CursorAlias() Builder        { return b.cursor("alias") }
func (b Builder) CursorCopy() Builder         { return b.cursor("copy") }
func (b Builder) CursorNoDrop() Builder       { return b.cursor("no-drop") }
func (b Builder) CursorGrab() Builder         { return b.cursor("grab") }
func (b Builder) CursorGrabbing() Builder     { return b.cursor("grabbing") }
func (b Builder) CursorColResize() Builder    { return b.cursor("col-resize") }
func (b Builder) CursorRowResize() Builder    { return b.cursor("row-resize") }
func (b Builder) CursorNResize() Builder      { return b.cursor("n-resize") }
func (b Builder) CursorEResize() Builder      { return b.cursor("e-resize") }
func (b Builder) CursorSResize() Builder      { return b.cursor("s-resize") }
func (b Builder) CursorWResize() Builder      { return b.cursor("w-resize") }
