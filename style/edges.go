package style

import (
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/unit"
)

// EdgesRefinement is a partial set of per-side values.
type EdgesRefinement[T any] struct {
	Top, Right, Bottom, Left maybe.Maybe[T]
}

// SetAll sets every side to v.
func (e *EdgesRefinement[T]) SetAll(v T) {
	e.Top, e.Right, e.Bottom, e.Left = maybe.Just(v), maybe.Just(v), maybe.Just(v), maybe.Just(v)
}

// Refine overwrites each side which is set in higher.
func (e *EdgesRefinement[T]) Refine(higher EdgesRefinement[T]) {
	e.Top = higher.Top.Or(e.Top)
	e.Right = higher.Right.Or(e.Right)
	e.Bottom = higher.Bottom.Or(e.Bottom)
	e.Left = higher.Left.Or(e.Left)
}

// ApplyTo returns base with every set side replaced.
func (e EdgesRefinement[T]) ApplyTo(base unit.Edges[T]) unit.Edges[T] {
	return unit.Edges[T]{
		Top:    e.Top.WithDefault(base.Top),
		Right:  e.Right.WithDefault(base.Right),
		Bottom: e.Bottom.WithDefault(base.Bottom),
		Left:   e.Left.WithDefault(base.Left),
	}
}

// IsEmpty is true if no side is set.
func (e EdgesRefinement[T]) IsEmpty() bool {
	return e.Top.IsNothing() && e.Right.IsNothing() && e.Bottom.IsNothing() && e.Left.IsNothing()
}

// SizeRefinement is a partial width/height pair.
type SizeRefinement[T any] struct {
	Width, Height maybe.Maybe[T]
}

// Refine overwrites each dimension which is set in higher.
func (s *SizeRefinement[T]) Refine(higher SizeRefinement[T]) {
	s.Width = higher.Width.Or(s.Width)
	s.Height = higher.Height.Or(s.Height)
}

// ApplyTo returns base with every set dimension replaced.
func (s SizeRefinement[T]) ApplyTo(base unit.Size[T]) unit.Size[T] {
	return unit.Size[T]{
		Width:  s.Width.WithDefault(base.Width),
		Height: s.Height.WithDefault(base.Height),
	}
}

// IsEmpty is true if neither dimension is set.
func (s SizeRefinement[T]) IsEmpty() bool {
	return s.Width.IsNothing() && s.Height.IsNothing()
}

// PointRefinement is a partial pair of per-axis values.
type PointRefinement[T any] struct {
	X, Y maybe.Maybe[T]
}

// Refine overwrites each axis which is set in higher.
func (p *PointRefinement[T]) Refine(higher PointRefinement[T]) {
	p.X = higher.X.Or(p.X)
	p.Y = higher.Y.Or(p.Y)
}

// ApplyTo returns base with every set axis replaced.
func (p PointRefinement[T]) ApplyTo(base unit.Point[T]) unit.Point[T] {
	return unit.Point[T]{X: p.X.WithDefault(base.X), Y: p.Y.WithDefault(base.Y)}
}

// IsEmpty is true if neither axis is set.
func (p PointRefinement[T]) IsEmpty() bool {
	return p.X.IsNothing() && p.Y.IsNothing()
}

// CornersRefinement is a partial set of per-corner values.
type CornersRefinement[T any] struct {
	TopLeft, TopRight, BottomRight, BottomLeft maybe.Maybe[T]
}

// SetAll sets every corner to v.
func (c *CornersRefinement[T]) SetAll(v T) {
	c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft = maybe.Just(v), maybe.Just(v), maybe.Just(v), maybe.Just(v)
}

// Refine overwrites each corner which is set in higher.
func (c *CornersRefinement[T]) Refine(higher CornersRefinement[T]) {
	c.TopLeft = higher.TopLeft.Or(c.TopLeft)
	c.TopRight = higher.TopRight.Or(c.TopRight)
	c.BottomRight = higher.BottomRight.Or(c.BottomRight)
	c.BottomLeft = higher.BottomLeft.Or(c.BottomLeft)
}

// ApplyTo returns base with every set corner replaced.
func (c CornersRefinement[T]) ApplyTo(base unit.Corners[T]) unit.Corners[T] {
	return unit.Corners[T]{
		TopLeft:     c.TopLeft.WithDefault(base.TopLeft),
		TopRight:    c.TopRight.WithDefault(base.TopRight),
		BottomRight: c.BottomRight.WithDefault(base.BottomRight),
		BottomLeft:  c.BottomLeft.WithDefault(base.BottomLeft),
	}
}

// IsEmpty is true if no corner is set.
func (c CornersRefinement[T]) IsEmpty() bool {
	return c.TopLeft.IsNothing() && c.TopRight.IsNothing() &&
		c.BottomRight.IsNothing() && c.BottomLeft.IsNothing()
}
