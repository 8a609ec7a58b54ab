package unit

import "fmt"

// Point is a pair of coordinates, or a pair of per-axis values.
type Point[T any] struct {
	X, Y T
}

// Pt creates a point in pixels.
func Pt(x, y Pixels) Point[Pixels] {
	return Point[Pixels]{X: x, Y: y}
}

// Size holds a width and a height.
type Size[T any] struct {
	Width, Height T
}

// Edges holds a value for each side of a box.
type Edges[T any] struct {
	Top, Right, Bottom, Left T
}

// AllEdges returns edges with v on each side.
func AllEdges[T any](v T) Edges[T] {
	return Edges[T]{Top: v, Right: v, Bottom: v, Left: v}
}

func (e Edges[T]) String() string {
	return fmt.Sprintf("[%v %v %v %v]", e.Top, e.Right, e.Bottom, e.Left)
}

// Corners holds a value for each corner of a box.
type Corners[T any] struct {
	TopLeft, TopRight, BottomRight, BottomLeft T
}

// AllCorners returns corners with v at each corner.
func AllCorners[T any](v T) Corners[T] {
	return Corners[T]{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}
