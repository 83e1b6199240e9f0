package geometry

import "fmt"

// Point is a location on the integer plane.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String returns the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is the extent of a rectangle.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size { return Size{Width: w, Height: h} }

// Positive reports whether both dimensions are greater than zero.
func (s Size) Positive() bool { return s.Width > 0 && s.Height > 0 }

// Half returns the size with both dimensions halved (integer division).
func (s Size) Half() Size { return Size{Width: s.Width / 2, Height: s.Height / 2} }

// String returns the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is shorthand for Rectangle{X: x, Y: y, Width: w, Height: h}.
func Rect(x, y, w, h int) Rectangle { return Rectangle{X: x, Y: y, Width: w, Height: h} }

// CenteredAt returns a rectangle of size s whose center is p.
// Odd dimensions put the extra unit on the right and bottom side.
func CenteredAt(p Point, s Size) Rectangle {
	h := s.Half()
	return Rectangle{X: p.X - h.Width, Y: p.Y - h.Height, Width: s.Width, Height: s.Height}
}

func (r Rectangle) Left() int   { return r.X }
func (r Rectangle) Right() int  { return r.X + r.Width }
func (r Rectangle) Top() int    { return r.Y }
func (r Rectangle) Bottom() int { return r.Y + r.Height }

// Location returns the top-left corner.
func (r Rectangle) Location() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's extent.
func (r Rectangle) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Center returns the center point, rounded toward the top-left.
func (r Rectangle) Center() Point { return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2} }

// Intersects reports whether the interiors of r and o overlap.
// Rectangles that only touch along an edge or at a corner do not intersect.
func (r Rectangle) Intersects(o Rectangle) bool {
	return o.X < r.X+r.Width && r.X < o.X+o.Width &&
		o.Y < r.Y+r.Height && r.Y < o.Y+o.Height
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	left, top := min(r.Left(), o.Left()), min(r.Top(), o.Top())
	right, bottom := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.Width, r.Height)
}
