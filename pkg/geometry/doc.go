// Package geometry provides the integer primitives used by the cloud layouters.
//
// All coordinates are screen-style: X grows to the right and Y grows
// downward, so a rectangle's Top edge has the smaller Y value and its Bottom
// edge the larger one.
//
// # Intersection
//
// Rectangles intersect only when their interiors overlap. Two rectangles that
// share an edge or a corner do not intersect:
//
//	a := geometry.Rect(0, 0, 2, 2)
//	b := geometry.Rect(2, 0, 2, 2)
//	a.Intersects(b) // false
package geometry
