// Package cloud places rectangles around a center point without overlap.
//
// A layouter receives rectangle sizes one at a time, typically in descending
// order of visual weight, and returns a position for each. Earlier
// placements are never revisited: every call searches outward from the last
// position examined and accepts the first candidate that overlaps nothing
// already placed.
//
// # Search
//
// Candidates are generated in rings of increasing integer radius. Ring 0 is
// the center alone. Ring r samples a fixed set of rays and puts one candidate
// on each, r units (scaled by the shape function) away from the center. A
// ring is exhausted before the radius grows, and the radius never shrinks, so
// a long-lived layouter fills the plane from the inside out.
//
// # Strategies
//
// [ShapedLayouter] scales each ray by an arbitrary polar function
// r = f(angle), which lets the cloud grow into ellipses, hearts or spirals.
// Collision tests are a linear scan over the placed rectangles.
//
// [SpiralLayouter] is specialised to circles. It samples one octant and
// mirrors it into the other three quadrants, which tags every candidate with
// the direction it is approached from. A [SortedRectangles] index keeps the
// placed rectangles ordered along each direction, and per-direction cursors
// skip rectangles that can no longer intersect any candidate in the ring.
//
// # Errors
//
// Non-positive sizes fail with [errors.ErrCodeInvalidSize] before any state
// changes. Internal faults such as coordinate overflow fail with
// [errors.ErrCodePlacementFailure]; the layouter rolls back its search
// position and stays usable.
//
// # Concurrency
//
// Layouters are not safe for concurrent use. Callers that share one across
// goroutines must synchronise externally.
//
// [errors.ErrCodeInvalidSize]: github.com/matzehuels/tagcloud/pkg/errors.ErrCodeInvalidSize
// [errors.ErrCodePlacementFailure]: github.com/matzehuels/tagcloud/pkg/errors.ErrCodePlacementFailure
package cloud
