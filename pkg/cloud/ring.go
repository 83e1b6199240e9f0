package cloud

import (
	"math"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// ray is a sampled direction, pre-scaled by the shape multiplier.
type ray struct {
	cos, sin float64
}

// candidate is a point to try, tagged with the direction it approaches from.
type candidate struct {
	point geometry.Point
	dir   geometry.Direction
}

// ring is a finite, restartable sequence of candidates at one radius.
// Rings are values: copying one snapshots the search position.
type ring struct {
	radius int
	points []candidate
	next   int
}

func centerRing(center geometry.Point) ring {
	return ring{points: []candidate{{point: center, dir: geometry.None}}}
}

// pop returns the next unexamined candidate.
func (r *ring) pop() (candidate, bool) {
	if r.next >= len(r.points) {
		return candidate{}, false
	}
	c := r.points[r.next]
	r.next++
	return c, true
}

// shapedRing puts one candidate on every ray, in angle order.
func shapedRing(center geometry.Point, rays []ray, radius int) (ring, error) {
	points := make([]candidate, 0, len(rays))
	r := float64(radius)
	for _, ry := range rays {
		p, err := offset(center, math.Round(r*ry.cos), math.Round(r*ry.sin))
		if err != nil {
			return ring{}, err
		}
		points = append(points, candidate{point: p})
	}
	return ring{radius: radius, points: points}, nil
}

// octantRays samples angles in [π/4, 3π/4) with the full-circle step for
// rayCount rays.
func octantRays(rayCount int) []ray {
	step := 2 * math.Pi / float64(rayCount)
	var rays []ray
	for j := 0; 4*j < rayCount; j++ {
		angle := math.Pi/4 + float64(j)*step
		rays = append(rays, ray{cos: math.Cos(angle), sin: math.Sin(angle)})
	}
	return rays
}

// spiralRing rotates every octant sample by 0°, 90°, 180° and 270°. The
// rotations are tagged Left, Up, Right and Down.
func spiralRing(center geometry.Point, rays []ray, radius int) (ring, error) {
	points := make([]candidate, 0, 4*len(rays))
	r := float64(radius)
	for _, ry := range rays {
		x, y := math.Round(r*ry.cos), math.Round(r*ry.sin)
		for _, c := range [...]struct {
			dx, dy float64
			dir    geometry.Direction
		}{
			{x, y, geometry.Left},
			{-y, x, geometry.Up},
			{-x, -y, geometry.Right},
			{y, -x, geometry.Down},
		} {
			p, err := offset(center, c.dx, c.dy)
			if err != nil {
				return ring{}, err
			}
			points = append(points, candidate{point: p, dir: c.dir})
		}
	}
	return ring{radius: radius, points: points}, nil
}

func offset(center geometry.Point, dx, dy float64) (geometry.Point, error) {
	x, y := float64(center.X)+dx, float64(center.Y)+dy
	if math.Abs(x) > maxCoordinate || math.Abs(y) > maxCoordinate {
		return geometry.Point{}, errors.New(errors.ErrCodeInternal,
			"candidate point (%.0f,%.0f) overflows the coordinate range", x, y)
	}
	return geometry.Point{X: int(x), Y: int(y)}, nil
}

func radiusExceeded(limit int) error {
	return errors.New(errors.ErrCodeInternal, "search radius exceeded %d", limit)
}
