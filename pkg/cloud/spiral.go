package cloud

import (
	"context"
	"math"
	"slices"

	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// slabReach extends a slab past any reachable coordinate. Twice the reach
// still fits in an int.
const slabReach = math.MaxInt / 4

// SpiralLayouter grows a circular cloud and prunes collision tests with a
// directional index.
//
// Every candidate on a ring comes from one of four mirrored octants and is
// tagged with the direction it approaches the cloud from. Before testing a
// candidate exactly, the layouter looks for the first placed rectangle that
// crosses the candidate's slab: the strip swept by the candidate along its
// direction. Within a ring the slabs for one direction move monotonically, so
// the per-direction cursor never has to move back.
type SpiralLayouter struct {
	center    geometry.Point
	rays      []ray
	maxRadius int

	placed  []geometry.Rectangle
	sorted  SortedRectangles
	cursors [geometry.Down + 1]int
	ring    ring
}

// NewSpiral creates a circular layouter. cfg.RadiusEquation is ignored.
func NewSpiral(cfg Config) (*SpiralLayouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SpiralLayouter{
		center:    cfg.Center,
		rays:      octantRays(cfg.RayCount),
		maxRadius: cfg.maxRadius(),
		ring:      centerRing(cfg.Center),
	}, nil
}

// PutNextRectangle places a rectangle of the given size.
func (l *SpiralLayouter) PutNextRectangle(size geometry.Size) (geometry.Rectangle, error) {
	return l.PutNextRectangleContext(context.Background(), size)
}

// PutNextRectangleContext places a rectangle of the given size, giving up
// when ctx is done.
func (l *SpiralLayouter) PutNextRectangleContext(ctx context.Context, size geometry.Size) (geometry.Rectangle, error) {
	if err := validateSize(size); err != nil {
		return geometry.Rectangle{}, err
	}
	if err := ctx.Err(); err != nil {
		return geometry.Rectangle{}, err
	}

	saved := l.ring
	l.resetCursors()
	rect, err := l.search(ctx, size)
	if err != nil {
		l.ring = saved
		if ctxErr := ctx.Err(); ctxErr != nil {
			return geometry.Rectangle{}, ctxErr
		}
		return geometry.Rectangle{}, placementFailure(size, err)
	}

	l.placed = append(l.placed, rect)
	l.sorted.Add(rect)
	return rect, nil
}

func (l *SpiralLayouter) search(ctx context.Context, size geometry.Size) (geometry.Rectangle, error) {
	if err := checkSize(size); err != nil {
		return geometry.Rectangle{}, err
	}
	for {
		for c, ok := l.ring.pop(); ok; c, ok = l.ring.pop() {
			rect := geometry.CenteredAt(c.point, size)
			fits, err := l.canPut(rect, c.dir)
			if err != nil {
				return geometry.Rectangle{}, err
			}
			if fits {
				return rect, nil
			}
		}

		if err := ctx.Err(); err != nil {
			return geometry.Rectangle{}, err
		}
		radius := l.ring.radius + 1
		if radius > l.maxRadius {
			return geometry.Rectangle{}, radiusExceeded(l.maxRadius)
		}
		next, err := spiralRing(l.center, l.rays, radius)
		if err != nil {
			return geometry.Rectangle{}, err
		}
		l.ring = next
		l.resetCursors()
	}
}

func (l *SpiralLayouter) canPut(rect geometry.Rectangle, dir geometry.Direction) (bool, error) {
	if dir == geometry.None {
		_, hit, err := l.sorted.HasIntersection(rect, geometry.Right, 0)
		return !hit, err
	}

	idx, found, err := l.sorted.HasIntersection(slab(rect, dir), dir, l.cursors[dir])
	if err != nil || !found {
		return err == nil, err
	}
	l.cursors[dir] = idx

	_, hit, err := l.sorted.HasIntersection(rect, dir, idx)
	return !hit, err
}

// slab stretches rect to infinity along the axis it does not approach on:
// vertically for Left and Right, horizontally for Up and Down.
func slab(rect geometry.Rectangle, dir geometry.Direction) geometry.Rectangle {
	if dir.Horizontal() {
		return geometry.Rectangle{X: rect.X, Y: -slabReach, Width: rect.Width, Height: 2 * slabReach}
	}
	return geometry.Rectangle{X: -slabReach, Y: rect.Y, Width: 2 * slabReach, Height: rect.Height}
}

func (l *SpiralLayouter) resetCursors() {
	clear(l.cursors[:])
}

// Len returns the number of placed rectangles.
func (l *SpiralLayouter) Len() int { return len(l.placed) }

// Radius returns the radius of the ring being searched.
func (l *SpiralLayouter) Radius() int { return l.ring.radius }

// Rectangles returns a copy of the placed rectangles.
func (l *SpiralLayouter) Rectangles() []geometry.Rectangle { return slices.Clone(l.placed) }

var _ Layouter = (*SpiralLayouter)(nil)
