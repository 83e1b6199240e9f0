package cloud

import (
	"context"
	"slices"

	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// ShapedLayouter grows the cloud along a polar shape function and tests
// every candidate against every placed rectangle.
type ShapedLayouter struct {
	center    geometry.Point
	rays      []ray
	maxRadius int

	placed []geometry.Rectangle
	ring   ring
}

// NewShaped creates a layouter for cfg. The radius equation is evaluated
// once per ray here; an equation that is negative, non-finite or zero on
// every ray is rejected.
func NewShaped(cfg Config) (*ShapedLayouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rays, err := sampleRays(cfg.RadiusEquation, cfg.RayCount)
	if err != nil {
		return nil, err
	}
	return &ShapedLayouter{
		center:    cfg.Center,
		rays:      rays,
		maxRadius: cfg.maxRadius(),
		ring:      centerRing(cfg.Center),
	}, nil
}

// PutNextRectangle places a rectangle of the given size.
func (l *ShapedLayouter) PutNextRectangle(size geometry.Size) (geometry.Rectangle, error) {
	return l.PutNextRectangleContext(context.Background(), size)
}

// PutNextRectangleContext places a rectangle of the given size, giving up
// when ctx is done.
func (l *ShapedLayouter) PutNextRectangleContext(ctx context.Context, size geometry.Size) (geometry.Rectangle, error) {
	if err := validateSize(size); err != nil {
		return geometry.Rectangle{}, err
	}
	if err := ctx.Err(); err != nil {
		return geometry.Rectangle{}, err
	}

	saved := l.ring
	rect, err := l.search(ctx, size)
	if err != nil {
		l.ring = saved
		if ctxErr := ctx.Err(); ctxErr != nil {
			return geometry.Rectangle{}, ctxErr
		}
		return geometry.Rectangle{}, placementFailure(size, err)
	}

	l.placed = append(l.placed, rect)
	return rect, nil
}

func (l *ShapedLayouter) search(ctx context.Context, size geometry.Size) (geometry.Rectangle, error) {
	if err := checkSize(size); err != nil {
		return geometry.Rectangle{}, err
	}
	for {
		for c, ok := l.ring.pop(); ok; c, ok = l.ring.pop() {
			rect := geometry.CenteredAt(c.point, size)
			if l.canPut(rect) {
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
		next, err := shapedRing(l.center, l.rays, radius)
		if err != nil {
			return geometry.Rectangle{}, err
		}
		l.ring = next
	}
}

func (l *ShapedLayouter) canPut(rect geometry.Rectangle) bool {
	for _, other := range l.placed {
		if other.Intersects(rect) {
			return false
		}
	}
	return true
}

// Len returns the number of placed rectangles.
func (l *ShapedLayouter) Len() int { return len(l.placed) }

// Radius returns the radius of the ring being searched.
func (l *ShapedLayouter) Radius() int { return l.ring.radius }

// Rectangles returns a copy of the placed rectangles.
func (l *ShapedLayouter) Rectangles() []geometry.Rectangle { return slices.Clone(l.placed) }

var _ Layouter = (*ShapedLayouter)(nil)
