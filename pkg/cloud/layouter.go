package cloud

import (
	"context"
	"math"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

const (
	// DefaultRayCount is the number of rays sampled per ring.
	DefaultRayCount = 360

	// MaxRayCount bounds Config.RayCount. Every ring allocates one
	// candidate per ray.
	MaxRayCount = 3600

	// DefaultMaxRadius bounds the ring search when Config.MaxRadius is zero.
	// It is also the largest accepted MaxRadius.
	DefaultMaxRadius = 1 << 20

	// maxCoordinate bounds every computed coordinate and dimension so that
	// edge arithmetic cannot overflow.
	maxCoordinate = math.MaxInt32
)

// Kind selects a layout strategy.
type Kind string

const (
	KindCircle Kind = "circle"
	KindShaped Kind = "shaped"
)

// Kinds lists the supported strategies.
var Kinds = []Kind{KindCircle, KindShaped}

// RadiusFunc is a shape in polar coordinates: it maps an angle in radians to
// a non-negative multiplier of the ring radius.
type RadiusFunc func(angle float64) float64

// Constant returns a RadiusFunc that ignores the angle, producing a circle
// scaled by v.
func Constant(v float64) RadiusFunc {
	return func(float64) float64 { return v }
}

// Config configures a layouter.
type Config struct {
	// Center is the point the cloud grows around.
	Center geometry.Point

	// RayCount is the number of rays sampled per ring, in 1..MaxRayCount.
	RayCount int

	// RadiusEquation is the shape function used by ShapedLayouter.
	// Nil means a circle. SpiralLayouter ignores it.
	RadiusEquation RadiusFunc

	// MaxRadius stops the ring search with a placement failure once exceeded.
	// Zero means DefaultMaxRadius, which is also the upper limit.
	MaxRadius int
}

// Validate checks the config without sampling the radius equation.
func (c Config) Validate() error {
	if c.RayCount <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "rays count should be a positive number, got %d", c.RayCount)
	}
	if c.RayCount > MaxRayCount {
		return errors.New(errors.ErrCodeInvalidConfig, "rays count cannot exceed %d, got %d", MaxRayCount, c.RayCount)
	}
	if c.MaxRadius < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max radius cannot be negative, got %d", c.MaxRadius)
	}
	if c.MaxRadius > DefaultMaxRadius {
		return errors.New(errors.ErrCodeInvalidConfig, "max radius cannot exceed %d, got %d", DefaultMaxRadius, c.MaxRadius)
	}
	if abs(c.Center.X) > maxCoordinate || abs(c.Center.Y) > maxCoordinate {
		return errors.New(errors.ErrCodeInvalidConfig, "center %v is out of range", c.Center)
	}
	return nil
}

func (c Config) maxRadius() int {
	if c.MaxRadius == 0 {
		return DefaultMaxRadius
	}
	return c.MaxRadius
}

// Layouter places rectangles one at a time.
type Layouter interface {
	// PutNextRectangle returns a position for a rectangle of the given size
	// that does not overlap any rectangle placed earlier by this layouter.
	PutNextRectangle(size geometry.Size) (geometry.Rectangle, error)

	// PutNextRectangleContext is PutNextRectangle that stops with ctx.Err()
	// once ctx is done. The search checks ctx before every ring, and a
	// canceled call leaves the layouter as it was.
	PutNextRectangleContext(ctx context.Context, size geometry.Size) (geometry.Rectangle, error)

	// Len returns the number of placed rectangles.
	Len() int

	// Radius returns the radius of the ring currently being searched.
	Radius() int

	// Rectangles returns a copy of the placed rectangles in placement order.
	Rectangles() []geometry.Rectangle
}

// New creates a layouter of the given kind.
func New(kind Kind, cfg Config) (Layouter, error) {
	switch kind {
	case KindCircle:
		return NewSpiral(cfg)
	case KindShaped:
		return NewShaped(cfg)
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown rectangle layouter type: %q", kind)
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown rectangle layouter type: %q (must be one of: circle, shaped)", s)
}

func validateSize(size geometry.Size) error {
	if !size.Positive() {
		return errors.New(errors.ErrCodeInvalidSize, "width and height must be greater than zero, got %v", size)
	}
	return nil
}

func checkSize(size geometry.Size) error {
	if size.Width > maxCoordinate || size.Height > maxCoordinate {
		return errors.New(errors.ErrCodeInternal, "size %v exceeds the coordinate range", size)
	}
	return nil
}

func placementFailure(size geometry.Size, cause error) error {
	return errors.Wrap(errors.ErrCodePlacementFailure, cause, "cannot put a rectangle of size %v", size)
}

// sampleRays evaluates eq once per ray. The equation depends only on the
// angle, so the multipliers are the same for every ring.
func sampleRays(eq RadiusFunc, rayCount int) (rays []ray, err error) {
	if eq == nil {
		eq = Constant(1)
	}
	defer func() {
		if p := recover(); p != nil {
			err = errors.New(errors.ErrCodeInvalidConfig, "radius equation panicked: %v", p)
		}
	}()

	rays = make([]ray, rayCount)
	growing := false
	step := 2 * math.Pi / float64(rayCount)
	for k := range rays {
		angle := float64(k) * step
		m := eq(angle)
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"radius equation must return a finite non-negative value, got %v at angle %.4f", m, angle)
		}
		growing = growing || m > 0
		rays[k] = ray{cos: math.Cos(angle) * m, sin: math.Sin(angle) * m}
	}
	if !growing {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "radius equation is zero on every ray; the cloud cannot grow")
	}
	return rays, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
