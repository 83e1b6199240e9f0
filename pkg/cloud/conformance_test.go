package cloud

import (
	"cmp"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tagcloud/pkg/geometry"
)

func ringPoints(t *testing.T, r ring, err error) []geometry.Point {
	t.Helper()
	if err != nil {
		t.Fatalf("ring error: %v", err)
	}
	pts := make([]geometry.Point, len(r.points))
	for i, c := range r.points {
		pts[i] = c.point
	}
	slices.SortFunc(pts, func(a, b geometry.Point) int {
		return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y))
	})
	return pts
}

// With a ray count divisible by eight the mirrored octants land on exactly
// the angles the shaped layouter samples, so both rings hold the same points.
func TestCircleRingsMatchShapedRings(t *testing.T) {
	center := geometry.Pt(3, -2)
	for _, n := range []int{8, 16, 32, 64} {
		rays, err := sampleRays(Constant(1), n)
		if err != nil {
			t.Fatalf("sampleRays(%d) error: %v", n, err)
		}
		octant := octantRays(n)
		if len(octant) != n/4 {
			t.Fatalf("octantRays(%d) has %d rays, want %d", n, len(octant), n/4)
		}
		for radius := 1; radius <= 40; radius++ {
			r1, err1 := shapedRing(center, rays, radius)
			r2, err2 := spiralRing(center, octant, radius)
			want := ringPoints(t, r1, err1)
			got := ringPoints(t, r2, err2)
			if diff := gocmp.Diff(want, got); diff != "" {
				t.Fatalf("n=%d radius=%d ring points differ (-shaped +circle):\n%s", n, radius, diff)
			}
		}
	}
}

func TestCircleAndShapedAgreeOnFirstPlacement(t *testing.T) {
	for _, size := range []geometry.Size{geometry.Sz(1, 1), geometry.Sz(10, 4), geometry.Sz(7, 13)} {
		cfg := Config{Center: geometry.Pt(-8, 5), RayCount: 32}
		s, _ := NewShaped(cfg)
		c, _ := NewSpiral(cfg)
		a, errA := s.PutNextRectangle(size)
		b, errB := c.PutNextRectangle(size)
		if errA != nil || errB != nil {
			t.Fatalf("errors: %v, %v", errA, errB)
		}
		if a != b {
			t.Errorf("first placement of %v: shaped %v, circle %v", size, a, b)
		}
	}
}

func TestSpiralRingDirections(t *testing.T) {
	r, err := spiralRing(geometry.Pt(0, 0), octantRays(4), 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []candidate{
		{geometry.Pt(2, 2), geometry.Left},
		{geometry.Pt(-2, 2), geometry.Up},
		{geometry.Pt(-2, -2), geometry.Right},
		{geometry.Pt(2, -2), geometry.Down},
	}
	if diff := gocmp.Diff(want, r.points, gocmp.AllowUnexported(candidate{})); diff != "" {
		t.Errorf("ring mismatch (-want +got):\n%s", diff)
	}
}
