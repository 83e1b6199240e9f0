package cloud

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

func TestSortedRectanglesViews(t *testing.T) {
	var s SortedRectangles
	a := geometry.Rect(0, 0, 4, 2)  // right 4, bottom 2
	b := geometry.Rect(-5, 3, 2, 2) // right -3, bottom 5
	c := geometry.Rect(2, -6, 1, 1) // right 3, bottom -5
	for _, r := range []geometry.Rectangle{a, b, c} {
		s.Add(r)
	}

	tests := []struct {
		dir  geometry.Direction
		want []geometry.Rectangle
	}{
		{geometry.Left, []geometry.Rectangle{a, c, b}},
		{geometry.Right, []geometry.Rectangle{b, a, c}},
		{geometry.Up, []geometry.Rectangle{b, a, c}},
		{geometry.Down, []geometry.Rectangle{c, a, b}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := make([]geometry.Rectangle, s.Len())
			for i := range got {
				r, err := s.Get(tt.dir, i)
				if err != nil {
					t.Fatalf("Get(%v, %d) error: %v", tt.dir, i, err)
				}
				got[i] = r
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("view %v mismatch (-want +got):\n%s", tt.dir, diff)
			}
		})
	}
}

func TestSortedRectanglesKeepsEqualKeys(t *testing.T) {
	var s SortedRectangles
	// All share Left() == 0, so the Right view has three equal keys.
	rects := []geometry.Rectangle{
		geometry.Rect(0, 0, 1, 1),
		geometry.Rect(0, 5, 2, 1),
		geometry.Rect(0, -5, 3, 1),
	}
	for _, r := range rects {
		s.Add(r)
	}

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for i, want := range rects {
		got, err := s.Get(geometry.Right, i)
		if err != nil {
			t.Fatalf("Get(Right, %d) error: %v", i, err)
		}
		if got != want {
			t.Errorf("Get(Right, %d) = %v, want %v (insertion order)", i, got, want)
		}
	}
}

func TestSortedRectanglesGetErrors(t *testing.T) {
	var s SortedRectangles
	s.Add(geometry.Rect(0, 0, 1, 1))

	tests := []struct {
		name  string
		dir   geometry.Direction
		index int
		code  errors.Code
	}{
		{"none direction", geometry.None, 0, errors.ErrCodeUnsupportedDirection},
		{"unknown direction", geometry.Direction(9), 0, errors.ErrCodeUnsupportedDirection},
		{"negative index", geometry.Left, -1, errors.ErrCodeIndexOutOfRange},
		{"index at len", geometry.Down, 1, errors.ErrCodeIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Get(tt.dir, tt.index)
			if !errors.Is(err, tt.code) {
				t.Errorf("Get(%v, %d) error = %v, want %s", tt.dir, tt.index, err, tt.code)
			}
		})
	}
}

func TestHasIntersectionBounds(t *testing.T) {
	var s SortedRectangles
	s.Add(geometry.Rect(0, 0, 2, 2))

	if _, _, err := s.HasIntersection(geometry.Rect(0, 0, 1, 1), geometry.None, 0); !errors.Is(err, errors.ErrCodeUnsupportedDirection) {
		t.Errorf("None direction error = %v, want UNSUPPORTED_DIRECTION", err)
	}
	if _, _, err := s.HasIntersection(geometry.Rect(0, 0, 1, 1), geometry.Left, -1); !errors.Is(err, errors.ErrCodeIndexOutOfRange) {
		t.Errorf("negative start error = %v, want INDEX_OUT_OF_RANGE", err)
	}
	idx, found, err := s.HasIntersection(geometry.Rect(0, 0, 1, 1), geometry.Left, 1)
	if err != nil || found || idx != -1 {
		t.Errorf("start past end = (%d, %v, %v), want (-1, false, nil)", idx, found, err)
	}
	idx, found, err = s.HasIntersection(geometry.Rect(1, 1, 1, 1), geometry.Left, 0)
	if err != nil || !found || idx != 0 {
		t.Errorf("overlapping query = (%d, %v, %v), want (0, true, nil)", idx, found, err)
	}
}

func bruteForceIntersection(s *SortedRectangles, q geometry.Rectangle, d geometry.Direction, start int) (int, bool) {
	for i := start; i < s.Len(); i++ {
		r, _ := s.Get(d, i)
		if r.Intersects(q) {
			return i, true
		}
	}
	return -1, false
}

func randomRect(rng *rand.Rand, span, maxSize int) geometry.Rectangle {
	return geometry.Rect(
		rng.IntN(2*span)-span,
		rng.IntN(2*span)-span,
		1+rng.IntN(maxSize),
		1+rng.IntN(maxSize),
	)
}

func TestHasIntersectionMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var s SortedRectangles
	for range 300 {
		s.Add(randomRect(rng, 100, 20))
	}

	for range 500 {
		q := randomRect(rng, 120, 30)
		d := geometry.Directions[rng.IntN(len(geometry.Directions))]
		start := rng.IntN(s.Len() + 5)

		gotIdx, gotFound, err := s.HasIntersection(q, d, start)
		if err != nil {
			t.Fatalf("HasIntersection(%v, %v, %d) error: %v", q, d, start, err)
		}
		wantIdx, wantFound := bruteForceIntersection(&s, q, d, start)
		if gotIdx != wantIdx || gotFound != wantFound {
			t.Errorf("HasIntersection(%v, %v, %d) = (%d, %v), want (%d, %v)",
				q, d, start, gotIdx, gotFound, wantIdx, wantFound)
		}
	}
}

func TestSortedRectanglesViewsStaySorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	var s SortedRectangles
	for range 200 {
		s.Add(randomRect(rng, 50, 10))
	}

	for _, d := range geometry.Directions {
		prev, _ := s.Get(d, 0)
		for i := 1; i < s.Len(); i++ {
			cur, _ := s.Get(d, i)
			if sortKey(d, prev) > sortKey(d, cur) {
				t.Fatalf("view %v out of order at %d: %v before %v", d, i, prev, cur)
			}
			prev = cur
		}
	}
}
