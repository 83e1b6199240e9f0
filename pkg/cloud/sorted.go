package cloud

import (
	"slices"
	"sort"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// SortedRectangles keeps one set of rectangles in four orders, one per
// direction. Each view sorts rectangles by how far they reach toward that
// direction's origin side:
//
//	Left   by -Right()
//	Right  by Left()
//	Up     by -Bottom()
//	Down   by Top()
//
// Rectangles with equal keys keep their insertion order.
// The zero value is an empty set ready to use.
type SortedRectangles struct {
	views [4][]entry
}

type entry struct {
	key  int
	rect geometry.Rectangle
}

func sortKey(d geometry.Direction, r geometry.Rectangle) int {
	switch d {
	case geometry.Left:
		return -r.Right()
	case geometry.Right:
		return r.Left()
	case geometry.Up:
		return -r.Bottom()
	default:
		return r.Top()
	}
}

// Len returns the number of rectangles.
func (s *SortedRectangles) Len() int { return len(s.views[0]) }

// Add inserts r into every view. Finding the slot is a binary search; the
// insert itself shifts the tail of each view, which keeps Get constant-time.
func (s *SortedRectangles) Add(r geometry.Rectangle) {
	for _, d := range geometry.Directions {
		v := &s.views[d-geometry.Left]
		key := sortKey(d, r)
		// After every existing entry with the same key.
		i := sort.Search(len(*v), func(i int) bool { return (*v)[i].key > key })
		*v = slices.Insert(*v, i, entry{key: key, rect: r})
	}
}

func (s *SortedRectangles) view(d geometry.Direction) ([]entry, error) {
	if !d.Valid() {
		return nil, errors.New(errors.ErrCodeUnsupportedDirection, "unsupported sorting direction: %v", d)
	}
	return s.views[d-geometry.Left], nil
}

// Get returns the rectangle at index in the view for d.
func (s *SortedRectangles) Get(d geometry.Direction, index int) (geometry.Rectangle, error) {
	v, err := s.view(d)
	if err != nil {
		return geometry.Rectangle{}, err
	}
	if index < 0 || index >= len(v) {
		return geometry.Rectangle{}, errors.New(errors.ErrCodeIndexOutOfRange, "index was out of range: %d", index)
	}
	return v[index].rect, nil
}

// HasIntersection scans the view for d from start and returns the index of
// the first rectangle that intersects query. A start at or past the end
// finds nothing.
func (s *SortedRectangles) HasIntersection(query geometry.Rectangle, d geometry.Direction, start int) (int, bool, error) {
	v, err := s.view(d)
	if err != nil {
		return -1, false, err
	}
	if start < 0 {
		return -1, false, errors.New(errors.ErrCodeIndexOutOfRange, "index was out of range: %d", start)
	}
	for i := start; i < len(v); i++ {
		if query.Intersects(v[i].rect) {
			return i, true, nil
		}
	}
	return -1, false, nil
}
