package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/geometry"
	"github.com/matzehuels/tagcloud/pkg/sizing"
	"github.com/matzehuels/tagcloud/pkg/style"
)

// Layout is a placed cloud before styling. Tags[i] occupies Rects[i].
type Layout struct {
	Layouter string               `json:"layouter"`
	Center   geometry.Point       `json:"center"`
	Radius   int                  `json:"radius"`
	Tags     []sizing.Tag         `json:"tags"`
	Rects    []geometry.Rectangle `json:"rects"`
}

// Drawings pairs every tag with its rectangle.
func (l *Layout) Drawings() []style.Drawing {
	ds := make([]style.Drawing, len(l.Tags))
	for i, t := range l.Tags {
		ds[i] = style.Drawing{Word: t.Word, Frequency: t.Frequency, Rect: l.Rects[i]}
	}
	return ds
}

// MarshalLayout serializes a layout for caching.
func MarshalLayout(l *Layout) ([]byte, error) { return json.Marshal(l) }

// UnmarshalLayout reads a layout written by MarshalLayout.
func UnmarshalLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if len(l.Tags) != len(l.Rects) {
		return nil, fmt.Errorf("layout has %d tags but %d rectangles", len(l.Tags), len(l.Rects))
	}
	return &l, nil
}

func (o *Options) center() geometry.Point { return geometry.Pt(o.CenterX, o.CenterY) }

// Size turns words into tags, heaviest first, keeping at most MaxWords.
func Size(words []string, opts Options) ([]sizing.Tag, error) {
	s, err := opts.sizer(opts.measurer())
	if err != nil {
		return nil, err
	}
	tags, err := s.Sizes(words)
	if err != nil {
		return nil, err
	}
	if opts.MaxWords > 0 && len(tags) > opts.MaxWords {
		tags = tags[:opts.MaxWords]
	}
	return tags, nil
}

// Place lays tags out in order. The context is checked before every ring of
// the search, so a cancel stops even a single slow placement.
func Place(ctx context.Context, tags []sizing.Tag, opts Options) (*Layout, error) {
	kind, err := cloud.ParseKind(opts.Layouter)
	if err != nil {
		return nil, err
	}
	cfg, err := opts.layoutConfig()
	if err != nil {
		return nil, err
	}
	l, err := cloud.New(kind, cfg)
	if err != nil {
		return nil, err
	}

	out := &Layout{
		Layouter: string(kind),
		Center:   cfg.Center,
		Tags:     tags,
		Rects:    make([]geometry.Rectangle, 0, len(tags)),
	}
	for _, t := range tags {
		r, err := l.PutNextRectangleContext(ctx, t.Size)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err != nil {
			return nil, fmt.Errorf("place %q: %w", t.Word, err)
		}
		out.Rects = append(out.Rects, r)
	}
	out.Radius = l.Radius()
	return out, nil
}
