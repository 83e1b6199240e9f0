package render

import "github.com/matzehuels/tagcloud/pkg/geometry"

// DefaultBackground is the background color when none is set.
const DefaultBackground = "#ffffff"

// Option configures a renderer.
type Option func(*renderer)

type renderer struct {
	center     geometry.Point
	padding    int
	background string
	outlines   bool
}

// WithCenter sets the layout center the frame is symmetric about.
func WithCenter(p geometry.Point) Option { return func(r *renderer) { r.center = p } }

// WithPadding adds space around the outermost tags.
func WithPadding(n int) Option { return func(r *renderer) { r.padding = n } }

// WithBackground sets the background fill.
func WithBackground(hex string) Option { return func(r *renderer) { r.background = hex } }

// WithOutlines draws every tag rectangle, which helps when tuning layouts.
func WithOutlines() Option { return func(r *renderer) { r.outlines = true } }

func newRenderer(opts ...Option) renderer {
	r := renderer{background: DefaultBackground}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
