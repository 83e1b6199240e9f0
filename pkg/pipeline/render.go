package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/render"
	"github.com/matzehuels/tagcloud/pkg/style"
)

// Decorate applies the configured colors and font to a layout.
func Decorate(l *Layout, opts Options) ([]style.Drawing, error) {
	ds, err := opts.decorators()
	if err != nil {
		return nil, err
	}
	return style.Apply(l.Drawings(), ds...), nil
}

// Render produces every requested format from decorated drawings.
func Render(ctx context.Context, drawings []style.Drawing, opts Options) (map[string][]byte, error) {
	formats, err := opts.formats()
	if err != nil {
		return nil, err
	}
	ropts := opts.renderOptions()

	artifacts := make(map[string][]byte, len(formats))
	for _, f := range formats {
		data, err := render.Render(ctx, f, drawings, opts.PNGScale, ropts...)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		artifacts[string(f)] = data
	}
	return artifacts, nil
}

// normalizeFormat maps a format name to the key used in Result.Artifacts.
func normalizeFormat(s string) string {
	if f, err := render.ParseFormat(s); err == nil {
		return string(f)
	}
	return s
}
