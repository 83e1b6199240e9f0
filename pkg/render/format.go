package render

import (
	"context"
	"strings"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/style"
)

// Format is an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatSVG, FormatJSON, FormatPNG, FormatPDF}

// ParseFormat converts a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format: %q (must be one of: svg, json, png, pdf)", s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Render produces drawings in format f. PNG output is scaled by scale.
func Render(ctx context.Context, f Format, drawings []style.Drawing, scale float64, opts ...Option) ([]byte, error) {
	switch f {
	case FormatSVG:
		return RenderSVG(drawings, opts...), nil
	case FormatJSON:
		return RenderJSON(drawings, opts...)
	case FormatPNG:
		return ToPNG(ctx, RenderSVG(drawings, opts...), scale)
	case FormatPDF:
		return ToPDF(ctx, RenderSVG(drawings, opts...))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output format: %q", f)
}
