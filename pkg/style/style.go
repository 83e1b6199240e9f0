// Package style decorates placed tags with color and font before rendering.
//
// A [Drawing] is a tag that has been placed. Decorators run in order and each
// returns a new slice, so a later decorator overrides an earlier one:
//
//	ds = style.Apply(ds,
//	    style.SolidColor{Color: main},
//	    style.Gradient{From: main, To: secondary},
//	    style.Font{Family: "Arial", Style: style.Bold},
//	)
package style

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

// Drawing is a placed tag with its visual attributes.
type Drawing struct {
	Word      string             `json:"word"`
	Frequency int                `json:"frequency,omitempty"`
	Rect      geometry.Rectangle `json:"rect"`
	Color     string             `json:"color,omitempty"`
	Font      Face               `json:"font,omitzero"`
}

// Face describes how a word is typeset.
type Face struct {
	Family string    `json:"family,omitempty"`
	Style  FontStyle `json:"style,omitempty"`
}

// Decorator sets attributes on drawings.
type Decorator interface {
	Decorate([]Drawing) []Drawing
}

// DecoratorFunc adapts a function to the Decorator interface.
type DecoratorFunc func([]Drawing) []Drawing

func (f DecoratorFunc) Decorate(ds []Drawing) []Drawing { return f(ds) }

// Apply runs decorators over a copy of drawings.
func Apply(drawings []Drawing, decorators ...Decorator) []Drawing {
	out := make([]Drawing, len(drawings))
	copy(out, drawings)
	for _, d := range decorators {
		if d != nil {
			out = d.Decorate(out)
		}
	}
	return out
}

// ParseColor parses "#rgb" or "#rrggbb". The leading '#' is optional.
func ParseColor(s string) (colorful.Color, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "unable to parse color: '%s'", s)
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "unable to parse color: '%s'", s)
	}
	return c, nil
}

// SolidColor paints every drawing the same color.
type SolidColor struct {
	Color colorful.Color
}

func (s SolidColor) Decorate(ds []Drawing) []Drawing {
	hex := s.Color.Hex()
	for i := range ds {
		ds[i].Color = hex
	}
	return ds
}

// Gradient blends linearly in RGB from the first drawing to the last.
type Gradient struct {
	From, To colorful.Color
}

func (g Gradient) Decorate(ds []Drawing) []Drawing {
	last := len(ds) - 1
	for i := range ds {
		t := 0.0
		if last > 0 {
			t = float64(i) / float64(last)
		}
		ds[i].Color = g.From.BlendRgb(g.To, t).Clamped().Hex()
	}
	return ds
}

// Font sets the typeface of every drawing.
type Font struct {
	Family string
	Style  FontStyle
}

func (f Font) Decorate(ds []Drawing) []Drawing {
	for i := range ds {
		ds[i].Font = Face{Family: f.Family, Style: f.Style}
	}
	return ds
}
