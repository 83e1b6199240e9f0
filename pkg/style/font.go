package style

import (
	"strings"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// FontStyle is a text style.
type FontStyle string

const (
	Regular   FontStyle = "regular"
	Bold      FontStyle = "bold"
	Italic    FontStyle = "italic"
	Underline FontStyle = "underline"
	Strikeout FontStyle = "strikeout"
)

// FontStyles lists the supported styles.
var FontStyles = []FontStyle{Regular, Bold, Italic, Underline, Strikeout}

// DefaultFontFamily is used when no family is configured.
const DefaultFontFamily = "Arial"

// ParseFontStyle converts a case-insensitive name to a FontStyle. The empty
// string is Regular.
func ParseFontStyle(s string) (FontStyle, error) {
	if s == "" {
		return Regular, nil
	}
	for _, fs := range FontStyles {
		if strings.EqualFold(string(fs), s) {
			return fs, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown font style: %q", s)
}

// SVGAttrs returns the attribute name and value that express the style in
// SVG, or empty strings for Regular.
func (fs FontStyle) SVGAttrs() (name, value string) {
	switch fs {
	case Bold:
		return "font-weight", "bold"
	case Italic:
		return "font-style", "italic"
	case Underline:
		return "text-decoration", "underline"
	case Strikeout:
		return "text-decoration", "line-through"
	}
	return "", ""
}
