// Package sizing converts a word list into sized tags.
//
// Words are counted and each distinct word becomes a [Tag] whose height
// grows with its weight. The width comes from a [Measurer] when one is
// configured, such as a [FontMeasurer] for an installed font, and is
// otherwise estimated from the rune count at that height. Tags come out
// heaviest first, which is the order a layouter should place them in.
package sizing

import (
	"math"
	"slices"
	"unicode/utf8"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

const (
	DefaultMinSize   = 10
	DefaultScale     = 1.0
	DefaultCharWidth = 0.55
)

// Method names a sizing strategy.
type Method string

const (
	MethodFrequency Method = "frequency"
	MethodSmooth    Method = "smooth"
)

// Methods lists the supported strategies.
var Methods = []Method{MethodFrequency, MethodSmooth}

// Tag is a word with its count and box size.
type Tag struct {
	Word      string        `json:"word"`
	Frequency int           `json:"frequency"`
	Size      geometry.Size `json:"size"`
}

// Measurer returns the width in pixels of word drawn at a font height of
// height pixels.
type Measurer interface {
	Measure(word string, height int) int
}

// Sizer turns words into tags.
type Sizer interface {
	Sizes(words []string) ([]Tag, error)
}

// Config holds the parameters shared by every method.
type Config struct {
	// MinSize is the height of the lightest tag.
	MinSize int
	// Scale is added to the height per unit of weight.
	Scale float64
	// CharWidth is the average glyph width as a fraction of the height.
	// Zero means DefaultCharWidth. It is used only without a Measurer.
	CharWidth float64
	// Measurer measures word widths. Nil means the CharWidth estimate.
	Measurer Measurer
}

// DefaultConfig returns the default sizing parameters.
func DefaultConfig() Config {
	return Config{MinSize: DefaultMinSize, Scale: DefaultScale, CharWidth: DefaultCharWidth}
}

func (c Config) validate() error {
	if c.MinSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "min word size must be positive, got %d", c.MinSize)
	}
	if err := errors.ValidatePositive("word size scale", c.Scale); err != nil {
		return err
	}
	if c.CharWidth < 0 || math.IsNaN(c.CharWidth) || math.IsInf(c.CharWidth, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "char width must be a finite non-negative number, got %v", c.CharWidth)
	}
	return nil
}

// size returns the box for word at the given weight. Weights start at 1.
func (c Config) size(word string, weight int) geometry.Size {
	h := max(int(float64(c.MinSize)+c.Scale*float64(weight-1)), 1)
	var w int
	if c.Measurer != nil {
		w = c.Measurer.Measure(word, h)
	} else {
		cw := c.CharWidth
		if cw == 0 {
			cw = DefaultCharWidth
		}
		w = int(math.Ceil(float64(utf8.RuneCountInString(word)) * float64(h) * cw))
	}
	return geometry.Size{Width: max(w, 1), Height: h}
}

// New returns the sizer for method.
func New(method Method, cfg Config) (Sizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	switch method {
	case MethodFrequency:
		return Frequency{Config: cfg}, nil
	case MethodSmooth:
		return SmoothFrequency{Config: cfg}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown word sizing method: %q (must be one of: frequency, smooth)", method)
}

// ParseMethod converts a string to a Method.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown word sizing method: %q (must be one of: frequency, smooth)", s)
}

type count struct {
	word string
	n    int
}

// countWords groups words by first occurrence.
func countWords(words []string) []count {
	index := make(map[string]int, len(words))
	var counts []count
	for _, w := range words {
		if i, ok := index[w]; ok {
			counts[i].n++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, count{word: w, n: 1})
	}
	return counts
}

// Frequency makes height proportional to the word count.
type Frequency struct {
	Config
}

func (f Frequency) Sizes(words []string) ([]Tag, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	counts := countWords(words)
	slices.SortStableFunc(counts, func(a, b count) int { return b.n - a.n })

	tags := make([]Tag, len(counts))
	for i, c := range counts {
		tags[i] = Tag{Word: c.word, Frequency: c.n, Size: f.size(c.word, c.n)}
	}
	return tags, nil
}

// SmoothFrequency sizes by frequency rank rather than raw count, so one very
// common word does not dwarf the rest. The k distinct counts, ascending, get
// weights 1..k.
type SmoothFrequency struct {
	Config
}

func (s SmoothFrequency) Sizes(words []string) ([]Tag, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	counts := countWords(words)
	slices.SortStableFunc(counts, func(a, b count) int { return a.n - b.n })

	tags := make([]Tag, 0, len(counts))
	rank := 0
	for i, c := range counts {
		if i == 0 || c.n != counts[i-1].n {
			rank++
		}
		tags = append(tags, Tag{Word: c.word, Frequency: c.n, Size: s.size(c.word, rank)})
	}
	slices.Reverse(tags)
	return tags, nil
}
