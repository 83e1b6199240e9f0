package sizing

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// FontMeasurer measures words with a TrueType font. It is safe for
// concurrent use.
type FontMeasurer struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

// NewFontMeasurer parses a TrueType font file.
func NewFontMeasurer(ttf []byte) (*FontMeasurer, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "cannot parse TrueType font")
	}
	return &FontMeasurer{font: f, faces: make(map[int]font.Face)}, nil
}

// Measure returns the advance width of word with the em height set to
// height pixels, rounded up.
func (m *FontMeasurer) Measure(word string, height int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	face, ok := m.faces[height]
	if !ok {
		// At 72 DPI one point is one pixel.
		face = truetype.NewFace(m.font, &truetype.Options{Size: float64(height), DPI: 72})
		m.faces[height] = face
	}
	return font.MeasureString(face, word).Ceil()
}

type lookup struct {
	m   *FontMeasurer
	err error
}

var installedFonts sync.Map // family -> lookup

// LookupFont finds an installed TrueType font for family, such as "Arial"
// or "DejaVuSans", in the platform font directories. Results, including
// failures, are cached per family.
func LookupFont(family string) (*FontMeasurer, error) {
	if l, ok := installedFonts.Load(family); ok {
		return l.(lookup).m, l.(lookup).err
	}
	m, err := loadFont(family)
	l, _ := installedFonts.LoadOrStore(family, lookup{m: m, err: err})
	return l.(lookup).m, l.(lookup).err
}

func loadFont(family string) (*FontMeasurer, error) {
	path, err := findfont.Find(family + ".ttf")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "font %q is not installed", family)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read font %s", path)
	}
	return NewFontMeasurer(data)
}
