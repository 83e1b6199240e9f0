package sizing

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

func goRegular(t *testing.T) *FontMeasurer {
	t.Helper()
	m, err := NewFontMeasurer(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontMeasurer: %v", err)
	}
	return m
}

func TestFontMeasurerWidths(t *testing.T) {
	m := goRegular(t)

	if wide, narrow := m.Measure("WWWW", 20), m.Measure("iiii", 20); wide <= narrow {
		t.Errorf("Measure(WWWW) = %d, Measure(iiii) = %d, want proportional glyphs", wide, narrow)
	}
	if small, big := m.Measure("cloud", 10), m.Measure("cloud", 40); big < 3*small {
		t.Errorf("Measure at 40px = %d, at 10px = %d, want width to scale with height", big, small)
	}
	if got := m.Measure("", 20); got != 0 {
		t.Errorf("Measure(\"\") = %d, want 0", got)
	}
}

func TestFontMeasurerConcurrent(t *testing.T) {
	m := goRegular(t)
	want := m.Measure("gopher", 24)

	var wg sync.WaitGroup
	for h := 10; h < 42; h++ {
		wg.Add(1)
		go func(h int) {
			defer wg.Done()
			m.Measure("gopher", h)
		}(h)
	}
	wg.Wait()
	if got := m.Measure("gopher", 24); got != want {
		t.Errorf("Measure after concurrent use = %d, want %d", got, want)
	}
}

func TestNewFontMeasurerRejectsGarbage(t *testing.T) {
	if _, err := NewFontMeasurer([]byte("not a font")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("NewFontMeasurer(garbage) error = %v, want INVALID_FORMAT", err)
	}
}

func TestLookupFontMissing(t *testing.T) {
	if _, err := LookupFont("no-such-font-family-7f3a"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LookupFont(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestSizesUseMeasurer(t *testing.T) {
	m := goRegular(t)
	cfg := Config{MinSize: 10, Scale: 10, Measurer: m}
	got, err := Frequency{Config: cfg}.Sizes(words("ill www www"))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Word != "www" || got[0].Size.Height != 20 || got[0].Size.Width != m.Measure("www", 20) {
		t.Errorf("www tag = %+v, want height 20 and the measured width %d", got[0], m.Measure("www", 20))
	}
	if got[1].Size.Width != m.Measure("ill", 10) {
		t.Errorf("ill width = %d, want %d", got[1].Size.Width, m.Measure("ill", 10))
	}
}

type fixedMeasurer int

func (f fixedMeasurer) Measure(string, int) int { return int(f) }

func TestMeasurerWidthHasFloor(t *testing.T) {
	got, err := SmoothFrequency{Config: Config{MinSize: 5, Scale: 1, Measurer: fixedMeasurer(0)}}.Sizes(words("a"))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Size.Width != 1 {
		t.Errorf("width = %d, want the minimum of 1", got[0].Size.Width)
	}
}
