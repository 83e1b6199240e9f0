// Package pipeline runs the text → tag cloud pipeline shared by the CLI and
// the HTTP API.
//
// # Stages
//
//  1. Extract: split the text into words and filter them
//  2. Size: count words and give every distinct word a box
//  3. Layout: place the boxes around the center without overlap
//  4. Render: decorate the placed tags and write SVG, JSON, PNG or PDF
//
// Each stage can be run on its own. [Runner.Execute] runs them all and
// caches the layout and the rendered artifacts.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Layouter: "shaped", Radius: "1 + 0.5*math.Cos(angle)"}
//	result, err := runner.Execute(ctx, text, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/equation"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/render"
	"github.com/matzehuels/tagcloud/pkg/sizing"
	"github.com/matzehuels/tagcloud/pkg/style"
	"github.com/matzehuels/tagcloud/pkg/words"
)

// Defaults shared by the CLI, the config files and the API.
const (
	DefaultLayouter       = string(cloud.KindCircle)
	DefaultRayCount       = cloud.DefaultRayCount
	DefaultRadius         = "1"
	DefaultSizing         = string(sizing.MethodSmooth)
	DefaultMinSize        = sizing.DefaultMinSize
	DefaultScale          = sizing.DefaultScale
	DefaultBackground     = "#FFF"
	DefaultMainColor      = "#000"
	DefaultSecondaryColor = "#000"
	DefaultFont           = style.DefaultFontFamily
	DefaultFormat         = string(render.FormatSVG)
	DefaultPNGScale       = 2.0
)

// Options configures a pipeline run. Zero values take the defaults above.
type Options struct {
	// Extract options
	ExcludedWords     []string `json:"excluded_words,omitempty" toml:"excluded_words,omitempty" yaml:"excluded_words,omitempty"`
	ExcludedWordsPath string   `json:"excluded_words_path,omitempty" toml:"excluded_words_path,omitempty" yaml:"excluded_words_path,omitempty"`
	MinWordLength     int      `json:"min_word_length,omitempty" toml:"min_word_length,omitempty" yaml:"min_word_length,omitempty"`
	MaxTokens         int      `json:"max_tokens,omitempty" toml:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
	// Stem folds inflected forms together: "auto" or a language such as
	// "english" or "russian". Empty disables stemming.
	Stem string `json:"stem,omitempty" toml:"stem,omitempty" yaml:"stem,omitempty"`

	// Size options
	Sizing    string  `json:"sizing,omitempty" toml:"sizing,omitempty" yaml:"sizing,omitempty"`
	MinSize   int     `json:"min_size,omitempty" toml:"min_size,omitempty" yaml:"min_size,omitempty"`
	Scale     float64 `json:"scale,omitempty" toml:"scale,omitempty" yaml:"scale,omitempty"`
	CharWidth float64 `json:"char_width,omitempty" toml:"char_width,omitempty" yaml:"char_width,omitempty"`
	MaxWords  int     `json:"max_words,omitempty" toml:"max_words,omitempty" yaml:"max_words,omitempty"`
	// MeasureText sizes words with the installed font named by Font instead
	// of the CharWidth estimate. A missing font falls back to the estimate.
	MeasureText bool `json:"measure_text,omitempty" toml:"measure_text,omitempty" yaml:"measure_text,omitempty"`

	// Layout options
	Layouter  string `json:"layouter,omitempty" toml:"layouter,omitempty" yaml:"layouter,omitempty"`
	RayCount  int    `json:"rays,omitempty" toml:"rays,omitempty" yaml:"rays,omitempty"`
	Radius    string `json:"radius,omitempty" toml:"radius,omitempty" yaml:"radius,omitempty"`
	CenterX   int    `json:"center_x,omitempty" toml:"center_x,omitempty" yaml:"center_x,omitempty"`
	CenterY   int    `json:"center_y,omitempty" toml:"center_y,omitempty" yaml:"center_y,omitempty"`
	MaxRadius int    `json:"max_radius,omitempty" toml:"max_radius,omitempty" yaml:"max_radius,omitempty"`

	// Render options
	Formats        []string `json:"formats,omitempty" toml:"formats,omitempty" yaml:"formats,omitempty"`
	Background     string   `json:"background,omitempty" toml:"background,omitempty" yaml:"background,omitempty"`
	MainColor      string   `json:"main_color,omitempty" toml:"main_color,omitempty" yaml:"main_color,omitempty"`
	SecondaryColor string   `json:"secondary_color,omitempty" toml:"secondary_color,omitempty" yaml:"secondary_color,omitempty"`
	Gradient       bool     `json:"gradient,omitempty" toml:"gradient,omitempty" yaml:"gradient,omitempty"`
	Font           string   `json:"font,omitempty" toml:"font,omitempty" yaml:"font,omitempty"`
	FontStyle      string   `json:"font_style,omitempty" toml:"font_style,omitempty" yaml:"font_style,omitempty"`
	Padding        int      `json:"padding,omitempty" toml:"padding,omitempty" yaml:"padding,omitempty"`
	Outlines       bool     `json:"outlines,omitempty" toml:"outlines,omitempty" yaml:"outlines,omitempty"`
	PNGScale       float64  `json:"png_scale,omitempty" toml:"png_scale,omitempty" yaml:"png_scale,omitempty"`

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty" toml:"refresh,omitempty" yaml:"refresh,omitempty"`

	// Logger receives stage logs. Nil means the runner's logger.
	Logger *log.Logger `json:"-" toml:"-" yaml:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the run in logs and API responses.
	ID string

	// Words is the extracted word list, duplicates included.
	Words []string

	// Layout holds the sized tags and their rectangles.
	Layout *Layout

	// Drawings are the placed tags with colors and fonts applied.
	Drawings []style.Drawing

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount   int
	TagCount    int
	Radius      int
	ExtractTime time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each cached stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// SetDefaults fills zero fields with defaults.
func (o *Options) SetDefaults() {
	if o.Sizing == "" {
		o.Sizing = DefaultSizing
	}
	if o.MinSize == 0 {
		o.MinSize = DefaultMinSize
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Layouter == "" {
		o.Layouter = DefaultLayouter
	}
	if o.RayCount == 0 {
		o.RayCount = DefaultRayCount
	}
	if o.Radius == "" {
		o.Radius = DefaultRadius
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.MainColor == "" {
		o.MainColor = DefaultMainColor
	}
	if o.SecondaryColor == "" {
		o.SecondaryColor = DefaultSecondaryColor
	}
	if o.Font == "" {
		o.Font = DefaultFont
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks every option. It does not apply defaults.
func (o *Options) Validate() error {
	if o.MinWordLength < 0 || o.MaxTokens < 0 || o.MaxWords < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "word limits cannot be negative")
	}
	if o.ExcludedWordsPath != "" {
		if err := errors.ValidateFilePath(o.ExcludedWordsPath); err != nil {
			return err
		}
	}
	if o.Stem != "" {
		if _, err := words.NewStemmer(o.Stem); err != nil {
			return err
		}
	}
	if _, err := o.sizer(nil); err != nil {
		return err
	}
	if _, err := cloud.ParseKind(o.Layouter); err != nil {
		return err
	}
	if _, err := o.layoutConfig(); err != nil {
		return err
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding cannot be negative, got %d", o.Padding)
	}
	if err := errors.ValidatePositive("png scale", o.PNGScale); err != nil {
		return err
	}
	if _, err := o.formats(); err != nil {
		return err
	}
	if _, err := o.decorators(); err != nil {
		return err
	}
	return nil
}

func (o *Options) sizer(measurer sizing.Measurer) (sizing.Sizer, error) {
	m, err := sizing.ParseMethod(o.Sizing)
	if err != nil {
		return nil, err
	}
	return sizing.New(m, sizing.Config{MinSize: o.MinSize, Scale: o.Scale, CharWidth: o.CharWidth, Measurer: measurer})
}

// measurer returns the font measurer for o.Font when MeasureText is set,
// or nil to use the char-width estimate.
func (o *Options) measurer() sizing.Measurer {
	if !o.MeasureText {
		return nil
	}
	m, err := sizing.LookupFont(o.Font)
	if err != nil {
		if o.Logger != nil {
			o.Logger.Warn("font not found, estimating widths", "font", o.Font, "err", err)
		}
		return nil
	}
	return m
}

func (o *Options) layoutConfig() (cloud.Config, error) {
	cfg := cloud.Config{
		Center:    o.center(),
		RayCount:  o.RayCount,
		MaxRadius: o.MaxRadius,
	}
	if err := cfg.Validate(); err != nil {
		return cloud.Config{}, err
	}
	if o.Layouter == string(cloud.KindShaped) {
		eq, err := equation.Parse(o.Radius)
		if err != nil {
			return cloud.Config{}, err
		}
		cfg.RadiusEquation = eq
	}
	return cfg, nil
}

func (o *Options) formats() ([]render.Format, error) {
	out := make([]render.Format, 0, len(o.Formats))
	for _, s := range o.Formats {
		f, err := render.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// decorators returns the styling chain: solid main color, then the gradient
// if enabled, then the font.
func (o *Options) decorators() ([]style.Decorator, error) {
	main, err := style.ParseColor(o.MainColor)
	if err != nil {
		return nil, err
	}
	if _, err := style.ParseColor(o.Background); err != nil {
		return nil, err
	}
	fs, err := style.ParseFontStyle(o.FontStyle)
	if err != nil {
		return nil, err
	}

	ds := []style.Decorator{style.SolidColor{Color: main}}
	if o.Gradient {
		secondary, err := style.ParseColor(o.SecondaryColor)
		if err != nil {
			return nil, err
		}
		ds = append(ds, style.Gradient{From: main, To: secondary})
	}
	return append(ds, style.Font{Family: o.Font, Style: fs}), nil
}

func (o *Options) renderOptions() []render.Option {
	bg, _ := style.ParseColor(o.Background)
	opts := []render.Option{
		render.WithCenter(o.center()),
		render.WithPadding(o.Padding),
		render.WithBackground(bg.Hex()),
	}
	if o.Outlines {
		opts = append(opts, render.WithOutlines())
	}
	return opts
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	radius := ""
	if o.Layouter == string(cloud.KindShaped) {
		radius = o.Radius
	}
	extra := []string{"max_radius=" + strconv.Itoa(o.MaxRadius)}
	if o.MeasureText {
		extra = append(extra, "measure="+o.Font)
	}
	return cache.LayoutKeyOpts{
		Layouter:  o.Layouter,
		RayCount:  o.RayCount,
		Radius:    radius,
		CenterX:   o.CenterX,
		CenterY:   o.CenterY,
		Sizing:    o.Sizing,
		MinSize:   o.MinSize,
		Scale:     o.Scale,
		CharWidth: o.CharWidth,
		MaxWords:  o.MaxWords,
		Extra:     extra,
	}
}

// ArtifactKeyOpts returns cache key options for rendering one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	secondary := ""
	if o.Gradient {
		secondary = o.SecondaryColor
	}
	scale := 0.0
	if format == string(render.FormatPNG) {
		scale = o.PNGScale
	}
	return cache.ArtifactKeyOpts{
		Format:         format,
		Background:     o.Background,
		MainColor:      o.MainColor,
		SecondaryColor: secondary,
		Gradient:       o.Gradient,
		Font:           o.Font,
		FontStyle:      o.FontStyle,
		Padding:        o.Padding,
		Outlines:       o.Outlines,
		PNGScale:       scale,
	}
}
