package cli

import (
	"github.com/spf13/pflag"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// optionFlags binds pipeline options to command-line flags. Only flags the
// user set are applied on top of the config file.
type optionFlags struct {
	values pipeline.Options
	apply  map[string]func(dst *pipeline.Options)
}

func bindFlag[T any](f *optionFlags, name string, field func(*pipeline.Options) *T, register func(p *T, name string)) {
	register(field(&f.values), name)
	f.apply[name] = func(dst *pipeline.Options) { *field(dst) = *field(&f.values) }
}

// newOptionFlags registers the extract, size and layout flags, plus the
// render flags when withRender is set.
func newOptionFlags(fs *pflag.FlagSet, withRender bool) *optionFlags {
	f := &optionFlags{apply: make(map[string]func(*pipeline.Options))}

	str := func(usage string) func(*string, string) {
		return func(p *string, name string) { fs.StringVar(p, name, "", usage) }
	}
	integer := func(usage string) func(*int, string) {
		return func(p *int, name string) { fs.IntVar(p, name, 0, usage) }
	}
	float := func(usage string) func(*float64, string) {
		return func(p *float64, name string) { fs.Float64Var(p, name, 0, usage) }
	}
	boolean := func(usage string) func(*bool, string) {
		return func(p *bool, name string) { fs.BoolVar(p, name, false, usage) }
	}
	list := func(usage string) func(*[]string, string) {
		return func(p *[]string, name string) { fs.StringSliceVar(p, name, nil, usage) }
	}

	bindFlag(f, "exclude", func(o *pipeline.Options) *[]string { return &o.ExcludedWords }, list("words to leave out (comma-separated)"))
	bindFlag(f, "exclude-file", func(o *pipeline.Options) *string { return &o.ExcludedWordsPath }, str("file with words to leave out"))
	bindFlag(f, "min-length", func(o *pipeline.Options) *int { return &o.MinWordLength }, integer("drop words shorter than this many letters"))
	bindFlag(f, "max-tokens", func(o *pipeline.Options) *int { return &o.MaxTokens }, integer("read at most this many words of the text"))
	bindFlag(f, "stem", func(o *pipeline.Options) *string { return &o.Stem }, str("fold inflected forms: auto, english, russian, spanish, french, swedish"))

	bindFlag(f, "sizing", func(o *pipeline.Options) *string { return &o.Sizing }, str("sizing method: smooth (default), frequency"))
	bindFlag(f, "min-size", func(o *pipeline.Options) *int { return &o.MinSize }, integer("height of the rarest word (default 10)"))
	bindFlag(f, "scale", func(o *pipeline.Options) *float64 { return &o.Scale }, float("height added per frequency step (default 1)"))
	bindFlag(f, "char-width", func(o *pipeline.Options) *float64 { return &o.CharWidth }, float("letter width as a fraction of height (default 0.55)"))
	bindFlag(f, "max-words", func(o *pipeline.Options) *int { return &o.MaxWords }, integer("keep only the most frequent words"))
	bindFlag(f, "font", func(o *pipeline.Options) *string { return &o.Font }, str("font family (default Arial)"))
	bindFlag(f, "measure-text", func(o *pipeline.Options) *bool { return &o.MeasureText }, boolean("measure words with the installed --font"))

	bindFlag(f, "layouter", func(o *pipeline.Options) *string { return &o.Layouter }, str("layout strategy: circle (default), shaped"))
	bindFlag(f, "rays", func(o *pipeline.Options) *int { return &o.RayCount }, integer("rays sampled per ring, at most 3600 (default 360)"))
	bindFlag(f, "radius", func(o *pipeline.Options) *string { return &o.Radius }, str("shape of the shaped layouter as a Go expression in angle (default 1)"))
	bindFlag(f, "center-x", func(o *pipeline.Options) *int { return &o.CenterX }, integer("x coordinate of the cloud center"))
	bindFlag(f, "center-y", func(o *pipeline.Options) *int { return &o.CenterY }, integer("y coordinate of the cloud center"))
	bindFlag(f, "max-radius", func(o *pipeline.Options) *int { return &o.MaxRadius }, integer("give up placing a word beyond this ring"))
	bindFlag(f, "refresh", func(o *pipeline.Options) *bool { return &o.Refresh }, boolean("ignore cached results"))

	if !withRender {
		return f
	}
	bindFlag(f, "format", func(o *pipeline.Options) *[]string { return &o.Formats }, func(p *[]string, name string) {
		fs.StringSliceVarP(p, name, "f", nil, "output formats: svg (default), json, png, pdf")
	})
	bindFlag(f, "background", func(o *pipeline.Options) *string { return &o.Background }, str("background color (default #FFF)"))
	bindFlag(f, "color", func(o *pipeline.Options) *string { return &o.MainColor }, str("word color (default #000)"))
	bindFlag(f, "secondary-color", func(o *pipeline.Options) *string { return &o.SecondaryColor }, str("gradient end color"))
	bindFlag(f, "gradient", func(o *pipeline.Options) *bool { return &o.Gradient }, boolean("blend from --color to --secondary-color"))
	bindFlag(f, "font-style", func(o *pipeline.Options) *string { return &o.FontStyle }, str("regular, bold, italic, underline or strikeout"))
	bindFlag(f, "padding", func(o *pipeline.Options) *int { return &o.Padding }, integer("margin around the cloud"))
	bindFlag(f, "outlines", func(o *pipeline.Options) *bool { return &o.Outlines }, boolean("draw a box around every word"))
	bindFlag(f, "png-scale", func(o *pipeline.Options) *float64 { return &o.PNGScale }, float("PNG zoom factor (default 2)"))
	return f
}

// resolve returns base with every flag the user set applied on top.
func (f *optionFlags) resolve(fs *pflag.FlagSet, base pipeline.Options) pipeline.Options {
	opts := base
	fs.Visit(func(fl *pflag.Flag) {
		if apply, ok := f.apply[fl.Name]; ok {
			apply(&opts)
		}
	})
	return opts
}
