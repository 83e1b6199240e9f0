package words

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split lower-cases text and splits it into words.
func Split(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	out := fields[:0]
	for _, f := range fields {
		if strings.Trim(f, "-") != "" {
			out = append(out, f)
		}
	}
	return out
}

func isSeparator(r rune) bool {
	return r != '-' && (unicode.IsSpace(r) || unicode.IsPunct(r))
}

// Selector filters or transforms a word list.
type Selector interface {
	Select(words []string) []string
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func([]string) []string

func (f SelectorFunc) Select(words []string) []string { return f(words) }

// ExcludeFilter drops words found in a set. Matching ignores case.
type ExcludeFilter struct {
	excluded map[string]struct{}
}

// NewExcludeFilter builds a filter for the given words. A nil list yields a
// filter that passes everything through.
func NewExcludeFilter(words []string) *ExcludeFilter {
	if words == nil {
		return &ExcludeFilter{}
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &ExcludeFilter{excluded: set}
}

func (f *ExcludeFilter) Select(words []string) []string {
	if f == nil || f.excluded == nil {
		return words
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := f.excluded[strings.ToLower(w)]; !skip {
			out = append(out, w)
		}
	}
	return out
}

// Len returns the number of excluded words.
func (f *ExcludeFilter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.excluded)
}

// LengthFilter drops words shorter than Min runes.
type LengthFilter struct {
	Min int
}

func (f LengthFilter) Select(words []string) []string {
	if f.Min <= 1 {
		return words
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) >= f.Min {
			out = append(out, w)
		}
	}
	return out
}

// Limit keeps at most N words. Zero or negative means no limit.
type Limit struct {
	N int
}

func (l Limit) Select(words []string) []string {
	if l.N <= 0 || len(words) <= l.N {
		return words
	}
	return words[:l.N]
}

// Extractor splits text and applies its selectors in order.
type Extractor struct {
	Selectors []Selector
}

// Extract returns the selected words of text.
func (e Extractor) Extract(text string) []string {
	words := Split(text)
	for _, s := range e.Selectors {
		words = s.Select(words)
	}
	return words
}

// ReadWordList reads whitespace-separated words, lower-cased.
func ReadWordList(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, strings.ToLower(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
