package words

import (
	"slices"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"

	"github.com/matzehuels/tagcloud/pkg/errors"
)

// LanguageAuto makes a Stemmer pick Russian for words with Cyrillic letters
// and English for everything else.
const LanguageAuto = "auto"

// StemLanguages lists the languages a Stemmer accepts besides LanguageAuto.
var StemLanguages = []string{"english", "russian", "spanish", "french", "swedish"}

// Stemmer merges inflected forms of a word. Words are grouped by their
// Snowball stem and every member of a group is replaced by the group's most
// frequent form, so "running runs running" becomes three "running". Ties go
// to the form seen first.
type Stemmer struct {
	language string
}

// NewStemmer creates a stemmer for language, one of StemLanguages or
// LanguageAuto.
func NewStemmer(language string) (Stemmer, error) {
	if language == LanguageAuto || slices.Contains(StemLanguages, language) {
		return Stemmer{language: language}, nil
	}
	return Stemmer{}, errors.New(errors.ErrCodeInvalidConfig, "unknown stemming language: %q (must be auto or one of: %s)",
		language, strings.Join(StemLanguages, ", "))
}

// Language returns the configured language.
func (s Stemmer) Language() string { return s.language }

func (s Stemmer) Select(words []string) []string {
	type group struct {
		forms  []string
		counts map[string]int
	}
	stems := make([]string, len(words))
	groups := make(map[string]*group)
	for i, w := range words {
		stem := s.stem(w)
		stems[i] = stem
		g, ok := groups[stem]
		if !ok {
			g = &group{counts: make(map[string]int)}
			groups[stem] = g
		}
		if g.counts[w] == 0 {
			g.forms = append(g.forms, w)
		}
		g.counts[w]++
	}

	best := make(map[string]string, len(groups))
	for stem, g := range groups {
		pick := g.forms[0]
		for _, f := range g.forms[1:] {
			if g.counts[f] > g.counts[pick] {
				pick = f
			}
		}
		best[stem] = pick
	}

	out := make([]string, len(words))
	for i, stem := range stems {
		out[i] = best[stem]
	}
	return out
}

func (s Stemmer) stem(word string) string {
	lang := s.language
	if lang == LanguageAuto {
		lang = "english"
		if hasCyrillic(word) {
			lang = "russian"
		}
	}
	stem, err := snowball.Stem(word, lang, true)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

func hasCyrillic(word string) bool {
	for _, r := range word {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}
