package pipeline

import (
	"os"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/words"
)

// ExcludedWords merges opts.ExcludedWords with the words listed in
// opts.ExcludedWordsPath. It returns nil when neither is set, which disables
// exclusion.
func ExcludedWords(opts Options) ([]string, error) {
	excluded := opts.ExcludedWords
	if opts.ExcludedWordsPath == "" {
		return excluded, nil
	}

	f, err := os.Open(opts.ExcludedWordsPath)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "excluded words file not found: '%s'", opts.ExcludedWordsPath)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fromFile, err := words.ReadWordList(f)
	if err != nil {
		return nil, err
	}
	return append(append([]string{}, excluded...), fromFile...), nil
}

// Extract splits text into the words a cloud is built from. Exclusion and
// the length filter see the words as written; stemming runs after them.
func Extract(text string, excluded []string, opts Options) []string {
	selectors := []words.Selector{
		words.NewExcludeFilter(excluded),
		words.LengthFilter{Min: opts.MinWordLength},
	}
	if opts.Stem != "" {
		// Validate has already rejected unknown languages.
		if st, err := words.NewStemmer(opts.Stem); err == nil {
			selectors = append(selectors, st)
		}
	}
	if opts.MaxTokens > 0 {
		selectors = append(selectors, words.Limit{N: opts.MaxTokens})
	}
	return words.Extractor{Selectors: selectors}.Extract(text)
}
