// Package words turns raw text into the word list a tag cloud is built from.
//
// [Split] lower-cases the text and breaks it on whitespace and punctuation.
// Hyphens are kept inside words, so "well-known" stays one word, but tokens
// made only of hyphens are dropped. An [Extractor] then runs the words
// through a chain of [Selector] values, each of which may drop or rewrite
// words:
//
//	ex := words.Extractor{Selectors: []words.Selector{
//	    words.NewExcludeFilter([]string{"the", "and"}),
//	    words.LengthFilter{Min: 3},
//	}}
//	list := ex.Extract(text)
//
// A [Stemmer] folds inflected forms ("cats", "cat") into the most frequent
// one before counting.
//
// Duplicates are preserved; counting them is the job of package sizing.
package words
