/*
Package analyzer implements word frequency analysis over plain text.

A word is a maximal run of ASCII letters (A-Z, a-z). Every other byte is a
separator. Words are case-folded to lowercase before they are counted or
compared, so "Java", "JAVA" and "java" are the same word.

Three queries are supported:

	a := analyzer.New()
	text := "PYthon&Java!kotlin+java8Angular3kotlin angular"

	a.HighestFrequency(&text)              // 2
	a.FrequencyForWord(&text, "Kotlin")    // 2
	a.MostFrequentNWords(&text, 3)         // [angular:2 java:2 kotlin:2]

Text is passed as *string: a nil text is rejected with ErrInvalidInput, while an
empty text simply contains no words.

Ranked results are ordered by frequency (highest first) and then by word in
ascending order, so the output is fully deterministic.

The analyzer keeps no state between calls and is safe for concurrent use.
*/
package analyzer

// WordFrequencyAnalyzer answers frequency queries about a text.
type WordFrequencyAnalyzer interface {
	// HighestFrequency returns the count of the most frequent word, or 0 when
	// the text has no words.
	HighestFrequency(text *string) (int, error)

	// FrequencyForWord counts the whole-word, case-insensitive occurrences of word.
	FrequencyForWord(text *string, word string) (int, error)

	// MostFrequentNWords returns up to n words ranked by frequency.
	MostFrequentNWords(text *string, n int) ([]WordFrequency, error)
}

// Analyzer is the default WordFrequencyAnalyzer.
type Analyzer struct{}

var _ WordFrequencyAnalyzer = (*Analyzer)(nil)

// New returns an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// HighestFrequency tokenizes text and returns the highest word count.
func (a *Analyzer) HighestFrequency(text *string) (int, error) {
	if text == nil {
		return 0, invalidInput()
	}
	return buildTable(*text).max(), nil
}

// FrequencyForWord counts occurrences of word in text bounded on both sides by
// a non-letter or the edge of the text. A match inside a longer word does not
// count: "ordina" does not occur in "ordinary".
//
// The word is validated before the text.
func (a *Analyzer) FrequencyForWord(text *string, word string) (int, error) {
	if !isWord(word) {
		return 0, invalidWord(word)
	}
	if text == nil {
		return 0, invalidInput()
	}
	if *text == "" {
		return 0, nil
	}
	return countBoundedMatches(*text, word), nil
}

// MostFrequentNWords returns the n most frequent words, highest frequency
// first and ties in alphabetical order. A non-positive n yields an empty
// result, and fewer than n entries are returned when the text has fewer
// distinct words.
func (a *Analyzer) MostFrequentNWords(text *string, n int) ([]WordFrequency, error) {
	if text == nil {
		return nil, invalidInput()
	}
	if n <= 0 {
		return []WordFrequency{}, nil
	}

	ranked := buildTable(*text).ranked()
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}
