package analyzer

import "strings"

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// isWord reports whether s is one or more ASCII letters.
func isWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

// toLowerASCII folds A-Z only, so byte offsets stay aligned with the input.
func toLowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// forEachWord calls fn with every maximal run of ASCII letters in text, lowercased.
func forEachWord(text string, fn func(word string)) {
	start := -1
	for i := 0; i < len(text); i++ {
		if isLetter(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			fn(toLowerASCII(text[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		fn(toLowerASCII(text[start:]))
	}
}

// Tokenize splits text into lowercase words. Anything outside A-Za-z separates words.
func Tokenize(text string) []string {
	var words []string
	forEachWord(text, func(word string) {
		words = append(words, word)
	})
	return words
}

// countBoundedMatches counts non-overlapping case-insensitive occurrences of word
// in text that are flanked by a non-letter byte or a string edge on both sides.
func countBoundedMatches(text, word string) int {
	haystack := toLowerASCII(text)
	needle := toLowerASCII(word)

	count := 0
	for i := 0; i+len(needle) <= len(haystack); {
		idx := strings.Index(haystack[i:], needle)
		if idx < 0 {
			break
		}
		start := i + idx
		end := start + len(needle)

		leftBound := start == 0 || !isLetter(haystack[start-1])
		rightBound := end == len(haystack) || !isLetter(haystack[end])
		if leftBound && rightBound {
			count++
			i = end
			continue
		}
		i = start + 1
	}
	return count
}
