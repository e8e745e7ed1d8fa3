package core

import (
	"sort"
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase index terms. Any rune that is not a
// letter or digit separates terms, which also strips characters that would
// carry special meaning in an index query. A blank or all-punctuation input
// yields no terms.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TermFrequencies counts occurrences of each term in text.
func TermFrequencies(text string) map[string]int {
	terms := Tokenize(text)
	freqs := make(map[string]int, len(terms))
	for _, term := range terms {
		freqs[term]++
	}
	return freqs
}

// stripPunctuation replaces every non-alphanumeric rune with a space so that
// composite spec values like "0.25W" or "±5%" remain tokenizable.
func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, text)
}

func sortedSpecKeys(specs map[string]string) []string {
	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func joinFields(fields []string) string {
	nonEmpty := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, " ")
}
