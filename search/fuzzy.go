package search

import (
	"github.com/xrash/smetrics"
)

// tokenSimilarity scores how close two tokens are in [0, 1]. It blends
// normalized Levenshtein distance, which punishes scattered typos, with
// Jaro-Winkler, which rewards shared prefixes, so both misspellings
// ("resistro") and truncated terms ("resi") score well against "resistor".
func tokenSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}

	distance := smetrics.WagnerFischer(a, b, 1, 1, 1)
	levenshtein := 1.0 - float64(distance)/float64(maxLen)
	if levenshtein < 0 {
		levenshtein = 0
	}

	jaroWinkler := smetrics.JaroWinkler(a, b, 0.7, 4)

	return (levenshtein + jaroWinkler) / 2
}

// querySimilarity scores a document's tokens against the query's tokens:
// each query token takes its best match among the document tokens, and the
// result is the mean over query tokens. A query term with no plausible
// counterpart drags the whole score down.
func querySimilarity(queryTerms, docTerms []string) float64 {
	if len(queryTerms) == 0 || len(docTerms) == 0 {
		return 0
	}

	total := 0.0
	for _, qt := range queryTerms {
		best := 0.0
		for _, dt := range docTerms {
			if s := tokenSimilarity(qt, dt); s > best {
				best = s
				if best == 1.0 {
					break
				}
			}
		}
		total += best
	}
	return total / float64(len(queryTerms))
}
