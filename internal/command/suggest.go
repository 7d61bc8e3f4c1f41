package command

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// suggestionThreshold is the minimum similarity ratio for a candidate to
// be offered as a correction.
const suggestionThreshold = 0.6

// Suggest returns the candidate closest to input if its similarity ratio
// reaches the threshold. Candidates are scanned in order and ties keep the
// earlier one, so passing a sorted slice makes the result deterministic.
func Suggest(input string, candidates []string) (string, bool) {
	best := ""
	bestRatio := 0.0
	for _, candidate := range candidates {
		if ratio := similarity(input, candidate); ratio > bestRatio {
			best = candidate
			bestRatio = ratio
		}
	}
	if bestRatio < suggestionThreshold {
		return "", false
	}
	return best, true
}

// similarity maps edit distance onto a 0–1 scale: 1 - distance/maxLen,
// counted in runes so multi-byte input is compared fairly.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}

	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}
