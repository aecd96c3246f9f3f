package frtext

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of word characters, apostrophes and
// hyphens, so compound words ("grand-mère") and elisions ("l'arbre")
// stay whole.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_'’-]+`)

// Words splits s into word tokens in order of appearance. Trailing
// hyphens are trimmed from each token; internal and leading hyphens are
// kept. Input with no word characters yields an empty slice.
func Words(s string) []string {
	matches := wordPattern.FindAllString(s, -1)
	words := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, "-")
		if m != "" {
			words = append(words, m)
		}
	}
	return words
}
