package frtext

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize strips diacritical marks from s, mapping accented letters to
// their base form (é → e, à → a, ç → c, ...). Case is preserved. The
// operation is idempotent: normalizing an already-normalized string
// returns it unchanged.
func Normalize(s string) string {
	// Chained transformers carry buffer state, so build a fresh one per
	// call rather than sharing a package-level instance.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
