package constraint

import (
	"fmt"
	"strings"

	"github.com/plumekit/oulipo/pkg/frtext"
)

// Lipogram reports whether text avoids the forbidden letter entirely.
// The text is lowercased and diacritic-folded first, so forbidding "e"
// also forbids é, è, ê and ë.
func Lipogram(text, letter string) Result {
	l := strings.ToLower(letter)
	if strings.Contains(frtext.Normalize(strings.ToLower(text)), l) {
		return invalid(fmt.Sprintf("Lettre interdite détectée : %q", l))
	}
	return valid()
}

// Monovocalism reports whether text uses no vowel other than the
// allowed one. The message names the first offending vowel as found in
// the normalized text.
func Monovocalism(text, vowel string) Result {
	allowed := strings.ToLower(vowel)
	others := make(map[rune]bool, len(Vowels))
	for _, v := range Vowels {
		if v != allowed {
			others[rune(v[0])] = true
		}
	}
	for _, r := range frtext.Normalize(strings.ToLower(text)) {
		if others[r] {
			return invalid(fmt.Sprintf("Voyelle non autorisée détectée : %q", string(r)))
		}
	}
	return valid()
}

// Tautogram reports whether every word of text starts with the given
// letter. The comparison uses the lowercased, diacritic-folded form of
// each word; the message echoes the word as originally written. A text
// with no words is vacuously valid.
func Tautogram(text, letter string) Result {
	l := strings.ToLower(letter)
	if word, ok := firstMismatch(text, l); ok {
		return invalid(fmt.Sprintf("Le mot %q ne commence pas par %q", word, l))
	}
	return valid()
}

// Alliteration behaves exactly like Tautogram with a consonant-flavored
// message. It does not verify that letter is in fact a consonant; the
// registry's option set is the only guard.
func Alliteration(text, letter string) Result {
	l := strings.ToLower(letter)
	if word, ok := firstMismatch(text, l); ok {
		return invalid(fmt.Sprintf("Le mot %q ne commence pas par la consonne %q", word, l))
	}
	return valid()
}

// firstMismatch returns the first word of text whose normalized,
// lowercased form does not start with letter.
func firstMismatch(text, letter string) (string, bool) {
	for _, word := range frtext.Words(text) {
		if !strings.HasPrefix(frtext.Normalize(strings.ToLower(word)), letter) {
			return word, true
		}
	}
	return "", false
}
