package constraint

import "slices"

// Vowels holds the six letters treated as vowels, "y" included.
var Vowels = []string{"a", "e", "i", "o", "u", "y"}

// Consonants holds the remaining twenty letters.
var Consonants = []string{
	"b", "c", "d", "f", "g", "h", "j", "k", "l", "m",
	"n", "p", "q", "r", "s", "t", "v", "w", "x", "z",
}

// Letters is the sorted union of Vowels and Consonants, covering the
// full twenty-six letter Latin alphabet.
var Letters = func() []string {
	all := make([]string, 0, len(Vowels)+len(Consonants))
	all = append(all, Vowels...)
	all = append(all, Consonants...)
	slices.Sort(all)
	return all
}()
