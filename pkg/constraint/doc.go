// Package constraint provides validators for French constrained-writing
// rules: lipogram, monovocalism, tautogram and systematic alliteration.
//
// Each rule is exposed both as a plain function and through a fixed,
// ordered registry of Definition values pairing the validator with its
// metadata: identifier tag, French display name and description, and a
// ParamSpec describing the single letter parameter and the option values
// a call site may offer for it.
//
// # Usage
//
//	def, ok := constraint.Lookup(constraint.TagLipogram)
//	if !ok {
//	    // unknown tag
//	}
//	res := def.Validate("Le chat mange.", "e")
//	if !res.Valid {
//	    fmt.Println(res.Message) // Lettre interdite détectée : "e"
//	}
//
// An invalid text is a normal outcome, not an error: validators return a
// Result value carrying a French violation message and never fail for
// well-formed string input. Letter parameters are case-insensitive, and
// comparisons fold diacritics, so forbidding "e" in a lipogram also
// forbids é, è, ê and ë.
//
// # Parameter domains
//
// Each Definition restricts its parameter through ParamSpec.Options: the
// full alphabet for lipograms and tautograms, the six vowels for
// monovocalism, the twenty consonants for alliteration. Validators do not
// re-check the parameter themselves; offering only the listed options is
// the caller's responsibility, and a value outside the domain simply
// never matches.
//
// # Thread Safety
//
// The registry is read-only package data and every validator is a pure
// function, so concurrent use needs no synchronization.
package constraint
