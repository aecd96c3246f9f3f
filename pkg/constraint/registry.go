package constraint

// registry is the fixed, ordered set of constraint definitions. It is
// built once at load time and never mutated.
var registry = []Definition{
	{
		Tag:         TagLipogram,
		Name:        "Lipogramme",
		Description: "Texte qui évite volontairement une lettre donnée.",
		Param: ParamSpec{
			Kind:    ParamLetter,
			Label:   "Lettre interdite",
			Options: Letters,
		},
		validate: Lipogram,
	},
	{
		Tag:         TagMonovocalism,
		Name:        "Monovocalisme",
		Description: "Texte n'utilisant qu'une seule voyelle.",
		Param: ParamSpec{
			Kind:    ParamVowel,
			Label:   "Voyelle autorisée",
			Options: Vowels,
		},
		validate: Monovocalism,
	},
	{
		Tag:         TagTautogram,
		Name:        "Tautogramme",
		Description: "Texte dont tous les mots commencent par la même lettre.",
		Param: ParamSpec{
			Kind:    ParamLetter,
			Label:   "Lettre initiale",
			Options: Letters,
		},
		validate: Tautogram,
	},
	{
		Tag:         TagAlliteration,
		Name:        "Allitération",
		Description: "Texte dont tous les mots commencent par la même consonne.",
		Param: ParamSpec{
			Kind:    ParamConsonant,
			Label:   "Consonne initiale",
			Options: Consonants,
		},
		validate: Alliteration,
	},
}

// Registry returns the ordered constraint definitions. The returned
// slice is a copy; the definitions themselves are shared read-only data.
func Registry() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the definition identified by tag.
func Lookup(tag Tag) (Definition, bool) {
	for _, d := range registry {
		if d.Tag == tag {
			return d, true
		}
	}
	return Definition{}, false
}
