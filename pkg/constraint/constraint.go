package constraint

// Tag identifies a constraint in the registry.
type Tag string

const (
	TagLipogram     Tag = "lipogram"
	TagMonovocalism Tag = "monovocalism"
	TagTautogram    Tag = "tautogram"
	TagAlliteration Tag = "alliteration"
)

// ParamKind describes which letter domain a constraint parameter is
// drawn from.
type ParamKind string

const (
	ParamLetter    ParamKind = "letter"
	ParamVowel     ParamKind = "vowel"
	ParamConsonant ParamKind = "consonant"
)

// ParamSpec describes the single letter parameter a constraint takes:
// its domain kind, a French label for display, and the ordered option
// values a call site may offer.
type ParamSpec struct {
	Kind    ParamKind `json:"kind"`
	Label   string    `json:"label"`
	Options []string  `json:"options"`
}

// Allows reports whether value is one of the offered options. The match
// is exact; callers should lowercase user input first.
func (p ParamSpec) Allows(value string) bool {
	for _, opt := range p.Options {
		if value == opt {
			return true
		}
	}
	return false
}

// Result is the outcome of a validation. A violation is a normal,
// expected outcome carrying a French message, not an error.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateFunc checks text against a constraint parameterized by a
// single letter.
type ValidateFunc func(text, letter string) Result

// Definition pairs a constraint's metadata with its validator. The
// user-facing strings are French.
type Definition struct {
	Tag         Tag       `json:"tag"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Param       ParamSpec `json:"param"`

	validate ValidateFunc
}

// Validate runs the constraint's validator on text with the given
// letter parameter.
func (d Definition) Validate(text, letter string) Result {
	return d.validate(text, letter)
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(message string) Result {
	return Result{Message: message}
}
