// Package convert provides the named-case registry and the converter that
// segments, re-cases, and rejoins identifier-like strings.
//
// A Case is an immutable triple of pattern, delimiter, and boundary set.
// Several names are pure aliases (Pascal/UpperCamel, UpperSnake/
// ScreamingSnake, Cobol/UpperKebab) and resolve to identical triples.
package convert

import (
	"strings"

	"github.com/erraggy/recase/boundary"
	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/pattern"
)

// Case identifies one named case from the registry.
type Case uint8

const (
	// Upper is UPPER CASE WORDS WITH SPACES.
	Upper Case = iota
	// Lower is lower case words with spaces.
	Lower
	// Title is Capitalized Words With Spaces.
	Title
	// Toggle is tOGGLED wORDS wITH sPACES.
	Toggle
	// Alternating is aLtErNaTiNg words with spaces.
	Alternating
	// Random is words with spaces, every letter cased by a coin flip.
	Random
	// PseudoRandom is words with spaces, cased randomly without runs of
	// three same-case letters inside a word.
	PseudoRandom
	// Camel is capitalizedWordsConcatenated with the first word lowercase.
	Camel
	// Pascal is CapitalizedWordsConcatenated.
	Pascal
	// UpperCamel is an alias of Pascal.
	UpperCamel
	// Snake is lower_case_words_with_underscores.
	Snake
	// UpperSnake is UPPER_CASE_WORDS_WITH_UNDERSCORES.
	UpperSnake
	// ScreamingSnake is an alias of UpperSnake.
	ScreamingSnake
	// Kebab is lower-case-words-with-hyphens.
	Kebab
	// Cobol is UPPER-CASE-WORDS-WITH-HYPHENS.
	Cobol
	// UpperKebab is an alias of Cobol.
	UpperKebab
	// Train is Capitalized-Words-With-Hyphens.
	Train
	// Flat is lowercasewordsconcatenated.
	Flat
	// UpperFlat is UPPERCASEWORDSCONCATENATED.
	UpperFlat
)

// variantCount is the number of case variants in the registry,
// aliases included.
const variantCount = int(UpperFlat) + 1

var caseNames = [variantCount]string{
	"Upper",
	"Lower",
	"Title",
	"Toggle",
	"Alternating",
	"Random",
	"PseudoRandom",
	"Camel",
	"Pascal",
	"UpperCamel",
	"Snake",
	"UpperSnake",
	"ScreamingSnake",
	"Kebab",
	"Cobol",
	"UpperKebab",
	"Train",
	"Flat",
	"UpperFlat",
}

// definition is the resolved (pattern, delimiter, boundary set) triple of
// a registered case.
type definition struct {
	pattern    pattern.Pattern
	delim      string
	boundaries []boundary.Boundary
}

// letterDigitBoundaries is the boundary set of the concatenated cases
// (Camel, Pascal): every letter/digit adjacency rule plus Acronym, and no
// consuming delimiters. Fresh copy per call.
func letterDigitBoundaries() []boundary.Boundary {
	return []boundary.Boundary{
		boundary.LowerUpper,
		boundary.UpperDigit, boundary.DigitUpper,
		boundary.DigitLower, boundary.LowerDigit,
		boundary.Acronym,
	}
}

// definition resolves the case's registry triple. Alias variants share a
// switch arm, so their triples are identical by construction. The boolean
// is false for out-of-range variants.
func (c Case) definition() (definition, bool) {
	switch c {
	case Upper:
		return definition{pattern.Uppercase, " ", []boundary.Boundary{boundary.Space}}, true
	case Lower:
		return definition{pattern.Lowercase, " ", []boundary.Boundary{boundary.Space}}, true
	case Title:
		return definition{pattern.Capital, " ", []boundary.Boundary{boundary.Space}}, true
	case Toggle:
		return definition{pattern.Toggle, " ", []boundary.Boundary{boundary.Space}}, true
	case Alternating:
		return definition{pattern.Alternating, " ", []boundary.Boundary{boundary.Space}}, true
	case Random:
		return definition{pattern.Random, " ", []boundary.Boundary{boundary.Space}}, true
	case PseudoRandom:
		return definition{pattern.PseudoRandom, " ", []boundary.Boundary{boundary.Space}}, true
	case Camel:
		return definition{pattern.Camel, "", letterDigitBoundaries()}, true
	case Pascal, UpperCamel:
		return definition{pattern.Capital, "", letterDigitBoundaries()}, true
	case Snake:
		return definition{pattern.Lowercase, "_", []boundary.Boundary{boundary.Underscore}}, true
	case UpperSnake, ScreamingSnake:
		return definition{pattern.Uppercase, "_", []boundary.Boundary{boundary.Underscore}}, true
	case Kebab:
		return definition{pattern.Lowercase, "-", []boundary.Boundary{boundary.Hyphen}}, true
	case Cobol, UpperKebab:
		return definition{pattern.Uppercase, "-", []boundary.Boundary{boundary.Hyphen}}, true
	case Train:
		return definition{pattern.Capital, "-", []boundary.Boundary{boundary.Hyphen}}, true
	case Flat:
		return definition{pattern.Lowercase, "", nil}, true
	case UpperFlat:
		return definition{pattern.Uppercase, "", nil}, true
	}
	return definition{}, false
}

// Valid reports whether c is a registered case.
func (c Case) Valid() bool {
	return int(c) < variantCount
}

// String returns the canonical name of the case, or "Unknown" for
// out-of-range variants.
func (c Case) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return caseNames[c]
}

// Deterministic reports whether converting to c produces the same output
// for the same input. Only Random and PseudoRandom are random-dependent.
func (c Case) Deterministic() bool {
	return c != Random && c != PseudoRandom
}

// Pattern returns the letter-casing pattern of the case. Out-of-range
// variants yield the zero pattern; validation happens at the conversion
// entry points.
func (c Case) Pattern() pattern.Pattern {
	def, _ := c.definition()
	return def.pattern
}

// Delim returns the delimiter the case joins words with.
func (c Case) Delim() string {
	def, _ := c.definition()
	return def.delim
}

// Boundaries returns the boundary set used to segment strings already
// written in this case. The returned slice is a fresh copy.
func (c Case) Boundaries() []boundary.Boundary {
	def, ok := c.definition()
	if !ok || len(def.boundaries) == 0 {
		return nil
	}
	out := make([]boundary.Boundary, len(def.boundaries))
	copy(out, def.boundaries)
	return out
}

// Aliases returns the other registered names that resolve to the same
// triple as c, or nil if c has none.
func (c Case) Aliases() []Case {
	var out []Case
	mine, ok := c.definition()
	if !ok {
		return nil
	}
	for other := Upper; other.Valid(); other++ {
		if other == c {
			continue
		}
		def, _ := other.definition()
		if def.pattern == mine.pattern && def.delim == mine.delim &&
			boundsEqual(def.boundaries, mine.boundaries) {
			out = append(out, other)
		}
	}
	return out
}

func boundsEqual(a, b []boundary.Boundary) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParseCase returns the case with the given name. Matching is
// case-insensitive and tolerates '-' and '_' separators, so
// "screaming-snake" and "ScreamingSnake" both resolve. It fails with an
// error matching caseerrors.ErrInvalidCase for unrecognized names.
func ParseCase(name string) (Case, error) {
	key := normalizeName(name)
	for c := Upper; c.Valid(); c++ {
		if normalizeName(caseNames[c]) == key {
			return c, nil
		}
	}
	return 0, &caseerrors.InvalidCaseError{Name: name, Value: -1}
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// AllCases returns every registered case, aliases included, in registry
// order.
func AllCases() []Case {
	out := make([]Case, 0, variantCount)
	for c := Upper; c.Valid(); c++ {
		out = append(out, c)
	}
	return out
}

// DeterministicCases returns every registered case whose conversion output
// is a pure function of its input.
func DeterministicCases() []Case {
	out := make([]Case, 0, variantCount-2)
	for c := Upper; c.Valid(); c++ {
		if c.Deterministic() {
			out = append(out, c)
		}
	}
	return out
}

// RandomCases returns the random-dependent cases.
func RandomCases() []Case {
	return []Case{Random, PseudoRandom}
}
