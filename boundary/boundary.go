// Package boundary defines the closed catalog of word-boundary rules used
// to segment identifier-like strings into words.
//
// A boundary answers "does a word end between character i and i+1 (or at a
// single delimiter character)?". Consuming boundaries (Hyphen, Underscore,
// Space) discard the matched character; the letter/digit adjacency
// boundaries keep both characters, one on each side of the split.
//
// Boundaries are plain values. All functions in this package are pure and
// safe for concurrent use.
package boundary

import (
	"strings"
	"unicode"

	"github.com/erraggy/recase/caseerrors"
)

// Boundary identifies one rule from the closed boundary catalog.
type Boundary uint8

const (
	// Hyphen matches a '-' character and consumes it.
	Hyphen Boundary = iota
	// Underscore matches a '_' character and consumes it.
	Underscore
	// Space matches a ' ' character and consumes it.
	Space
	// UpperLower matches an uppercase letter followed by a lowercase letter,
	// splitting between them. Not part of Defaults: it conflicts with
	// Acronym on runs of capitals.
	UpperLower
	// LowerUpper matches a lowercase letter followed by an uppercase letter.
	LowerUpper
	// DigitUpper matches a digit followed by an uppercase letter.
	DigitUpper
	// UpperDigit matches an uppercase letter followed by a digit.
	UpperDigit
	// DigitLower matches a digit followed by a lowercase letter.
	DigitLower
	// LowerDigit matches a lowercase letter followed by a digit.
	LowerDigit
	// Acronym matches two uppercase letters followed by a lowercase letter,
	// splitting between the two uppercase letters. This keeps runs of
	// capitals like "HTTPRequest" together as "HTTP", "Request".
	Acronym
)

// variantCount is the number of boundary variants in the catalog.
const variantCount = int(Acronym) + 1

// boundaryNames maps each variant to its canonical name, in catalog order.
var boundaryNames = [variantCount]string{
	"Hyphen",
	"Underscore",
	"Space",
	"UpperLower",
	"LowerUpper",
	"DigitUpper",
	"UpperDigit",
	"DigitLower",
	"LowerDigit",
	"Acronym",
}

// Valid reports whether b is a variant of the boundary catalog.
func (b Boundary) Valid() bool {
	return int(b) < variantCount
}

// String returns the canonical name of the boundary, or "Unknown" for
// out-of-range variants.
func (b Boundary) String() string {
	if !b.Valid() {
		return "Unknown"
	}
	return boundaryNames[b]
}

// Consuming reports whether the boundary's matched character is discarded
// rather than assigned to either adjacent word.
func (b Boundary) Consuming() bool {
	switch b {
	case Hyphen, Underscore, Space:
		return true
	default:
		return false
	}
}

// Parse returns the boundary with the given name. Matching is
// case-insensitive and tolerates '-' and '_' separators, so "upper-lower",
// "upper_lower", and "UpperLower" all resolve to UpperLower. It fails with
// an error matching caseerrors.ErrInvalidBoundary for unrecognized names.
func Parse(name string) (Boundary, error) {
	key := normalizeName(name)
	for b := Hyphen; b.Valid(); b++ {
		if normalizeName(boundaryNames[b]) == key {
			return b, nil
		}
	}
	return 0, &caseerrors.InvalidBoundaryError{Name: name, Value: -1}
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Defaults returns the boundary set used when no source case is given:
// every variant except UpperLower. UpperLower is excluded because it
// conflicts with Acronym on runs of capitals ("HTTPRequest" would split at
// every adjacent capital pair instead of once before the last capital).
// The returned slice is a fresh copy on every call.
func Defaults() []Boundary {
	return []Boundary{
		Underscore, Hyphen, Space,
		LowerUpper, UpperDigit, DigitUpper, DigitLower, LowerDigit,
		Acronym,
	}
}

// All returns every variant in the catalog, including UpperLower.
// The returned slice is a fresh copy on every call.
func All() []Boundary {
	return []Boundary{
		Hyphen, Underscore, Space,
		UpperLower, LowerUpper,
		DigitUpper, UpperDigit, DigitLower, LowerDigit,
		Acronym,
	}
}

// match reports whether b fires against rs at position i. For 2- and
// 3-rune windows the split point is between rs[i] and rs[i+1].
func (b Boundary) match(rs []rune, i int) bool {
	switch b {
	case Hyphen:
		return rs[i] == '-'
	case Underscore:
		return rs[i] == '_'
	case Space:
		return rs[i] == ' '
	case UpperLower:
		return i+1 < len(rs) && unicode.IsUpper(rs[i]) && unicode.IsLower(rs[i+1])
	case LowerUpper:
		return i+1 < len(rs) && unicode.IsLower(rs[i]) && unicode.IsUpper(rs[i+1])
	case DigitUpper:
		return i+1 < len(rs) && unicode.IsDigit(rs[i]) && unicode.IsUpper(rs[i+1])
	case UpperDigit:
		return i+1 < len(rs) && unicode.IsUpper(rs[i]) && unicode.IsDigit(rs[i+1])
	case DigitLower:
		return i+1 < len(rs) && unicode.IsDigit(rs[i]) && unicode.IsLower(rs[i+1])
	case LowerDigit:
		return i+1 < len(rs) && unicode.IsLower(rs[i]) && unicode.IsDigit(rs[i+1])
	case Acronym:
		return i+2 < len(rs) &&
			unicode.IsUpper(rs[i]) && unicode.IsUpper(rs[i+1]) && unicode.IsLower(rs[i+2])
	}
	return false
}
