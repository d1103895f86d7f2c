// Package pattern defines the closed set of letter-casing patterns applied
// to segmented words.
//
// Patterns operate word-by-word, left to right. Most are stateless;
// Alternating carries its phase across word boundaries, and Random and
// PseudoRandom consume bits from an injectable BitSource so they can be
// made deterministic under test.
package pattern

import (
	"strings"
	"unicode"

	"github.com/erraggy/recase/caseerrors"
)

// Pattern identifies one rule from the closed pattern set.
type Pattern uint8

const (
	// Lowercase maps every character to lowercase.
	Lowercase Pattern = iota
	// Uppercase maps every character to uppercase.
	Uppercase
	// Capital maps the first character of each word to uppercase and the
	// rest to lowercase.
	Capital
	// Sentence applies Capital to the first word and Lowercase to the rest.
	Sentence
	// Camel applies Lowercase to the first word and Capital to the rest.
	Camel
	// Alternating alternates lower/upper per cased letter, starting from
	// lowercase. The phase carries across word boundaries; uncased
	// characters pass through without advancing it.
	Alternating
	// Toggle maps the first character of each word to lowercase and the
	// rest to uppercase.
	Toggle
	// Random chooses upper or lower independently per character, one fresh
	// random bit each.
	Random
	// PseudoRandom processes each word's characters in consecutive pairs;
	// every pair becomes (upper, lower) or (lower, upper) by one random
	// bit, and an odd trailing character is cased by its own bit. No run
	// of three same-case letters can occur within a word.
	PseudoRandom
)

// variantCount is the number of pattern variants in the closed set.
const variantCount = int(PseudoRandom) + 1

var patternNames = [variantCount]string{
	"Lowercase",
	"Uppercase",
	"Capital",
	"Sentence",
	"Camel",
	"Alternating",
	"Toggle",
	"Random",
	"PseudoRandom",
}

// Valid reports whether p is a variant of the closed pattern set.
func (p Pattern) Valid() bool {
	return int(p) < variantCount
}

// String returns the canonical name of the pattern, or "Unknown" for
// out-of-range variants.
func (p Pattern) String() string {
	if !p.Valid() {
		return "Unknown"
	}
	return patternNames[p]
}

// Deterministic reports whether the pattern produces the same output for
// the same input. Only Random and PseudoRandom are non-deterministic.
func (p Pattern) Deterministic() bool {
	return p != Random && p != PseudoRandom
}

// Parse returns the pattern with the given name. Matching is
// case-insensitive and tolerates '-' and '_' separators. It fails with an
// error matching caseerrors.ErrInvalidPattern for unrecognized names.
func Parse(name string) (Pattern, error) {
	key := normalizeName(name)
	for p := Lowercase; p.Valid(); p++ {
		if normalizeName(patternNames[p]) == key {
			return p, nil
		}
	}
	return 0, &caseerrors.InvalidPatternError{Name: name, Value: -1}
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Apply returns a new word sequence with p's casing rule applied. The
// input words are never modified. bits is consumed only by Random and
// PseudoRandom; nil means the process-wide source. Out-of-range patterns
// fail with an error matching caseerrors.ErrInvalidPattern before any word
// is touched.
func (p Pattern) Apply(words []string, bits BitSource) ([]string, error) {
	if !p.Valid() {
		return nil, &caseerrors.InvalidPatternError{Value: int(p)}
	}
	if bits == nil {
		bits = DefaultSource()
	}

	out := make([]string, len(words))
	switch p {
	case Lowercase:
		for i, w := range words {
			out[i] = strings.ToLower(w)
		}
	case Uppercase:
		for i, w := range words {
			out[i] = strings.ToUpper(w)
		}
	case Capital:
		for i, w := range words {
			out[i] = capitalWord(w)
		}
	case Sentence:
		for i, w := range words {
			if i == 0 {
				out[i] = capitalWord(w)
			} else {
				out[i] = strings.ToLower(w)
			}
		}
	case Camel:
		for i, w := range words {
			if i == 0 {
				out[i] = strings.ToLower(w)
			} else {
				out[i] = capitalWord(w)
			}
		}
	case Toggle:
		for i, w := range words {
			out[i] = toggleWord(w)
		}
	case Alternating:
		alternate(words, out)
	case Random:
		randomize(words, out, bits)
	case PseudoRandom:
		pseudoRandomize(words, out, bits)
	}
	return out, nil
}

// capitalWord uppercases the first character and lowercases the rest.
func capitalWord(w string) string {
	rs := []rune(w)
	for i, r := range rs {
		if i == 0 {
			rs[i] = unicode.ToUpper(r)
		} else {
			rs[i] = unicode.ToLower(r)
		}
	}
	return string(rs)
}

// toggleWord lowercases the first character and uppercases the rest.
func toggleWord(w string) string {
	rs := []rune(w)
	for i, r := range rs {
		if i == 0 {
			rs[i] = unicode.ToLower(r)
		} else {
			rs[i] = unicode.ToUpper(r)
		}
	}
	return string(rs)
}

// alternate flips between lower and upper per cased letter. The phase
// starts at lowercase and is not reset between words.
func alternate(words []string, out []string) {
	upper := false
	for i, w := range words {
		rs := []rune(w)
		for j, r := range rs {
			if !unicode.IsUpper(r) && !unicode.IsLower(r) {
				continue
			}
			if upper {
				rs[j] = unicode.ToUpper(r)
			} else {
				rs[j] = unicode.ToLower(r)
			}
			upper = !upper
		}
		out[i] = string(rs)
	}
}

// randomize draws one bit per character: true means upper, false lower.
func randomize(words []string, out []string, bits BitSource) {
	for i, w := range words {
		rs := []rune(w)
		for j, r := range rs {
			if bits.Bit() {
				rs[j] = unicode.ToUpper(r)
			} else {
				rs[j] = unicode.ToLower(r)
			}
		}
		out[i] = string(rs)
	}
}

// pseudoRandomize cases each word's characters in pairs. One bit decides
// whether a pair is (upper, lower) or (lower, upper); an odd trailing
// character gets its own bit. Every 2-letter block holds exactly one of
// each case, so no word can contain a run of three same-case letters.
func pseudoRandomize(words []string, out []string, bits BitSource) {
	for i, w := range words {
		rs := []rune(w)
		var b strings.Builder
		b.Grow(len(w))
		j := 0
		for ; j+1 < len(rs); j += 2 {
			if bits.Bit() {
				b.WriteRune(unicode.ToUpper(rs[j]))
				b.WriteRune(unicode.ToLower(rs[j+1]))
			} else {
				b.WriteRune(unicode.ToLower(rs[j]))
				b.WriteRune(unicode.ToUpper(rs[j+1]))
			}
		}
		if j < len(rs) {
			if bits.Bit() {
				b.WriteRune(unicode.ToUpper(rs[j]))
			} else {
				b.WriteRune(unicode.ToLower(rs[j]))
			}
		}
		out[i] = b.String()
	}
}
