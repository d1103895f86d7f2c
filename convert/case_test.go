package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/recase/boundary"
	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/pattern"
)

// The authoritative registry table: every named case with its pattern,
// delimiter, and boundary set.
func TestRegistryTable(t *testing.T) {
	letterDigit := []boundary.Boundary{
		boundary.LowerUpper,
		boundary.UpperDigit, boundary.DigitUpper,
		boundary.DigitLower, boundary.LowerDigit,
		boundary.Acronym,
	}

	tests := []struct {
		c          Case
		pattern    pattern.Pattern
		delim      string
		boundaries []boundary.Boundary
	}{
		{Upper, pattern.Uppercase, " ", []boundary.Boundary{boundary.Space}},
		{Lower, pattern.Lowercase, " ", []boundary.Boundary{boundary.Space}},
		{Title, pattern.Capital, " ", []boundary.Boundary{boundary.Space}},
		{Toggle, pattern.Toggle, " ", []boundary.Boundary{boundary.Space}},
		{Alternating, pattern.Alternating, " ", []boundary.Boundary{boundary.Space}},
		{Random, pattern.Random, " ", []boundary.Boundary{boundary.Space}},
		{PseudoRandom, pattern.PseudoRandom, " ", []boundary.Boundary{boundary.Space}},
		{Camel, pattern.Camel, "", letterDigit},
		{Pascal, pattern.Capital, "", letterDigit},
		{UpperCamel, pattern.Capital, "", letterDigit},
		{Snake, pattern.Lowercase, "_", []boundary.Boundary{boundary.Underscore}},
		{UpperSnake, pattern.Uppercase, "_", []boundary.Boundary{boundary.Underscore}},
		{ScreamingSnake, pattern.Uppercase, "_", []boundary.Boundary{boundary.Underscore}},
		{Kebab, pattern.Lowercase, "-", []boundary.Boundary{boundary.Hyphen}},
		{Cobol, pattern.Uppercase, "-", []boundary.Boundary{boundary.Hyphen}},
		{UpperKebab, pattern.Uppercase, "-", []boundary.Boundary{boundary.Hyphen}},
		{Train, pattern.Capital, "-", []boundary.Boundary{boundary.Hyphen}},
		{Flat, pattern.Lowercase, "", nil},
		{UpperFlat, pattern.Uppercase, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			assert.Equal(t, tt.pattern, tt.c.Pattern())
			assert.Equal(t, tt.delim, tt.c.Delim())
			assert.ElementsMatch(t, tt.boundaries, tt.c.Boundaries())
		})
	}
}

func TestIntrospection_ScreamingSnake(t *testing.T) {
	assert.Equal(t, "_", ScreamingSnake.Delim())
	assert.Equal(t, pattern.Uppercase, ScreamingSnake.Pattern())
}

// Alias names resolve to identical triples.
func TestAliases(t *testing.T) {
	pairs := [][2]Case{
		{Pascal, UpperCamel},
		{UpperSnake, ScreamingSnake},
		{Cobol, UpperKebab},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		t.Run(a.String()+"_"+b.String(), func(t *testing.T) {
			assert.Equal(t, a.Pattern(), b.Pattern())
			assert.Equal(t, a.Delim(), b.Delim())
			assert.Equal(t, a.Boundaries(), b.Boundaries())
			assert.Contains(t, a.Aliases(), b)
			assert.Contains(t, b.Aliases(), a)
		})
	}
}

func TestAliases_NoneForDistinctTriples(t *testing.T) {
	assert.Empty(t, Snake.Aliases())
	assert.Empty(t, Camel.Aliases())
}

func TestBoundaries_FreshCopy(t *testing.T) {
	bs := Snake.Boundaries()
	require.Len(t, bs, 1)
	bs[0] = boundary.Hyphen
	assert.Equal(t, []boundary.Boundary{boundary.Underscore}, Snake.Boundaries())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Upper", Upper.String())
	assert.Equal(t, "ScreamingSnake", ScreamingSnake.String())
	assert.Equal(t, "UpperFlat", UpperFlat.String())
	assert.Equal(t, "Unknown", Case(250).String())
}

func TestParseCase(t *testing.T) {
	tests := []struct {
		input string
		want  Case
	}{
		{"snake", Snake},
		{"Snake", Snake},
		{"SCREAMING-SNAKE", ScreamingSnake},
		{"screaming_snake", ScreamingSnake},
		{"pascal", Pascal},
		{"upper-camel", UpperCamel},
		{"kebab", Kebab},
		{"cobol", Cobol},
		{"upper-kebab", UpperKebab},
		{"pseudo-random", PseudoRandom},
		{"upperflat", UpperFlat},
		{"train", Train},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCase_Unknown(t *testing.T) {
	_, err := ParseCase("snek")
	require.Error(t, err)
	assert.True(t, errors.Is(err, caseerrors.ErrInvalidCase))

	var invalid *caseerrors.InvalidCaseError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "snek", invalid.Name)
}

func TestCaseEnumeration(t *testing.T) {
	all := AllCases()
	assert.Len(t, all, variantCount)

	det := DeterministicCases()
	assert.Len(t, det, variantCount-2)
	assert.NotContains(t, det, Random)
	assert.NotContains(t, det, PseudoRandom)

	rnd := RandomCases()
	assert.ElementsMatch(t, []Case{Random, PseudoRandom}, rnd)

	for _, c := range all {
		assert.True(t, c.Valid())
	}
}

func TestDeterministic(t *testing.T) {
	assert.False(t, Random.Deterministic())
	assert.False(t, PseudoRandom.Deterministic())
	assert.True(t, Snake.Deterministic())
	assert.True(t, Alternating.Deterministic(), "the Alternating case is stateful but not random")
}
