package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"snake words", "super_mario_64", []string{"super", "mario", "64"}},
		{"kebab words", "to-be-or-not", []string{"to", "be", "or", "not"}},
		{"space words", "hello world", []string{"hello", "world"}},
		{"camel words", "aCamelString", []string{"a", "Camel", "String"}},
		{"acronym run", "HTTPRequest", []string{"HTTP", "Request"}},
		{"acronym mid-string", "parseHTTPResponse", []string{"parse", "HTTP", "Response"}},
		{"trailing acronym kept whole", "requestHTTP", []string{"request", "HTTP"}},
		{"digit adjacency", "amount10x", []string{"amount", "10", "x"}},
		{"upper digit", "mario64", []string{"mario", "64"}},
		{"digit upper", "64Mario", []string{"64", "Mario"}},
		{"mixed delimiters", "a   very -__strangeCombination-INDEED",
			[]string{"a", "very", "strange", "Combination", "INDEED"}},
		{"empty string", "", nil},
		{"only delimiters", "-_ _-", nil},
		{"single word", "word", []string{"word"}},
		{"non-ascii letters", "niñoNiño", []string{"niño", "Niño"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input, Defaults()))
		})
	}
}

func TestSplit_ExplicitSets(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		active []Boundary
		want   []string
	}{
		{"underscore only ignores hyphen", "to-be_or", []Boundary{Underscore}, []string{"to-be", "or"}},
		{"hyphen only keeps underscores", "toBe_or not-to-BE", []Boundary{Hyphen},
			[]string{"toBe_or not", "to", "BE"}},
		{"upper digit only", "567N9854G321K", []Boundary{UpperDigit},
			[]string{"567N", "9854G", "321K"}},
		{"no boundaries yields one word", "a-b_c d", nil, []string{"a-b_c d"}},
		{"upper lower splits between the pair", "HTTPRequest", []Boundary{UpperLower},
			[]string{"HTTPR", "equest"}},
		{"acronym with upper lower suppressed", "AAa", All(), []string{"A", "Aa"}},
		{"upper lower alone on capital run", "AAa", []Boundary{UpperLower}, []string{"AA", "a"}},
		{"invalid variants ignored", "a_b", []Boundary{Underscore, Boundary(200)}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input, tt.active))
		})
	}
}

// A non-consuming split keeps both characters: chained adjacency rules
// fire one after the other.
func TestSplit_ChainedAdjacency(t *testing.T) {
	// LowerDigit then DigitUpper on consecutive positions.
	assert.Equal(t, []string{"a", "1", "B"}, Split("a1B", Defaults()))
}

func TestSplit_PreservesOrder(t *testing.T) {
	words := Split("one_two_three_four", Defaults())
	assert.Equal(t, []string{"one", "two", "three", "four"}, words)
}
