package boundary

// adjacencyOrder is the evaluation order for the 2-rune non-consuming
// rules during segmentation. The rules are mutually exclusive at a given
// position (their character classes differ), so order only determines
// which predicate short-circuits first.
var adjacencyOrder = [...]Boundary{
	UpperLower, LowerUpper, DigitUpper, UpperDigit, DigitLower, LowerDigit,
}

// Split segments s into words using the given active boundaries and
// returns them in their original order. Empty words are dropped, so runs
// of consecutive delimiters collapse.
//
// Resolution order at each position: consuming boundaries first (the
// matched character belongs to neither word), then Acronym (splitting
// between its two uppercase letters and suppressing the UpperLower match
// it subsumes at the next position), then the 2-rune adjacency rules
// (both characters retained, one on each side).
//
// Out-of-range variants in active are ignored; validated entry points
// reject them before segmentation starts.
func Split(s string, active []Boundary) []string {
	if s == "" {
		return nil
	}

	var on [variantCount]bool
	for _, b := range active {
		if b.Valid() {
			on[b] = true
		}
	}

	rs := []rune(s)
	var words []string
	start := 0
	flush := func(end int) {
		if end > start {
			words = append(words, string(rs[start:end]))
		}
	}

	// Position whose UpperLower match is subsumed by an Acronym match one
	// rune earlier.
	suppressed := -1

	for i := 0; i < len(rs); i++ {
		if (on[Hyphen] && Hyphen.match(rs, i)) ||
			(on[Underscore] && Underscore.match(rs, i)) ||
			(on[Space] && Space.match(rs, i)) {
			flush(i)
			start = i + 1
			continue
		}

		if on[Acronym] && Acronym.match(rs, i) {
			flush(i + 1)
			start = i + 1
			suppressed = i + 1
			continue
		}

		for _, b := range adjacencyOrder {
			if !on[b] {
				continue
			}
			if b == UpperLower && i == suppressed {
				continue
			}
			if b.match(rs, i) {
				flush(i + 1)
				start = i + 1
				break
			}
		}
	}
	flush(len(rs))
	return words
}
