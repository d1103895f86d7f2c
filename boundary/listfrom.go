package boundary

// ListFrom scans s once and returns the distinct boundary variants that
// fire anywhere in it, in catalog order. The result is conceptually a set:
// it records which rules occur, not where.
//
// When Acronym fires at a position, the UpperLower match inside its 3-rune
// window is not reported: the Acronym window subsumes it. This is the same
// suppression rule Split applies, so listing "AAa" yields only Acronym.
func ListFrom(s string) []Boundary {
	rs := []rune(s)
	var found [variantCount]bool

	for i := range rs {
		for _, b := range All() {
			if !b.match(rs, i) {
				continue
			}
			if b == UpperLower && i > 0 && Acronym.match(rs, i-1) {
				continue
			}
			found[b] = true
		}
	}

	var out []Boundary
	for b := Hyphen; b.Valid(); b++ {
		if found[b] {
			out = append(out, b)
		}
	}
	return out
}
