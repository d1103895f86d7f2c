package pattern

import "math/rand/v2"

// BitSource supplies the random bits consumed by the Random and
// PseudoRandom patterns. A source shared across concurrent conversions
// must be safe for concurrent use; the process-wide source returned by
// DefaultSource is.
type BitSource interface {
	// Bit returns one uniformly random bit.
	Bit() bool
}

// processSource draws from the math/rand/v2 package-level generator,
// which is safe for concurrent use.
type processSource struct{}

func (processSource) Bit() bool {
	return rand.Uint64()&1 == 1
}

// DefaultSource returns the process-wide bit source used when a
// conversion does not inject its own.
func DefaultSource() BitSource {
	return processSource{}
}

// seededSource is a deterministic PCG-backed source for tests. It is not
// safe for concurrent use; give each goroutine its own.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a deterministic BitSource seeded with seed.
// Two sources with the same seed produce the same bit sequence.
func NewSeededSource(seed uint64) BitSource {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededSource) Bit() bool {
	return s.rng.Uint64()&1 == 1
}
