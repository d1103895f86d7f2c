package convert

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/erraggy/recase/boundary"
	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/pattern"
)

// config is the immutable per-call configuration assembled from options.
// Unset fields keep explicit set flags rather than sentinel values, so a
// caller overriding a field to its zero value (e.g. an empty delimiter)
// still takes effect.
type config struct {
	pattern       pattern.Pattern
	patternSet    bool
	boundaries    []boundary.Boundary
	boundariesSet bool
	delim         string
	delimSet      bool
	source        Case
	sourceSet     bool
	bits          pattern.BitSource
	nfc           bool
}

// Option configures a single conversion call. Options validate their
// arguments eagerly: an invalid argument fails the call before any
// segmentation work begins.
type Option func(*config) error

// WithSourceCase segments the input using the boundary set of the given
// case instead of boundary.Defaults(). Only the case's boundaries are
// used; its pattern and delimiter are ignored.
func WithSourceCase(c Case) Option {
	return func(cfg *config) error {
		if !c.Valid() {
			return &caseerrors.InvalidCaseError{Value: int(c), Message: "source case"}
		}
		cfg.source = c
		cfg.sourceSet = true
		return nil
	}
}

// WithPattern overrides the letter-casing pattern.
func WithPattern(p pattern.Pattern) Option {
	return func(cfg *config) error {
		if !p.Valid() {
			return &caseerrors.InvalidPatternError{Value: int(p)}
		}
		cfg.pattern = p
		cfg.patternSet = true
		return nil
	}
}

// WithBoundaries overrides the boundary set used for segmentation. An
// empty set is legal and yields a single word (the Flat cases segment
// this way).
func WithBoundaries(bs ...boundary.Boundary) Option {
	return func(cfg *config) error {
		for _, b := range bs {
			if !b.Valid() {
				return &caseerrors.InvalidBoundaryError{Value: int(b)}
			}
		}
		cfg.boundaries = make([]boundary.Boundary, len(bs))
		copy(cfg.boundaries, bs)
		cfg.boundariesSet = true
		return nil
	}
}

// WithDelim overrides the delimiter placed between words.
func WithDelim(d string) Option {
	return func(cfg *config) error {
		cfg.delim = d
		cfg.delimSet = true
		return nil
	}
}

// WithBitSource injects the random-bit source consumed by the Random and
// PseudoRandom patterns, replacing the process-wide source. Use
// pattern.NewSeededSource for deterministic output.
func WithBitSource(src pattern.BitSource) Option {
	return func(cfg *config) error {
		if src == nil {
			return &caseerrors.ConfigError{Option: "WithBitSource", Message: "nil bit source"}
		}
		cfg.bits = src
		return nil
	}
}

// WithNFC normalizes the input to Unicode NFC before segmentation, so
// combining marks do not defeat the rune-window boundary predicates.
// Off by default.
func WithNFC() Option {
	return func(cfg *config) error {
		cfg.nfc = true
		return nil
	}
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// sourceBoundaries resolves the boundary set segmentation will use:
// explicit boundaries win over a source case, which wins over
// boundary.Defaults().
func (cfg *config) sourceBoundaries() []boundary.Boundary {
	if cfg.boundariesSet {
		return cfg.boundaries
	}
	if cfg.sourceSet {
		return cfg.source.Boundaries()
	}
	return boundary.Defaults()
}

func (cfg *config) normalize(input string) string {
	if cfg.nfc {
		return norm.NFC.String(input)
	}
	return input
}

// ToCase converts input to the target case: the input is segmented using
// boundary.Defaults() (or the source case's boundaries, see
// WithSourceCase), each word is re-cased with the target's pattern, and
// the words are joined with the target's delimiter.
//
// Validation is eager: an unregistered target or invalid option fails
// with a caseerrors error before any segmentation happens. The input is
// never modified.
func ToCase(input string, target Case, opts ...Option) (string, error) {
	if !target.Valid() {
		return "", &caseerrors.InvalidCaseError{Value: int(target)}
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}
	return convertWith(input, target, cfg)
}

// ToCaseFrom converts input to the target case, segmenting with the
// boundary set of the source case. It is shorthand for
// ToCase(input, target, WithSourceCase(source)).
func ToCaseFrom(input string, target, source Case, opts ...Option) (string, error) {
	withSource := make([]Option, 0, len(opts)+1)
	withSource = append(withSource, opts...)
	withSource = append(withSource, WithSourceCase(source))
	return ToCase(input, target, withSource...)
}

// IsCase reports whether input is already written in the target case.
// The check is a pure round trip: the input is converted to target using
// target's own boundary set as source, and the result is compared
// byte-for-byte with the input. A string can therefore satisfy IsCase "by
// accident" if it happens to match the target's pattern already.
func IsCase(input string, target Case, opts ...Option) (bool, error) {
	if !target.Valid() {
		return false, &caseerrors.InvalidCaseError{Value: int(target)}
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return false, err
	}
	cfg.source = target
	cfg.sourceSet = true
	cfg.boundariesSet = false
	out, err := convertWith(input, target, cfg)
	if err != nil {
		return false, err
	}
	return out == input, nil
}

// Mutate converts input using explicit overrides instead of a named
// target case. Unset fields fall back to the behavior of a bare call:
// segmentation with boundary.Defaults(), empty delimiter, and — when no
// pattern is given — letter-casing left untouched.
func Mutate(input string, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}

	words := boundary.Split(cfg.normalize(input), cfg.sourceBoundaries())
	if cfg.patternSet {
		words, err = cfg.pattern.Apply(words, cfg.bits)
		if err != nil {
			return "", err
		}
	}
	return strings.Join(words, cfg.delim), nil
}

// convertWith runs the segment → pattern → join pipeline for a validated
// target case, with cfg's overrides applied on top of the target's triple.
func convertWith(input string, target Case, cfg *config) (string, error) {
	def, _ := target.definition()

	p := def.pattern
	if cfg.patternSet {
		p = cfg.pattern
	}
	delim := def.delim
	if cfg.delimSet {
		delim = cfg.delim
	}

	words := boundary.Split(cfg.normalize(input), cfg.sourceBoundaries())
	words, err := p.Apply(words, cfg.bits)
	if err != nil {
		return "", err
	}
	return strings.Join(words, delim), nil
}
