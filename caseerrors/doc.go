// Package caseerrors provides structured error types for recase.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors.
//
// # Error Categories
//
//   - InvalidCaseError: a case identifier outside the registered enumeration
//   - InvalidPatternError: a pattern identifier outside the closed pattern set
//   - InvalidBoundaryError: a boundary identifier outside the boundary catalog
//   - ConfigError: an invalid option or option combination
//
// All validation in recase is eager: these errors are returned before any
// segmentation work begins, and never accompany a partial result.
//
// # Usage with errors.Is
//
//	out, err := convert.ToCase(input, target)
//	if errors.Is(err, caseerrors.ErrInvalidCase) {
//	    // target was not a registered case
//	}
package caseerrors
