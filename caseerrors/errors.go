package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidCase indicates a case identifier outside the registered enumeration.
	ErrInvalidCase = errors.New("invalid case")

	// ErrInvalidPattern indicates a pattern identifier outside the closed pattern set.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidBoundary indicates a boundary identifier outside the boundary catalog.
	ErrInvalidBoundary = errors.New("invalid boundary")

	// ErrConfig indicates an invalid option or option combination.
	ErrConfig = errors.New("configuration error")
)

// InvalidCaseError represents a case identifier that is not part of the
// registered case enumeration. This includes out-of-range numeric variants
// and unrecognized case names.
type InvalidCaseError struct {
	// Name is the textual case name, when the identifier was parsed from a string
	Name string
	// Value is the numeric variant, when the identifier was supplied as a value (-1 if unknown)
	Value int
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidCaseError) Error() string {
	msg := "invalid case"
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	} else if e.Value >= 0 {
		msg += fmt.Sprintf(" (value: %d)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidCaseError) Is(target error) bool {
	return target == ErrInvalidCase
}

// InvalidPatternError represents a pattern identifier that is not part of
// the closed pattern set.
type InvalidPatternError struct {
	// Name is the textual pattern name, when the identifier was parsed from a string
	Name string
	// Value is the numeric variant, when the identifier was supplied as a value (-1 if unknown)
	Value int
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidPatternError) Error() string {
	msg := "invalid pattern"
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	} else if e.Value >= 0 {
		msg += fmt.Sprintf(" (value: %d)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// InvalidBoundaryError represents a boundary identifier that is not part of
// the boundary catalog.
type InvalidBoundaryError struct {
	// Name is the textual boundary name, when the identifier was parsed from a string
	Name string
	// Value is the numeric variant, when the identifier was supplied as a value (-1 if unknown)
	Value int
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidBoundaryError) Error() string {
	msg := "invalid boundary"
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	} else if e.Value >= 0 {
		msg += fmt.Sprintf(" (value: %d)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidBoundaryError) Is(target error) bool {
	return target == ErrInvalidBoundary
}

// ConfigError represents an invalid option or option combination supplied
// to a conversion call.
type ConfigError struct {
	// Option is the name of the problematic option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
