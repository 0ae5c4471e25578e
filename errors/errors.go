// Package errors provides error handling for playnashville.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNoChordsFound) {
//	    // handle empty input
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for the annotation pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotAChord indicates a token does not satisfy the chord grammar's
	// structural requirements. It is always absorbed locally (the token
	// passes through the annotator verbatim) and never surfaced to callers.
	ErrNotAChord = New("not a chord symbol")

	// ErrInvalidKey indicates an explicit key/mode argument does not resolve
	// to a cataloged tonality
	ErrInvalidKey = New("invalid key name")

	// ErrNoChordsFound indicates no chords were detected in the input and no
	// explicit key was given
	ErrNoChordsFound = New("no chords found in input text")

	// ErrNoTonalityMatch indicates scoring produced no candidate with at
	// least one chord hit
	ErrNoTonalityMatch = New("could not detect a tonality automatically")
)

// IsUserInputError reports whether err is one of the surfaced selection
// failures that should be reported to the caller as a bad-input error
// rather than an internal failure.
func IsUserInputError(err error) bool {
	return err != nil && IsAny(err, ErrInvalidKey, ErrNoChordsFound, ErrNoTonalityMatch)
}
