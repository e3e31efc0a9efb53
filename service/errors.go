package service

import (
	"errors"
	"fmt"
)

// ErrMissingOrInvalidInput is returned when the goal fields needed for
// quantification are absent or not numeric.
var ErrMissingOrInvalidInput = errors.New("missing or invalid input")

// InputError names the offending field. It matches ErrMissingOrInvalidInput
// with errors.Is.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMissingOrInvalidInput, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrMissingOrInvalidInput
}

func invalidInput(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ErrNonFiniteResult is returned when the computed record holds NaN or an
// infinity, which JSON cannot carry.
var ErrNonFiniteResult = errors.New("quantification result is not a finite number")
