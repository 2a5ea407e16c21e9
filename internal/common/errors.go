// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedFormat = errors.New("unsupported format")

	// Classification errors.
	ErrInvalidRule = errors.New("invalid classification rule")
	ErrNoSamples   = errors.New("no samples to classify")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// InputError describes a malformed field in a batch input file.
type InputError struct {
	Source string
	Field  string
	Value  string
	Row    int
}

func (e *InputError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s row %d: invalid %s %q", e.Source, e.Row, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: invalid %s %q", e.Source, e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
