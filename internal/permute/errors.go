package permute

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidType is returned when the input is not a sequence of symbols.
	ErrInvalidType = errors.New("input must be a string")

	// ErrEmptyInput is returned when the input sequence has no symbols.
	ErrEmptyInput = errors.New("input string cannot be empty")
)

// InputError describes rejected input. It wraps ErrInvalidType or
// ErrEmptyInput so callers can match the kind with errors.Is.
type InputError struct {
	Kind error  // ErrInvalidType or ErrEmptyInput
	Type string // Go type of the rejected value
}

// Error implements the error interface for InputError.
func (e *InputError) Error() string {
	return fmt.Sprintf("%v (got %s)", e.Kind, e.Type)
}

// Unwrap returns the error kind for errors.Is matching.
func (e *InputError) Unwrap() error {
	return e.Kind
}

func invalidType(input any) error {
	return &InputError{Kind: ErrInvalidType, Type: fmt.Sprintf("%T", input)}
}

func invalidUTF8(input any) error {
	return &InputError{Kind: ErrInvalidType, Type: fmt.Sprintf("%T with invalid UTF-8", input)}
}

func emptyInput(input any) error {
	return &InputError{Kind: ErrEmptyInput, Type: fmt.Sprintf("%T", input)}
}
