package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrInputMissing      = errors.New("required input missing")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFormat            = errors.New("file is not valid tabular data")

	// Sheet structure errors
	ErrHeaderNotFound = errors.New("student header row not found")
	ErrMissingColumn  = errors.New("required column not found")

	// Read path errors
	ErrNotFound = errors.New("no matching records")

	// Storage errors
	ErrPersistence = errors.New("storage failure")
)

// MissingColumnError reports which column the header locator could not resolve.
// Column is one of: name, roll, present, absent, total-amount.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column not found: %s", e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

func NewInputMissingError(what string) error {
	return fmt.Errorf("%w: %s", ErrInputMissing, what)
}

func NewFormatError(reason string) error {
	return fmt.Errorf("%w: %s", ErrFormat, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInputError reports whether err was caused by the caller's input rather
// than by the system itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInputMissing) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrFormat) ||
		errors.Is(err, ErrHeaderNotFound) ||
		errors.Is(err, ErrMissingColumn)
}
