package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors abort the whole batch: without the boundary
	// columns no row can be classified.
	ErrMissingHeader = errors.New("required header not found")

	// Row errors are isolated to the offending row; the batch continues.
	ErrRowShape    = errors.New("row length does not match header row")
	ErrShortRecord = errors.New("basic information too short for experience position")

	// Flatten guard
	ErrAlreadyFlattened = errors.New("record already flattened")
)

// Error constructors with context
func NewMissingHeaderError(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingHeader, name)
}

func NewRowShapeError(index, got, want int) error {
	return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRowShape, index, got, want)
}

func NewShortRecordError(index, got, want int) error {
	return fmt.Errorf("%w: row %d has %d basic values, need %d", ErrShortRecord, index, got, want)
}

// Error checking helpers
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrMissingHeader)
}

func IsRowError(err error) bool {
	return errors.Is(err, ErrRowShape) || errors.Is(err, ErrShortRecord)
}
