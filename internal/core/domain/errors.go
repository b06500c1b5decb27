package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidBook indicates a book that fails the shared export
	// precondition (nil book or empty title).
	ErrInvalidBook = errors.New("invalid book data")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a format identifier outside the
	// closed format enumeration.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
