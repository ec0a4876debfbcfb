package generations

import "errors"

var (
	// ErrNotFound indicates the generation does not exist.
	ErrNotFound = errors.New("generation not found")

	// ErrInvalidInput indicates a malformed generation record.
	ErrInvalidInput = errors.New("invalid input")
)
