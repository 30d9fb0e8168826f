// Package gotoh: sentinel error set.
package gotoh

import "errors"

var (
	// ErrInvalidStrand indicates strand is neither '+' nor '-'.
	ErrInvalidStrand = errors.New("gotoh: strand must be '+' or '-'")

	// ErrUnsupportedMode indicates the Model's mode is ModeFOGSAA; this
	// engine only handles Global and Local.
	ErrUnsupportedMode = errors.New("gotoh: unsupported alignment mode")

	// ErrEmptySequence indicates A or B has length 0.
	ErrEmptySequence = errors.New("gotoh: sequences must be non-empty")
)
