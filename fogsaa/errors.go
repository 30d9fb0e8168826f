// Package fogsaa: sentinel error set.
package fogsaa

import "errors"

var (
	// ErrInvalidStrand indicates strand is neither '+' nor '-'.
	ErrInvalidStrand = errors.New("fogsaa: strand must be '+' or '-'")

	// ErrUnsupportedMode indicates the Model's mode is not ModeFOGSAA.
	ErrUnsupportedMode = errors.New("fogsaa: model is not configured for FOGSAA mode")

	// ErrEmptySequence indicates A or B has length 0.
	ErrEmptySequence = errors.New("fogsaa: sequences must be non-empty")
)
