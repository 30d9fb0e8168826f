// Package nwsw: sentinel error set.
package nwsw

import "errors"

var (
	// ErrInvalidStrand indicates strand is neither '+' nor '-'.
	ErrInvalidStrand = errors.New("nwsw: strand must be '+' or '-'")

	// ErrUnsupportedMode indicates the Model's mode is ModeFOGSAA; this
	// engine only handles Global and Local. A caller reaching this with
	// ModeFOGSAA has a dispatch bug — seqscore.Model.Algorithm() should
	// never route FOGSAA mode here.
	ErrUnsupportedMode = errors.New("nwsw: unsupported alignment mode")

	// ErrEmptySequence indicates A or B has length 0.
	ErrEmptySequence = errors.New("nwsw: sequences must be non-empty")
)
