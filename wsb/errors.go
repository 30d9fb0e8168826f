// Package wsb: sentinel error set.
package wsb

import "errors"

var (
	// ErrInvalidStrand indicates strand is neither '+' nor '-'.
	ErrInvalidStrand = errors.New("wsb: strand must be '+' or '-'")

	// ErrUnsupportedMode indicates the Model's mode is ModeFOGSAA; this
	// engine only handles Global and Local.
	ErrUnsupportedMode = errors.New("wsb: unsupported alignment mode")

	// ErrEmptySequence indicates A or B has length 0.
	ErrEmptySequence = errors.New("wsb: sequences must be non-empty")

	// ErrGapFunctionsRequired indicates Fill was called on a Model with no
	// WSB gap callbacks installed; the caller should have routed it to
	// nwsw or gotoh instead.
	ErrGapFunctionsRequired = errors.New("wsb: model has no gap-length callbacks")
)
