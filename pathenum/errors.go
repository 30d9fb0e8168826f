// Package pathenum: sentinel error set.
package pathenum

import "errors"

var (
	// ErrNilMatrix indicates New was called with a nil trace matrix.
	ErrNilMatrix = errors.New("pathenum: trace matrix is nil")
	// ErrUnknownAlgorithm indicates New was called with an Algorithm value
	// none of the three engines recognize.
	ErrUnknownAlgorithm = errors.New("pathenum: unknown algorithm")
)
