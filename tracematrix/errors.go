// Package tracematrix: sentinel error set.
package tracematrix

import "errors"

var (
	// ErrBadDimensions indicates nRows or nCols <= 0 at construction.
	ErrBadDimensions = errors.New("tracematrix: dimensions must be > 0")

	// ErrIndexOutOfRange indicates a cell access outside [0,nRows)x[0,nCols).
	ErrIndexOutOfRange = errors.New("tracematrix: index out of range")

	// ErrOverlayNotAllocated indicates a Gotoh or WSB overlay accessor was
	// called on a Matrix that was never given that overlay.
	ErrOverlayNotAllocated = errors.New("tracematrix: overlay not allocated")

	// ErrOutOfMemory is returned when a row allocation fails partway
	// through filling the matrix; callers must release everything
	// allocated so far rather than leaking partial rows.
	ErrOutOfMemory = errors.New("tracematrix: allocation failed")
)
