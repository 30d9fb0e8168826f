// Package seqscore: sentinel error set.
//
// Every error returned by this package is one of the sentinels declared
// here, prefixed "seqscore: ..." for easy grepping. Callers should use
// errors.Is, not string comparison. Context is added with fmt.Errorf's
// %w verb at the call site, never inside the sentinel declaration.
package seqscore

import "errors"

var (
	// ErrInvalidMode indicates an unrecognized AlignmentMode value.
	ErrInvalidMode = errors.New("seqscore: invalid alignment mode")

	// ErrBadMatrixShape indicates a substitution matrix whose backing data
	// length does not equal size*size, or whose size is <= 0.
	ErrBadMatrixShape = errors.New("seqscore: substitution matrix must be square")

	// ErrIndexOutOfRange indicates a substitution-matrix lookup with a
	// row or column outside [0, size).
	ErrIndexOutOfRange = errors.New("seqscore: matrix index out of range")

	// ErrInvalidWildcard indicates a negative wildcard symbol index.
	ErrInvalidWildcard = errors.New("seqscore: wildcard must be a non-negative symbol index")

	// ErrInvalidGapLength indicates GapCost was asked for a gap of length <= 0.
	ErrInvalidGapLength = errors.New("seqscore: gap length must be positive")

	// ErrGapFunctionRequired indicates only one of the two WSB gap callbacks
	// was supplied; WSB requires both insertion and deletion functions.
	ErrGapFunctionRequired = errors.New("seqscore: both insertion and deletion gap functions must be supplied together")

	// ErrNegativeEpsilon indicates a negative tie-tolerance epsilon.
	ErrNegativeEpsilon = errors.New("seqscore: epsilon must be non-negative")
)
