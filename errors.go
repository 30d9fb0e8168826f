// Package seqalign: sentinel error set for the root façade.
//
// Every engine package declares its own sentinels; this file adds only
// the few that are specific to dispatch and to the façade-level Rescore
// utility. Context is added with fmt.Errorf's %w verb at the call site,
// never inside the sentinel declaration, matching every other package's
// convention in this module.
package seqalign

import "errors"

var (
	// ErrEmptySequence indicates one of the two input sequences has length 0.
	ErrEmptySequence = errors.New("seqalign: sequence must be non-empty")

	// ErrInvalidStrand indicates a Strand value other than '+' or '-'.
	ErrInvalidStrand = errors.New("seqalign: strand must be '+' or '-'")

	// ErrUnsupportedAlgorithm indicates Model.Algorithm() resolved to a
	// value this façade does not know how to dispatch — unreachable for
	// any Model built through seqscore.New, kept as a defensive sentinel.
	ErrUnsupportedAlgorithm = errors.New("seqalign: unsupported algorithm")

	// ErrMismatchedPathLength indicates Rescore was given rowsA and rowsB
	// that aren't the same even length; every run in a path contributes
	// one (start, end) pair to each of rowsA and rowsB, so the two must
	// be parallel and each must hold a whole number of runs.
	ErrMismatchedPathLength = errors.New("seqalign: rowsA and rowsB must have equal, even length")

	// ErrPathOutOfOrder indicates a diagonal column in a Rescore path
	// named indices other than the next unconsumed A/B position, i.e.
	// the supplied coordinates do not describe a monotone alignment path.
	ErrPathOutOfOrder = errors.New("seqalign: path coordinates are not monotone")

	// ErrIncompletePath indicates a Rescore path that does not consume
	// every symbol of both a and b by its last column.
	ErrIncompletePath = errors.New("seqalign: path does not span both sequences")
)
