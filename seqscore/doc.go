// Package seqscore configures how a pair of symbol sequences is scored:
// match/mismatch or a substitution matrix, an optional wildcard symbol,
// the twelve gap penalties (open/extend × left/internal/right ×
// insertion/deletion) or a pair of variable-length gap callbacks, an
// epsilon tie tolerance, and the alignment mode (Global/Local/FOGSAA).
//
// A Model is immutable data from the engines' point of view: build it
// once with New(opts ...Option), then pass it to nwsw.Fill, gotoh.Fill,
// wsb.Fill, or fogsaa.Fill. Model.Algorithm() resolves which of those
// four engines a given configuration requires.
package seqscore
