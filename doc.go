// Package seqalign computes pairwise sequence alignments: global
// (Needleman-Wunsch), local (Smith-Waterman), affine-gap (Gotoh),
// general-gap-cost (Waterman-Smith-Beyer), and branch-and-bound
// best-first (FOGSAA), selected automatically from a seqscore.Model's
// configuration (spec.md §4.1).
//
// Score computes only the optimal alignment score. Align additionally
// returns either a lazy pathenum.Enumerator over every tied-optimal
// alignment (NW-SW, Gotoh, WSB) or a single fogsaa.Path (FOGSAA, which
// never retains the full matrix an Enumerator would walk). Rescore
// independently recomputes a path's score from its run-length
// coordinates, and Mapping remaps a caller's own symbol alphabet onto
// the dense 0..n-1 indices every engine expects.
//
// Callers build a *seqscore.Model with seqscore.New(opts...), then call
// Score or Align with two index sequences and a Strand.
package seqalign
