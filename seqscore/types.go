// Package seqscore holds the scoring configuration shared by every DP
// engine: match/mismatch or substitution-matrix scoring, the twelve gap
// penalties (or a pair of variable-length gap callbacks), and the
// algorithm-selection rule of spec.md §4.1.
//
// Model is built once via New(opts ...Option) and then treated as
// read-only by the engines; any setter on an already-built Model
// invalidates the cached algorithm choice, matching the donor's
// functional-options convention (see dijkstra.Option in the example
// pack this was grown from).
package seqscore

import "fmt"

// Mode selects the alignment objective.
type Mode int

const (
	// ModeGlobal aligns the full length of both sequences (Needleman–Wunsch family).
	ModeGlobal Mode = iota
	// ModeLocal finds the highest-scoring substring alignment (Smith–Waterman family).
	ModeLocal
	// ModeFOGSAA selects the branch-and-bound engine regardless of gap shape.
	ModeFOGSAA
)

// String satisfies fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeGlobal:
		return "global"
	case ModeLocal:
		return "local"
	case ModeFOGSAA:
		return "fogsaa"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the recognized modes.
func (m Mode) Valid() bool {
	return m == ModeGlobal || m == ModeLocal || m == ModeFOGSAA
}

// Algorithm identifies which DP engine a Model resolves to.
type Algorithm int

const (
	// AlgorithmNWSW is the linear-gap Needleman-Wunsch/Smith-Waterman engine.
	AlgorithmNWSW Algorithm = iota
	// AlgorithmGotoh is the three-state affine-gap engine.
	AlgorithmGotoh
	// AlgorithmWSB is the general (callback-driven) gap-cost engine.
	AlgorithmWSB
	// AlgorithmFOGSAA is the branch-and-bound engine.
	AlgorithmFOGSAA
)

// String satisfies fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNWSW:
		return "nwsw"
	case AlgorithmGotoh:
		return "gotoh"
	case AlgorithmWSB:
		return "wsb"
	case AlgorithmFOGSAA:
		return "fogsaa"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Strand selects which orientation of sequence B is scored against A.
// StrandMinus reflects B: the façade/enumerator remap coordinates with
// nB-j at yield time, and engines swap their left/right gap parameters
// (spec.md §4.2 common contract) rather than reversing either sequence.
type Strand byte

const (
	StrandPlus  Strand = '+'
	StrandMinus Strand = '-'
)

// Valid reports whether s is '+' or '-'.
func (s Strand) Valid() bool {
	return s == StrandPlus || s == StrandMinus
}

// GapContext identifies where along a sequence a gap run sits.
type GapContext int

const (
	// ContextInternal: the gap touches neither sequence boundary.
	ContextInternal GapContext = iota
	// ContextLeft: the gap starts at row/column 0.
	ContextLeft
	// ContextRight: the gap ends at row nA or column nB.
	ContextRight
)

// GapDirection distinguishes the two gap layers: Deletion is a gap in A
// (the Ix layer consumes a B symbol with no A counterpart), Insertion is
// a gap in B (the Iy layer consumes an A symbol with no B counterpart).
type GapDirection int

const (
	Deletion GapDirection = iota
	Insertion
)

// GapScoreFunc computes the cost of a gap of length k immediately after
// sequence position i. Supplying both an insertion and a deletion
// GapScoreFunc forces algorithm selection to WSB (spec.md §4.1 rule 2).
type GapScoreFunc func(i, k int) float64

// GapScheme holds the twelve gap penalties as a flat, addressable
// structure: 3 contexts × 2 directions × {open, extend}. Representing
// the source's twelve independent setters this way collapses the
// frequent "are all gap costs equal?" checks to a single predicate
// (AllEqual), per spec.md §9 DESIGN NOTES.
type GapScheme struct {
	open   [3][2]float64
	extend [3][2]float64
}

// Open returns the open-gap penalty for the given context/direction.
func (g GapScheme) Open(ctx GapContext, dir GapDirection) float64 {
	return g.open[ctx][dir]
}

// Extend returns the extend-gap penalty for the given context/direction.
func (g GapScheme) Extend(ctx GapContext, dir GapDirection) float64 {
	return g.extend[ctx][dir]
}

// SetOpen sets the open-gap penalty for the given context/direction.
func (g *GapScheme) SetOpen(ctx GapContext, dir GapDirection, score float64) {
	g.open[ctx][dir] = score
}

// SetExtend sets the extend-gap penalty for the given context/direction.
func (g *GapScheme) SetExtend(ctx GapContext, dir GapDirection, score float64) {
	g.extend[ctx][dir] = score
}

// AllEqual reports whether open == extend for every one of the six
// (context, direction) pairs. When true, algorithm selection resolves to
// NW-SW (spec.md §4.1 rule 3); otherwise Gotoh.
func (g GapScheme) AllEqual() bool {
	for ctx := 0; ctx < 3; ctx++ {
		for dir := 0; dir < 2; dir++ {
			if g.open[ctx][dir] != g.extend[ctx][dir] {
				return false
			}
		}
	}
	return true
}

// contextForStrand swaps Left/Right when strand is '-', per spec.md
// §4.2's "strand reflects B" rule. Internal is unaffected.
func contextForStrand(strand Strand, ctx GapContext) GapContext {
	if strand != StrandMinus {
		return ctx
	}
	switch ctx {
	case ContextLeft:
		return ContextRight
	case ContextRight:
		return ContextLeft
	default:
		return ctx
	}
}
