package gotoh

import "github.com/katalvlaran/seqalign/tracematrix"

// Result is Fill's return value. Trace carries the packed M-layer trace
// plane plus the Gotoh gap-state overlay (spec.md §4.2.2); FinalLayers is
// only meaningful in ModeGlobal, where the optimal score may be tied
// across more than one of the three DP layers at (nA,nB) — pathenum
// consults it to pick the layer(s) a Global backtrace may start from.
// ModeLocal leaves FinalLayers zero: every local alignment both starts
// and ends in the M layer (spec.md §4.2.2), so pathenum instead scans
// tracematrix.Endpoint cells directly.
type Result struct {
	Score       float64
	Trace       *tracematrix.Matrix
	FinalLayers tracematrix.TraceBit
}
