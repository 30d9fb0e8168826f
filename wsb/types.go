package wsb

import "github.com/katalvlaran/seqalign/tracematrix"

// Result is Fill's return value, mirroring gotoh.Result: FinalLayers is
// only meaningful in ModeGlobal, naming which of the three DP layers tie
// the optimal score at (nA,nB).
type Result struct {
	Score       float64
	Trace       *tracematrix.Matrix
	FinalLayers tracematrix.TraceBit
}
