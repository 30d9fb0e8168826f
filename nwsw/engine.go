// Package nwsw implements the linear-gap DP engine: Needleman-Wunsch for
// ModeGlobal, Smith-Waterman for ModeLocal. It is selected whenever a
// seqscore.Model's six (open, extend) gap pairs are all equal (spec.md
// §4.1 rule 3), so every gap step in this engine uses a single per-step
// cost — GapExtend — rather than distinguishing open from extend.
package nwsw

import (
	"math"

	"github.com/katalvlaran/seqalign/internal/xmath"
	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/tracematrix"
)

// Fill runs the NW/SW recurrence over A and B under model and strand,
// returning the optimal score and the filled trace matrix. The caller
// (normally the seqalign façade) is responsible for having confirmed
// model.Algorithm() == seqscore.AlgorithmNWSW.
func Fill(a, b []int, model *seqscore.Model, strand seqscore.Strand) (float64, *tracematrix.Matrix, error) {
	if !strand.Valid() {
		return 0, nil, ErrInvalidStrand
	}
	mode := model.Mode()
	if mode != seqscore.ModeGlobal && mode != seqscore.ModeLocal {
		return 0, nil, ErrUnsupportedMode
	}
	nA, nB := len(a), len(b)
	if nA == 0 || nB == 0 {
		return 0, nil, ErrEmptySequence
	}

	tm, err := tracematrix.New(nA, nB)
	if err != nil {
		return 0, nil, err
	}

	eps := model.Epsilon()
	local := mode == seqscore.ModeLocal

	prev := make([]float64, nB+1)
	curr := make([]float64, nB+1)

	var runningMax float64
	var maxCells [][2]int

	trackEndpoint := func(i, j int, val float64) {
		if !local {
			return
		}
		if val <= eps {
			return
		}
		if val-runningMax > eps {
			for _, c := range maxCells {
				tm.ClearBit(c[0], c[1], tracematrix.Endpoint)
			}
			maxCells = maxCells[:0]
			runningMax = val
		}
		if xmath.AlmostEqual(val, runningMax, eps) {
			tm.AddBit(i, j, tracematrix.Endpoint)
			maxCells = append(maxCells, [2]int{i, j})
		}
	}

	// fillCell computes one cell given its three raw candidate values
	// (use math.Inf(-1) for candidates that don't exist at a boundary).
	// Every cell that clamps to zero in local mode — including the
	// boundary row/column and the origin, which have no real predecessor
	// at all — is a valid place for the next diagonal step to begin a
	// fresh local alignment, so it always receives STARTPOINT.
	fillCell := func(i, j int, diagVal, vertVal, horizVal float64) float64 {
		raw := xmath.Max3(diagVal, vertVal, horizVal)
		if !local || raw > eps {
			val := raw
			if local && val < 0 {
				val = 0
			}
			var bits tracematrix.TraceBit
			if diagVal != math.Inf(-1) && xmath.AlmostEqual(diagVal, raw, eps) {
				bits |= tracematrix.Diagonal
			}
			if vertVal != math.Inf(-1) && xmath.AlmostEqual(vertVal, raw, eps) {
				bits |= tracematrix.Vertical
			}
			if horizVal != math.Inf(-1) && xmath.AlmostEqual(horizVal, raw, eps) {
				bits |= tracematrix.Horizontal
			}
			tm.Set(i, j, bits)
			trackEndpoint(i, j, val)
			return val
		}
		// local mode, raw <= eps: this cell resets to zero and can always
		// begin a fresh local alignment.
		tm.Set(i, j, tracematrix.Startpoint)
		return 0
	}

	contextOf := func(i, j int) seqscore.GapContext {
		switch {
		case i == 0 || j == 0:
			return seqscore.ContextLeft
		case i == nA || j == nB:
			return seqscore.ContextRight
		default:
			return seqscore.ContextInternal
		}
	}

	// Row 0: only HORIZONTAL predecessors exist. The origin has no
	// predecessor at all, yet is itself a valid local-alignment start.
	prev[0] = 0
	if local {
		tm.Set(0, 0, tracematrix.Startpoint)
	} else {
		tm.Set(0, 0, 0)
	}
	for j := 1; j <= nB; j++ {
		ctx := contextOf(0, j)
		horizVal := prev[j-1] + model.GapExtend(strand, ctx, seqscore.Deletion)
		prev[j] = fillCell(0, j, math.Inf(-1), math.Inf(-1), horizVal)
	}

	for i := 1; i <= nA; i++ {
		ctx0 := contextOf(i, 0)
		vertVal0 := prev[0] + model.GapExtend(strand, ctx0, seqscore.Insertion)
		curr[0] = fillCell(i, 0, math.Inf(-1), vertVal0, math.Inf(-1))

		for j := 1; j <= nB; j++ {
			ctx := contextOf(i, j)
			pairScore, perr := model.PairScore(a[i-1], b[j-1])
			if perr != nil {
				return 0, nil, perr
			}
			diagVal := prev[j-1] + pairScore
			vertVal := prev[j] + model.GapExtend(strand, ctx, seqscore.Insertion)
			horizVal := curr[j-1] + model.GapExtend(strand, ctx, seqscore.Deletion)
			curr[j] = fillCell(i, j, diagVal, vertVal, horizVal)
		}
		prev, curr = curr, prev
	}

	if local {
		if runningMax <= eps {
			tm.MarkNoLocalAlignment()
			return 0, tm, nil
		}
		tm.Reachable()
		return runningMax, tm, nil
	}
	return prev[nB], tm, nil
}
