// Package gotoh implements the three-state affine-gap DP engine (spec.md
// §4.2.2): an M layer for match/mismatch steps and two gap layers, Ix
// (gap in A) and Iy (gap in B), each paying an open cost on entry and an
// extend cost on every further step in the same layer. It is selected
// whenever some (open, extend) pair of a seqscore.Model's gap costs
// differs and no WSB gap callback is installed (spec.md §4.1 rule 4).
package gotoh

import (
	"math"

	"github.com/katalvlaran/seqalign/internal/xmath"
	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/tracematrix"
)

var negInf = math.Inf(-1)

// Fill runs the Gotoh recurrence over A and B under model and strand,
// returning the optimal score, the filled trace matrix (with its Gotoh
// overlay allocated), and — for ModeGlobal — which of the three layers
// tie the final score. The caller is responsible for having confirmed
// model.Algorithm() == seqscore.AlgorithmGotoh.
func Fill(a, b []int, model *seqscore.Model, strand seqscore.Strand) (*Result, error) {
	if !strand.Valid() {
		return nil, ErrInvalidStrand
	}
	mode := model.Mode()
	if mode != seqscore.ModeGlobal && mode != seqscore.ModeLocal {
		return nil, ErrUnsupportedMode
	}
	nA, nB := len(a), len(b)
	if nA == 0 || nB == 0 {
		return nil, ErrEmptySequence
	}

	tm, err := tracematrix.New(nA, nB)
	if err != nil {
		return nil, err
	}
	tm.WithGotohOverlay()

	eps := model.Epsilon()
	local := mode == seqscore.ModeLocal

	prevM := make([]float64, nB+1)
	prevIx := make([]float64, nB+1)
	prevIy := make([]float64, nB+1)
	currM := make([]float64, nB+1)
	currIx := make([]float64, nB+1)
	currIy := make([]float64, nB+1)

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

	var runningMax float64
	var maxCells [][2]int
	trackEndpoint := func(i, j int, val float64) {
		if !local || val <= eps {
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

	// fillM computes M[i][j] given the three diagonal candidates (already
	// including pairScore). Every M cell that clamps to zero in local
	// mode is a valid place for a fresh local alignment to begin, so it
	// always receives STARTPOINT — including the origin, handled below,
	// which has no predecessor of its own.
	fillM := func(i, j int, mCand, ixCand, iyCand float64) float64 {
		raw := xmath.Max3(mCand, ixCand, iyCand)
		if !local || raw > eps {
			var bits tracematrix.TraceBit
			if mCand != negInf && xmath.AlmostEqual(mCand, raw, eps) {
				bits |= tracematrix.MMatrix
			}
			if ixCand != negInf && xmath.AlmostEqual(ixCand, raw, eps) {
				bits |= tracematrix.IxMatrix
			}
			if iyCand != negInf && xmath.AlmostEqual(iyCand, raw, eps) {
				bits |= tracematrix.IyMatrix
			}
			tm.Set(i, j, bits)
			trackEndpoint(i, j, raw)
			return raw
		}
		tm.Set(i, j, tracematrix.Startpoint)
		return 0
	}

	fillIx := func(i, j int, mPred, ixPred float64, ctx seqscore.GapContext) float64 {
		var openCand, extendCand float64 = negInf, negInf
		if mPred != negInf {
			openCand = mPred + model.GapOpen(strand, ctx, seqscore.Deletion)
		}
		if ixPred != negInf {
			extendCand = ixPred + model.GapExtend(strand, ctx, seqscore.Deletion)
		}
		val := xmath.Max2(openCand, extendCand)
		if val == negInf {
			return negInf
		}
		var bits tracematrix.TraceBit
		if openCand != negInf && xmath.AlmostEqual(openCand, val, eps) {
			bits |= tracematrix.MMatrix
		}
		if extendCand != negInf && xmath.AlmostEqual(extendCand, val, eps) {
			bits |= tracematrix.IxMatrix
		}
		tm.AddIxFrom(i, j, bits)
		return val
	}

	fillIy := func(i, j int, mPred, iyPred float64, ctx seqscore.GapContext) float64 {
		var openCand, extendCand float64 = negInf, negInf
		if mPred != negInf {
			openCand = mPred + model.GapOpen(strand, ctx, seqscore.Insertion)
		}
		if iyPred != negInf {
			extendCand = iyPred + model.GapExtend(strand, ctx, seqscore.Insertion)
		}
		val := xmath.Max2(openCand, extendCand)
		if val == negInf {
			return negInf
		}
		var bits tracematrix.TraceBit
		if openCand != negInf && xmath.AlmostEqual(openCand, val, eps) {
			bits |= tracematrix.MMatrix
		}
		if extendCand != negInf && xmath.AlmostEqual(extendCand, val, eps) {
			bits |= tracematrix.IyMatrix
		}
		tm.AddIyFrom(i, j, bits)
		return val
	}

	// (0,0) has no predecessor in any layer, yet is itself a valid
	// local-alignment start.
	prevM[0], prevIx[0], prevIy[0] = 0, negInf, negInf
	if local {
		tm.Set(0, 0, tracematrix.Startpoint)
	} else {
		tm.Set(0, 0, 0)
	}

	// Row 0: only Ix can accumulate (pure horizontal gap run). In local
	// mode, M is also defined here as a free restart boundary — a local
	// alignment that opens after skipping a B-only prefix steps
	// diagonally off this cell, not off the origin.
	for j := 1; j <= nB; j++ {
		ctx := contextOf(0, j)
		if local {
			prevM[j] = 0
			tm.Set(0, j, tracematrix.Startpoint)
		} else {
			prevM[j] = negInf
		}
		prevIy[j] = negInf
		prevIx[j] = fillIx(0, j, prevM[j-1], prevIx[j-1], ctx)
	}

	for i := 1; i <= nA; i++ {
		ctx0 := contextOf(i, 0)
		if local {
			currM[0] = 0
			tm.Set(i, 0, tracematrix.Startpoint)
		} else {
			currM[0] = negInf
		}
		currIx[0] = negInf
		currIy[0] = fillIy(i, 0, prevM[0], prevIy[0], ctx0)

		for j := 1; j <= nB; j++ {
			ctx := contextOf(i, j)
			pairScore, perr := model.PairScore(a[i-1], b[j-1])
			if perr != nil {
				return nil, perr
			}
			mCand, ixCand, iyCand := negInf, negInf, negInf
			if prevM[j-1] != negInf {
				mCand = prevM[j-1] + pairScore
			}
			if prevIx[j-1] != negInf {
				ixCand = prevIx[j-1] + pairScore
			}
			if prevIy[j-1] != negInf {
				iyCand = prevIy[j-1] + pairScore
			}
			currM[j] = fillM(i, j, mCand, ixCand, iyCand)
			currIx[j] = fillIx(i, j, currM[j-1], currIx[j-1], ctx)
			currIy[j] = fillIy(i, j, prevM[j], prevIy[j], ctx)
		}
		prevM, currM = currM, prevM
		prevIx, currIx = currIx, prevIx
		prevIy, currIy = currIy, prevIy
	}

	if local {
		if runningMax <= eps {
			tm.MarkNoLocalAlignment()
			return &Result{Score: 0, Trace: tm}, nil
		}
		sweepLocalReachability(tm, nA, nB)
		return &Result{Score: runningMax, Trace: tm}, nil
	}

	score := xmath.Max3(prevM[nB], prevIx[nB], prevIy[nB])
	var final tracematrix.TraceBit
	if xmath.AlmostEqual(prevM[nB], score, eps) {
		final |= tracematrix.MMatrix
	}
	if xmath.AlmostEqual(prevIx[nB], score, eps) {
		final |= tracematrix.IxMatrix
	}
	if xmath.AlmostEqual(prevIy[nB], score, eps) {
		final |= tracematrix.IyMatrix
	}
	return &Result{Score: score, Trace: tm, FinalLayers: final}, nil
}
