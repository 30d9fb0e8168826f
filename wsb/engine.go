// Package wsb implements the Waterman-Smith-Beyer general-gap-cost DP
// engine (spec.md §4.2.3): like gotoh, an M layer plus Ix (gap in A) and
// Iy (gap in B) layers, but each gap layer is filled by scanning every
// possible run length k rather than by an O(1) open/extend step, since
// the per-length cost comes from an arbitrary seqscore.GapScoreFunc
// callback rather than an affine formula. It is selected whenever either
// WSB callback is installed on the Model (spec.md §4.1 rule 2),
// regardless of mode or gap shape, and runs in O(n^3) rather than the
// other three engines' O(n^2).
package wsb

import (
	"math"

	"github.com/katalvlaran/seqalign/internal/xmath"
	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/tracematrix"
)

var negInf = math.Inf(-1)

// Fill runs the WSB recurrence over A and B under model and strand. The
// caller is responsible for having confirmed model.Algorithm() ==
// seqscore.AlgorithmWSB.
func Fill(a, b []int, model *seqscore.Model, strand seqscore.Strand) (*Result, error) {
	if !strand.Valid() {
		return nil, ErrInvalidStrand
	}
	mode := model.Mode()
	if mode != seqscore.ModeGlobal && mode != seqscore.ModeLocal {
		return nil, ErrUnsupportedMode
	}
	if !model.HasGapFunctions() {
		return nil, ErrGapFunctionsRequired
	}
	nA, nB := len(a), len(b)
	if nA == 0 || nB == 0 {
		return nil, ErrEmptySequence
	}

	tm, err := tracematrix.New(nA, nB)
	if err != nil {
		return nil, err
	}
	tm.WithWSBOverlay()
	for i := 0; i <= nA; i++ {
		if err := tm.BeginRow(i, nB+1); err != nil {
			tm.DropRows(i)
			return nil, err
		}
	}

	eps := model.Epsilon()
	local := mode == seqscore.ModeLocal

	M := make([][]float64, nA+1)
	Ix := make([][]float64, nA+1)
	Iy := make([][]float64, nA+1)
	for i := range M {
		M[i] = make([]float64, nB+1)
		Ix[i] = make([]float64, nB+1)
		Iy[i] = make([]float64, nB+1)
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

	fillM := func(i, j int) {
		mPred, ixPred, iyPred := M[i-1][j-1], Ix[i-1][j-1], Iy[i-1][j-1]
		mCand, ixCand, iyCand := negInf, negInf, negInf
		pairScore, perr := model.PairScore(a[i-1], b[j-1])
		if perr == nil {
			if mPred != negInf {
				mCand = mPred + pairScore
			}
			if ixPred != negInf {
				ixCand = ixPred + pairScore
			}
			if iyPred != negInf {
				iyCand = iyPred + pairScore
			}
		}
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
			M[i][j] = raw
			return
		}
		// Every M cell that clamps to zero in local mode is a valid place
		// for a fresh local alignment to begin.
		tm.Set(i, j, tracematrix.Startpoint)
		M[i][j] = 0
	}

	// fillIx scans every gap length k = 1..j, sourced from either the M
	// or the Iy layer at (i, j-k), recording every length that ties the
	// cell's optimum into the matching overlay list.
	fillIx := func(i, j int) {
		ctx := contextOf(i, j)
		best := negInf
		type cand struct {
			k      int32
			fromM  bool
			fromIy bool
		}
		var cands []cand
		for k := 1; k <= j; k++ {
			cost, _ := model.GapCost(strand, ctx, seqscore.Deletion, i, k)
			if M[i][j-k] != negInf {
				v := M[i][j-k] + cost
				if v > best {
					best = v
				}
				cands = append(cands, cand{int32(k), true, false})
			}
			if Iy[i][j-k] != negInf {
				v := Iy[i][j-k] + cost
				if v > best {
					best = v
				}
				cands = append(cands, cand{int32(k), false, true})
			}
		}
		if best == negInf {
			Ix[i][j] = negInf
			return
		}
		// One list is appended in full before the other: the row slab
		// stores each cell's list as a single begin/end range.
		for _, c := range cands {
			cost, _ := model.GapCost(strand, ctx, seqscore.Deletion, i, int(c.k))
			if c.fromM && xmath.AlmostEqual(M[i][j-int(c.k)]+cost, best, eps) {
				_ = tm.AppendGapLength(i, j, tracematrix.ListMIx, c.k)
			}
		}
		for _, c := range cands {
			cost, _ := model.GapCost(strand, ctx, seqscore.Deletion, i, int(c.k))
			if c.fromIy && xmath.AlmostEqual(Iy[i][j-int(c.k)]+cost, best, eps) {
				_ = tm.AppendGapLength(i, j, tracematrix.ListIyIx, c.k)
			}
		}
		Ix[i][j] = best
	}

	// fillIy is the column-wise mirror of fillIx: gap in B, scanning rows
	// i-k for k = 1..i.
	fillIy := func(i, j int) {
		ctx := contextOf(i, j)
		best := negInf
		type cand struct {
			k      int32
			fromM  bool
			fromIx bool
		}
		var cands []cand
		for k := 1; k <= i; k++ {
			cost, _ := model.GapCost(strand, ctx, seqscore.Insertion, i-k, k)
			if M[i-k][j] != negInf {
				v := M[i-k][j] + cost
				if v > best {
					best = v
				}
				cands = append(cands, cand{int32(k), true, false})
			}
			if Ix[i-k][j] != negInf {
				v := Ix[i-k][j] + cost
				if v > best {
					best = v
				}
				cands = append(cands, cand{int32(k), false, true})
			}
		}
		if best == negInf {
			Iy[i][j] = negInf
			return
		}
		for _, c := range cands {
			cost, _ := model.GapCost(strand, ctx, seqscore.Insertion, i-int(c.k), int(c.k))
			if c.fromM && xmath.AlmostEqual(M[i-int(c.k)][j]+cost, best, eps) {
				_ = tm.AppendGapLength(i, j, tracematrix.ListMIy, c.k)
			}
		}
		for _, c := range cands {
			cost, _ := model.GapCost(strand, ctx, seqscore.Insertion, i-int(c.k), int(c.k))
			if c.fromIx && xmath.AlmostEqual(Ix[i-int(c.k)][j]+cost, best, eps) {
				_ = tm.AppendGapLength(i, j, tracematrix.ListIxIy, c.k)
			}
		}
		Iy[i][j] = best
	}

	// (0,0) has no predecessor in any layer, yet is itself a valid
	// local-alignment start.
	M[0][0], Ix[0][0], Iy[0][0] = 0, negInf, negInf
	if local {
		tm.Set(0, 0, tracematrix.Startpoint)
	} else {
		tm.Set(0, 0, 0)
	}

	for i := 0; i <= nA; i++ {
		for j := 0; j <= nB; j++ {
			if i == 0 && j == 0 {
				continue
			}
			switch {
			case i > 0 && j > 0:
				fillM(i, j)
			case local:
				// Row 0 / column 0: a free restart boundary. A local
				// alignment that opens after skipping a prefix of only
				// one sequence steps diagonally off this cell, not off
				// the origin.
				M[i][j] = 0
				tm.Set(i, j, tracematrix.Startpoint)
			default:
				M[i][j] = negInf
			}
			if j > 0 {
				fillIx(i, j)
			} else {
				Ix[i][0] = negInf
			}
			if i > 0 {
				fillIy(i, j)
			} else {
				Iy[0][j] = negInf
			}
		}
	}

	if local {
		if runningMax <= eps {
			tm.MarkNoLocalAlignment()
			return &Result{Score: 0, Trace: tm}, nil
		}
		sweepLocalReachability(tm, nA, nB)
		return &Result{Score: runningMax, Trace: tm}, nil
	}

	score := xmath.Max3(M[nA][nB], Ix[nA][nB], Iy[nA][nB])
	var final tracematrix.TraceBit
	if xmath.AlmostEqual(M[nA][nB], score, eps) {
		final |= tracematrix.MMatrix
	}
	if xmath.AlmostEqual(Ix[nA][nB], score, eps) {
		final |= tracematrix.IxMatrix
	}
	if xmath.AlmostEqual(Iy[nA][nB], score, eps) {
		final |= tracematrix.IyMatrix
	}
	return &Result{Score: score, Trace: tm, FinalLayers: final}, nil
}
