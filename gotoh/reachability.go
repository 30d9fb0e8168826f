package gotoh

import "github.com/katalvlaran/seqalign/tracematrix"

// sweepLocalReachability extends tracematrix's row-major reachability
// pass (spec.md §4.3) across all three DP layers: a cell in the M layer
// is reachable if it carries STARTPOINT or if the layer its trace bits
// point to at (i-1,j-1) is itself reachable; Ix/Iy are reachable if the
// layer their overlay bits point to is reachable at the cell they step
// from. Bits pointing at an unreachable predecessor are cleared so
// pathenum never walks into a dead branch (one whose only predecessors
// are non-STARTPOINT zero cells).
func sweepLocalReachability(tm *tracematrix.Matrix, nA, nB int) {
	nRows, nCols := nA+1, nB+1
	reachM := make([]bool, nRows*nCols)
	reachIx := make([]bool, nRows*nCols)
	reachIy := make([]bool, nRows*nCols)
	at := func(i, j int) int { return i*nCols + j }

	for i := 0; i <= nA; i++ {
		for j := 0; j <= nB; j++ {
			bits := tm.At(i, j)
			idx := at(i, j)
			switch {
			case bits.Has(tracematrix.Startpoint):
				reachM[idx] = true
			case i > 0 && j > 0:
				var ok bool
				if bits.Has(tracematrix.MMatrix) && reachM[at(i-1, j-1)] {
					ok = true
				}
				if bits.Has(tracematrix.IxMatrix) && reachIx[at(i-1, j-1)] {
					ok = true
				}
				if bits.Has(tracematrix.IyMatrix) && reachIy[at(i-1, j-1)] {
					ok = true
				}
				reachM[idx] = ok
			}

			if j > 0 {
				ixFrom, _ := tm.IxFrom(i, j)
				var ok bool
				if ixFrom.Has(tracematrix.MMatrix) && reachM[at(i, j-1)] {
					ok = true
				}
				if ixFrom.Has(tracematrix.IxMatrix) && reachIx[at(i, j-1)] {
					ok = true
				}
				reachIx[idx] = ok
			}
			if i > 0 {
				iyFrom, _ := tm.IyFrom(i, j)
				var ok bool
				if iyFrom.Has(tracematrix.MMatrix) && reachM[at(i-1, j)] {
					ok = true
				}
				if iyFrom.Has(tracematrix.IyMatrix) && reachIy[at(i-1, j)] {
					ok = true
				}
				reachIy[idx] = ok
			}
		}
	}

	for i := 0; i <= nA; i++ {
		for j := 0; j <= nB; j++ {
			bits := tm.At(i, j)
			if bits.Has(tracematrix.MMatrix) && !(i > 0 && j > 0 && reachM[at(i-1, j-1)]) {
				tm.ClearBit(i, j, tracematrix.MMatrix)
			}
			if bits.Has(tracematrix.IxMatrix) && !(i > 0 && j > 0 && reachIx[at(i-1, j-1)]) {
				tm.ClearBit(i, j, tracematrix.IxMatrix)
			}
			if bits.Has(tracematrix.IyMatrix) && !(i > 0 && j > 0 && reachIy[at(i-1, j-1)]) {
				tm.ClearBit(i, j, tracematrix.IyMatrix)
			}

			if j > 0 {
				ixFrom, _ := tm.IxFrom(i, j)
				if ixFrom.Has(tracematrix.MMatrix) && !reachM[at(i, j-1)] {
					tm.ClearIxFrom(i, j, tracematrix.MMatrix)
				}
				if ixFrom.Has(tracematrix.IxMatrix) && !reachIx[at(i, j-1)] {
					tm.ClearIxFrom(i, j, tracematrix.IxMatrix)
				}
			}
			if i > 0 {
				iyFrom, _ := tm.IyFrom(i, j)
				if iyFrom.Has(tracematrix.MMatrix) && !reachM[at(i-1, j)] {
					tm.ClearIyFrom(i, j, tracematrix.MMatrix)
				}
				if iyFrom.Has(tracematrix.IyMatrix) && !reachIy[at(i-1, j)] {
					tm.ClearIyFrom(i, j, tracematrix.IyMatrix)
				}
			}
		}
	}
}
