package wsb

import "github.com/katalvlaran/seqalign/tracematrix"

// sweepLocalReachability mirrors gotoh's layer-aware reachability pass
// (spec.md §4.3, §4.2.3) but walks the WSB gap-length lists instead of a
// single O(1) predecessor: a gap-layer cell is reachable if at least one
// of its recorded (length, source-layer) entries points at a reachable
// cell. Lists are rewritten in place via tracematrix.FilterGapLengths to
// drop entries sourced from a dead branch.
func sweepLocalReachability(tm *tracematrix.Matrix, nA, nB int) {
	reachM := make([][]bool, nA+1)
	reachIx := make([][]bool, nA+1)
	reachIy := make([][]bool, nA+1)
	for i := range reachM {
		reachM[i] = make([]bool, nB+1)
		reachIx[i] = make([]bool, nB+1)
		reachIy[i] = make([]bool, nB+1)
	}

	for i := 0; i <= nA; i++ {
		for j := 0; j <= nB; j++ {
			bits := tm.At(i, j)
			switch {
			case bits.Has(tracematrix.Startpoint):
				reachM[i][j] = true
			case i > 0 && j > 0:
				ok := bits.Has(tracematrix.MMatrix) && reachM[i-1][j-1]
				ok = ok || (bits.Has(tracematrix.IxMatrix) && reachIx[i-1][j-1])
				ok = ok || (bits.Has(tracematrix.IyMatrix) && reachIy[i-1][j-1])
				reachM[i][j] = ok
			}

			if j > 0 {
				ok := false
				mIx, _ := tm.GapLengths(i, j, tracematrix.ListMIx)
				for _, k := range mIx {
					if reachM[i][j-int(k)] {
						ok = true
						break
					}
				}
				if !ok {
					iyIx, _ := tm.GapLengths(i, j, tracematrix.ListIyIx)
					for _, k := range iyIx {
						if reachIy[i][j-int(k)] {
							ok = true
							break
						}
					}
				}
				reachIx[i][j] = ok
			}
			if i > 0 {
				ok := false
				mIy, _ := tm.GapLengths(i, j, tracematrix.ListMIy)
				for _, k := range mIy {
					if reachM[i-int(k)][j] {
						ok = true
						break
					}
				}
				if !ok {
					ixIy, _ := tm.GapLengths(i, j, tracematrix.ListIxIy)
					for _, k := range ixIy {
						if reachIx[i-int(k)][j] {
							ok = true
							break
						}
					}
				}
				reachIy[i][j] = ok
			}
		}
	}

	for i := 0; i <= nA; i++ {
		for j := 0; j <= nB; j++ {
			bits := tm.At(i, j)
			if bits.Has(tracematrix.MMatrix) && !(i > 0 && j > 0 && reachM[i-1][j-1]) {
				tm.ClearBit(i, j, tracematrix.MMatrix)
			}
			if bits.Has(tracematrix.IxMatrix) && !(i > 0 && j > 0 && reachIx[i-1][j-1]) {
				tm.ClearBit(i, j, tracematrix.IxMatrix)
			}
			if bits.Has(tracematrix.IyMatrix) && !(i > 0 && j > 0 && reachIy[i-1][j-1]) {
				tm.ClearBit(i, j, tracematrix.IyMatrix)
			}

			if j > 0 {
				_ = tm.FilterGapLengths(i, j, tracematrix.ListMIx, func(k int32) bool {
					return reachM[i][j-int(k)]
				})
				_ = tm.FilterGapLengths(i, j, tracematrix.ListIyIx, func(k int32) bool {
					return reachIy[i][j-int(k)]
				})
			}
			if i > 0 {
				_ = tm.FilterGapLengths(i, j, tracematrix.ListMIy, func(k int32) bool {
					return reachM[i-int(k)][j]
				})
				_ = tm.FilterGapLengths(i, j, tracematrix.ListIxIy, func(k int32) bool {
					return reachIx[i-int(k)][j]
				})
			}
		}
	}
}
