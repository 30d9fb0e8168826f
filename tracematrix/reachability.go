package tracematrix

// Reachable runs the local-mode reachability sweep described in spec.md
// §4.3: row-major over every cell, clearing any DIAGONAL/HORIZONTAL/
// VERTICAL trace bit whose predecessor cell has no path back to a
// STARTPOINT, and returning the resulting reachable plane. Row-major
// order is a valid topological order here because every predecessor of
// (i,j) — (i-1,j-1), (i-1,j), (i,j-1) — sorts strictly earlier.
//
// This sweep only touches the plain directional bits, so only NW-SW uses
// it. Gotoh and WSB record layer bits rather than directional ones and
// run their own three-layer sweeps (sweepLocalReachability in each of
// those packages), which do not call Reachable.
func (m *Matrix) Reachable() []bool {
	reach := make([]bool, m.nRows*m.nCols)
	for i := 0; i < m.nRows; i++ {
		for j := 0; j < m.nCols; j++ {
			idx := i*m.nCols + j
			bits := m.trace[idx]
			if bits.Has(Startpoint) {
				reach[idx] = true
				m.trace[idx] = bits
				continue
			}
			var kept TraceBit
			if bits.Has(Diagonal) && i > 0 && j > 0 && reach[(i-1)*m.nCols+(j-1)] {
				kept |= Diagonal
			}
			if bits.Has(Vertical) && i > 0 && reach[(i-1)*m.nCols+j] {
				kept |= Vertical
			}
			if bits.Has(Horizontal) && j > 0 && reach[i*m.nCols+(j-1)] {
				kept |= Horizontal
			}
			other := bits &^ (Diagonal | Horizontal | Vertical)
			m.trace[idx] = other | kept
			reach[idx] = kept != 0
		}
	}
	return reach
}

// MarkNoLocalAlignment sets the [0][0] terminal sentinel meaning the
// matrix's maximum score is zero: there is no nonzero local alignment to
// enumerate.
func (m *Matrix) MarkNoLocalAlignment() {
	m.SetPath(0, 0, PathNone)
}
