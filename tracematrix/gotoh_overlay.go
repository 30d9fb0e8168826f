package tracematrix

// gotohOverlay holds, for every cell, which layer(s) each gap state (Ix,
// Iy) could have transitioned from via a step staying in that same
// layer. trace[i][j] itself (see bits.go) already records which layer(s)
// M could have come from via a diagonal step; this overlay supplies the
// symmetric information for the two gap layers (spec.md §4.2.2).
type gotohOverlay struct {
	ixFrom []TraceBit // which of {MMatrix, IxMatrix} the Ix state extends from
	iyFrom []TraceBit // which of {MMatrix, IyMatrix} the Iy state extends from
}

// WithGotohOverlay allocates the Ix_from/Iy_from overlay fields. Must be
// called before the Gotoh engine fills the matrix.
func (m *Matrix) WithGotohOverlay() {
	if m.gotoh != nil {
		return
	}
	size := m.nRows * m.nCols
	m.gotoh = &gotohOverlay{
		ixFrom: make([]TraceBit, size),
		iyFrom: make([]TraceBit, size),
	}
}

// HasGotohOverlay reports whether WithGotohOverlay has been called.
func (m *Matrix) HasGotohOverlay() bool { return m.gotoh != nil }

// IxFrom returns which layer(s) the Ix state at (i,j) extends from.
func (m *Matrix) IxFrom(i, j int) (TraceBit, error) {
	if m.gotoh == nil {
		return 0, ErrOverlayNotAllocated
	}
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.gotoh.ixFrom[idx], nil
}

// IyFrom returns which layer(s) the Iy state at (i,j) extends from.
func (m *Matrix) IyFrom(i, j int) (TraceBit, error) {
	if m.gotoh == nil {
		return 0, ErrOverlayNotAllocated
	}
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.gotoh.iyFrom[idx], nil
}

// AddIxFrom ORs bit into the Ix_from field at (i,j).
func (m *Matrix) AddIxFrom(i, j int, bit TraceBit) {
	if m.gotoh == nil {
		return
	}
	idx, err := m.index(i, j)
	if err != nil {
		return
	}
	m.gotoh.ixFrom[idx] |= bit
}

// AddIyFrom ORs bit into the Iy_from field at (i,j).
func (m *Matrix) AddIyFrom(i, j int, bit TraceBit) {
	if m.gotoh == nil {
		return
	}
	idx, err := m.index(i, j)
	if err != nil {
		return
	}
	m.gotoh.iyFrom[idx] |= bit
}

// ClearIxFrom clears bit from the Ix_from field at (i,j).
func (m *Matrix) ClearIxFrom(i, j int, bit TraceBit) {
	if m.gotoh == nil {
		return
	}
	idx, err := m.index(i, j)
	if err != nil {
		return
	}
	m.gotoh.ixFrom[idx] &^= bit
}

// ClearIyFrom clears bit from the Iy_from field at (i,j).
func (m *Matrix) ClearIyFrom(i, j int, bit TraceBit) {
	if m.gotoh == nil {
		return
	}
	idx, err := m.index(i, j)
	if err != nil {
		return
	}
	m.gotoh.iyFrom[idx] &^= bit
}
