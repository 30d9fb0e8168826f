package tracematrix

// wsbOverlay holds the four variable-length gap-length lists per cell
// that the WSB engine needs: MIx and IyIx (gap lengths reaching the Ix
// layer from M or Iy respectively), and the symmetric MIy/IxIy for the
// Iy layer (spec.md §4.2.3).
//
// Rather than four independent slices per cell (one small heap
// allocation each, times four, times every cell), each row owns one
// flat int32 slab that the four lists for that row's cells are appended
// into as they are discovered during fill; every cell's list is a
// begin/end pair of offsets into that row's slab (spec.md §9 DESIGN
// NOTES: "A flat slab allocator ... drastically reduces per-cell
// allocation and simplifies release-all-on-error"). A fill error simply
// discards the rows built so far — there is nothing per-cell to release.
type wsbOverlay struct {
	nCols int
	rows  []wsbRow // len == nRows; rows[i] holds no storage until BeginRow(i) is called
}

type wsbRow struct {
	data []int32

	mIxBeg, mIxEnd   []int32
	iyIxBeg, iyIxEnd []int32
	mIyBeg, mIyEnd   []int32
	ixIyBeg, ixIyEnd []int32
}

// gapList identifies which of the four per-cell lists an operation targets.
type gapList int

const (
	ListMIx gapList = iota
	ListIyIx
	ListMIy
	ListIxIy
)

// WithWSBOverlay allocates the row index but not row storage; rows are
// allocated lazily by BeginRow as the engine fills top-to-bottom, which
// keeps a failed allocation mid-fill cheap to unwind (just truncate rows).
func (m *Matrix) WithWSBOverlay() {
	if m.wsb != nil {
		return
	}
	m.wsb = &wsbOverlay{nCols: m.nCols, rows: make([]wsbRow, m.nRows)}
}

// HasWSBOverlay reports whether WithWSBOverlay has been called.
func (m *Matrix) HasWSBOverlay() bool { return m.wsb != nil }

// BeginRow allocates the four offset-index slices for row i, sized for
// nCols cells, with a starting slab capacity hint. Call once per row
// before appending gap lengths into that row's cells.
func (m *Matrix) BeginRow(i int, capHint int) error {
	if m.wsb == nil {
		return ErrOverlayNotAllocated
	}
	if i < 0 || i >= m.nRows {
		return ErrIndexOutOfRange
	}
	r := &m.wsb.rows[i]
	r.data = make([]int32, 0, capHint)
	r.mIxBeg, r.mIxEnd = newOffsets(m.nCols), newOffsets(m.nCols)
	r.iyIxBeg, r.iyIxEnd = newOffsets(m.nCols), newOffsets(m.nCols)
	r.mIyBeg, r.mIyEnd = newOffsets(m.nCols), newOffsets(m.nCols)
	r.ixIyBeg, r.ixIyEnd = newOffsets(m.nCols), newOffsets(m.nCols)
	return nil
}

func newOffsets(n int) []int32 {
	o := make([]int32, n)
	for i := range o {
		o[i] = -1
	}
	return o
}

// DropRows releases every row allocated so far (0..upTo exclusive),
// used to unwind on an out-of-memory error mid-fill without leaking.
func (m *Matrix) DropRows(upTo int) {
	if m.wsb == nil {
		return
	}
	for i := 0; i < upTo && i < len(m.wsb.rows); i++ {
		m.wsb.rows[i] = wsbRow{}
	}
}

// AppendGapLength records that a gap of length k ties the optimal value
// for the named list at cell (i,j). Appends are required to happen in
// increasing k order within a cell's list but that is not enforced here;
// callers (the WSB engine) already iterate k in increasing order. A
// cell's list is stored as one begin/end range of the row slab, so all
// appends to one (cell, list) must come before any append to another
// list of the same row.
func (m *Matrix) AppendGapLength(i, j int, list gapList, k int32) error {
	if m.wsb == nil {
		return ErrOverlayNotAllocated
	}
	if i < 0 || i >= m.nRows || j < 0 || j >= m.nCols {
		return ErrIndexOutOfRange
	}
	r := &m.wsb.rows[i]
	var beg, end *[]int32
	switch list {
	case ListMIx:
		beg, end = &r.mIxBeg, &r.mIxEnd
	case ListIyIx:
		beg, end = &r.iyIxBeg, &r.iyIxEnd
	case ListMIy:
		beg, end = &r.mIyBeg, &r.mIyEnd
	case ListIxIy:
		beg, end = &r.ixIyBeg, &r.ixIyEnd
	}
	if (*beg)[j] == -1 {
		(*beg)[j] = int32(len(r.data))
	}
	r.data = append(r.data, k)
	(*end)[j] = int32(len(r.data))
	return nil
}

// GapLengths returns the recorded gap lengths for the named list at
// cell (i,j), or nil if none were recorded.
func (m *Matrix) GapLengths(i, j int, list gapList) ([]int32, error) {
	if m.wsb == nil {
		return nil, ErrOverlayNotAllocated
	}
	if i < 0 || i >= m.nRows || j < 0 || j >= m.nCols {
		return nil, ErrIndexOutOfRange
	}
	r := &m.wsb.rows[i]
	var beg, end []int32
	switch list {
	case ListMIx:
		beg, end = r.mIxBeg, r.mIxEnd
	case ListIyIx:
		beg, end = r.iyIxBeg, r.iyIxEnd
	case ListMIy:
		beg, end = r.mIyBeg, r.mIyEnd
	case ListIxIy:
		beg, end = r.ixIyBeg, r.ixIyEnd
	}
	if beg[j] == -1 {
		return nil, nil
	}
	return r.data[beg[j]:end[j]], nil
}

// FilterGapLengths replaces the recorded list at (i,j) with only the
// entries keep returns true for. Used by the local-mode reachability
// sweep (spec.md §4.2.3) to drop gap sources that turned out to be
// unreachable from any STARTPOINT.
func (m *Matrix) FilterGapLengths(i, j int, list gapList, keep func(k int32) bool) error {
	lengths, err := m.GapLengths(i, j, list)
	if err != nil {
		return err
	}
	if lengths == nil {
		return nil
	}
	filtered := lengths[:0:0]
	for _, k := range lengths {
		if keep(k) {
			filtered = append(filtered, k)
		}
	}
	r := &m.wsb.rows[i]
	var beg, end *[]int32
	switch list {
	case ListMIx:
		beg, end = &r.mIxBeg, &r.mIxEnd
	case ListIyIx:
		beg, end = &r.iyIxBeg, &r.iyIxEnd
	case ListMIy:
		beg, end = &r.mIyBeg, &r.mIyEnd
	case ListIxIy:
		beg, end = &r.ixIyBeg, &r.ixIyEnd
	}
	if len(filtered) == 0 {
		(*beg)[j] = -1
		(*end)[j] = -1
		return nil
	}
	newBeg := int32(len(r.data))
	r.data = append(r.data, filtered...)
	(*beg)[j] = newBeg
	(*end)[j] = int32(len(r.data))
	return nil
}
