package seqscore

// SubstitutionMatrix is a read-only, contiguous float64 square block:
// alphabet indices index directly into rows/columns. It is the Go-native
// expression of spec.md §9's "small abstract view: a contiguous float64
// square block"; the optional user-symbol mapping described there is a
// façade-level concern (seqalign.Mapping), not part of this type.
type SubstitutionMatrix struct {
	size int
	data []float64 // size*size, row-major
}

// NewSubstitutionMatrix copies data (row-major, size*size) into a new
// SubstitutionMatrix. It returns ErrBadMatrixShape if size <= 0 or
// len(data) != size*size.
func NewSubstitutionMatrix(size int, data []float64) (*SubstitutionMatrix, error) {
	if size <= 0 || len(data) != size*size {
		return nil, ErrBadMatrixShape
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return &SubstitutionMatrix{size: size, data: cp}, nil
}

// Size returns the matrix's row/column count.
func (m *SubstitutionMatrix) Size() int {
	return m.size
}

// At returns M[i][j], or ErrIndexOutOfRange if i or j is outside [0, Size).
func (m *SubstitutionMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.size || j < 0 || j >= m.size {
		return 0, ErrIndexOutOfRange
	}
	return m.data[i*m.size+j], nil
}
