package tracematrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixBasics(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)
	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	m.AddBit(1, 1, Diagonal)
	m.AddBit(1, 1, Vertical)
	assert.True(t, m.At(1, 1).Has(Diagonal))
	assert.True(t, m.At(1, 1).Has(Vertical))
	assert.False(t, m.At(1, 1).Has(Horizontal))

	m.ClearBit(1, 1, Vertical)
	assert.False(t, m.At(1, 1).Has(Vertical))

	m.SetPath(0, 0, PathDone)
	assert.Equal(t, PathDone, m.PathAt(0, 0))
	m.ResetPath()
	assert.Equal(t, PathUnset, m.PathAt(0, 0))
}

func TestInvalidDimensions(t *testing.T) {
	_, err := New(0, 5)
	assert.ErrorIs(t, err, ErrBadDimensions)
}

func TestGotohOverlay(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)
	_, err = m.IxFrom(1, 1)
	assert.ErrorIs(t, err, ErrOverlayNotAllocated)

	m.WithGotohOverlay()
	m.AddIxFrom(1, 1, MMatrix)
	m.AddIxFrom(1, 1, IxMatrix)
	bits, err := m.IxFrom(1, 1)
	require.NoError(t, err)
	assert.True(t, bits.Has(MMatrix))
	assert.True(t, bits.Has(IxMatrix))

	m.ClearIxFrom(1, 1, IxMatrix)
	bits, err = m.IxFrom(1, 1)
	require.NoError(t, err)
	assert.False(t, bits.Has(IxMatrix))
}

func TestWSBOverlayAppendAndFilter(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)
	m.WithWSBOverlay()
	require.NoError(t, m.BeginRow(2, 8))

	require.NoError(t, m.AppendGapLength(2, 1, ListMIx, 1))
	require.NoError(t, m.AppendGapLength(2, 1, ListMIx, 2))
	require.NoError(t, m.AppendGapLength(2, 1, ListMIx, 3))

	lengths, err := m.GapLengths(2, 1, ListMIx)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, lengths)

	empty, err := m.GapLengths(2, 2, ListMIx)
	require.NoError(t, err)
	assert.Nil(t, empty)

	err = m.FilterGapLengths(2, 1, ListMIx, func(k int32) bool { return k != 2 })
	require.NoError(t, err)
	lengths, err = m.GapLengths(2, 1, ListMIx)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 3}, lengths)
}

func TestReachabilitySweep(t *testing.T) {
	// 3x3 matrix (nA=2, nB=2). Build a tiny local trace:
	// (0,0) is STARTPOINT, (1,1) reachable via DIAGONAL from (0,0),
	// (2,2) has a DIAGONAL bit pointing at the reachable (1,1), while
	// (1,2) and (2,1) point at cells that carry no bits.
	m, err := New(2, 2)
	require.NoError(t, err)
	m.Set(0, 0, Startpoint)
	m.Set(1, 1, Diagonal)
	m.Set(2, 2, Diagonal) // predecessor (1,1) IS reachable, so this should survive
	m.Set(1, 2, Vertical) // predecessor (0,2) has no bits -> unreachable
	m.Set(2, 1, Diagonal) // predecessor (1,0) has no bits -> unreachable

	reach := m.Reachable()
	assert.True(t, reach[0*3+0])
	assert.True(t, reach[1*3+1])
	assert.True(t, reach[2*3+2])
	assert.False(t, reach[1*3+2])
	assert.False(t, m.At(1, 2).Has(Vertical))
	assert.False(t, reach[2*3+1])
	assert.False(t, m.At(2, 1).Has(Diagonal))
}
