package seqscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubstitutionMatrix(t *testing.T) {
	t.Run("valid square matrix", func(t *testing.T) {
		sub, err := NewSubstitutionMatrix(2, []float64{1, -1, -1, 1})
		require.NoError(t, err)
		v, err := sub.At(1, 0)
		require.NoError(t, err)
		assert.Equal(t, -1.0, v)
	})

	t.Run("non-square data is rejected", func(t *testing.T) {
		_, err := NewSubstitutionMatrix(2, []float64{1, -1, -1})
		assert.ErrorIs(t, err, ErrBadMatrixShape)
	})

	t.Run("non-positive size is rejected", func(t *testing.T) {
		_, err := NewSubstitutionMatrix(0, nil)
		assert.ErrorIs(t, err, ErrBadMatrixShape)
	})

	t.Run("out of range index", func(t *testing.T) {
		sub, err := NewSubstitutionMatrix(2, []float64{1, -1, -1, 1})
		require.NoError(t, err)
		_, err = sub.At(2, 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}
