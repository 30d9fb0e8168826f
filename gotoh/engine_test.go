package gotoh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/tracematrix"
)

func affineModel(t *testing.T, mode seqscore.Mode, open, extend float64) *seqscore.Model {
	t.Helper()
	opts := []seqscore.Option{
		seqscore.WithMatch(1),
		seqscore.WithMismatch(-1),
		seqscore.WithMode(mode),
	}
	for ctx := seqscore.GapContext(0); ctx < 3; ctx++ {
		for dir := seqscore.GapDirection(0); dir < 2; dir++ {
			opts = append(opts, seqscore.WithAffineGap(ctx, dir, open, extend))
		}
	}
	m, err := seqscore.New(opts...)
	require.NoError(t, err)
	algo, err := m.Algorithm()
	require.NoError(t, err)
	require.Equal(t, seqscore.AlgorithmGotoh, algo)
	return m
}

func TestNoGapIdenticalGlobal(t *testing.T) {
	a := []int{0, 1, 2, 3, 0}
	b := []int{0, 1, 2, 3, 0}
	m := affineModel(t, seqscore.ModeGlobal, -2, -1)
	res, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Score)
	assert.True(t, res.FinalLayers.Has(tracematrix.MMatrix))
	for k := 1; k <= 5; k++ {
		assert.True(t, res.Trace.At(k, k).Has(tracematrix.MMatrix))
	}
}

// Scenario 3 (spec.md §8): a single affine gap, exactly one length-1 run.
func TestScenario3_SingleAffineGap(t *testing.T) {
	a := []int{0, 0, 0}       // AAA
	b := []int{0, 0, 0, 0}    // AAAA
	m := affineModel(t, seqscore.ModeGlobal, -2, -1)
	res, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Score)
	// B is longer than A: the surviving gap is in A, i.e. the Ix layer.
	assert.True(t, res.FinalLayers.Has(tracematrix.IxMatrix))
	assert.False(t, res.FinalLayers.Has(tracematrix.IyMatrix))
}

func TestLocalSubstringAffine(t *testing.T) {
	a := []int{0, 1, 2, 3}       // A C G T
	b := []int{4, 0, 1, 2, 3, 1} // G A C G T C
	m := affineModel(t, seqscore.ModeLocal, -2, -1)
	res, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Score)
	assert.True(t, res.Trace.At(0, 1).Has(tracematrix.Startpoint))
	assert.True(t, res.Trace.At(4, 5).Has(tracematrix.Endpoint))
}

func TestLocalNoPositiveAlignment(t *testing.T) {
	m := affineModel(t, seqscore.ModeLocal, -2, -1)
	res, err := Fill([]int{0}, []int{1}, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Zero(t, res.Score)
	assert.Equal(t, tracematrix.PathNone, res.Trace.PathAt(0, 0))
}

func TestRejectsEmptySequence(t *testing.T) {
	m := affineModel(t, seqscore.ModeGlobal, -2, -1)
	_, err := Fill(nil, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestRejectsInvalidStrand(t *testing.T) {
	m := affineModel(t, seqscore.ModeGlobal, -2, -1)
	_, err := Fill([]int{0}, []int{0}, m, seqscore.Strand('x'))
	assert.ErrorIs(t, err, ErrInvalidStrand)
}

func TestRejectsFOGSAAMode(t *testing.T) {
	m := affineModel(t, seqscore.ModeGlobal, -2, -1)
	seqscore.WithMode(seqscore.ModeFOGSAA)(m)
	_, err := Fill([]int{0}, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}
