package wsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/tracematrix"
)

// affineEquivalentModel installs WSB callbacks that reproduce a fixed
// open/extend affine cost, so results are directly comparable to the
// gotoh package's affine scenarios despite the O(n^3) general-gap path.
func affineEquivalentModel(t *testing.T, mode seqscore.Mode, open, extend float64) *seqscore.Model {
	t.Helper()
	cost := func(_, k int) float64 { return open + float64(k-1)*extend }
	m, err := seqscore.New(
		seqscore.WithMatch(1),
		seqscore.WithMismatch(-1),
		seqscore.WithGapFunctions(cost, cost),
		seqscore.WithMode(mode),
	)
	require.NoError(t, err)
	algo, err := m.Algorithm()
	require.NoError(t, err)
	require.Equal(t, seqscore.AlgorithmWSB, algo)
	return m
}

func TestNoGapIdenticalGlobal(t *testing.T) {
	a := []int{0, 1, 2, 3, 0}
	b := []int{0, 1, 2, 3, 0}
	m := affineEquivalentModel(t, seqscore.ModeGlobal, -2, -1)
	res, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Score)
	assert.True(t, res.FinalLayers.Has(tracematrix.MMatrix))
}

// Mirrors gotoh's scenario 3 under an equivalent variable-length callback.
func TestSingleGapEquivalentToAffine(t *testing.T) {
	a := []int{0, 0, 0}    // AAA
	b := []int{0, 0, 0, 0} // AAAA
	m := affineEquivalentModel(t, seqscore.ModeGlobal, -2, -1)
	res, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Score)
	assert.True(t, res.FinalLayers.Has(tracematrix.IxMatrix))
}

func TestConvexGapPrefersSingleRun(t *testing.T) {
	// A strictly sub-additive cost (cheaper per-symbol the longer the run)
	// should prefer one gap of length 2 over two gaps of length 1 each.
	cost := func(_, k int) float64 {
		switch k {
		case 1:
			return -3
		default:
			return -3 - 0.5*float64(k-1)
		}
	}
	m, err := seqscore.New(
		seqscore.WithMatch(1),
		seqscore.WithMismatch(-1),
		seqscore.WithGapFunctions(cost, cost),
		seqscore.WithMode(seqscore.ModeGlobal),
	)
	require.NoError(t, err)

	a := []int{0, 1} // A C
	b := []int{0, 2, 3, 1} // A G T C — two extra symbols between matches
	res, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	// match(A)+match(C) + one run of length 2 = 2 + (-3-0.5) = -1.5
	assert.InDelta(t, -1.5, res.Score, 1e-9)
}

func TestLocalSubstring(t *testing.T) {
	a := []int{0, 1, 2, 3}       // A C G T
	b := []int{4, 0, 1, 2, 3, 1} // G A C G T C
	m := affineEquivalentModel(t, seqscore.ModeLocal, -2, -1)
	res, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Score)
	assert.True(t, res.Trace.At(0, 1).Has(tracematrix.Startpoint))
	assert.True(t, res.Trace.At(4, 5).Has(tracematrix.Endpoint))
}

func TestRejectsNoGapFunctions(t *testing.T) {
	m, err := seqscore.New(seqscore.WithMode(seqscore.ModeGlobal))
	require.NoError(t, err)
	_, err = Fill([]int{0}, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrGapFunctionsRequired)
}

func TestRejectsEmptySequence(t *testing.T) {
	m := affineEquivalentModel(t, seqscore.ModeGlobal, -2, -1)
	_, err := Fill(nil, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestRejectsFOGSAAMode(t *testing.T) {
	m := affineEquivalentModel(t, seqscore.ModeGlobal, -2, -1)
	seqscore.WithMode(seqscore.ModeFOGSAA)(m)
	_, err := Fill([]int{0}, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}
