package nwsw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/tracematrix"
)

func identityModel(t *testing.T, mode seqscore.Mode) *seqscore.Model {
	t.Helper()
	m, err := seqscore.New(
		seqscore.WithMatch(1),
		seqscore.WithMismatch(-1),
		seqscore.WithUniformGap(-1, -1),
		seqscore.WithMode(mode),
	)
	require.NoError(t, err)
	return m
}

// Scenario 1 (spec.md §8): identical sequences, global, linear gaps.
func TestScenario1_IdenticalGlobal(t *testing.T) {
	a := []int{0, 1, 2, 3, 0} // A C G T A
	b := []int{0, 1, 2, 3, 0}
	m := identityModel(t, seqscore.ModeGlobal)
	score, tm, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)
	// Every cell on the main diagonal should carry exactly DIAGONAL.
	for k := 1; k <= 5; k++ {
		assert.Equal(t, tracematrix.Diagonal, tm.At(k, k))
	}
}

// Scenario 2 (spec.md §8): single mismatch, global, linear gaps.
func TestScenario2_SingleMismatchGlobal(t *testing.T) {
	a := []int{0, 1, 3} // A C T
	b := []int{0, 2, 3} // A G T
	m := identityModel(t, seqscore.ModeGlobal)
	score, _, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

// Scenario 4 (spec.md §8): local alignment with flanking non-matching symbols.
func TestScenario4_LocalSubstring(t *testing.T) {
	a := []int{0, 1, 2, 3}       // A C G T
	b := []int{4, 0, 1, 2, 3, 1} // G A C G T C
	m := identityModel(t, seqscore.ModeLocal)
	score, tm, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)
	assert.True(t, tm.At(0, 1).Has(tracematrix.Startpoint))
	assert.True(t, tm.At(4, 5).Has(tracematrix.Endpoint))
}

// Scenario 5 (spec.md §8): exact local match of identical short sequences.
func TestScenario5_LocalIdentical(t *testing.T) {
	a := []int{0, 1, 2} // A C G
	b := []int{0, 1, 2}
	m := identityModel(t, seqscore.ModeLocal)
	score, tm, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 3.0, score)
	assert.True(t, tm.At(3, 3).Has(tracematrix.Endpoint))
}

func TestLocalNoPositiveAlignmentMarksNone(t *testing.T) {
	a := []int{0}
	b := []int{1}
	m := identityModel(t, seqscore.ModeLocal)
	score, tm, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Equal(t, tracematrix.PathNone, tm.PathAt(0, 0))
}

func TestRejectsEmptySequence(t *testing.T) {
	m := identityModel(t, seqscore.ModeGlobal)
	_, _, err := Fill(nil, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestRejectsFOGSAAMode(t *testing.T) {
	m := identityModel(t, seqscore.ModeGlobal)
	seqscore.WithMode(seqscore.ModeFOGSAA)(m)
	_, _, err := Fill([]int{0}, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}
