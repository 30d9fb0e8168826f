package fogsaa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/gotoh"
	"github.com/katalvlaran/seqalign/seqscore"
)

func fogsaaModel(t *testing.T, match, mismatch, open, extend float64) *seqscore.Model {
	t.Helper()
	opts := []seqscore.Option{
		seqscore.WithMatch(match),
		seqscore.WithMismatch(mismatch),
		seqscore.WithMode(seqscore.ModeFOGSAA),
	}
	for ctx := seqscore.GapContext(0); ctx < 3; ctx++ {
		for dir := seqscore.GapDirection(0); dir < 2; dir++ {
			opts = append(opts, seqscore.WithAffineGap(ctx, dir, open, extend))
		}
	}
	m, err := seqscore.New(opts...)
	require.NoError(t, err)
	return m
}

// Scenario 6 (spec.md §8): FOGSAA must reach the same optimum as Gotoh.
func TestScenario6_MatchesGotohGlobal(t *testing.T) {
	a := []int{0, 1, 2, 3} // A C G T
	b := []int{0, 2, 2, 3} // A G G T

	fm := fogsaaModel(t, 2, -1, -2, -1)
	fres, err := Fill(a, b, fm, seqscore.StrandPlus)
	require.NoError(t, err)

	gOpts := []seqscore.Option{
		seqscore.WithMatch(2),
		seqscore.WithMismatch(-1),
		seqscore.WithMode(seqscore.ModeGlobal),
	}
	for ctx := seqscore.GapContext(0); ctx < 3; ctx++ {
		for dir := seqscore.GapDirection(0); dir < 2; dir++ {
			gOpts = append(gOpts, seqscore.WithAffineGap(ctx, dir, -2, -1))
		}
	}
	gm, err := seqscore.New(gOpts...)
	require.NoError(t, err)
	gres, err := gotoh.Fill(a, b, gm, seqscore.StrandPlus)
	require.NoError(t, err)

	assert.Equal(t, gres.Score, fres.Score)
	assert.Equal(t, []int{0, 4}, fres.Path.RowsA)
	assert.Equal(t, []int{0, 4}, fres.Path.RowsB)
	assert.Empty(t, fres.Warnings)
}

func TestIdenticalSequencesNoGap(t *testing.T) {
	a := []int{0, 1, 2, 3, 0}
	b := []int{0, 1, 2, 3, 0}
	m := fogsaaModel(t, 1, -1, -2, -1)
	res, err := Fill(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Score)
	assert.Equal(t, []int{0, 5}, res.Path.RowsA)
	assert.Equal(t, []int{0, 5}, res.Path.RowsB)
}

func TestWarningsFireOnDegenerateScoring(t *testing.T) {
	m := fogsaaModel(t, 1, 1, -2, -1) // mismatch == match
	res, err := Fill([]int{0}, []int{1}, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Contains(t, res.Warnings, WarningMismatchNotWorseThanMatch)
}

func TestTraceRecordsExpansions(t *testing.T) {
	m := fogsaaModel(t, 1, -1, -2, -1)
	res, err := Fill([]int{0, 1}, []int{0, 1}, m, seqscore.StrandPlus, WithTrace())
	require.NoError(t, err)
	assert.Greater(t, res.Expansions, 0)
}

func TestRejectsEmptySequence(t *testing.T) {
	m := fogsaaModel(t, 1, -1, -2, -1)
	_, err := Fill(nil, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestRejectsNonFOGSAAMode(t *testing.T) {
	m := fogsaaModel(t, 1, -1, -2, -1)
	seqscore.WithMode(seqscore.ModeGlobal)(m)
	_, err := Fill([]int{0}, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestHeapCapacityHintPanicsOnNegative(t *testing.T) {
	opt := WithHeapCapacityHint(-1)
	assert.Panics(t, func() { opt(&settings{}) })
}
