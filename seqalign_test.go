package seqalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/seqscore"
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
	return m
}

func TestScoreDispatchesToNWSW(t *testing.T) {
	a := []int{0, 1, 2, 3, 0}
	b := []int{0, 1, 2, 3, 0}
	m := identityModel(t, seqscore.ModeGlobal)
	score, err := Score(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, 5.0, score)
}

func TestAlignNWSWReturnsEnumerator(t *testing.T) {
	a := []int{0, 1, 2, 3, 0}
	b := []int{0, 1, 2, 3, 0}
	m := identityModel(t, seqscore.ModeGlobal)
	res, err := Align(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, seqscore.AlgorithmNWSW, res.Algorithm)
	require.NotNil(t, res.Paths)
	assert.Nil(t, res.Path)

	path, ok, err := res.Paths.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 5}, path.RowsA)
	assert.Equal(t, []int{0, 5}, path.RowsB)
}

func TestAlignGotohReturnsEnumerator(t *testing.T) {
	a := []int{0, 0, 0}
	b := []int{0, 0, 0, 0}
	m := affineModel(t, seqscore.ModeGlobal, -2, -1)
	res, err := Align(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, seqscore.AlgorithmGotoh, res.Algorithm)
	assert.Equal(t, 1.0, res.Score)
	require.NotNil(t, res.Paths)

	count := 0
	for {
		_, ok, err := res.Paths.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 4, count)
}

func TestAlignFOGSAAReturnsPath(t *testing.T) {
	opts := []seqscore.Option{
		seqscore.WithMatch(2),
		seqscore.WithMismatch(-1),
		seqscore.WithMode(seqscore.ModeFOGSAA),
	}
	for ctx := seqscore.GapContext(0); ctx < 3; ctx++ {
		for dir := seqscore.GapDirection(0); dir < 2; dir++ {
			opts = append(opts, seqscore.WithAffineGap(ctx, dir, -2, -1))
		}
	}
	m, err := seqscore.New(opts...)
	require.NoError(t, err)

	a := []int{0, 1, 2, 3} // A C G T
	b := []int{0, 2, 2, 3} // A G G T
	res, err := Align(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	assert.Equal(t, seqscore.AlgorithmFOGSAA, res.Algorithm)
	assert.Nil(t, res.Paths)
	require.NotNil(t, res.Path)
	require.Equal(t, len(res.Path.RowsA), len(res.Path.RowsB))
	assert.Equal(t, 4, res.Path.RowsA[len(res.Path.RowsA)-1]-res.Path.RowsA[0])
}

// Rescoring invariant (spec.md §8): replaying any enumerated path's
// coordinates through Rescore reproduces the engine's own score.
func TestRescoreMatchesAlignScore(t *testing.T) {
	a := []int{0, 0, 0}
	b := []int{0, 0, 0, 0}
	m := affineModel(t, seqscore.ModeGlobal, -2, -1)
	res, err := Align(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)

	path, ok, err := res.Paths.Next()
	require.NoError(t, err)
	require.True(t, ok)

	score, err := Rescore(a, b, m, seqscore.StrandPlus, path.RowsA, path.RowsB)
	require.NoError(t, err)
	assert.Equal(t, res.Score, score)
}

func TestRescoreRejectsMismatchedLengths(t *testing.T) {
	m := identityModel(t, seqscore.ModeGlobal)
	_, err := Rescore([]int{0}, []int{0}, m, seqscore.StrandPlus, []int{0}, []int{0, 1})
	assert.ErrorIs(t, err, ErrMismatchedPathLength)
}

func TestRescoreRejectsOddLength(t *testing.T) {
	m := identityModel(t, seqscore.ModeGlobal)
	_, err := Rescore([]int{0}, []int{0}, m, seqscore.StrandPlus, []int{0, 1, 2}, []int{0, 1, 2})
	assert.ErrorIs(t, err, ErrMismatchedPathLength)
}

func TestRescoreRejectsIncompletePath(t *testing.T) {
	m := identityModel(t, seqscore.ModeGlobal)
	_, err := Rescore([]int{0, 1}, []int{0, 1}, m, seqscore.StrandPlus, []int{0, 1}, []int{0, 1})
	assert.ErrorIs(t, err, ErrIncompletePath)
}

func TestMappingAssignsDenseIndicesInFirstEncounterOrder(t *testing.T) {
	mp := NewMapping()
	a := mp.Apply(Seq{42, 7, 42, 9})
	b := mp.Apply(Seq{7, 9})
	assert.Equal(t, Seq{0, 1, 0, 2}, a)
	assert.Equal(t, Seq{1, 2}, b)
	assert.Equal(t, 3, mp.Size())

	idx, ok := mp.Lookup(42)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = mp.Lookup(99)
	assert.False(t, ok)
}

func TestAlignRejectsEmptySequence(t *testing.T) {
	m := identityModel(t, seqscore.ModeGlobal)
	_, err := Align(nil, []int{0}, m, seqscore.StrandPlus)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestAlignRejectsInvalidStrand(t *testing.T) {
	m := identityModel(t, seqscore.ModeGlobal)
	_, err := Align([]int{0}, []int{0}, m, seqscore.Strand('x'))
	assert.ErrorIs(t, err, ErrInvalidStrand)
}

// Strand only swaps which configured (left, right) gap penalty applies
// at each boundary (spec.md §4.2); under a uniform gap scheme the two
// strands must score identically regardless of sequence content.
func TestStrandDoesNotAffectUniformGapScore(t *testing.T) {
	a := []int{0, 1, 2, 3}
	b := []int{3, 2, 1, 0}
	m := identityModel(t, seqscore.ModeGlobal)

	plusScore, err := Score(a, b, m, seqscore.StrandPlus)
	require.NoError(t, err)
	minusScore, err := Score(a, b, m, seqscore.StrandMinus)
	require.NoError(t, err)

	assert.Equal(t, plusScore, minusScore)
}
