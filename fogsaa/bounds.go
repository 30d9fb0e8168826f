package fogsaa

import (
	"math"

	"github.com/katalvlaran/seqalign/seqscore"
)

// pairBounds scans every distinct symbol pair actually present across A
// and B and returns the best and worst achievable single-step pair
// score. Used as the optimistic/pessimistic per-step estimate feeding
// node bound computation (spec.md §9a: FOGSAA's bounds are an assumed
// approximation, not a generic guarantee — see DESIGN.md).
func pairBounds(model *seqscore.Model, a, b []int) (best, worst float64, err error) {
	uniqueA := distinct(a)
	uniqueB := distinct(b)
	best, worst = math.Inf(-1), math.Inf(1)
	for _, x := range uniqueA {
		for _, y := range uniqueB {
			v, perr := model.PairScore(x, y)
			if perr != nil {
				return 0, 0, perr
			}
			if v > best {
				best = v
			}
			if v < worst {
				worst = v
			}
		}
	}
	if math.IsInf(best, -1) {
		best, worst = 0, 0
	}
	return best, worst, nil
}

func distinct(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// worstGapSteps returns the most negative open and extend gap costs
// across every (context, direction) cell, used as the pessimistic
// per-symbol estimate for the leftover-length portion of a node's lower
// bound.
func worstGapSteps(model *seqscore.Model, strand seqscore.Strand) (worstOpen, worstExtend float64) {
	worstOpen, worstExtend = math.Inf(1), math.Inf(1)
	for ctx := seqscore.GapContext(0); ctx < 3; ctx++ {
		for dir := seqscore.GapDirection(0); dir < 2; dir++ {
			if o := model.GapOpen(strand, ctx, dir); o < worstOpen {
				worstOpen = o
			}
			if e := model.GapExtend(strand, ctx, dir); e < worstExtend {
				worstExtend = e
			}
		}
	}
	return worstOpen, worstExtend
}

// boundsWarnings evaluates the two documented conditions under which
// FOGSAA's admissible-bound assumption can fail (spec.md §9a).
func boundsWarnings(model *seqscore.Model, strand seqscore.Strand) []Warning {
	var warnings []Warning
	if model.Mismatch() >= model.Match() {
		warnings = append(warnings, WarningMismatchNotWorseThanMatch)
	}
	for ctx := seqscore.GapContext(0); ctx < 3; ctx++ {
		for dir := seqscore.GapDirection(0); dir < 2; dir++ {
			if model.GapOpen(strand, ctx, dir) > model.Mismatch() || model.GapExtend(strand, ctx, dir) > model.Mismatch() {
				warnings = append(warnings, WarningGapBetterThanMismatch)
				return warnings
			}
		}
	}
	return warnings
}

// remainingBounds computes the optimistic (upper) and pessimistic
// (lower) estimate of the score still to be earned between (i,j) and
// (nA,nB).
func remainingBounds(i, j, nA, nB int, bestPair, worstPair, worstOpen, worstExtend float64) (lower, upper float64) {
	ra, rb := nA-i, nB-j
	common := ra
	if rb < common {
		common = rb
	}
	leftover := ra - rb
	if leftover < 0 {
		leftover = -leftover
	}
	upper = float64(common) * bestPair
	gapBound := 0.0
	if leftover > 0 {
		gapBound = worstOpen + float64(leftover-1)*worstExtend
	}
	lower = float64(common)*worstPair + gapBound
	return lower, upper
}
