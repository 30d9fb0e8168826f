// Package fogsaa implements a best-first branch-and-bound aligner in the
// style of FOGSAA (Fast Optimal Global Sequence Alignment Algorithm):
// rather than filling the full (nA+1)x(nB+1) DP matrix, it explores a
// frontier of partial alignments ordered by an optimistic upper-bound
// estimate of the best score reachable from each, discarding any branch
// whose upper bound can no longer beat the best complete alignment found
// so far (spec.md §4.2.4). It is selected whenever the Model's mode is
// ModeFOGSAA (spec.md §4.1 rule 1), independent of gap shape, and — true
// to the algorithm's name — returns one optimal path rather than a
// matrix to enumerate from.
package fogsaa

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/seqalign/seqscore"
)

// Fill runs the branch-and-bound search over A and B under model and
// strand. The caller is responsible for having confirmed
// model.Mode() == seqscore.ModeFOGSAA.
func Fill(a, b []int, model *seqscore.Model, strand seqscore.Strand, opts ...Option) (*Result, error) {
	if !strand.Valid() {
		return nil, ErrInvalidStrand
	}
	if model.Mode() != seqscore.ModeFOGSAA {
		return nil, ErrUnsupportedMode
	}
	nA, nB := len(a), len(b)
	if nA == 0 || nB == 0 {
		return nil, ErrEmptySequence
	}

	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	eps := model.Epsilon()
	bestPair, worstPair, err := pairBounds(model, a, b)
	if err != nil {
		return nil, err
	}
	worstOpen, worstExtend := worstGapSteps(model, strand)

	contextOf := func(i, j int) seqscore.GapContext {
		switch {
		case i == 0 || j == 0:
			return seqscore.ContextLeft
		case i == nA || j == nB:
			return seqscore.ContextRight
		default:
			return seqscore.ContextInternal
		}
	}

	bound := func(n *node) {
		n.lower, n.upper = remainingBounds(n.i, n.j, nA, nB, bestPair, worstPair, worstOpen, worstExtend)
		n.lower += n.score
		n.upper += n.score
	}

	expand := func(n *node) []*node {
		var children []*node
		if n.i < nA && n.j < nB {
			pairScore, perr := model.PairScore(a[n.i], b[n.j])
			if perr == nil {
				c := &node{i: n.i + 1, j: n.j + 1, score: n.score + pairScore, parent: n, fromDir: moveDiagonal}
				bound(c)
				children = append(children, c)
			}
		}
		if n.j < nB {
			ctx := contextOf(n.i, n.j+1)
			var cost float64
			runLen := 1
			if n.fromDir == moveHorizontal {
				cost = model.GapExtend(strand, ctx, seqscore.Deletion)
				runLen = n.runLen + 1
			} else {
				cost = model.GapOpen(strand, ctx, seqscore.Deletion)
			}
			c := &node{i: n.i, j: n.j + 1, score: n.score + cost, parent: n, fromDir: moveHorizontal, runLen: runLen}
			bound(c)
			children = append(children, c)
		}
		if n.i < nA {
			ctx := contextOf(n.i+1, n.j)
			var cost float64
			runLen := 1
			if n.fromDir == moveVertical {
				cost = model.GapExtend(strand, ctx, seqscore.Insertion)
				runLen = n.runLen + 1
			} else {
				cost = model.GapOpen(strand, ctx, seqscore.Insertion)
			}
			c := &node{i: n.i + 1, j: n.j, score: n.score + cost, parent: n, fromDir: moveVertical, runLen: runLen}
			bound(c)
			children = append(children, c)
		}
		return children
	}

	f := newFrontier(cfg.heapCapacityHint)
	root := &node{}
	bound(root)
	heap.Push(f, root)

	var best *node
	bestScore := math.Inf(-1)
	expansions := 0

	for f.Len() > 0 {
		top := (*f)[0]
		if best != nil && top.upper-bestScore <= eps {
			break
		}
		popped := heap.Pop(f).(*node)
		expansions++

		if popped.i == nA && popped.j == nB {
			if popped.score > bestScore {
				bestScore = popped.score
				best = popped
			}
			continue
		}
		for _, child := range expand(popped) {
			if best != nil && child.upper <= bestScore+eps {
				continue
			}
			heap.Push(f, child)
		}
	}

	result := &Result{
		Score:    best.score,
		Path:     reconstructPath(best, nB, strand),
		Warnings: boundsWarnings(model, strand),
	}
	if cfg.trace {
		result.Expansions = expansions
	}
	return result, nil
}

func reconstructPath(n *node, nB int, strand seqscore.Strand) *Path {
	var pairs []alignedPair
	for cur := n; cur != nil && cur.fromDir != moveNone; cur = cur.parent {
		switch cur.fromDir {
		case moveDiagonal:
			pairs = append(pairs, alignedPair{A: cur.i - 1, B: cur.j - 1})
		case moveHorizontal:
			pairs = append(pairs, alignedPair{A: -1, B: cur.j - 1})
		case moveVertical:
			pairs = append(pairs, alignedPair{A: cur.i - 1, B: -1})
		}
	}
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	rowsA, rowsB := collapseRuns(pairs)
	for k := range rowsB {
		rowsB[k] = remapB(rowsB[k], nB, strand)
	}
	return &Path{RowsA: rowsA, RowsB: rowsB}
}

// collapseRuns groups consecutive columns of the same kind (diagonal,
// gap in A, or gap in B) into a single run-endpoint pair per sequence,
// matching pathenum.Path's encoding (spec.md §4.3). A run that leaves a
// sequence unmoved (a gap in it) reports that sequence's unchanged
// position as both its start and its end.
func collapseRuns(pairs []alignedPair) ([]int, []int) {
	if len(pairs) == 0 {
		return nil, nil
	}
	curA, curB := 0, 0
	if pairs[0].A != -1 {
		curA = pairs[0].A
	}
	if pairs[0].B != -1 {
		curB = pairs[0].B
	}
	var rowsA, rowsB []int
	for i := 0; i < len(pairs); {
		j := i + 1
		for j < len(pairs) && sameRun(pairs[i], pairs[j]) {
			j++
		}
		n := j - i
		switch {
		case pairs[i].A != -1 && pairs[i].B != -1:
			rowsA = append(rowsA, curA, curA+n)
			rowsB = append(rowsB, curB, curB+n)
			curA += n
			curB += n
		case pairs[i].A == -1:
			rowsA = append(rowsA, curA, curA)
			rowsB = append(rowsB, curB, curB+n)
			curB += n
		default:
			rowsA = append(rowsA, curA, curA+n)
			rowsB = append(rowsB, curB, curB)
			curA += n
		}
		i = j
	}
	return rowsA, rowsB
}

// sameRun reports whether p and q belong to the same run kind
// (diagonal, gap in A, or gap in B).
func sameRun(p, q alignedPair) bool {
	kind := func(x alignedPair) int {
		switch {
		case x.A != -1 && x.B != -1:
			return 0
		case x.A == -1:
			return 1
		default:
			return 2
		}
	}
	return kind(p) == kind(q)
}

// remapB reflects a B coordinate j (0..nB) to nB-j for strand '-' at the
// point of emission, never inside the search loop itself (spec.md §9c).
func remapB(j, nB int, strand seqscore.Strand) int {
	if strand != seqscore.StrandMinus {
		return j
	}
	return nB - j
}
