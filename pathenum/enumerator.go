// Package pathenum walks a filled tracematrix.Matrix back from its
// optimum to every tied beginning, yielding one Path per call to Next.
// It generalizes over the three matrix-filling engines (nwsw, gotoh,
// wsb) through a single stepSource abstraction (steps.go): NW-SW steps
// are unit moves in a single layer, Gotoh steps are unit moves across
// three layers, and WSB steps may cover an arbitrary run length within
// a layer. FOGSAA bypasses this package entirely — it returns one path
// directly from its own search, never a matrix to enumerate from
// (spec.md §4.2.4).
package pathenum

import (
	"github.com/katalvlaran/seqalign/internal/xmath"
	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/tracematrix"
)

// Algorithm names which engine filled the matrix being enumerated, so
// New can pick the matching stepSource.
type Algorithm int

const (
	AlgorithmNWSW Algorithm = iota
	AlgorithmGotoh
	AlgorithmWSB
)

// alignedPair is one column of an alignment, used only as an
// intermediate while walking the trace backward; -1 in either field
// marks a gap in that sequence.
type alignedPair struct {
	A, B int
}

// Path is one complete alignment, as two parallel run-endpoint
// sequences (spec.md §4.3): every maximal run of DIAGONAL, HORIZONTAL,
// or VERTICAL steps contributes exactly one (start, end) pair to each
// of RowsA and RowsB, so len(RowsA) == len(RowsB) == 2 * run count.
// A run that doesn't advance a sequence (a gap in it) reports that
// sequence's unchanged position as both start and end.
type Path struct {
	RowsA []int
	RowsB []int
}

type startPoint struct {
	i, j  int
	layer Layer
}

type frame struct {
	i, j  int
	layer Layer
	steps []step
	idx   int
}

// Enumerator replays a filled Matrix back to every tied optimal
// beginning. It is owned exclusively by its caller — same non-concurrent
// contract as the Matrix it walks (see tracematrix's package doc).
type Enumerator struct {
	tm     *tracematrix.Matrix
	source stepSource
	local  bool
	strand seqscore.Strand
	nA, nB int

	starts   []startPoint
	startIdx int

	frames []frame
	primed bool

	exhausted   bool
	noAlignment bool
}

// New builds an Enumerator over tm, filled by the named algorithm under
// mode and strand. finalLayers is gotoh/wsb's Result.FinalLayers (spec.md
// §4.2.2's Global-mode "which layer(s) tie the final score"); it is
// ignored for AlgorithmNWSW and for ModeLocal, where there is exactly one
// layer (M) to start from.
func New(tm *tracematrix.Matrix, algo Algorithm, mode seqscore.Mode, strand seqscore.Strand, finalLayers tracematrix.TraceBit) (*Enumerator, error) {
	if tm == nil {
		return nil, ErrNilMatrix
	}
	nRows, nCols := tm.Dims()
	e := &Enumerator{
		tm:     tm,
		local:  mode == seqscore.ModeLocal,
		strand: strand,
		nA:     nRows - 1,
		nB:     nCols - 1,
	}
	switch algo {
	case AlgorithmNWSW:
		e.source = nwswSource(tm)
	case AlgorithmGotoh:
		e.source = gotohSource(tm)
	case AlgorithmWSB:
		e.source = wsbSource(tm)
	default:
		return nil, ErrUnknownAlgorithm
	}

	if e.local {
		if tm.PathAt(0, 0) == tracematrix.PathNone {
			e.noAlignment = true
			e.exhausted = true
			return e, nil
		}
		for i := 0; i <= e.nA; i++ {
			for j := 0; j <= e.nB; j++ {
				if tm.At(i, j).Has(tracematrix.Endpoint) {
					e.starts = append(e.starts, startPoint{i, j, LayerM})
				}
			}
		}
		return e, nil
	}

	if algo == AlgorithmNWSW {
		e.starts = []startPoint{{e.nA, e.nB, LayerM}}
		return e, nil
	}
	for _, cand := range [...]struct {
		bit   tracematrix.TraceBit
		layer Layer
	}{
		{tracematrix.IxMatrix, LayerIx},
		{tracematrix.IyMatrix, LayerIy},
		{tracematrix.MMatrix, LayerM},
	} {
		if finalLayers.Has(cand.bit) {
			e.starts = append(e.starts, startPoint{e.nA, e.nB, cand.layer})
		}
	}
	return e, nil
}

// Reset rewinds the enumerator back to its first start candidate, so the
// next Next() call replays the full sequence of paths from the beginning.
func (e *Enumerator) Reset() {
	e.startIdx = 0
	e.frames = e.frames[:0]
	e.primed = false
	e.exhausted = e.noAlignment
}

// Next returns the next tied-optimal path, or (nil, false, nil) once
// every path has been emitted.
func (e *Enumerator) Next() (*Path, bool, error) {
	if e.noAlignment || e.exhausted {
		return nil, false, nil
	}
	for {
		if !e.primed {
			if e.startIdx >= len(e.starts) {
				e.exhausted = true
				return nil, false, nil
			}
			sp := e.starts[e.startIdx]
			e.frames = e.frames[:0]
			e.pushFrame(sp.i, sp.j, sp.layer)
			e.primed = true
		}
		if path, ok := e.advance(); ok {
			return path, true, nil
		}
		e.startIdx++
		e.primed = false
	}
}

func (e *Enumerator) pushFrame(i, j int, layer Layer) {
	e.frames = append(e.frames, frame{i: i, j: j, layer: layer, steps: e.source(i, j, layer)})
}

// advance resumes the depth-first walk of the current start's frame
// stack, returning the next leaf-terminated path it finds (or false once
// the stack under this start is fully exhausted).
func (e *Enumerator) advance() (*Path, bool) {
	for len(e.frames) > 0 {
		ti := len(e.frames) - 1
		if e.frames[ti].idx >= len(e.frames[ti].steps) {
			e.frames = e.frames[:ti]
			if ti > 0 {
				e.frames[ti-1].idx++
			}
			continue
		}
		s := e.frames[ti].steps[e.frames[ti].idx]
		e.pushFrame(e.frames[ti].i+s.di, e.frames[ti].j+s.dj, s.next)
		li := len(e.frames) - 1
		if len(e.frames[li].steps) > 0 {
			continue
		}
		// leaf reached: a local alignment must open on a genuine
		// diagonal match/mismatch, never a gap (spec.md §4.3).
		if e.local && !diagonal(s) {
			e.frames = e.frames[:li]
			e.frames[ti].idx++
			continue
		}
		path := e.buildPath()
		e.frames = e.frames[:li]
		e.frames[ti].idx++
		return path, true
	}
	return nil, false
}

func diagonal(s step) bool { return s.di < 0 && s.dj < 0 }

// buildPath reads the step used at every frame but the last (the leaf)
// and expands it into one or more columns: a unit step is one column,
// a WSB run of length k is k gap columns. The column list is then
// collapsed into run-endpoint coordinates (spec.md §4.3), and for strand
// '-' every B coordinate is reflected to nB-j.
func (e *Enumerator) buildPath() *Path {
	var pairs []alignedPair
	for k := 0; k < len(e.frames)-1; k++ {
		f := e.frames[k]
		s := f.steps[f.idx]
		switch {
		case diagonal(s):
			pairs = append(pairs, alignedPair{A: f.i - 1, B: f.j - 1})
		case s.dj < 0:
			for c := 0; c < -s.dj; c++ {
				pairs = append(pairs, alignedPair{A: -1, B: f.j - 1 - c})
			}
		case s.di < 0:
			for r := 0; r < -s.di; r++ {
				pairs = append(pairs, alignedPair{A: f.i - 1 - r, B: -1})
			}
		}
	}
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	rowsA, rowsB := collapseRuns(pairs)
	for k := range rowsB {
		rowsB[k] = e.remapB(rowsB[k])
	}
	return &Path{RowsA: rowsA, RowsB: rowsB}
}

// collapseRuns groups consecutive columns of the same kind (diagonal,
// gap in A, or gap in B) into a single run-endpoint pair per sequence.
// A run that leaves a sequence unmoved (a gap in it) reports that
// sequence's unchanged position as both its start and its end.
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
// point of emission, never inside the backward walk itself (spec.md §9c).
func (e *Enumerator) remapB(j int) int {
	if e.strand != seqscore.StrandMinus {
		return j
	}
	return e.nB - j
}

// Count reports the total number of distinct tied-optimal paths without
// materializing them, or (0, true) if that count overflows int64.
func (e *Enumerator) Count() (int64, bool) {
	if e.noAlignment {
		return 0, false
	}
	memo := make(map[[3]int]int64)
	overflowed := make(map[[3]int]bool)
	var total int64
	for _, sp := range e.starts {
		c := e.countFrom(sp.i, sp.j, sp.layer, memo, overflowed)
		key := [3]int{sp.i, sp.j, int(sp.layer)}
		if overflowed[key] || xmath.AddOverflowsInt64(total, c) {
			return 0, true
		}
		total += c
	}
	return total, false
}

func (e *Enumerator) countFrom(i, j int, layer Layer, memo map[[3]int]int64, overflowed map[[3]int]bool) int64 {
	key := [3]int{i, j, int(layer)}
	if v, ok := memo[key]; ok {
		return v
	}
	steps := e.source(i, j, layer)
	var total int64
	for _, s := range steps {
		ni, nj := i+s.di, j+s.dj
		childSteps := e.source(ni, nj, s.next)
		var c int64
		if len(childSteps) == 0 {
			if e.local && !diagonal(s) {
				continue
			}
			c = 1
		} else {
			ck := [3]int{ni, nj, int(s.next)}
			c = e.countFrom(ni, nj, s.next, memo, overflowed)
			if overflowed[ck] {
				overflowed[key] = true
				continue
			}
		}
		if xmath.AddOverflowsInt64(total, c) {
			overflowed[key] = true
			continue
		}
		total += c
	}
	if total == 0 && len(steps) == 0 {
		total = 1
	}
	memo[key] = total
	return total
}
