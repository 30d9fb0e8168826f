package seqalign

import "github.com/katalvlaran/seqalign/seqscore"

// Rescore recomputes the score of a previously-computed alignment path
// from its run-endpoint coordinates, without needing the trace matrix
// (or Enumerator) that produced it: a caller that serialized rowsA/rowsB
// elsewhere — most directly, a pathenum.Path's or fogsaa.Path's RowsA/
// RowsB fields — can reverify the score they imply against model. rowsA
// and rowsB are the same encoding those types use (spec.md §4.3): two
// parallel sequences where every maximal run of DIAGONAL/HORIZONTAL/
// VERTICAL steps contributes one (start, end) pair to each, so both
// must have equal, even length. Coordinates are read as increasing
// positions in a and b, with strand selecting only the gap penalties; a
// strand '-' Path, whose B coordinates are reflected to nB-j, is
// rejected with ErrPathOutOfOrder unless they are mapped back first.
//
// Rescore expects a path with global semantics — one spanning a and b in
// full, start to end. A local alignment's path should be rescored by
// trimming a and b to the aligned substrings first (a[iStart:iEnd],
// b[jStart:jEnd]) and supplying coordinates relative to that substring.
func Rescore(a, b Seq, model *seqscore.Model, strand seqscore.Strand, rowsA, rowsB []int) (float64, error) {
	if len(rowsA) != len(rowsB) || len(rowsA)%2 != 0 {
		return 0, ErrMismatchedPathLength
	}
	if !strand.Valid() {
		return 0, ErrInvalidStrand
	}
	nA, nB := len(a), len(b)

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

	var total float64
	i, j := 0, 0
	for k := 0; k < len(rowsA); k += 2 {
		startA, endA := rowsA[k], rowsA[k+1]
		startB, endB := rowsB[k], rowsB[k+1]
		if startA != i || startB != j {
			return 0, ErrPathOutOfOrder
		}
		switch {
		case endA > startA && endB > startB:
			if endA-startA != endB-startB {
				return 0, ErrPathOutOfOrder
			}
			for t := endA - startA; t > 0; t-- {
				pairScore, err := model.PairScore(a[i], b[j])
				if err != nil {
					return 0, err
				}
				total += pairScore
				i++
				j++
			}
		case endA == startA && endB > startB:
			cost, err := model.GapCost(strand, contextOf(endA, endB), seqscore.Deletion, startA, endB-startB)
			if err != nil {
				return 0, err
			}
			total += cost
			j = endB
		case endB == startB && endA > startA:
			cost, err := model.GapCost(strand, contextOf(endA, endB), seqscore.Insertion, startA, endA-startA)
			if err != nil {
				return 0, err
			}
			total += cost
			i = endA
		default:
			return 0, ErrPathOutOfOrder
		}
	}
	if i != nA || j != nB {
		return 0, ErrIncompletePath
	}
	return total, nil
}
