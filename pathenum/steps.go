package pathenum

import "github.com/katalvlaran/seqalign/tracematrix"

// Layer identifies which of the three DP planes a cursor currently
// occupies. NW-SW only ever uses LayerM; Gotoh and WSB use all three.
type Layer int

const (
	LayerM Layer = iota
	LayerIx
	LayerIy
)

// step is one backward move: from (i,j,layer) to (i+di, j+dj, next). For
// NW-SW and Gotoh, di/dj are always 0 or -1 (a unit step); for WSB they
// may be any -k, reflecting a single variable-length gap run recorded in
// the matrix's gap-length lists.
type step struct {
	di, dj int
	next   Layer
}

// stepSource enumerates the candidate backward steps available at
// (i, j, layer), already in the engine's deterministic tie-break order
// so that repeated enumeration is reproducible.
type stepSource func(i, j int, layer Layer) []step

// nwswSource walks a plain tracematrix.Matrix filled by the nwsw engine:
// a single layer, ordered HORIZONTAL > VERTICAL > DIAGONAL per spec.md
// §4.3's deterministic tie-break.
func nwswSource(tm *tracematrix.Matrix) stepSource {
	return func(i, j int, _ Layer) []step {
		bits := tm.At(i, j)
		var steps []step
		for _, bit := range tracematrix.DirectionPriority {
			if !bits.Has(bit) {
				continue
			}
			switch bit {
			case tracematrix.Horizontal:
				steps = append(steps, step{0, -1, LayerM})
			case tracematrix.Vertical:
				steps = append(steps, step{-1, 0, LayerM})
			case tracematrix.Diagonal:
				steps = append(steps, step{-1, -1, LayerM})
			}
		}
		return steps
	}
}

// gotohSource walks a Matrix filled by the gotoh engine: three layers,
// each an O(1) step. M's own diagonal step may switch layer (MMatrix/
// IxMatrix/IyMatrix bits on the main trace plane); Ix/Iy each continue
// in their own layer or switch back to M via the Ix_from/Iy_from
// overlay. Within M, the layer a diagonal step switches to is tried in
// Ix > Iy > M order, generalizing the HORIZONTAL > VERTICAL > DIAGONAL
// tie-break to the three-layer case.
func gotohSource(tm *tracematrix.Matrix) stepSource {
	return func(i, j int, layer Layer) []step {
		switch layer {
		case LayerM:
			bits := tm.At(i, j)
			var steps []step
			for _, pair := range []struct {
				bit tracematrix.TraceBit
				l   Layer
			}{
				{tracematrix.IxMatrix, LayerIx},
				{tracematrix.IyMatrix, LayerIy},
				{tracematrix.MMatrix, LayerM},
			} {
				if bits.Has(pair.bit) {
					steps = append(steps, step{-1, -1, pair.l})
				}
			}
			return steps
		case LayerIx:
			bits, err := tm.IxFrom(i, j)
			if err != nil {
				return nil
			}
			var steps []step
			if bits.Has(tracematrix.IxMatrix) {
				steps = append(steps, step{0, -1, LayerIx})
			}
			if bits.Has(tracematrix.MMatrix) {
				steps = append(steps, step{0, -1, LayerM})
			}
			return steps
		case LayerIy:
			bits, err := tm.IyFrom(i, j)
			if err != nil {
				return nil
			}
			var steps []step
			if bits.Has(tracematrix.IyMatrix) {
				steps = append(steps, step{-1, 0, LayerIy})
			}
			if bits.Has(tracematrix.MMatrix) {
				steps = append(steps, step{-1, 0, LayerM})
			}
			return steps
		default:
			return nil
		}
	}
}

// wsbSource walks a Matrix filled by the wsb engine: M is identical to
// Gotoh's; Ix/Iy instead consult the four variable-length gap-length
// lists, producing one candidate step per recorded (length, source
// layer) pair.
func wsbSource(tm *tracematrix.Matrix) stepSource {
	return func(i, j int, layer Layer) []step {
		switch layer {
		case LayerM:
			return gotohSource(tm)(i, j, layer)
		case LayerIx:
			var steps []step
			if ks, _ := tm.GapLengths(i, j, tracematrix.ListMIx); ks != nil {
				for _, k := range ks {
					steps = append(steps, step{0, -int(k), LayerM})
				}
			}
			if ks, _ := tm.GapLengths(i, j, tracematrix.ListIyIx); ks != nil {
				for _, k := range ks {
					steps = append(steps, step{0, -int(k), LayerIy})
				}
			}
			return steps
		case LayerIy:
			var steps []step
			if ks, _ := tm.GapLengths(i, j, tracematrix.ListMIy); ks != nil {
				for _, k := range ks {
					steps = append(steps, step{-int(k), 0, LayerM})
				}
			}
			if ks, _ := tm.GapLengths(i, j, tracematrix.ListIxIy); ks != nil {
				for _, k := range ks {
					steps = append(steps, step{-int(k), 0, LayerIx})
				}
			}
			return steps
		default:
			return nil
		}
	}
}
