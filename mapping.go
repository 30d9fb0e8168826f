package seqalign

// Mapping assigns every distinct raw symbol value it sees the next
// unused compact index, in first-encounter order, so that callers whose
// own alphabet is not already a dense 0..n-1 range (DNA as ASCII bytes,
// arbitrary token ids, ...) can still build a SubstitutionMatrix indexed
// 0..n-1 and feed Score/Align compact indices. Building one Mapping and
// applying it to both sequences before scoring guarantees the same raw
// symbol maps to the same index on both sides.
type Mapping struct {
	index map[int]int
	next  int
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[int]int)}
}

// Apply returns seq with every raw symbol replaced by its compact index,
// assigning a fresh index to any symbol not seen by this Mapping before.
func (m *Mapping) Apply(seq Seq) Seq {
	out := make(Seq, len(seq))
	for k, symbol := range seq {
		idx, ok := m.index[symbol]
		if !ok {
			idx = m.next
			m.index[symbol] = idx
			m.next++
		}
		out[k] = idx
	}
	return out
}

// Size returns the number of distinct symbols assigned so far — the
// dimension a SubstitutionMatrix built against this Mapping must have.
func (m *Mapping) Size() int { return m.next }

// Lookup returns the compact index already assigned to symbol, if any,
// without assigning a new one.
func (m *Mapping) Lookup(symbol int) (int, bool) {
	idx, ok := m.index[symbol]
	return idx, ok
}
