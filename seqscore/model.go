package seqscore

// DefaultEpsilon is the tie tolerance used when no WithEpsilon option is
// supplied, matching spec.md §3's documented default.
const DefaultEpsilon = 1e-6

// DefaultGapPenalty is the uniform open/extend gap cost Default() installs;
// open == extend everywhere resolves algorithm selection to NW-SW.
const DefaultGapPenalty = -1

// Model is the scoring configuration consulted by every DP engine: either
// match/mismatch or a substitution matrix, an optional wildcard, the
// twelve gap penalties (or a pair of WSB callbacks), an epsilon tie
// tolerance, and the alignment mode. Model is built via New and then
// treated as read-only by engines; mutating it through the unexported
// setters backing the Option functions invalidates the cached algorithm
// choice (spec.md §4.1: "Setting any score field invalidates the cached
// algorithm").
type Model struct {
	match, mismatch float64
	subst           *SubstitutionMatrix
	wildcard        int
	hasWildcard     bool

	gaps          GapScheme
	insertionFunc GapScoreFunc
	deletionFunc  GapScoreFunc

	epsilon float64
	mode    Mode

	algoCache Algorithm
	algoValid bool
}

// Default returns a Model with match=1, mismatch=-1, all twelve gap
// costs set to DefaultGapPenalty (so open==extend, i.e. NW-SW), epsilon
// = DefaultEpsilon, and mode = ModeGlobal.
func Default() *Model {
	m := &Model{
		match:    1,
		mismatch: -1,
		epsilon:  DefaultEpsilon,
		mode:     ModeGlobal,
	}
	for ctx := GapContext(0); ctx < 3; ctx++ {
		for dir := GapDirection(0); dir < 2; dir++ {
			m.gaps.SetOpen(ctx, dir, DefaultGapPenalty)
			m.gaps.SetExtend(ctx, dir, DefaultGapPenalty)
		}
	}
	return m
}

// New builds a Model from Default() plus opts, and validates the result.
func New(opts ...Option) (*Model, error) {
	m := Default()
	for _, opt := range opts {
		opt(m)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// invalidate clears the cached algorithm choice; called by every setter.
func (m *Model) invalidate() {
	m.algoValid = false
}

// Validate checks configuration-level invariants: a valid mode, a
// properly paired set of WSB gap callbacks, and a non-negative epsilon.
// Substitution-matrix shape is already enforced by NewSubstitutionMatrix,
// so it is not re-checked here.
func (m *Model) Validate() error {
	if !m.mode.Valid() {
		return ErrInvalidMode
	}
	if (m.insertionFunc == nil) != (m.deletionFunc == nil) {
		return ErrGapFunctionRequired
	}
	if m.epsilon < 0 {
		return ErrNegativeEpsilon
	}
	return nil
}

// Epsilon returns the configured tie tolerance.
func (m *Model) Epsilon() float64 { return m.epsilon }

// Mode returns the configured alignment mode.
func (m *Model) Mode() Mode { return m.mode }

// SubstitutionMatrix returns the configured matrix, or nil if match/mismatch
// scoring is in effect.
func (m *Model) SubstitutionMatrix() *SubstitutionMatrix { return m.subst }

// Wildcard returns the configured wildcard symbol and whether one is set.
func (m *Model) Wildcard() (int, bool) { return m.wildcard, m.hasWildcard }

// HasGapFunctions reports whether WSB callbacks are installed.
func (m *Model) HasGapFunctions() bool { return m.insertionFunc != nil && m.deletionFunc != nil }

// Match returns the configured match score (ignored once a substitution
// matrix is set). Exposed for FOGSAA's bound-sanity check (spec.md §9a:
// "mismatch >= match" is a documented Warning condition, not an error).
func (m *Model) Match() float64 { return m.match }

// Mismatch returns the configured mismatch score (ignored once a
// substitution matrix is set).
func (m *Model) Mismatch() float64 { return m.mismatch }

// Algorithm resolves (and caches) which DP engine this Model selects,
// per spec.md §4.1:
//
//  1. mode == ModeFOGSAA -> FOGSAA.
//  2. either gap callback set -> WSB.
//  3. all six (open, extend) pairs equal -> NW-SW.
//  4. otherwise -> Gotoh.
func (m *Model) Algorithm() (Algorithm, error) {
	if m.algoValid {
		return m.algoCache, nil
	}
	if err := m.Validate(); err != nil {
		return 0, err
	}
	var a Algorithm
	switch {
	case m.mode == ModeFOGSAA:
		a = AlgorithmFOGSAA
	case m.insertionFunc != nil || m.deletionFunc != nil:
		a = AlgorithmWSB
	case m.gaps.AllEqual():
		a = AlgorithmNWSW
	default:
		a = AlgorithmGotoh
	}
	m.algoCache = a
	m.algoValid = true
	return a, nil
}

// PairScore returns the score for aligning symbol a against symbol b:
// M[a][b] if a substitution matrix is set, 0 if either is the wildcard,
// match if a==b, else mismatch.
func (m *Model) PairScore(a, b int) (float64, error) {
	if m.subst != nil {
		return m.subst.At(a, b)
	}
	if m.hasWildcard && (a == m.wildcard || b == m.wildcard) {
		return 0, nil
	}
	if a == b {
		return m.match, nil
	}
	return m.mismatch, nil
}

// GapOpen returns the open-gap penalty for the given strand-resolved
// context and direction (spec.md §4.2: strand '-' swaps left/right).
func (m *Model) GapOpen(strand Strand, ctx GapContext, dir GapDirection) float64 {
	return m.gaps.Open(contextForStrand(strand, ctx), dir)
}

// GapExtend returns the extend-gap penalty for the given strand-resolved
// context and direction.
func (m *Model) GapExtend(strand Strand, ctx GapContext, dir GapDirection) float64 {
	return m.gaps.Extend(contextForStrand(strand, ctx), dir)
}

// GapCost returns the total cost of a gap of length k starting
// immediately after sequence position i, in direction dir, under gap
// context ctx. When WSB callbacks are installed the matching callback is
// used; otherwise the parametric affine fallback open+(k-1)*extend is
// used (spec.md §4.2.3).
func (m *Model) GapCost(strand Strand, ctx GapContext, dir GapDirection, i, k int) (float64, error) {
	if k <= 0 {
		return 0, ErrInvalidGapLength
	}
	if dir == Insertion && m.insertionFunc != nil {
		return m.insertionFunc(i, k), nil
	}
	if dir == Deletion && m.deletionFunc != nil {
		return m.deletionFunc(i, k), nil
	}
	open := m.GapOpen(strand, ctx, dir)
	extend := m.GapExtend(strand, ctx, dir)
	return open + float64(k-1)*extend, nil
}
