package seqscore

// Option configures a Model under construction. Following the donor
// library's functional-options convention (see dijkstra.Option in the
// example pack), options that receive a clearly-invalid literal (a
// negative epsilon, an unrecognized Mode) panic immediately — that is a
// programmer error, not a data-dependent one. Options whose validity
// depends on other fields (gap-function pairing) are checked by
// Model.Validate at New() time instead.
type Option func(*Model)

// WithMatch sets the match score used when no substitution matrix is set.
func WithMatch(score float64) Option {
	return func(m *Model) { m.match = score; m.invalidate() }
}

// WithMismatch sets the mismatch score used when no substitution matrix is set.
func WithMismatch(score float64) Option {
	return func(m *Model) { m.mismatch = score; m.invalidate() }
}

// WithSubstitutionMatrix installs a square substitution matrix, overriding
// match/mismatch scoring entirely.
func WithSubstitutionMatrix(sub *SubstitutionMatrix) Option {
	return func(m *Model) { m.subst = sub; m.invalidate() }
}

// WithWildcard marks symbol as the wildcard: any pair containing it
// scores 0. Per spec.md §3, the wildcard is never consulted when a
// substitution matrix is set.
func WithWildcard(symbol int) Option {
	return func(m *Model) {
		if symbol < 0 {
			panic(ErrInvalidWildcard.Error())
		}
		m.wildcard = symbol
		m.hasWildcard = true
		m.invalidate()
	}
}

// WithGapOpen sets a single open-gap penalty cell.
func WithGapOpen(ctx GapContext, dir GapDirection, score float64) Option {
	return func(m *Model) { m.gaps.SetOpen(ctx, dir, score); m.invalidate() }
}

// WithGapExtend sets a single extend-gap penalty cell.
func WithGapExtend(ctx GapContext, dir GapDirection, score float64) Option {
	return func(m *Model) { m.gaps.SetExtend(ctx, dir, score); m.invalidate() }
}

// WithAffineGap sets both the open and extend penalty for one (context,
// direction) cell in a single call.
func WithAffineGap(ctx GapContext, dir GapDirection, open, extend float64) Option {
	return func(m *Model) {
		m.gaps.SetOpen(ctx, dir, open)
		m.gaps.SetExtend(ctx, dir, extend)
		m.invalidate()
	}
}

// WithUniformGap sets the same open/extend penalty across all six
// (context, direction) cells — the common "one linear gap cost" case.
// Passing open == extend resolves algorithm selection to NW-SW.
func WithUniformGap(open, extend float64) Option {
	return func(m *Model) {
		for ctx := GapContext(0); ctx < 3; ctx++ {
			for dir := GapDirection(0); dir < 2; dir++ {
				m.gaps.SetOpen(ctx, dir, open)
				m.gaps.SetExtend(ctx, dir, extend)
			}
		}
		m.invalidate()
	}
}

// WithGapFunctions installs the two WSB variable-length gap callbacks.
// Supplying either forces algorithm selection to WSB (spec.md §4.1 rule
// 2); both must be supplied together (enforced by Model.Validate).
func WithGapFunctions(insertion, deletion GapScoreFunc) Option {
	return func(m *Model) {
		m.insertionFunc = insertion
		m.deletionFunc = deletion
		m.invalidate()
	}
}

// WithEpsilon sets the numeric tolerance used to classify scores as tied.
// Panics if eps is negative.
func WithEpsilon(eps float64) Option {
	return func(m *Model) {
		if eps < 0 {
			panic(ErrNegativeEpsilon.Error())
		}
		m.epsilon = eps
	}
}

// WithMode sets the alignment mode. Panics if mode is not one of
// ModeGlobal, ModeLocal, ModeFOGSAA.
func WithMode(mode Mode) Option {
	return func(m *Model) {
		if !mode.Valid() {
			panic(ErrInvalidMode.Error())
		}
		m.mode = mode
		m.invalidate()
	}
}
