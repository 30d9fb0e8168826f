package fogsaa

// Option configures a single Fill call. Mirrors the donor's functional-
// options convention (seqscore.Option): these are additive knobs over
// the search, not scoring parameters, so they live on Fill rather than
// on seqscore.Model.
type Option func(*settings)

type settings struct {
	heapCapacityHint int
	trace            bool
}

func defaultSettings() settings {
	return settings{heapCapacityHint: 64}
}

// WithHeapCapacityHint pre-sizes the search frontier's backing slice.
// Purely a performance hint; has no effect on the result. Panics if hint
// is negative.
func WithHeapCapacityHint(hint int) Option {
	return func(s *settings) {
		if hint < 0 {
			panic("fogsaa: heap capacity hint must be >= 0")
		}
		s.heapCapacityHint = hint
	}
}

// WithTrace requests that Result.Expansions record how many nodes the
// search popped from the frontier before terminating.
func WithTrace() Option {
	return func(s *settings) { s.trace = true }
}
