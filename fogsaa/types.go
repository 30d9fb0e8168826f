package fogsaa

// alignedPair is one column of an alignment, used only as an
// intermediate while reconstructing the search path: A and/or B hold
// the 0-based index of the consumed symbol, or -1 if that sequence
// contributed a gap at this column.
type alignedPair struct {
	A int
	B int
}

// Path is the single optimal alignment FOGSAA returns — unlike the other
// three engines, FOGSAA does not retain a full trace matrix to enumerate
// from (spec.md §4.2.4: "returns one optimal path, not the full set").
// It is reported the same way pathenum.Path is: two parallel
// run-endpoint sequences (spec.md §4.3), one (start, end) pair per
// maximal run of DIAGONAL/HORIZONTAL/VERTICAL steps.
type Path struct {
	RowsA []int
	RowsB []int
}

// Warning is a non-fatal diagnostic: the Model's scoring parameters
// violate an assumption FOGSAA's admissible bounds rely on (spec.md
// §9a). A non-empty Warning does not invalidate Result.Score/Path; it
// means the branch-and-bound pruning may have been less effective, not
// that the returned path is wrong for the Model as configured.
type Warning string

const (
	// WarningMismatchNotWorseThanMatch fires when mismatch >= match: the
	// bound assumes matching is never worse than mismatching.
	WarningMismatchNotWorseThanMatch Warning = "fogsaa: mismatch score is not worse than match score"

	// WarningGapBetterThanMismatch fires when some configured gap
	// open/extend cost exceeds the mismatch score: the bound assumes a
	// gap is never preferable to a mismatch.
	WarningGapBetterThanMismatch Warning = "fogsaa: a gap cost exceeds the mismatch score"
)

// Result is Fill's return value.
type Result struct {
	Score      float64
	Path       *Path
	Warnings   []Warning
	Expansions int // populated only when WithTrace is set
}
