package seqalign

import (
	"github.com/katalvlaran/seqalign/fogsaa"
	"github.com/katalvlaran/seqalign/gotoh"
	"github.com/katalvlaran/seqalign/nwsw"
	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/wsb"
)

// Seq is an alphabet-index sequence: every engine and the façade itself
// operate on []int, never on raw bytes/runes/strings (spec.md §1 — index
// conversion from a caller's own alphabet is out of scope).
type Seq = []int

// Score runs model's selected engine over a and b and returns only the
// optimal score, without building a trace matrix or path enumerator —
// the cheaper call when a caller only wants the number.
func Score(a, b Seq, model *seqscore.Model, strand seqscore.Strand) (float64, error) {
	if !strand.Valid() {
		return 0, ErrInvalidStrand
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptySequence
	}
	algo, err := model.Algorithm()
	if err != nil {
		return 0, err
	}
	switch algo {
	case seqscore.AlgorithmNWSW:
		score, _, err := nwsw.Fill(a, b, model, strand)
		return score, err
	case seqscore.AlgorithmGotoh:
		res, err := gotoh.Fill(a, b, model, strand)
		if err != nil {
			return 0, err
		}
		return res.Score, nil
	case seqscore.AlgorithmWSB:
		res, err := wsb.Fill(a, b, model, strand)
		if err != nil {
			return 0, err
		}
		return res.Score, nil
	case seqscore.AlgorithmFOGSAA:
		res, err := fogsaa.Fill(a, b, model, strand)
		if err != nil {
			return 0, err
		}
		return res.Score, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}
