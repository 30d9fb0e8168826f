package seqalign

import (
	"github.com/katalvlaran/seqalign/fogsaa"
	"github.com/katalvlaran/seqalign/gotoh"
	"github.com/katalvlaran/seqalign/nwsw"
	"github.com/katalvlaran/seqalign/pathenum"
	"github.com/katalvlaran/seqalign/seqscore"
	"github.com/katalvlaran/seqalign/wsb"
)

// Result is Align's return value. Exactly one of Paths or Path is set:
// NW-SW/Gotoh/WSB retain a full trace matrix and report it through Paths,
// a lazy Enumerator over every tied-optimal alignment; FOGSAA never
// builds a matrix to enumerate from and reports its single path directly
// through Path (spec.md §4.2.4), with Warnings set only in that case.
type Result struct {
	Score     float64
	Algorithm seqscore.Algorithm
	Paths     *pathenum.Enumerator
	Path      *fogsaa.Path
	Warnings  []fogsaa.Warning
}

// Align runs model's selected engine over a and b under strand, dispatch
// governed entirely by model.Algorithm() (spec.md §4.1).
func Align(a, b Seq, model *seqscore.Model, strand seqscore.Strand) (*Result, error) {
	if !strand.Valid() {
		return nil, ErrInvalidStrand
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}
	algo, err := model.Algorithm()
	if err != nil {
		return nil, err
	}

	switch algo {
	case seqscore.AlgorithmNWSW:
		score, tm, err := nwsw.Fill(a, b, model, strand)
		if err != nil {
			return nil, err
		}
		pe, err := pathenum.New(tm, pathenum.AlgorithmNWSW, model.Mode(), strand, 0)
		if err != nil {
			return nil, err
		}
		return &Result{Score: score, Algorithm: algo, Paths: pe}, nil

	case seqscore.AlgorithmGotoh:
		res, err := gotoh.Fill(a, b, model, strand)
		if err != nil {
			return nil, err
		}
		pe, err := pathenum.New(res.Trace, pathenum.AlgorithmGotoh, model.Mode(), strand, res.FinalLayers)
		if err != nil {
			return nil, err
		}
		return &Result{Score: res.Score, Algorithm: algo, Paths: pe}, nil

	case seqscore.AlgorithmWSB:
		res, err := wsb.Fill(a, b, model, strand)
		if err != nil {
			return nil, err
		}
		pe, err := pathenum.New(res.Trace, pathenum.AlgorithmWSB, model.Mode(), strand, res.FinalLayers)
		if err != nil {
			return nil, err
		}
		return &Result{Score: res.Score, Algorithm: algo, Paths: pe}, nil

	case seqscore.AlgorithmFOGSAA:
		res, err := fogsaa.Fill(a, b, model, strand)
		if err != nil {
			return nil, err
		}
		return &Result{Score: res.Score, Algorithm: algo, Path: res.Path, Warnings: res.Warnings}, nil

	default:
		return nil, ErrUnsupportedAlgorithm
	}
}
