// SPDX-License-Identifier: MIT
// File: score.go
// Role: LogarithmicScore and QuadraticScore, which evaluate how well the
// training distribution of a subset predicts its held-out observations.

package objective

import (
	"fmt"
	"math"
)

// ScoreValue holds per-post-bin train and test counts of a subset and the
// resulting prediction score.
type ScoreValue struct {
	Train      []float64
	TrainTotal float64
	Test       []float64
	TestTotal  float64
	Score      float64
}

// Vector implements Value.
func (v *ScoreValue) Vector() []float64 {
	out := make([]float64, 0, 3+len(v.Train)+len(v.Test))
	out = append(out, v.TrainTotal, v.TestTotal, v.Score)
	out = append(out, v.Train...)

	return append(out, v.Test...)
}

// scoreBase tabulates the dataset per atom and holds the shared value algebra.
// eval computes Score from the counts of one subset.
type scoreBase struct {
	post             int
	train, test      [][]float64 // [pre][post]
	globalTrain      []float64
	globalTrainTotal float64
	globalTestTotal  float64
	eval             func(*scoreBase, *ScoreValue) float64
}

func newScoreBase(method string, d *Dataset, prior float64) (*scoreBase, error) {
	if err := d.validate(method); err != nil {
		return nil, err
	}
	if prior < 0 || math.IsNaN(prior) || math.IsInf(prior, 0) {
		return nil, fmt.Errorf("%s: prior %g: %w", method, prior, ErrInvalidInput)
	}

	s := &scoreBase{
		post:        d.PostSize,
		train:       make([][]float64, d.PreSize),
		test:        make([][]float64, d.PreSize),
		globalTrain: make([]float64, d.PostSize),
	}
	for i := range s.train {
		s.train[i] = make([]float64, d.PostSize)
		s.test[i] = make([]float64, d.PostSize)
		for l := range s.train[i] {
			s.train[i][l] = prior
		}
	}
	for l := range s.globalTrain {
		s.globalTrain[l] = prior * float64(d.PreSize)
	}
	s.globalTrainTotal = prior * float64(d.PreSize*d.PostSize)

	for _, obs := range d.Train {
		c := float64(obs.Count)
		s.train[obs.Pre][obs.Post] += c
		s.globalTrain[obs.Post] += c
		s.globalTrainTotal += c
	}
	for _, obs := range d.Test {
		c := float64(obs.Count)
		s.test[obs.Pre][obs.Post] += c
		s.globalTestTotal += c
	}

	return s, nil
}

func (s *scoreBase) Atoms() int { return len(s.train) }

func (s *scoreBase) Leaf(atom int) (Value, error) {
	if atom < 0 || atom >= len(s.train) {
		return nil, fmt.Errorf("Leaf(%d): %w", atom, ErrAtomOutOfRange)
	}
	v := &ScoreValue{
		Train: append([]float64(nil), s.train[atom]...),
		Test:  append([]float64(nil), s.test[atom]...),
	}
	for l := 0; l < s.post; l++ {
		v.TrainTotal += v.Train[l]
		v.TestTotal += v.Test[l]
	}
	v.Score = s.eval(s, v)

	return v, nil
}

func (s *scoreBase) Combine(a, b Value) (Value, error) {
	return s.CombineMany([]Value{a, b})
}

func (s *scoreBase) CombineMany(vs []Value) (Value, error) {
	out, err := s.accumulate("CombineMany", vs)
	if err != nil {
		return nil, err
	}
	out.Score = s.eval(s, out)

	return out, nil
}

// Sum adds counts and scores of the parts of a partition.
func (s *scoreBase) Sum(vs []Value) (Value, error) {
	out, err := s.accumulate("Sum", vs)
	if err != nil {
		return nil, err
	}
	out.Score = 0
	for _, v := range vs {
		out.Score += v.(*ScoreValue).Score
	}

	return out, nil
}

// Normalize is the identity: scores are already comparable across subsets.
func (s *scoreBase) Normalize(v, _ Value) (Value, error) {
	sv, err := s.asScore("Normalize", v)
	if err != nil {
		return nil, err
	}
	out := *sv
	out.Train = append([]float64(nil), sv.Train...)
	out.Test = append([]float64(nil), sv.Test...)

	return &out, nil
}

// Scalar returns Score; the parameter is ignored.
func (s *scoreBase) Scalar(v Value, _ float64) (float64, error) {
	sv, err := s.asScore("Scalar", v)
	if err != nil {
		return 0, err
	}

	return sv.Score, nil
}

func (s *scoreBase) Breakdown(v Value) (Breakdown, error) {
	sv, err := s.asScore("Breakdown", v)
	if err != nil {
		return Breakdown{}, err
	}

	return Breakdown{Raw: sv.TestTotal, Reference: sv.TrainTotal, Loss: sv.Score}, nil
}

func (s *scoreBase) accumulate(method string, vs []Value) (*ScoreValue, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("%s: empty input: %w", method, ErrInvalidInput)
	}
	out := &ScoreValue{Train: make([]float64, s.post), Test: make([]float64, s.post)}
	for _, v := range vs {
		sv, err := s.asScore(method, v)
		if err != nil {
			return nil, err
		}
		for l := 0; l < s.post; l++ {
			out.Train[l] += sv.Train[l]
			out.Test[l] += sv.Test[l]
		}
		out.TrainTotal += sv.TrainTotal
		out.TestTotal += sv.TestTotal
	}

	return out, nil
}

func (s *scoreBase) asScore(method string, v Value) (*ScoreValue, error) {
	sv, ok := v.(*ScoreValue)
	if !ok || sv == nil || len(sv.Train) != s.post || len(sv.Test) != s.post {
		return nil, fmt.Errorf("%s: %w", method, ErrObjectiveNotReady)
	}

	return sv, nil
}

// trainFor returns the subset's training distribution, or the global one
// when the subset has no training mass.
func (s *scoreBase) trainFor(v *ScoreValue) ([]float64, float64) {
	if v.TrainTotal > 0 {
		return v.Train, v.TrainTotal
	}

	return s.globalTrain, s.globalTrainTotal
}

// LogarithmicScore is the held-out log loss (base 10) of predicting each test
// observation with the subset's smoothed training distribution. Minimised.
// The prior is added to every (pre, post) cell before counting.
type LogarithmicScore struct {
	*scoreBase
	fixedParam
}

// NewLogarithmicScore builds the objective from d with an additive prior ≥ 0.
func NewLogarithmicScore(d *Dataset, prior float64) (*LogarithmicScore, error) {
	base, err := newScoreBase("NewLogarithmicScore", d, prior)
	if err != nil {
		return nil, err
	}
	base.eval = logLoss

	return &LogarithmicScore{scoreBase: base}, nil
}

func (*LogarithmicScore) Name() string { return "logarithmic-score" }

func (*LogarithmicScore) Maximize() bool { return false }

// logLoss = T·log10(N) − Σ_l t_l·log10(n_l). Bins without test mass are skipped.
func logLoss(s *scoreBase, v *ScoreValue) float64 {
	if v.TestTotal == 0 {
		return 0
	}
	train, total := s.trainFor(v)
	score := v.TestTotal * math.Log10(total)
	for l, t := range v.Test {
		if t > 0 {
			score -= t * math.Log10(train[l])
		}
	}

	return score
}

// QuadraticScore is the Brier-style score Σ_l (2q_l − Σq²)·t_l / T_global of
// the subset's training distribution q on its held-out counts t. Maximised.
type QuadraticScore struct {
	*scoreBase
	fixedParam
}

// NewQuadraticScore builds the objective from d without prior.
func NewQuadraticScore(d *Dataset) (*QuadraticScore, error) {
	base, err := newScoreBase("NewQuadraticScore", d, 0)
	if err != nil {
		return nil, err
	}
	base.eval = brier

	return &QuadraticScore{scoreBase: base}, nil
}

func (*QuadraticScore) Name() string { return "quadratic-score" }

func (*QuadraticScore) Maximize() bool { return true }

func brier(s *scoreBase, v *ScoreValue) float64 {
	if s.globalTestTotal == 0 || v.TestTotal == 0 {
		return 0
	}
	train, total := s.trainFor(v)
	if total == 0 {
		return 0
	}
	var sq float64
	for _, n := range train {
		q := n / total
		sq += q * q
	}
	var score float64
	for l, t := range v.Test {
		score += (2*train[l]/total - sq) * t / s.globalTestTotal
	}

	return score
}
