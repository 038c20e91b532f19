package surv

import "gonum.org/v1/gonum/mat"

// Result is the native output of one fitted survival model. The three
// shapes produced by the fitting collaborators all satisfy it, and the
// shape is dispatched once, at the Adapt boundary.
type Result interface {
	curve() (time, prob []float64, err error)
}

// KaplanMeier is a stepwise survival function estimate: parallel event
// time and survival probability sequences.
type KaplanMeier struct {
	Time     []float64
	SurvProb []float64
}

func (r KaplanMeier) curve() ([]float64, []float64, error) {
	if len(r.Time) != len(r.SurvProb) {
		return nil, nil, &ShapeMismatchError{Op: "kaplan-meier", TimeLen: len(r.Time), ProbLen: len(r.SurvProb)}
	}
	return r.Time, r.SurvProb, nil
}

// RegressionSurvival is a survival curve derived from a fitted hazard
// regression, with the model's concordance carried alongside. The
// concordance is reported, never transformed.
type RegressionSurvival struct {
	Time        []float64
	SurvProb    []float64
	Concordance float64
}

func (r RegressionSurvival) curve() ([]float64, []float64, error) {
	if len(r.Time) != len(r.SurvProb) {
		return nil, nil, &ShapeMismatchError{Op: "regression survival", TimeLen: len(r.Time), ProbLen: len(r.SurvProb)}
	}
	return r.Time, r.SurvProb, nil
}

// EnsembleMatrix is a forest-style ensemble estimate: one survival
// probability per subject and unique event time, plus the ensemble's
// prediction error, which passes through unmodified.
type EnsembleMatrix struct {
	Time            []float64
	Surv            *mat.Dense
	PredictionError float64
}

func (r EnsembleMatrix) curve() ([]float64, []float64, error) {
	mean, err := MeanCurve(r.Surv)
	if err != nil {
		return nil, nil, err
	}
	if len(mean) != len(r.Time) {
		return nil, nil, &ShapeMismatchError{Op: "ensemble", TimeLen: len(r.Time), ProbLen: len(mean)}
	}
	return r.Time, mean, nil
}

// Adapt converts a model result into a labeled series. Stepwise shapes
// are zipped pointwise; the matrix shape is averaged across subjects
// first. On error no partial series is returned.
func Adapt(r Result, label string) (Series, error) {
	tm, pr, err := r.curve()
	if err != nil {
		return Series{}, err
	}
	return Series{Label: label, Time: tm, Prob: pr}, nil
}
