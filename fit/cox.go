package fit

import (
	"fmt"
	"math"
	"sort"

	"github.com/kshedden/statmodel/duration"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/brookluers/survcmp/dataset"
	"github.com/brookluers/survcmp/surv"
)

// CoxResult bundles a fitted proportional hazards model with its
// derived baseline survival curve.
type CoxResult struct {
	// Predictor names and fitted coefficients, aligned
	Names  []string
	Params []float64

	// Printable coefficient table
	Summary string

	// Baseline survival curve with Harrell concordance attached
	Curve surv.RegressionSurvival
}

// CoxPH fits a Cox proportional hazards model and converts the fit
// into a stepwise survival curve through the Breslow baseline hazard.
// With centered predictors the curve is the survival curve at
// covariate means. tmax truncates the concordance computation.
func CoxPH(f *dataset.Frame, timevar, statusvar string, xnames []string, tmax float64) (*CoxResult, error) {

	model, err := duration.NewPHReg(f.Dataset(), timevar, statusvar, xnames, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cox")
	}

	result, err := model.Fit()
	if err != nil {
		return nil, errors.Wrap(err, "cox fit")
	}

	params := result.Params()
	score, err := linearPredictor(f, xnames, params)
	if err != nil {
		return nil, err
	}

	tm := f.Col(timevar)
	status := f.Col(statusvar)
	bt, bs := breslowSurvival(tm, status, score)

	if tmax <= 0 {
		tmax = floats.Max(tm)
	}
	c := duration.NewConcordance(tm, status, score).Done()

	return &CoxResult{
		Names:   xnames,
		Params:  params,
		Summary: fmt.Sprintf("%v", result.Summary()),
		Curve: surv.RegressionSurvival{
			Time:        bt,
			SurvProb:    bs,
			Concordance: c.Concordance(tmax),
		},
	}, nil
}

// linearPredictor scores every subject with the fitted coefficients.
func linearPredictor(f *dataset.Frame, xnames []string, params []float64) ([]float64, error) {

	if len(params) < len(xnames) {
		return nil, errors.Errorf("cox: %d coefficients for %d predictors", len(params), len(xnames))
	}

	lp := make([]float64, f.NumObs())
	for j, na := range xnames {
		col := f.Col(na)
		if col == nil {
			return nil, errors.Errorf("cox: no variable %s", na)
		}
		floats.AddScaled(lp, params[j], col)
	}

	return lp, nil
}

// breslowSurvival computes the Breslow baseline cumulative hazard over
// the unique event times and returns it as a survival curve. lp is
// the linear predictor per subject.
func breslowSurvival(tm, status, lp []float64) ([]float64, []float64) {

	n := len(tm)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return tm[idx[a]] < tm[idx[b]] })

	// risk[i] holds the risk-set sum of exp(lp) over subjects with
	// time >= tm[idx[i]].
	risk := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		risk[i] = risk[i+1] + math.Exp(lp[idx[i]])
	}

	var times, sp []float64
	var cum float64
	for i := 0; i < n; {
		t := tm[idx[i]]
		j := i
		var d float64
		for j < n && tm[idx[j]] == t {
			d += status[idx[j]]
			j++
		}
		if d > 0 {
			cum += d / risk[i]
			times = append(times, t)
			sp = append(sp, math.Exp(-cum))
		}
		i = j
	}

	return times, sp
}
