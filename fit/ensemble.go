package fit

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/brookluers/survcmp/surv"
)

// ensembleExport mirrors the JSON written by the external
// random-survival-forest tool.
type ensembleExport struct {
	Times           []float64   `json:"times"`
	Survival        [][]float64 `json:"survival"`
	PredictionError float64     `json:"prediction_error"`
}

// ReadEnsemble loads a forest export: unique event times, a subjects
// by times survival matrix, and the ensemble's prediction error.
func ReadEnsemble(path string) (surv.EnsembleMatrix, error) {

	buf, err := os.ReadFile(path)
	if err != nil {
		return surv.EnsembleMatrix{}, errors.Wrapf(err, "ensemble %s", path)
	}

	var ex ensembleExport
	if err := sonic.Unmarshal(buf, &ex); err != nil {
		return surv.EnsembleMatrix{}, errors.Wrapf(err, "ensemble %s", path)
	}

	nc := len(ex.Times)
	nr := len(ex.Survival)
	if nr == 0 || nc == 0 {
		return surv.EnsembleMatrix{}, &surv.EmptyInputError{Op: "ensemble " + path}
	}

	flat := make([]float64, 0, nr*nc)
	for _, row := range ex.Survival {
		if len(row) != nc {
			return surv.EnsembleMatrix{}, &surv.ShapeMismatchError{
				Op: "ensemble " + path, TimeLen: nc, ProbLen: len(row),
			}
		}
		flat = append(flat, row...)
	}

	return surv.EnsembleMatrix{
		Time:            ex.Times,
		Surv:            mat.NewDense(nr, nc, flat),
		PredictionError: ex.PredictionError,
	}, nil
}

// seriesExport mirrors a generic stepwise curve exported by an outside
// fitting tool.
type seriesExport struct {
	Times []float64 `json:"times"`
	Surv  []float64 `json:"surv"`
}

// ReadSeries loads a stepwise curve fitted by an outside tool so it
// can join the comparison. Shape checking happens when the result is
// adapted.
func ReadSeries(path string) (surv.KaplanMeier, error) {

	buf, err := os.ReadFile(path)
	if err != nil {
		return surv.KaplanMeier{}, errors.Wrapf(err, "series %s", path)
	}

	var ex seriesExport
	if err := sonic.Unmarshal(buf, &ex); err != nil {
		return surv.KaplanMeier{}, errors.Wrapf(err, "series %s", path)
	}

	return surv.KaplanMeier{Time: ex.Times, SurvProb: ex.Surv}, nil
}
