package dataset

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// VarSummary holds descriptive statistics for one variable.
type VarSummary struct {
	Name   string
	N      int
	Mean   float64
	SD     float64
	Min    float64
	Median float64
	Max    float64
}

// Describe computes per-variable summaries for every column of a
// frame.
func Describe(f *Frame) ([]VarSummary, error) {

	var out []VarSummary
	for _, na := range f.Names() {
		col := f.Col(na)
		if len(col) == 0 {
			return nil, errors.Errorf("describe: variable %s is empty", na)
		}

		vs := VarSummary{Name: na, N: len(col)}
		var err error
		if vs.Mean, err = stats.Mean(col); err != nil {
			return nil, errors.Wrapf(err, "describe %s", na)
		}
		if vs.SD, err = stats.StandardDeviationSample(col); err != nil {
			// A single observation has no sample SD.
			vs.SD = 0
		}
		if vs.Min, err = stats.Min(col); err != nil {
			return nil, errors.Wrapf(err, "describe %s", na)
		}
		if vs.Median, err = stats.Median(col); err != nil {
			return nil, errors.Wrapf(err, "describe %s", na)
		}
		if vs.Max, err = stats.Max(col); err != nil {
			return nil, errors.Wrapf(err, "describe %s", na)
		}
		out = append(out, vs)
	}

	return out, nil
}
