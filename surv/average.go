package surv

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MeanCurve reduces a subjects-by-times survival probability matrix to
// the arithmetic mean curve across subjects. NaN entries propagate
// into the affected column means.
func MeanCurve(m *mat.Dense) ([]float64, error) {
	if m == nil {
		return nil, &EmptyInputError{Op: "mean curve"}
	}
	nr, nc := m.Dims()
	if nr == 0 {
		return nil, &EmptyInputError{Op: "mean curve"}
	}
	mean := make([]float64, nc)
	for i := 0; i < nr; i++ {
		floats.Add(mean, m.RawRowView(i))
	}
	floats.Scale(1/float64(nr), mean)
	return mean, nil
}

// PercentileCurve returns the nearest-rank p'th percentile of every
// column, used to draw spread bands around the ensemble mean curve.
// The result is always an observed subject value.
func PercentileCurve(m *mat.Dense, p float64) ([]float64, error) {
	if m == nil {
		return nil, &EmptyInputError{Op: "percentile curve"}
	}
	nr, nc := m.Dims()
	if nr == 0 {
		return nil, &EmptyInputError{Op: "percentile curve"}
	}
	out := make([]float64, nc)
	col := make([]float64, nr)
	for j := 0; j < nc; j++ {
		mat.Col(col, j, m)
		q, err := stats.PercentileNearestRank(col, p)
		if err != nil {
			return nil, err
		}
		out[j] = q
	}
	return out, nil
}
