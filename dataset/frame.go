// Package dataset loads clinical data and wrangles it into the column
// form the model fitters consume.
package dataset

import (
	"github.com/kshedden/dstream/dstream"
	"github.com/kshedden/statmodel/statmodel"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Frame holds named float64 columns fully in memory.
type Frame struct {
	names []string
	cols  [][]float64
}

// NewFrame wraps parallel column slices. All columns must share one
// length.
func NewFrame(names []string, cols [][]float64) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, errors.Errorf("frame: %d names for %d columns", len(names), len(cols))
	}
	for i := range cols {
		if len(cols[i]) != len(cols[0]) {
			return nil, errors.Errorf("frame: column %s has %d values, expected %d",
				names[i], len(cols[i]), len(cols[0]))
		}
	}
	return &Frame{names: names, cols: cols}, nil
}

// Collect extracts the named columns of a dstream into a Frame.
func Collect(ds dstream.Dstream, names ...string) (*Frame, error) {
	f := new(Frame)
	for _, na := range names {
		ds.Reset()
		col, ok := dstream.GetCol(ds, na).([]float64)
		if !ok {
			return nil, errors.Errorf("collect: variable %s is not float64", na)
		}
		f.names = append(f.names, na)
		f.cols = append(f.cols, col)
	}
	for i := range f.cols {
		if len(f.cols[i]) != len(f.cols[0]) {
			return nil, errors.Errorf("collect: ragged columns for %s", f.names[i])
		}
	}
	return f, nil
}

// Names returns the variable names in column order.
func (f *Frame) Names() []string { return f.names }

// NumObs returns the number of rows.
func (f *Frame) NumObs() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0])
}

// Col returns the named column, or nil when it is absent.
func (f *Frame) Col(name string) []float64 {
	for i, na := range f.names {
		if na == name {
			return f.cols[i]
		}
	}
	return nil
}

// Add appends one column to the frame.
func (f *Frame) Add(name string, col []float64) error {
	if f.Col(name) != nil {
		return errors.Errorf("frame: duplicate variable %s", name)
	}
	if len(f.cols) > 0 && len(col) != f.NumObs() {
		return errors.Errorf("frame: column %s has %d values, expected %d", name, len(col), f.NumObs())
	}
	f.names = append(f.names, name)
	f.cols = append(f.cols, col)
	return nil
}

// Center subtracts the mean from every column not listed in skip.
// With centered predictors the Cox baseline curve is the survival
// curve at covariate means.
func (f *Frame) Center(skip ...string) {

	nc := make(map[string]bool)
	for _, na := range skip {
		nc[na] = true
	}

	for k, na := range f.names {
		if nc[na] || len(f.cols[k]) == 0 {
			continue
		}
		z := f.cols[k]
		mn := floats.Sum(z) / float64(len(z))
		for i := range z {
			z[i] -= mn
		}
	}
}

// Dataset wraps the columns for the statmodel fitters.
func (f *Frame) Dataset() statmodel.Dataset {
	return statmodel.NewDataset(f.cols, f.names)
}
