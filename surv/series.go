// Package surv harmonizes the survival curves produced by
// heterogeneous model fits into one tidy comparison table.
package surv

import "fmt"

// Point is one step of a survival curve, tagged with the model that
// produced it.
type Point struct {
	Time  float64 `json:"time"`
	Prob  float64 `json:"surv"`
	Model string  `json:"model"`
}

// Series is one model's survival curve, stored as parallel time and
// survival probability slices. A Series is not modified after
// construction.
type Series struct {
	Label string
	Time  []float64
	Prob  []float64
}

// NewSeries builds a Series from parallel slices. Zero observations
// yield an empty series, not an error.
func NewSeries(label string, time, prob []float64) (Series, error) {
	if len(time) != len(prob) {
		return Series{}, &ShapeMismatchError{Op: "series " + label, TimeLen: len(time), ProbLen: len(prob)}
	}
	return Series{Label: label, Time: time, Prob: prob}, nil
}

// Len returns the number of points on the curve.
func (s Series) Len() int { return len(s.Time) }

// Points expands the parallel slices into tagged points.
func (s Series) Points() []Point {
	pts := make([]Point, len(s.Time))
	for i := range s.Time {
		pts[i] = Point{Time: s.Time[i], Prob: s.Prob[i], Model: s.Label}
	}
	return pts
}

// Validate checks the step-function invariants: non-negative, strictly
// increasing times, and non-increasing probabilities within [0, 1].
func (s Series) Validate() error {
	for i := range s.Time {
		if s.Time[i] < 0 {
			return fmt.Errorf("series %s: negative time %f at position %d", s.Label, s.Time[i], i)
		}
		if s.Prob[i] < 0 || s.Prob[i] > 1 {
			return fmt.Errorf("series %s: probability %f outside [0,1] at position %d", s.Label, s.Prob[i], i)
		}
		if i == 0 {
			continue
		}
		if s.Time[i] <= s.Time[i-1] {
			return fmt.Errorf("series %s: times not strictly increasing at position %d", s.Label, i)
		}
		if s.Prob[i] > s.Prob[i-1] {
			return fmt.Errorf("series %s: probability increases at position %d", s.Label, i)
		}
	}
	return nil
}

// Dedup collapses runs of equal adjacent times, keeping the last point
// of each run so the curve stays right-continuous.
func (s Series) Dedup() Series {
	if len(s.Time) == 0 {
		return s
	}
	var tm, pr []float64
	for i := range s.Time {
		if i+1 < len(s.Time) && s.Time[i+1] == s.Time[i] {
			continue
		}
		tm = append(tm, s.Time[i])
		pr = append(pr, s.Prob[i])
	}
	return Series{Label: s.Label, Time: tm, Prob: pr}
}

// Table is the merged comparison table. Rows appear in merge order,
// and Labels records the caller's series order, which drives legend
// and series ordering downstream.
type Table struct {
	Labels []string
	Rows   []Point
}

// Len returns the number of rows in the table.
func (t Table) Len() int { return len(t.Rows) }

// Slice recovers the series with the given label, preserving row
// order.
func (t Table) Slice(label string) Series {
	var tm, pr []float64
	for _, p := range t.Rows {
		if p.Model == label {
			tm = append(tm, p.Time)
			pr = append(pr, p.Prob)
		}
	}
	return Series{Label: label, Time: tm, Prob: pr}
}
