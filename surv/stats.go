package surv

import "math"

// MedianSurvival returns the smallest time at which the curve drops to
// 0.5 or below, or NaN when it never does.
func MedianSurvival(s Series) float64 {
	for i := range s.Time {
		if s.Prob[i] <= 0.5 {
			return s.Time[i]
		}
	}
	return math.NaN()
}

// RestrictedMean integrates the step function from zero to tau. The
// curve is treated as 1 before its first observed time.
func RestrictedMean(s Series, tau float64) float64 {
	t0, p := 0.0, 1.0
	var area float64
	for i := range s.Time {
		if s.Time[i] >= tau {
			break
		}
		area += p * (s.Time[i] - t0)
		t0, p = s.Time[i], s.Prob[i]
	}
	area += p * (tau - t0)
	return area
}
