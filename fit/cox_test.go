package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brookluers/survcmp/dataset"
)

func TestLinearPredictor(t *testing.T) {
	f, err := dataset.NewFrame(
		[]string{"x1", "x2"},
		[][]float64{{1, 2, 3}, {0, 1, 0}},
	)
	require.NoError(t, err)

	lp, err := linearPredictor(f, []string{"x1", "x2"}, []float64{2, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 6}, lp)

	_, err = linearPredictor(f, []string{"x1", "nope"}, []float64{1, 1})
	assert.Error(t, err)
}

func TestBreslowSurvivalNullModel(t *testing.T) {
	// Three subjects, events at 1 and 2, censored at 3, null linear
	// predictor. H(1) = 1/3, H(2) = 1/3 + 1/2.
	tm := []float64{3, 1, 2}
	status := []float64{0, 1, 1}
	lp := []float64{0, 0, 0}

	bt, bs := breslowSurvival(tm, status, lp)

	require.Equal(t, []float64{1, 2}, bt)
	assert.InDelta(t, math.Exp(-1.0/3), bs[0], 1e-12)
	assert.InDelta(t, math.Exp(-(1.0/3 + 1.0/2)), bs[1], 1e-12)
}

func TestBreslowSurvivalTies(t *testing.T) {
	// Two events share time 2: one increment of d/riskset.
	tm := []float64{2, 2, 5}
	status := []float64{1, 1, 0}
	lp := []float64{0, 0, 0}

	bt, bs := breslowSurvival(tm, status, lp)

	require.Equal(t, []float64{2}, bt)
	assert.InDelta(t, math.Exp(-2.0/3), bs[0], 1e-12)
}

func TestBreslowSurvivalMonotone(t *testing.T) {
	tm := []float64{4, 1, 7, 3, 9, 2, 8, 6}
	status := []float64{1, 1, 0, 1, 1, 0, 1, 1}
	lp := []float64{0.5, -0.2, 0.1, 0.0, -0.5, 0.3, 0.2, -0.1}

	bt, bs := breslowSurvival(tm, status, lp)

	require.Equal(t, len(bt), len(bs))
	for i := 1; i < len(bt); i++ {
		assert.Greater(t, bt[i], bt[i-1])
		assert.LessOrEqual(t, bs[i], bs[i-1])
	}
	for _, p := range bs {
		assert.Greater(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
}
