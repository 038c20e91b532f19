package surv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMeanCurve(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1.0, 0.5, 0.0, 0.5})

	mean, err := MeanCurve(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, mean)
}

func TestMeanCurveBounded(t *testing.T) {
	m := mat.NewDense(4, 3, []float64{
		1.0, 0.9, 0.2,
		1.0, 0.6, 0.4,
		0.8, 0.5, 0.1,
		0.9, 0.8, 0.3,
	})

	mean, err := MeanCurve(m)
	require.NoError(t, err)
	require.Len(t, mean, 3)

	col := make([]float64, 4)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, m)
		lo, hi := col[0], col[0]
		for _, v := range col {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		assert.GreaterOrEqual(t, mean[j], lo)
		assert.LessOrEqual(t, mean[j], hi)
	}
}

func TestMeanCurveEmpty(t *testing.T) {
	var ei *EmptyInputError

	_, err := MeanCurve(nil)
	require.ErrorAs(t, err, &ei)

	_, err = MeanCurve(&mat.Dense{})
	require.ErrorAs(t, err, &ei)
}

func TestMeanCurveNaNPropagates(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1.0, math.NaN(), 0.5, 0.5})

	mean, err := MeanCurve(m)
	require.NoError(t, err)
	assert.Equal(t, 0.75, mean[0])
	assert.True(t, math.IsNaN(mean[1]))
}

func TestPercentileCurve(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		0.9, 0.1,
		0.5, 0.2,
		0.1, 0.3,
	})

	med, err := PercentileCurve(m, 50)
	require.NoError(t, err)
	require.Len(t, med, 2)
	assert.InDelta(t, 0.5, med[0], 1e-12)
	assert.InDelta(t, 0.2, med[1], 1e-12)

	// Band edges as used for an 80% spread band.
	lo, err := PercentileCurve(m, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.1}, lo)

	hi, err := PercentileCurve(m, 90)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.9, 0.3}, hi)

	_, err = PercentileCurve(&mat.Dense{}, 50)
	var ei *EmptyInputError
	require.ErrorAs(t, err, &ei)
}
