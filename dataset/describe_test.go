package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	f, err := NewFrame(
		[]string{"time", "age"},
		[][]float64{{1, 2, 3, 4}, {50, 60, 70, 80}},
	)
	require.NoError(t, err)

	out, err := Describe(f)
	require.NoError(t, err)
	require.Len(t, out, 2)

	tm := out[0]
	assert.Equal(t, "time", tm.Name)
	assert.Equal(t, 4, tm.N)
	assert.InDelta(t, 2.5, tm.Mean, 1e-12)
	assert.InDelta(t, 1.0, tm.Min, 1e-12)
	assert.InDelta(t, 4.0, tm.Max, 1e-12)
	assert.InDelta(t, 2.5, tm.Median, 1e-12)
	assert.InDelta(t, 1.2909944487, tm.SD, 1e-9)

	age := out[1]
	assert.InDelta(t, 65, age.Mean, 1e-12)
}

func TestDescribeEmptyColumn(t *testing.T) {
	f := &Frame{}
	require.NoError(t, f.Add("x", nil))

	_, err := Describe(f)
	assert.Error(t, err)
}
