package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecodeEvent(t *testing.T) {
	// Status codes: 1 and 2 are events, 0 is censored.
	path := writeCSV(t, "time,code\n1,1\n2,0\n3,2\n4,0\n")
	ds, err := FromCSV(path, CSVOptions{Float64: []string{"time", "code"}})
	require.NoError(t, err)

	ds = RecodeEvent(ds, "code", "event", 1, 2)

	f, err := Collect(ds, "time", "event")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1, 0}, f.Col("event"))
}

func TestFilterRange(t *testing.T) {
	path := writeCSV(t, "time,age\n1,40\n2,55\n3,62\n4,80\n")
	ds, err := FromCSV(path, CSVOptions{Float64: []string{"time", "age"}})
	require.NoError(t, err)

	lo, hi := 50.0, 70.0
	ds = FilterRange(ds, []Bound{{Var: "age", Min: &lo, Max: &hi}})

	f, err := Collect(ds, "time", "age")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, f.Col("time"))
}

func TestFilterRangeNoBounds(t *testing.T) {
	path := writeCSV(t, "time\n1\n2\n")
	ds, err := FromCSV(path, CSVOptions{Float64: []string{"time"}})
	require.NoError(t, err)

	f, err := Collect(FilterRange(ds, nil), "time")
	require.NoError(t, err)
	assert.Equal(t, 2, f.NumObs())
}

func TestCenter(t *testing.T) {
	path := writeCSV(t, "time,x\n1,2\n2,4\n3,6\n")
	ds, err := FromCSV(path, CSVOptions{Float64: []string{"time", "x"}})
	require.NoError(t, err)

	f, err := Collect(ds, "time", "x")
	require.NoError(t, err)

	f.Center("time")
	assert.Equal(t, []float64{1, 2, 3}, f.Col("time"))
	assert.InDeltaSlice(t, []float64{-2, 0, 2}, f.Col("x"), 1e-12)
}
