package dataset

import (
	"github.com/kshedden/dstream/dstream"
	"github.com/kshedden/dstream/formula"
)

// RecodeEvent generates a 0/1 status variable named dst from the raw
// status codes in src, treating any of the given codes as an event.
func RecodeEvent(ds dstream.Dstream, src, dst string, eventCodes ...float64) dstream.Dstream {

	ev := make(map[float64]bool)
	for _, c := range eventCodes {
		ev[c] = true
	}

	f := func(v map[string]interface{}, x interface{}) {
		z := x.([]float64)
		raw := v[src].([]float64)
		for i := range raw {
			if ev[raw[i]] {
				z[i] = 1
			} else {
				z[i] = 0
			}
		}
	}

	return dstream.Generate(ds, dst, f, dstream.Float64)
}

// Bound restricts one variable to [Min, Max]; a nil limit is open.
type Bound struct {
	Var string
	Min *float64
	Max *float64
}

// FilterRange drops rows falling outside the given variable bounds.
// At most one bound per variable is honored.
func FilterRange(ds dstream.Dstream, bounds []Bound) dstream.Dstream {

	if len(bounds) == 0 {
		return ds
	}

	fm := make(map[string]dstream.FilterFunc)
	for _, b := range bounds {
		b := b
		fm[b.Var] = func(x interface{}, keep []bool) bool {
			z := x.([]float64)
			for i, v := range z {
				if b.Min != nil && v < *b.Min {
					keep[i] = false
				}
				if b.Max != nil && v > *b.Max {
					keep[i] = false
				}
			}
			return true
		}
	}

	return dstream.Filter(ds, fm)
}

// Expand applies a model formula to the stream, keeping the named
// outcome variables alongside the expanded design columns.
func Expand(ds dstream.Dstream, fml string, reflev map[string]string, keep ...string) dstream.Dstream {

	fb := formula.New(fml, ds)
	if len(reflev) > 0 {
		fb = fb.RefLevels(reflev)
	}
	dx := fb.Keep(keep...).Done()
	dm := dstream.MemCopy(dx, false)
	dm.Reset()

	return dm
}
