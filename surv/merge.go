package surv

// Tagged pairs a series with the label to stamp on its points. The
// label overrides whatever label the series already carries.
type Tagged struct {
	Series Series
	Label  string
}

// Merge stamps each series with its label and concatenates them in the
// given order. The order is preserved end to end, and times are not
// deduplicated across labels.
func Merge(series ...Tagged) Table {
	var t Table
	for _, ts := range series {
		t.Labels = append(t.Labels, ts.Label)
		for i := range ts.Series.Time {
			t.Rows = append(t.Rows, Point{
				Time:  ts.Series.Time[i],
				Prob:  ts.Series.Prob[i],
				Model: ts.Label,
			})
		}
	}
	return t
}
