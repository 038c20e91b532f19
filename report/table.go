package report

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer draws the per-model summary table on a terminal.
type TableRenderer struct {
	Out io.Writer
}

func (r *TableRenderer) Render(rep *Report) error {

	tw := tablewriter.NewWriter(r.Out)
	tw.SetHeader([]string{"Model", "Points", "Median survival", "Restricted mean", "Metric", "Value"})

	for _, ms := range rep.Summaries {
		tw.Append([]string{
			ms.Label,
			fmt.Sprintf("%d", ms.Points),
			fmtFloat(ms.MedianSurvival),
			fmtFloat(ms.RestrictedMean),
			ms.Metric,
			fmtFloat(ms.MetricValue),
		})
	}
	tw.Render()

	fmt.Fprintf(r.Out, "%d curve points across %d models\n", rep.Table.Len(), len(rep.Table.Labels))
	return nil
}

// fmtFloat renders NaN as a dash, for curves that never reach the
// median.
func fmtFloat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}
