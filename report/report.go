// Package report renders the merged comparison table and per-model
// summaries to the configured output formats. Each renderer consumes
// the table exactly once.
package report

import (
	"github.com/brookluers/survcmp/surv"
)

// Metric is a per-model accuracy figure carried next to the curve:
// concordance for regression fits, prediction error for ensembles.
type Metric struct {
	Name  string
	Value float64
}

// ModelSummary is one model's row in the summary table.
type ModelSummary struct {
	Label          string  `json:"label"`
	Points         int     `json:"points"`
	MedianSurvival float64 `json:"median_survival"`
	RestrictedMean float64 `json:"restricted_mean"`
	Metric         string  `json:"metric,omitempty"`
	MetricValue    float64 `json:"metric_value,omitempty"`
}

// Band is an ensemble spread band around the mean curve.
type Band struct {
	Label string    `json:"label"`
	Time  []float64 `json:"time"`
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// Report is the material every renderer consumes.
type Report struct {
	Table     surv.Table
	Summaries []ModelSummary
	Band      *Band
}

// Renderer writes one output format for a report.
type Renderer interface {
	Render(rep *Report) error
}

// Summarize builds the per-model summary rows from the merged table,
// preserving merge order. tau bounds the restricted mean integral.
func Summarize(t surv.Table, tau float64, metrics map[string]Metric) []ModelSummary {

	var out []ModelSummary
	for _, label := range t.Labels {
		s := t.Slice(label)
		ms := ModelSummary{
			Label:          label,
			Points:         s.Len(),
			MedianSurvival: surv.MedianSurvival(s),
			RestrictedMean: surv.RestrictedMean(s, tau),
		}
		if m, ok := metrics[label]; ok {
			ms.Metric = m.Name
			ms.MetricValue = m.Value
		}
		out = append(out, ms)
	}

	return out
}
