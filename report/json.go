package report

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"github.com/brookluers/survcmp/surv"
)

// Curves that never cross 0.5 carry a NaN median; encode those as
// null instead of failing the whole report.
var jsonAPI = sonic.Config{EncodeNullForInfOrNan: true}.Froze()

// JSONRenderer writes a machine-readable report: every curve point
// plus the per-model summaries.
type JSONRenderer struct {
	Path string
}

type jsonReport struct {
	Curves    []surv.Point   `json:"curves"`
	Models    []ModelSummary `json:"models"`
	Band      *Band          `json:"band,omitempty"`
	RowCount  int            `json:"row_count"`
	LabelList []string       `json:"labels"`
}

func (r *JSONRenderer) Render(rep *Report) error {

	jr := jsonReport{
		Curves:    rep.Table.Rows,
		Models:    rep.Summaries,
		Band:      rep.Band,
		RowCount:  rep.Table.Len(),
		LabelList: rep.Table.Labels,
	}

	buf, err := jsonAPI.MarshalIndent(jr, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "json %s", r.Path)
	}

	return errors.Wrapf(os.WriteFile(r.Path, buf, 0644), "json %s", r.Path)
}
