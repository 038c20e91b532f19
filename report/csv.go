package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// CSVRenderer writes the comparison table in long format, one
// time,surv,model row per curve point.
type CSVRenderer struct {
	Path string
}

func (r *CSVRenderer) Render(rep *Report) error {

	fid, err := os.Create(r.Path)
	if err != nil {
		return errors.Wrapf(err, "csv %s", r.Path)
	}
	defer fid.Close()

	w := csv.NewWriter(fid)
	if err := w.Write([]string{"time", "surv", "model"}); err != nil {
		return errors.Wrapf(err, "csv %s", r.Path)
	}

	for _, p := range rep.Table.Rows {
		rec := []string{
			strconv.FormatFloat(p.Time, 'g', -1, 64),
			strconv.FormatFloat(p.Prob, 'g', -1, 64),
			p.Model,
		}
		if err := w.Write(rec); err != nil {
			return errors.Wrapf(err, "csv %s", r.Path)
		}
	}

	w.Flush()
	return errors.Wrapf(w.Error(), "csv %s", r.Path)
}
