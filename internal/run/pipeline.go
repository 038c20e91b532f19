package run

import (
	"os"

	"github.com/kshedden/dstream/dstream"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/vg"

	"github.com/brookluers/survcmp/dataset"
	"github.com/brookluers/survcmp/fit"
	"github.com/brookluers/survcmp/internal/config"
	"github.com/brookluers/survcmp/report"
	"github.com/brookluers/survcmp/surv"
)

// LoadFrame prepares the configured dataset for fitting and returns
// the frame plus the predictor names it carries.
func LoadFrame(cfg *config.Config, log *logrus.Logger) (*dataset.Frame, []string, error) {

	dc := cfg.Dataset

	var ds dstream.Dstream
	var err error
	switch dc.Format {
	case "bcols":
		ds, err = dataset.ReadBCols(dc.Path, dc.ChunkSize)
	default:
		ds, err = dataset.FromCSV(dc.Path, dataset.CSVOptions{
			Float64:   dc.Float64,
			String:    dc.Strings,
			ChunkSize: dc.ChunkSize,
		})
	}
	if err != nil {
		return nil, nil, err
	}
	log.Infof("loaded %s (%s)", dc.Path, dc.Format)

	statusvar := dc.Status
	if len(dc.EventCodes) > 0 {
		ds = dataset.RecodeEvent(ds, dc.Status, "event", dc.EventCodes...)
		statusvar = "event"
	}

	var bounds []dataset.Bound
	for _, fc := range dc.Filters {
		bounds = append(bounds, dataset.Bound{Var: fc.Var, Min: fc.Min, Max: fc.Max})
	}
	ds = dataset.FilterRange(ds, bounds)

	if dc.DropNA {
		ds = dstream.DropNA(ds)
	}

	predictors := dc.Predictors
	if dc.Formula != "" {
		ds = dataset.Expand(ds, dc.Formula, dc.RefLevels, dc.Time, statusvar)
		predictors = nil
		for _, na := range ds.Names() {
			if na != dc.Time && na != statusvar {
				predictors = append(predictors, na)
			}
		}
		log.Infof("formula expanded to %d predictors", len(predictors))
	}

	keep := append([]string{dc.Time, statusvar}, predictors...)
	frame, err := dataset.Collect(ds, keep...)
	if err != nil {
		return nil, nil, err
	}

	if dc.Center {
		skip := append([]string{dc.Time, statusvar}, dc.NoCenter...)
		frame.Center(skip...)
	}
	log.Infof("collected %d observations, %d variables", frame.NumObs(), len(frame.Names()))

	return frame, predictors, nil
}

// Run executes the full comparison: load, wrangle, fit, harmonize,
// render. Every artifact lands in the session directory.
func Run(cfg *config.Config, sess *Session) error {

	frame, predictors, err := LoadFrame(cfg, sess.Log)
	if err != nil {
		return err
	}

	dc := cfg.Dataset
	statusvar := dc.Status
	if len(dc.EventCodes) > 0 {
		statusvar = "event"
	}

	var tagged []surv.Tagged
	metrics := make(map[string]report.Metric)

	km, err := fit.KaplanMeier(frame, dc.Time, statusvar)
	if err != nil {
		return err
	}
	s, err := surv.Adapt(km, cfg.Models.KaplanMeier.Label)
	if err != nil {
		return err
	}
	tagged = append(tagged, surv.Tagged{Series: s, Label: s.Label})
	sess.Log.Infof("kaplan-meier: %d points", s.Len())

	if len(predictors) > 0 {
		cox, err := fit.CoxPH(frame, dc.Time, statusvar, predictors, cfg.Models.Cox.Tmax)
		if err != nil {
			return err
		}
		s, err := surv.Adapt(cox.Curve, cfg.Models.Cox.Label)
		if err != nil {
			return err
		}
		tagged = append(tagged, surv.Tagged{Series: s, Label: s.Label})
		metrics[s.Label] = report.Metric{Name: "concordance", Value: cox.Curve.Concordance}
		sess.Log.Infof("cox: %d predictors, concordance %.3f", len(predictors), cox.Curve.Concordance)

		fname := sess.Path("cox_summary.txt")
		if err := os.WriteFile(fname, []byte(cox.Summary+"\n"), 0644); err != nil {
			return errors.Wrapf(err, "write %s", fname)
		}
	} else {
		sess.Log.Info("no predictors configured, skipping cox model")
	}

	if cfg.Models.Censoring.Enabled {
		cd, err := fit.Censoring(frame, dc.Time, statusvar)
		if err != nil {
			return err
		}
		s, err := surv.Adapt(cd, cfg.Models.Censoring.Label)
		if err != nil {
			return err
		}
		tagged = append(tagged, surv.Tagged{Series: s, Label: s.Label})
	}

	var band *report.Band
	if cfg.Models.Ensemble.Path != "" {
		em, err := fit.ReadEnsemble(cfg.Models.Ensemble.Path)
		if err != nil {
			return err
		}
		s, err := surv.Adapt(em, cfg.Models.Ensemble.Label)
		if err != nil {
			return err
		}
		tagged = append(tagged, surv.Tagged{Series: s, Label: s.Label})
		metrics[s.Label] = report.Metric{Name: "prediction error", Value: em.PredictionError}
		sess.Log.Infof("ensemble: %d times, prediction error %.3f", s.Len(), em.PredictionError)

		if w := cfg.Models.Ensemble.Band; w > 0 {
			lo, err := surv.PercentileCurve(em.Surv, (100-w)/2)
			if err != nil {
				return err
			}
			hi, err := surv.PercentileCurve(em.Surv, (100+w)/2)
			if err != nil {
				return err
			}
			band = &report.Band{Label: s.Label, Time: em.Time, Lower: lo, Upper: hi}
		}
	}

	for _, sc := range cfg.Models.Extra {
		ex, err := fit.ReadSeries(sc.Path)
		if err != nil {
			return err
		}
		s, err := surv.Adapt(ex, sc.Label)
		if err != nil {
			return err
		}
		s = s.Dedup()
		if err := s.Validate(); err != nil {
			// Imported curves are kept as-is beyond deduplication.
			sess.Log.Warnf("imported series %s: %v", sc.Label, err)
		}
		tagged = append(tagged, surv.Tagged{Series: s, Label: sc.Label})
	}

	table := surv.Merge(tagged...)
	if table.Len() == 0 {
		return errors.New("run: no curve points to compare")
	}

	tau := cfg.Output.Tau
	if tau <= 0 {
		times := make([]float64, 0, table.Len())
		for _, p := range table.Rows {
			times = append(times, p.Time)
		}
		tau = floats.Max(times)
	}

	rep := &report.Report{
		Table:     table,
		Summaries: report.Summarize(table, tau, metrics),
		Band:      band,
	}

	for _, format := range cfg.Output.Formats {
		var r report.Renderer
		switch format {
		case "csv":
			r = &report.CSVRenderer{Path: sess.Path("curves.csv")}
		case "json":
			r = &report.JSONRenderer{Path: sess.Path("report.json")}
		case "table":
			r = &report.TableRenderer{Out: os.Stdout}
		case "plot":
			pc := cfg.Output.Plot
			r = &report.PlotRenderer{
				Path:   sess.Path(pc.File),
				Title:  pc.Title,
				Width:  vg.Length(pc.Width) * vg.Inch,
				Height: vg.Length(pc.Height) * vg.Inch,
			}
		default:
			return errors.Errorf("unknown output format %q", format)
		}
		if err := r.Render(rep); err != nil {
			return err
		}
		sess.Log.Infof("rendered %s", format)
	}

	return nil
}
