package report

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotRenderer draws right-continuous step curves, one line per model
// in merge order. The image format follows the file extension.
type PlotRenderer struct {
	Path   string
	Title  string
	Width  vg.Length
	Height vg.Length
}

func (r *PlotRenderer) Render(rep *Report) error {

	p := plot.New()
	p.Title.Text = r.Title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Survival probability"
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = true

	for i, label := range rep.Table.Labels {
		s := rep.Table.Slice(label)
		xys := make(plotter.XYs, s.Len())
		for k := range s.Time {
			xys[k].X = s.Time[k]
			xys[k].Y = s.Prob[k]
		}

		ln, err := plotter.NewLine(xys)
		if err != nil {
			return errors.Wrapf(err, "plot %s", label)
		}
		ln.StepStyle = plotter.PostStep
		ln.Color = plotutil.Color(i)
		p.Add(ln)
		p.Legend.Add(label, ln)
	}

	if rep.Band != nil {
		for _, edge := range [][]float64{rep.Band.Lower, rep.Band.Upper} {
			xys := make(plotter.XYs, len(edge))
			for k := range edge {
				xys[k].X = rep.Band.Time[k]
				xys[k].Y = edge[k]
			}
			ln, err := plotter.NewLine(xys)
			if err != nil {
				return errors.Wrapf(err, "plot band %s", rep.Band.Label)
			}
			ln.StepStyle = plotter.PostStep
			ln.Color = plotutil.Color(len(rep.Table.Labels))
			ln.Dashes = plotutil.Dashes(1)
			p.Add(ln)
		}
	}

	w, h := r.Width, r.Height
	if w == 0 {
		w = 6 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}

	return errors.Wrapf(p.Save(w, h, r.Path), "plot %s", r.Path)
}
