// Package fit turns prepared frames and external exports into the
// model result shapes the harmonizer consumes. The statistical
// estimation itself is delegated to the statmodel libraries.
package fit

import (
	"github.com/kshedden/statmodel/duration"
	"github.com/pkg/errors"

	"github.com/brookluers/survcmp/dataset"
	"github.com/brookluers/survcmp/surv"
)

// KaplanMeier estimates the survival function of the event time with
// right censoring.
func KaplanMeier(f *dataset.Frame, timevar, statusvar string) (surv.KaplanMeier, error) {

	sf, err := duration.NewSurvfuncRight(f.Dataset(), timevar, statusvar, nil)
	if err != nil {
		return surv.KaplanMeier{}, errors.Wrap(err, "kaplan-meier")
	}

	return surv.KaplanMeier{Time: sf.Time(), SurvProb: sf.SurvProb()}, nil
}

// Censoring estimates the censoring distribution by flipping the
// status indicator and refitting the survival function.
func Censoring(f *dataset.Frame, timevar, statusvar string) (surv.KaplanMeier, error) {

	status := f.Col(statusvar)
	if status == nil {
		return surv.KaplanMeier{}, errors.Errorf("censoring: no variable %s", statusvar)
	}
	tm := f.Col(timevar)
	if tm == nil {
		return surv.KaplanMeier{}, errors.Errorf("censoring: no variable %s", timevar)
	}

	rev := make([]float64, len(status))
	for i, s := range status {
		rev[i] = 1 - s
	}

	rf, err := dataset.NewFrame([]string{timevar, "rstatus"}, [][]float64{tm, rev})
	if err != nil {
		return surv.KaplanMeier{}, errors.Wrap(err, "censoring")
	}

	return KaplanMeier(rf, timevar, "rstatus")
}
