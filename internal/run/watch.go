package run

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/brookluers/survcmp/internal/config"
)

// Watch re-runs the comparison whenever one of the input files
// changes. Events are debounced so a burst of writes triggers one
// run. Watch blocks until the watcher fails.
func Watch(cfg *config.Config, level logrus.Level, debounce time.Duration) error {

	watched := make(map[string]bool)
	watched[filepath.Clean(cfg.Dataset.Path)] = true
	if cfg.Models.Ensemble.Path != "" {
		watched[filepath.Clean(cfg.Models.Ensemble.Path)] = true
	}
	for _, sc := range cfg.Models.Extra {
		watched[filepath.Clean(sc.Path)] = true
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watch")
	}
	defer w.Close()

	// Watch parent directories so file replacement is seen.
	dirs := make(map[string]bool)
	for path := range watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	rerun := func() {
		sess, err := NewSession(cfg.Output.Dir, level)
		if err != nil {
			logrus.Errorf("watch: %v", err)
			return
		}
		defer sess.Close()
		if err := Run(cfg, sess); err != nil {
			sess.Log.Errorf("run failed: %v", err)
		}
	}

	rerun()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			rerun()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logrus.Errorf("watch: %v", err)
		}
	}
}
