// Package run executes the comparison pipeline inside per-run session
// directories.
package run

import (
	"io"
	"os"
	"path/filepath"
	"time"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Session is one pipeline invocation: a timestamped directory holding
// the run log and every artifact the renderers produce.
type Session struct {
	ID  string
	Dir string
	Log *logrus.Logger

	logFile *os.File
}

// NewSession creates the run directory and a logger writing to both
// run.log and stderr.
func NewSession(root string, level logrus.Level) (*Session, error) {

	u, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "session id")
	}

	name := time.Now().Format("2006-01-02T15h04m05s_") + u.String()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "session dir %s", dir)
	}

	lf, err := os.Create(filepath.Join(dir, "run.log"))
	if err != nil {
		return nil, errors.Wrapf(err, "session log in %s", dir)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	log.SetLevel(level)
	log.SetOutput(io.MultiWriter(lf, os.Stderr))
	log.Infof("session %s in %s", u.String(), dir)

	return &Session{ID: u.String(), Dir: dir, Log: log, logFile: lf}, nil
}

// Path resolves an artifact name inside the run directory.
func (s *Session) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Close releases the run log file.
func (s *Session) Close() error {
	return s.logFile.Close()
}
