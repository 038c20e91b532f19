package run

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brookluers/survcmp/internal/config"
)

// writeStudy builds a small synthetic clinical dataset and a forest
// export next to it.
func writeStudy(t *testing.T) (dir, csvPath, forestPath string) {
	t.Helper()
	dir = t.TempDir()

	rng := rand.New(rand.NewSource(7))
	var sb strings.Builder
	sb.WriteString("time,status,trt,age\n")
	for i := 0; i < 60; i++ {
		trt := float64(i % 2)
		age := 50 + rng.Float64()*20
		// Treated subjects survive longer on average.
		tm := 1 + rng.ExpFloat64()*(5+5*trt)
		status := 1
		if rng.Float64() < 0.25 {
			status = 0
		}
		sb.WriteString(fmt.Sprintf("%.3f,%d,%.0f,%.2f\n", tm, status, trt, age))
	}
	csvPath = filepath.Join(dir, "study.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sb.String()), 0644))

	forestPath = filepath.Join(dir, "forest.json")
	forest := `{
		"times": [1, 3, 6, 9],
		"survival": [
			[0.95, 0.80, 0.60, 0.40],
			[0.90, 0.70, 0.50, 0.30],
			[0.99, 0.90, 0.75, 0.55]
		],
		"prediction_error": 0.18
	}`
	require.NoError(t, os.WriteFile(forestPath, []byte(forest), 0644))
	return dir, csvPath, forestPath
}

func studyConfig(t *testing.T, csvPath, forestPath string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Dataset.Path = csvPath
	cfg.Dataset.Float64 = []string{"time", "status", "trt", "age"}
	cfg.Dataset.Time = "time"
	cfg.Dataset.Status = "status"
	cfg.Dataset.Predictors = []string{"trt", "age"}
	cfg.Dataset.Center = true
	cfg.Models.Ensemble.Path = forestPath
	cfg.Models.Ensemble.Band = 80
	cfg.Models.Censoring.Enabled = true
	cfg.Output.Formats = []string{"csv", "json", "plot"}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestLoadFrame(t *testing.T) {
	_, csvPath, forestPath := writeStudy(t)
	cfg := studyConfig(t, csvPath, forestPath)

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	frame, predictors, err := LoadFrame(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 60, frame.NumObs())
	assert.Equal(t, []string{"trt", "age"}, predictors)

	// Centered predictor means are near zero.
	var mn float64
	for _, v := range frame.Col("age") {
		mn += v
	}
	assert.InDelta(t, 0, mn/60, 1e-8)
}

func TestRunEndToEnd(t *testing.T) {
	dir, csvPath, forestPath := writeStudy(t)
	cfg := studyConfig(t, csvPath, forestPath)
	cfg.Output.Dir = filepath.Join(dir, "runs")

	sess, err := NewSession(cfg.Output.Dir, logrus.ErrorLevel)
	require.NoError(t, err)
	defer sess.Close()

	require.NoError(t, Run(cfg, sess))

	for _, name := range []string{"curves.csv", "report.json", "plot.png", "cox_summary.txt"} {
		st, err := os.Stat(sess.Path(name))
		require.NoError(t, err, name)
		assert.NotZero(t, st.Size(), name)
	}

	buf, err := os.ReadFile(sess.Path("curves.csv"))
	require.NoError(t, err)
	out := string(buf)
	assert.Contains(t, out, "time,surv,model")
	for _, label := range []string{"KM", "Cox", "Censoring", "RF"} {
		assert.Contains(t, out, label)
	}
}

func TestRunNoPredictors(t *testing.T) {
	dir, csvPath, _ := writeStudy(t)
	cfg := config.Default()
	cfg.Dataset.Path = csvPath
	cfg.Dataset.Float64 = []string{"time", "status"}
	cfg.Dataset.Time = "time"
	cfg.Dataset.Status = "status"
	cfg.Output.Dir = filepath.Join(dir, "runs")
	cfg.Output.Formats = []string{"csv"}

	sess, err := NewSession(cfg.Output.Dir, logrus.ErrorLevel)
	require.NoError(t, err)
	defer sess.Close()

	require.NoError(t, Run(cfg, sess))

	buf, err := os.ReadFile(sess.Path("curves.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "KM")
	assert.NotContains(t, string(buf), "Cox")
}
