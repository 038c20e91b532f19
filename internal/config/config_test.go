package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survcmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadOverDefaults(t *testing.T) {
	path := writeConfig(t, `
dataset:
  path: veteran.csv
  time: time
  status: status
  float64: [time, status, karno, age]
  predictors: [karno, age]
  center: true
models:
  cox:
    label: Cox PH
    tmax: 365
  ensemble:
    path: forest.json
    band: 80
output:
  formats: [csv, json, plot]
  tau: 500
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "veteran.csv", cfg.Dataset.Path)
	assert.Equal(t, "csv", cfg.Dataset.Format)
	assert.Equal(t, 1024, cfg.Dataset.ChunkSize)
	assert.Equal(t, []string{"karno", "age"}, cfg.Dataset.Predictors)

	// Defaults survive a partial models section.
	assert.Equal(t, "KM", cfg.Models.KaplanMeier.Label)
	assert.Equal(t, "Cox PH", cfg.Models.Cox.Label)
	assert.Equal(t, "RF", cfg.Models.Ensemble.Label)
	assert.Equal(t, 80.0, cfg.Models.Ensemble.Band)

	assert.Equal(t, []string{"csv", "json", "plot"}, cfg.Output.Formats)
	assert.Equal(t, "runs", cfg.Output.Dir)
	assert.Equal(t, 500.0, cfg.Output.Tau)
}

func TestLoadFilters(t *testing.T) {
	path := writeConfig(t, `
dataset:
  path: data.csv
  time: time
  status: status
  filters:
    - var: age
      min: 50
    - var: karno
      max: 90
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Dataset.Filters, 2)
	require.NotNil(t, cfg.Dataset.Filters[0].Min)
	assert.Equal(t, 50.0, *cfg.Dataset.Filters[0].Min)
	assert.Nil(t, cfg.Dataset.Filters[0].Max)
	require.NotNil(t, cfg.Dataset.Filters[1].Max)
	assert.Equal(t, 90.0, *cfg.Dataset.Filters[1].Max)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing path", "dataset: {time: t, status: s}"},
		{"bad format", "dataset: {path: x, format: parquet, time: t, status: s}"},
		{"missing status", "dataset: {path: x, time: t}"},
		{"bad output format", "dataset: {path: x, time: t, status: s}\noutput: {formats: [pdf]}"},
		{"bad band", "dataset: {path: x, time: t, status: s}\nmodels: {ensemble: {band: 100}}"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, c.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
