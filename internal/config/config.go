// Package config loads the YAML study configuration that drives a
// comparison run.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full study configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Models  ModelsConfig  `yaml:"models"`
	Output  OutputConfig  `yaml:"output"`
}

// DatasetConfig locates the clinical dataset and describes how to
// prepare it for fitting.
type DatasetConfig struct {
	// Path to a CSV file (optionally gzip-compressed) or to a binary
	// column directory, depending on Format.
	Path      string `yaml:"path"`
	Format    string `yaml:"format"`
	ChunkSize int    `yaml:"chunk_size"`

	// Variables to read from a CSV source, by type.
	Float64 []string `yaml:"float64"`
	Strings []string `yaml:"strings"`

	// Follow-up time and event status variables.
	Time   string `yaml:"time"`
	Status string `yaml:"status"`

	// Raw status codes treated as events. Empty means the status
	// variable is already a 0/1 indicator.
	EventCodes []float64 `yaml:"event_codes"`

	// Either a plain predictor list or a model formula expanded over
	// the stream. The formula wins when both are set.
	Predictors []string          `yaml:"predictors"`
	Formula    string            `yaml:"formula"`
	RefLevels  map[string]string `yaml:"ref_levels"`

	Filters  []FilterConfig `yaml:"filters"`
	DropNA   bool           `yaml:"drop_na"`
	Center   bool           `yaml:"center"`
	NoCenter []string       `yaml:"no_center"`
}

// FilterConfig keeps rows whose variable lies inside [Min, Max]; a
// nil limit is open.
type FilterConfig struct {
	Var string   `yaml:"var"`
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// ModelsConfig names the fitted models and their external inputs. The
// comparison table carries the models in the order Kaplan-Meier, Cox,
// censoring, ensemble, extras.
type ModelsConfig struct {
	KaplanMeier KMConfig       `yaml:"kaplan_meier"`
	Cox         CoxConfig      `yaml:"cox"`
	Censoring   CensConfig     `yaml:"censoring"`
	Ensemble    EnsembleConfig `yaml:"ensemble"`
	Extra       []SeriesConfig `yaml:"extra"`
}

type KMConfig struct {
	Label string `yaml:"label"`
}

type CoxConfig struct {
	Label string `yaml:"label"`

	// Concordance truncation time; zero means the largest observed
	// time.
	Tmax float64 `yaml:"tmax"`
}

type CensConfig struct {
	Enabled bool   `yaml:"enabled"`
	Label   string `yaml:"label"`
}

// EnsembleConfig locates the random-survival-forest export.
type EnsembleConfig struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label"`

	// Width of the percentile spread band drawn around the ensemble
	// mean, e.g. 80 for a 10th-90th percentile band. Zero disables
	// the band.
	Band float64 `yaml:"band"`
}

// SeriesConfig locates a stepwise curve exported by an outside tool.
type SeriesConfig struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label"`
}

// OutputConfig selects the report formats and their geometry.
type OutputConfig struct {
	// Root directory for per-run session directories.
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`

	// Upper limit of the restricted-mean integral; zero means the
	// largest observed time.
	Tau float64 `yaml:"tau"`

	Plot PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	File   string  `yaml:"file"`
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the configuration used when the study file leaves a
// field unset. The model labels follow the classic walkthrough.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Format:    "csv",
			ChunkSize: 1024,
		},
		Models: ModelsConfig{
			KaplanMeier: KMConfig{Label: "KM"},
			Cox:         CoxConfig{Label: "Cox"},
			Censoring:   CensConfig{Label: "Censoring"},
			Ensemble:    EnsembleConfig{Label: "RF"},
		},
		Output: OutputConfig{
			Dir:     "runs",
			Formats: []string{"csv", "table"},
			Plot: PlotConfig{
				File:   "plot.png",
				Title:  "Survival curve comparison",
				Width:  6,
				Height: 4,
			},
		},
	}
}

// Load reads a study file over the defaults and validates the result.
func Load(path string) (*Config, error) {

	cfg := Default()

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the fields every pipeline step relies on.
func (c *Config) Validate() error {

	if c.Dataset.Path == "" {
		return errors.New("dataset.path is required")
	}
	switch c.Dataset.Format {
	case "csv", "bcols":
	default:
		return errors.Errorf("unknown dataset.format %q", c.Dataset.Format)
	}
	if c.Dataset.Time == "" || c.Dataset.Status == "" {
		return errors.New("dataset.time and dataset.status are required")
	}

	for _, f := range c.Output.Formats {
		switch f {
		case "csv", "table", "json", "plot":
		default:
			return errors.Errorf("unknown output format %q", f)
		}
	}

	if b := c.Models.Ensemble.Band; b < 0 || b >= 100 {
		return errors.Errorf("ensemble.band %f outside [0, 100)", b)
	}

	return nil
}
