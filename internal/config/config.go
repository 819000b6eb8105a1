// Package config loads the conversion settings from defaults, YAML and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ukaji3/ratings-go/pkg/ratings"
	"github.com/ukaji3/ratings-go/pkg/ratings/parser"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "RATINGS_CONFIG"
	dataDirEnv    = "RATINGS_DATA_DIR"
	yearEnv       = "RATINGS_YEAR"
	outputEnv     = "RATINGS_OUTPUT"
	appEnvEnv     = "APP_ENV"
	logLevelEnv   = "LOG_LEVEL"
)

// Config holds the settings of a conversion run.
type Config struct {
	AppEnv   string         `yaml:"appEnv"`
	LogLevel string         `yaml:"logLevel"`
	Year     int            `yaml:"year"`
	Data     DataConfig     `yaml:"data"`
	Columns  parser.Columns `yaml:"columns"`
}

// DataConfig locates the input and output files.
// Relative file names are resolved against Dir.
type DataConfig struct {
	Dir      string `yaml:"dir"`
	Registry string `yaml:"registry"`
	Workbook string `yaml:"workbook"`
	Output   string `yaml:"output"`
}

// RegistryPath returns the institution registry location.
func (d DataConfig) RegistryPath() string { return d.resolve(d.Registry) }

// WorkbookPath returns the ratings workbook location.
func (d DataConfig) WorkbookPath() string { return d.resolve(d.Workbook) }

// OutputPath returns the rating document location.
func (d DataConfig) OutputPath() string { return d.resolve(d.Output) }

func (d DataConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// Load builds the configuration from defaults, the YAML file at path
// (or $RATINGS_CONFIG when path is empty) and environment overrides.
// A missing path means defaults only; an unreadable file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: cannot read %s: %w", path, err)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
		cfg = merge(cfg, fileCfg)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppEnv:   "development",
		LogLevel: "info",
		Year:     ratings.DefaultYear,
		Data: DataConfig{
			Dir:      "data",
			Registry: "universities.json",
			Workbook: fmt.Sprintf("ratings-%d.xlsx", ratings.DefaultYear),
			Output:   fmt.Sprintf("ratings-%d.json", ratings.DefaultYear),
		},
		Columns: parser.DefaultColumns(),
	}
}

// Options converts the configuration into conversion options.
func (c *Config) Options() ratings.Options {
	return ratings.Options{
		Year:    c.Year,
		Columns: c.Columns,
	}
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(dataDirEnv); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv(outputEnv); v != "" {
		c.Data.Output = v
	}
	if v := os.Getenv(appEnvEnv); v != "" {
		c.AppEnv = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(yearEnv); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", yearEnv, v, err)
		}
		c.Year = year
	}
	return nil
}

func merge(base, override Config) Config {
	if override.AppEnv != "" {
		base.AppEnv = override.AppEnv
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.Year != 0 {
		base.Year = override.Year
	}

	if override.Data.Dir != "" {
		base.Data.Dir = override.Data.Dir
	}
	if override.Data.Registry != "" {
		base.Data.Registry = override.Data.Registry
	}
	if override.Data.Workbook != "" {
		base.Data.Workbook = override.Data.Workbook
	}
	if override.Data.Output != "" {
		base.Data.Output = override.Data.Output
	}

	base.Columns = base.Columns.Merge(override.Columns)

	return base
}
