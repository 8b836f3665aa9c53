// Package projectconfig provides the ProjectConfig struct and loader for
// .evalml.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evalml/evalml/internal/datachecks"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".evalml.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultFormat         = "text"
	DefaultWorkers        = 4
	DefaultImputeStrategy = "mean"
)

// maxWalkUp bounds how many parent directories Load searches.
const maxWalkUp = 10

// CheckConfig names one data check and its parameters.
type CheckConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params,omitempty"`
}

// DefaultsConfig holds defaults for command line flags.
type DefaultsConfig struct {
	ProblemType    string `yaml:"problem_type,omitempty"`
	Objective      string `yaml:"objective,omitempty"`
	ImputeStrategy string `yaml:"impute_strategy,omitempty"`
	Format         string `yaml:"format,omitempty"`
	Workers        int    `yaml:"workers,omitempty"`
}

// MetricsConfig holds telemetry export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .evalml.yaml.
type ProjectConfig struct {
	DataChecks []CheckConfig  `yaml:"data_checks,omitempty"`
	Defaults   DefaultsConfig `yaml:"defaults,omitempty"`
	Metrics    MetricsConfig  `yaml:"metrics,omitempty"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Defaults: DefaultsConfig{
			ImputeStrategy: DefaultImputeStrategy,
			Format:         DefaultFormat,
			Workers:        DefaultWorkers,
		},
	}
}

// Load finds .evalml.yaml by walking up from startDir (max 10 levels),
// validates it against the embedded schema, unmarshals it, and fills in
// missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	if errs := ValidateBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid %s:\n  %s", path, strings.Join(errs, "\n  "))
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Path = path
	return cfg, nil
}

// BuildDataChecks creates the configured checks in order. An empty list
// yields the default checks.
func (c *ProjectConfig) BuildDataChecks(opts ...datachecks.Option) (*datachecks.DataChecks, error) {
	if len(c.DataChecks) == 0 {
		return datachecks.DefaultDataChecks(opts...), nil
	}
	checks := make([]datachecks.DataCheck, 0, len(c.DataChecks))
	for i, cc := range c.DataChecks {
		check, err := datachecks.Create(cc.Name, cc.Params)
		if err != nil {
			return nil, fmt.Errorf("data_checks[%d]: %w", i, err)
		}
		checks = append(checks, check)
	}
	return datachecks.New(checks, opts...), nil
}

// findConfigFile walks up from dir looking for .evalml.yaml.
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied).
func findConfigFile(dir string) (string, []byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxWalkUp; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if len(src.DataChecks) > 0 {
		dst.DataChecks = src.DataChecks
	}

	if src.Defaults.ProblemType != "" {
		dst.Defaults.ProblemType = src.Defaults.ProblemType
	}
	if src.Defaults.Objective != "" {
		dst.Defaults.Objective = src.Defaults.Objective
	}
	if src.Defaults.ImputeStrategy != "" {
		dst.Defaults.ImputeStrategy = src.Defaults.ImputeStrategy
	}
	if src.Defaults.Format != "" {
		dst.Defaults.Format = src.Defaults.Format
	}
	if src.Defaults.Workers != 0 {
		dst.Defaults.Workers = src.Defaults.Workers
	}

	if src.Metrics.Textfile != "" {
		dst.Metrics.Textfile = src.Metrics.Textfile
	}
}
