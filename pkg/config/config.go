// Package config holds the settings of a community detection run, loaded
// from a YAML file and overridden by COMMUNITIES_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dd0wney/cluso-communities/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Algorithms selectable by a run
const (
	AlgorithmCPM        = "cpm"
	AlgorithmLPA        = "lpa"
	AlgorithmComponents = "components"
	AlgorithmDegrees    = "degrees"
)

// Algorithms lists every accepted Algorithm value
var Algorithms = []string{AlgorithmCPM, AlgorithmLPA, AlgorithmComponents, AlgorithmDegrees}

// Config is the full run configuration
type Config struct {
	Input     string        `yaml:"input" validate:"omitempty,readable"`
	Graph     GraphConfig   `yaml:"graph"`
	Algorithm string        `yaml:"algorithm" validate:"oneof=cpm lpa components degrees"`
	CPM       CPMConfig     `yaml:"cpm"`
	LPA       LPAConfig     `yaml:"lpa"`
	Output    OutputConfig  `yaml:"output"`
	Logging   LoggingConfig `yaml:"logging"`
}

// GraphConfig describes how the edge list is turned into a graph
type GraphConfig struct {
	Vertices int  `yaml:"vertices" validate:"gte=0"`
	Directed bool `yaml:"directed"`
	Remap    bool `yaml:"remap"` // Assign dense ids instead of trusting Vertices
}

// CPMConfig configures clique percolation
type CPMConfig struct {
	CliqueSize int `yaml:"clique_size" validate:"min=2"`
}

// LPAConfig configures label propagation
type LPAConfig struct {
	Seed      int64 `yaml:"seed"`
	MaxSweeps int   `yaml:"max_sweeps" validate:"min=1"`
}

// OutputConfig controls reporting
type OutputConfig struct {
	JSON        bool   `yaml:"json"`
	Top         int    `yaml:"top" validate:"gte=0"` // Largest communities listed, 0 for all
	MetricsFile string `yaml:"metrics_file"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Algorithm: AlgorithmCPM,
		CPM:       CPMConfig{CliqueSize: 3},
		LPA:       LPAConfig{Seed: 3000, MaxSweeps: 1000},
		Output:    OutputConfig{Top: 10},
		Logging:   LoggingConfig{Level: "INFO"},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
// An empty file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("Config")
	cv.Merge(validation.Struct(c))

	cv.OneOf("Logging.Level", strings.ToUpper(c.Logging.Level), []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"})
	cv.Required("Input", c.Input)
	cv.When(!c.Graph.Remap, func(v *validation.ConfigValidator) {
		v.Positive("Graph.Vertices", c.Graph.Vertices)
	})

	return cv.Validate()
}
