// Package config loads training configuration for the qgrad CLI from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Training holds the knobs of a CLI training run.
type Training struct {
	// Steps is the maximum number of optimizer steps.
	Steps int `yaml:"steps"`

	// LearningRate is the gradient-descent step size.
	LearningRate float64 `yaml:"learning_rate"`

	// Tolerance stops training early once the cost drops below it.
	Tolerance float64 `yaml:"tolerance"`

	// Seed seeds weight initialization for reproducible runs.
	Seed int64 `yaml:"seed"`

	// Target is the expectation value the rotation demo drives the
	// circuit toward.
	Target float64 `yaml:"target"`
}

// Default returns the configuration used when no file is given.
func Default() Training {
	return Training{
		Steps:        100,
		LearningRate: 0.1,
		Tolerance:    1e-6,
		Seed:         1,
		Target:       0.33,
	}
}

// Load reads a YAML training configuration. Missing fields keep their
// default values.
func Load(path string) (Training, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Training{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Training{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Training{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects nonsensical settings.
func (t Training) Validate() error {
	if t.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", t.Steps)
	}
	if t.LearningRate <= 0 {
		return fmt.Errorf("learning_rate must be positive, got %g", t.LearningRate)
	}
	if t.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", t.Tolerance)
	}
	if t.Target < -1 || t.Target > 1 {
		return fmt.Errorf("target must be an expectation value in [-1, 1], got %g", t.Target)
	}
	return nil
}
