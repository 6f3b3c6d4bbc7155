// Package config loads the aoc.yaml settings of the aoc command.
package config

import (
	"fmt"
	"os"

	"github.com/henderiw/aoc23/pkg/puzzle"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInputDir  = "input"
	DefaultInputName = "puzzle"
)

type Config struct {
	// InputDir holds one day_NN directory per day.
	InputDir string `yaml:"input_dir"`

	// InputName is the file read from every day directory, without the
	// .txt extension.
	InputName string `yaml:"input_name"`

	// Workers bounds the brute-force solver; 0 uses one worker per CPU.
	Workers int `yaml:"workers"`

	// BruteForce also selects the puzzles labelled strategy=bruteforce.
	BruteForce bool `yaml:"bruteforce"`

	// VerifySamples checks every puzzle against its statement example
	// before solving the real input.
	VerifySamples bool `yaml:"verify_samples"`

	// Selector is a label selector such as "day in (1,5),part=hard".
	Selector string `yaml:"selector"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return defaults()
}

// Load reads and parses the YAML config file at path. Missing fields keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		InputDir:      DefaultInputDir,
		InputName:     DefaultInputName,
		VerifySamples: true,
	}
}

// Validate checks the fields after flags were applied on top of the file.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.InputName == "" {
		return fmt.Errorf("input_name is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := puzzle.ParseSelector(c.Selector); err != nil {
		return fmt.Errorf("selector: %w", err)
	}
	return nil
}
