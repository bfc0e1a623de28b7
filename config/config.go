// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the decaygraph tool.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/decaygraph/event"
)

var (
	// ErrNoInput is returned by Validate when no input file is configured.
	ErrNoInput = errors.New("config: input file not set")

	// ErrBadLimit is returned by Validate for a non-positive limit.
	ErrBadLimit = errors.New("config: limits must be positive")

	// ErrBadMaxEvents is returned by Validate when max_events would stop the
	// run before the first event.
	ErrBadMaxEvents = errors.New("config: max_events must be positive")

	// ErrBadDotDepth is returned by Validate for a negative dot_depth.
	ErrBadDotDepth = errors.New("config: dot_depth cannot be negative")

	// ErrBadCompression is returned by Validate for a deflate level outside
	// 0..9.
	ErrBadCompression = errors.New("config: compression level must be within 0..9")

	// ErrPdtSource is returned by Validate when both a particle-table file
	// and a database are configured.
	ErrPdtSource = errors.New("config: set either pdt.file or pdt.driver/dsn, not both")
)

// Pdt selects where the particle table is read from.
type Pdt struct {
	File   string `yaml:"file"`
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Config is the complete run configuration.
type Config struct {
	Input    string `yaml:"input"`
	TreeName string `yaml:"tree"`
	// Mc reads the generator branches.
	Mc bool `yaml:"mc"`

	Output           string `yaml:"output"`
	CompressionLevel int    `yaml:"compression_level"`
	HistogramOutput  string `yaml:"histograms"`
	DotDir           string `yaml:"dot_dir"`
	// DotDepth cuts DOT drawings this many generations below the roots;
	// zero draws whole graphs.
	DotDepth int `yaml:"dot_depth"`

	Pdt Pdt `yaml:"pdt"`

	Limits    event.Limits `yaml:"limits"`
	MaxEvents int          `yaml:"max_events"`

	// ElectronTauMode labels electron placeholders tau_e instead of tau_mu.
	ElectronTauMode bool `yaml:"electron_tau_mode"`

	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used for every key absent from the
// file.
func Default() Config {
	return Config{
		TreeName:         "ntp1",
		Output:           "candidates.h5",
		CompressionLevel: 4,
		Limits:           event.DefaultLimits(),
		MaxEvents:        1000000000,
	}
}

// Load reads filename over the defaults.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	l := c.Limits
	for _, v := range []int{l.Y, l.B, l.D, l.C, l.H, l.L, l.Gamma, l.Mc} {
		if v <= 0 {
			return fmt.Errorf("%w: %+v", ErrBadLimit, l)
		}
	}
	if c.MaxEvents <= 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxEvents, c.MaxEvents)
	}
	if c.DotDepth < 0 {
		return fmt.Errorf("%w: %d", ErrBadDotDepth, c.DotDepth)
	}
	if c.CompressionLevel < 0 || c.CompressionLevel > 9 {
		return fmt.Errorf("%w: %d", ErrBadCompression, c.CompressionLevel)
	}
	if c.Pdt.File != "" && (c.Pdt.Driver != "" || c.Pdt.DSN != "") {
		return ErrPdtSource
	}
	return nil
}
