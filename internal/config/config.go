// SPDX-License-Identifier: EPL-2.0

// Package config loads extraction settings from a YAML file.
//
// Example file:
//
//	rate: 150
//	format: fixed
//	precision: 4
//	separator: ";"
//	mono: true
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audthin"
	"github.com/ik5/audthin/output"
)

var (
	ErrInvalidTargetRate = errors.New("target rate must be positive")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidPrecision  = errors.New("precision must not be negative")
)

// Config mirrors the command line flags. Keys missing from a file keep
// their defaults.
type Config struct {
	Rate             int    `yaml:"rate"`
	Strict           bool   `yaml:"strict"`
	Mono             bool   `yaml:"mono"`
	Stream           bool   `yaml:"stream"`
	Format           string `yaml:"format"`
	Precision        int    `yaml:"precision"`
	Separator        string `yaml:"separator"`
	ChannelSeparator string `yaml:"channel_separator"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Rate:             audthin.DefaultTargetRate,
		Format:           output.FormatFloat.String(),
		Precision:        output.DefaultPrecision,
		Separator:        output.DefaultSeparator,
		ChannelSeparator: output.DefaultChannelSeparator,
	}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a YAML document on top of Default. An empty document
// yields the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Rate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTargetRate, c.Rate)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if c.Precision < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Precision)
	}

	return nil
}

// Extraction validates c and converts it to an audthin.Config.
func (c Config) Extraction() (audthin.Config, error) {
	if err := c.Validate(); err != nil {
		return audthin.Config{}, err
	}

	format, _ := output.ParseFormat(c.Format)

	cfg := audthin.DefaultConfig()
	cfg.TargetRate = c.Rate
	cfg.Strict = c.Strict
	cfg.Mono = c.Mono
	cfg.Stream = c.Stream
	cfg.Output = output.Options{
		Format:           format,
		Precision:        c.Precision,
		Separator:        c.Separator,
		ChannelSeparator: c.ChannelSeparator,
	}

	return cfg, nil
}
