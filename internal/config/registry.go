/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/llm-d/llm-d-physical-units/internal/logging"
	"github.com/llm-d/llm-d-physical-units/pkg/units"
)

// DefaultSourceDir is the directory dimension tables are read from when none is configured.
const DefaultSourceDir = "."

// RegistryConfig describes how to build a dimension registry on top of the built-in defaults.
type RegistryConfig struct {
	// SourceDir is the directory holding "<table>.<format>" files.
	SourceDir string `yaml:"sourceDir,omitempty" json:"sourceDir,omitempty"`

	// Tables are loaded in order after the inline dimensions; later tables win on name collisions.
	Tables []TableConfig `yaml:"tables,omitempty" json:"tables,omitempty"`

	// Disambiguation names the strategy used when a unit matches several dimensions
	// ("fail", "first" or "prompt"). Empty means "fail".
	Disambiguation string `yaml:"disambiguation,omitempty" json:"disambiguation,omitempty"`

	// Dimensions are registered before any table is loaded.
	Dimensions []DimensionConfig `yaml:"dimensions,omitempty" json:"dimensions,omitempty"`
}

// TableConfig references an external dimension table.
type TableConfig struct {
	Name string `yaml:"name" json:"name"`

	// Format defaults to "json", the only supported format.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// Optional tables that are missing from the source are skipped instead of failing the build.
	Optional bool `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// DimensionConfig is a dimension declared inline in the configuration file.
type DimensionConfig struct {
	Name        string    `yaml:"name" json:"name"`
	Exponents   []float64 `yaml:"exponents" json:"exponents"`
	DisplayName string    `yaml:"displayName,omitempty" json:"displayName,omitempty"`
}

// Validate checks for invalid configuration values.
func (c *RegistryConfig) Validate() error {
	if _, err := units.ParseStrategy(c.Disambiguation); err != nil {
		return fmt.Errorf("invalid disambiguation: %w", err)
	}
	for i, t := range c.Tables {
		if t.Name == "" {
			return fmt.Errorf("tables[%d]: name must not be empty", i)
		}
		if _, err := units.ParseFormat(t.format()); err != nil {
			return fmt.Errorf("tables[%d] (%s): %w", i, t.Name, err)
		}
	}
	seen := make(map[string]bool, len(c.Dimensions))
	for i, d := range c.Dimensions {
		if d.Name == "" {
			return fmt.Errorf("dimensions[%d]: name must not be empty", i)
		}
		if seen[d.Name] {
			return fmt.Errorf("dimensions[%d]: duplicate name %q", i, d.Name)
		}
		seen[d.Name] = true
		if _, err := units.NewDimension(d.Exponents...); err != nil {
			return fmt.Errorf("dimensions[%d] (%s): %w", i, d.Name, err)
		}
	}
	return nil
}

// Strategy returns the configured disambiguation strategy. Call Validate first.
func (c *RegistryConfig) Strategy() units.Strategy {
	s, _ := units.ParseStrategy(c.Disambiguation)
	return s
}

// Entries converts the inline dimensions into registry entries, preserving their order.
func (c *RegistryConfig) Entries() ([]units.Entry, error) {
	entries := make([]units.Entry, 0, len(c.Dimensions))
	for _, d := range c.Dimensions {
		dim, err := units.NewDimension(d.Exponents...)
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", d.Name, err)
		}
		entries = append(entries, units.Entry{Name: d.Name, Dimension: dim, DisplayName: d.DisplayName})
	}
	return entries, nil
}

func (t TableConfig) format() string {
	if t.Format == "" {
		return string(units.FormatJSON)
	}
	return t.Format
}

// ParseRegistryConfig decodes and validates a YAML registry configuration.
// Unknown fields are rejected. An empty document yields the zero configuration.
func ParseRegistryConfig(data []byte) (RegistryConfig, error) {
	var cfg RegistryConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return RegistryConfig{}, fmt.Errorf("parsing registry config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RegistryConfig{}, err
	}
	return cfg, nil
}

// ReadRegistryConfig reads and parses the registry configuration file at path.
func ReadRegistryConfig(fs afero.Fs, path string) (RegistryConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return RegistryConfig{}, fmt.Errorf("reading registry config: %w", err)
	}
	return ParseRegistryConfig(data)
}

// BuildRegistry creates a default registry and extends it with the inline dimensions and
// tables of cfg. Optional tables missing from src are skipped; every other failure aborts.
func BuildRegistry(ctx context.Context, cfg RegistryConfig, src units.Source, logger logr.Logger, opts ...units.Option) (*units.Registry, error) {
	reg := units.NewDefaultRegistry(append([]units.Option{units.WithLogger(logger)}, opts...)...)

	entries, err := cfg.Entries()
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		reg.Register(entries...)
	}

	for _, t := range cfg.Tables {
		err := reg.Load(ctx, src, t.Name, t.format())
		switch {
		case err == nil:
		case t.Optional && errors.Is(err, units.ErrSourceNotFound):
			logger.Info("Optional dimension table not found, skipping",
				"table", t.Name,
				"source", src.Name())
		default:
			return nil, err
		}
	}

	logger.V(logging.DEBUG).Info("Dimension registry ready",
		"dimensions", reg.Len(),
		"tables", len(cfg.Tables),
		"disambiguation", cfg.Strategy().String())
	return reg, nil
}

// NewSource returns the table source for cfg on fs.
func NewSource(fs afero.Fs, cfg RegistryConfig) units.Source {
	dir := cfg.SourceDir
	if dir == "" {
		dir = DefaultSourceDir
	}
	return &units.FSSource{Fs: fs, Dir: dir}
}
