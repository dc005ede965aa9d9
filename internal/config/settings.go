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
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/llm-d/llm-d-physical-units/internal/logging"
	"github.com/llm-d/llm-d-physical-units/pkg/units"
)

// EnvPrefix prefixes every environment variable read by the command line tools,
// e.g. DIMENSIONS_SOURCE_DIR.
const EnvPrefix = "DIMENSIONS"

// Setting keys, shared by flags, environment variables and viper.
const (
	ConfigFileKey     = "config"
	SourceDirKey      = "source-dir"
	DisambiguationKey = "disambiguation"
	LogLevelKey       = "log-level"
)

// Settings are the command line settings. Flags take precedence over environment variables.
type Settings struct {
	ConfigFile     string
	SourceDir      string
	Disambiguation string
	LogLevel       string
}

// BindFlags registers the settings flags on fs and binds them, and the matching
// environment variables, to v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(ConfigFileKey, "", "path to a YAML registry configuration file")
	fs.String(SourceDirKey, "", "directory holding additional dimension tables")
	fs.String(DisambiguationKey, "", "how to resolve a unit matching several dimensions: fail, first or prompt")
	fs.String(LogLevelKey, "info", "log verbosity: info, debug or trace")

	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// LoadSettings reads and validates the settings held by v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	s := Settings{
		ConfigFile:     v.GetString(ConfigFileKey),
		SourceDir:      v.GetString(SourceDirKey),
		Disambiguation: v.GetString(DisambiguationKey),
		LogLevel:       v.GetString(LogLevelKey),
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return Settings{}, err
	}
	if _, err := units.ParseStrategy(s.Disambiguation); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Verbosity returns the logr verbosity for the configured log level.
func (s Settings) Verbosity() int {
	level, _ := logging.ParseLevel(s.LogLevel)
	return level
}

// RegistryConfig reads the configuration file, if any, and overlays the settings that were set.
func (s Settings) RegistryConfig(fs afero.Fs) (RegistryConfig, error) {
	var cfg RegistryConfig
	if s.ConfigFile != "" {
		var err error
		if cfg, err = ReadRegistryConfig(fs, s.ConfigFile); err != nil {
			return RegistryConfig{}, err
		}
	}
	if s.SourceDir != "" {
		cfg.SourceDir = s.SourceDir
	}
	if s.Disambiguation != "" {
		cfg.Disambiguation = s.Disambiguation
	}
	if err := cfg.Validate(); err != nil {
		return RegistryConfig{}, err
	}
	return cfg, nil
}
