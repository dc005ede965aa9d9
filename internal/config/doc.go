// Package config provides configuration management for the dimensions tooling.
//
// This package handles loading, validation, and access to registry configuration
// from a YAML file, environment variables, and command-line flags.
//
// Configuration Types:
//
//   - RegistryConfig: table directory, tables to load, inline dimensions, disambiguation strategy
//   - Settings: command line settings (config file, source directory, log level)
//
// Configuration Sources:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables prefixed with DIMENSIONS_
//  3. The YAML registry configuration file
//  4. Default values (lowest priority)
//
// Example usage:
//
//	settings, err := config.LoadSettings(v)
//	if err != nil {
//	    return err
//	}
//
//	fs := afero.NewOsFs()
//	cfg, err := settings.RegistryConfig(fs)
//	if err != nil {
//	    return err
//	}
//
//	reg, err := config.BuildRegistry(ctx, cfg, config.NewSource(fs, cfg), logger)
//
// A configuration file looks like:
//
//	sourceDir: /etc/dimensions
//	disambiguation: first
//	tables:
//	  - name: electromagnetism
//	  - name: optics
//	    optional: true
//	dimensions:
//	  - name: frequency
//	    exponents: [0, 0, -1]
//	    displayName: Hertz
//
// Configuration Validation:
//
// Unknown keys, unsupported table formats, unknown strategies and exponent vectors
// longer than seven entries are rejected when the file is parsed.
package config
