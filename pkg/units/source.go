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

package units

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/llm-d/llm-d-physical-units/internal/logging"
)

// Format identifies the encoding of an external dimension table.
type Format string

// FormatJSON is the only supported table format.
const FormatJSON Format = "json"

// ParseFormat validates a format tag. Only "json" is accepted; "yaml" and every other
// tag fail with ErrUnsupportedFormat.
func ParseFormat(tag string) (Format, error) {
	if Format(strings.ToLower(tag)) == FormatJSON {
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q (only %q is supported)", ErrUnsupportedFormat, tag, FormatJSON)
}

// Source is the interface for pluggable providers of dimension tables.
type Source interface {
	// Name returns a human-readable identifier of the source, used in logs.
	Name() string

	// Open returns the raw bytes of the named table in the given format.
	// It returns an error wrapping ErrSourceNotFound when the table does not exist.
	Open(ctx context.Context, table string, format Format) ([]byte, error)
}

// FSSource serves tables stored as "<Dir>/<table>.<format>" files on an afero filesystem.
type FSSource struct {
	Fs  afero.Fs
	Dir string
}

// NewFSSource returns a Source reading tables from dir on the OS filesystem.
func NewFSSource(dir string) *FSSource {
	return &FSSource{Fs: afero.NewOsFs(), Dir: dir}
}

// Name implements Source.
func (s *FSSource) Name() string {
	return "fs:" + s.Dir
}

// Open implements Source.
func (s *FSSource) Open(ctx context.Context, table string, format Format) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.Dir, table+"."+string(format))
	exists, err := afero.Exists(s.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	data, err := afero.ReadFile(s.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Load reads the named table from src and merges it into the registry.
// The format tag must be "json". Any failure leaves the registry unchanged: the table is
// fully decoded before a single entry is registered.
func (r *Registry) Load(ctx context.Context, src Source, table, format string) (err error) {
	defer func() {
		r.observer.ObserveLoad(table, Format(strings.ToLower(format)), err)
	}()
	f, err := ParseFormat(format)
	if err != nil {
		return err
	}

	data, err := src.Open(ctx, table, f)
	if err != nil {
		return fmt.Errorf("loading dimension table %q from %s: %w", table, src.Name(), err)
	}

	entries, err := DecodeJSON(data)
	if err != nil {
		return fmt.Errorf("decoding dimension table %q from %s: %w", table, src.Name(), err)
	}

	r.Register(entries...)
	r.logger.Info("Loaded dimension table",
		"table", table,
		"source", src.Name(),
		"entries", len(entries))
	r.logger.V(logging.TRACE).Info("Dimension table contents", "names", entryNames(entries))
	return nil
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
