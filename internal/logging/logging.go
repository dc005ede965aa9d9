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

// Package logging builds the logr loggers used across the module.
package logging

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr.Logger.V.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Log is the process-wide base logger. It discards everything until SetLogger is called.
var Log = logr.Discard()

// SetLogger replaces the process-wide base logger.
func SetLogger(l logr.Logger) {
	Log = l
}

// ParseLevel maps a level name ("info", "debug", "trace") to a logr verbosity.
func ParseLevel(level string) (int, error) {
	switch level {
	case "", "info":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger creates a JSON zap-backed logr.Logger that emits messages up to the given verbosity.
func NewLogger(verbosity int) (logr.Logger, error) {
	cfg := zap.NewProductionConfig()
	// zap levels are negated logr verbosities
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.DisableStacktrace = true
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("building zap logger: %w", err)
	}
	return zapr.NewLogger(zl), nil
}

// NewTestLogger installs a full-verbosity development logger as the base logger and returns it.
// Output is discarded; the logger exists so that every log call site is exercised by test suites.
func NewTestLogger() logr.Logger {
	zl := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(io.Discard),
		zapcore.Level(-TRACE),
	))
	l := zapr.NewLogger(zl)
	SetLogger(l)
	return l
}
