// Package xlog selects a slog.Level from an integer verbosity and wraps
// slog.Logger with the phase-level convenience methods the orchestrator
// and null-model driver use, grounded on
// yesoreyeram-thaiyyal/backend/pkg/logging's Logger-wrapping-slog shape.
//
// Only the analysis orchestrator and the null-model driver use this
// package; the solvers stay silent and return errors instead.
package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Level is a verbosity knob: 0 is silent, 1 logs phase-level progress
// (one line per analysis phase), 2 adds development detail (per-trial
// null-model progress).
type Level int

const (
	Silent Level = iota
	Phase
	Detail
)

// Logger wraps slog.Logger with a verbosity gate.
type Logger struct {
	verbosity Level
	logger    *slog.Logger
}

// Config configures a new Logger.
type Config struct {
	// Verbosity gates which of Phasef/Detailf actually emit.
	Verbosity Level
	// Output is where logs are written (default: os.Stderr).
	Output io.Writer
	// Pretty enables human-readable text output (default: false for JSON).
	Pretty bool
}

// New creates a Logger from cfg.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}
	return &Logger{verbosity: cfg.Verbosity, logger: slog.New(handler)}
}

// Discard returns a Logger that never emits, for callers that don't want
// logging (e.g. a solver used outside the orchestrator).
func Discard() *Logger {
	return &Logger{verbosity: Silent, logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Phasef logs a phase-level message if the logger's verbosity is >= Phase.
func (l *Logger) Phasef(format string, args ...interface{}) {
	if l == nil || l.verbosity < Phase {
		return
	}
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Detailf logs a development-detail message if the logger's verbosity is
// >= Detail.
func (l *Logger) Detailf(format string, args ...interface{}) {
	if l == nil || l.verbosity < Detail {
		return
	}
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Errorf always logs, regardless of verbosity: it reports a condition the
// caller is about to surface as an error return.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.logger.Error(fmt.Sprintf(format, args...))
}
