// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// newLogger builds a zap logger writing to stderr and bridges it to logr.
// Verbosity v enables logr V(v) and below.
func newLogger(format string, verbosity int) (logr.Logger, func(), error) {
	var cfg zap.Config
	switch format {
	case logFormatConsole:
		cfg = zap.NewDevelopmentConfig()
	case logFormatJSON:
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	default:
		return logr.Discard(), nil, fmt.Errorf("unknown log format %q (want %s or %s)",
			format, logFormatConsole, logFormatJSON)
	}
	if verbosity < 0 {
		return logr.Discard(), nil, fmt.Errorf("negative verbosity %d", verbosity)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), nil, fmt.Errorf("build logger: %w", err)
	}

	return zapr.NewLogger(zl).WithName("partopt"), func() { _ = zl.Sync() }, nil
}
