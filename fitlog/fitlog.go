// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fitlog provides the structured logger built by the cmd/fitctl
// CLI. Other Lux packages log through luxfi/log,
// itself a thin wrapper over go.uber.org/zap; since luxfi/log is not
// vendored into this module, fitlog wraps zap directly rather than
// reimplementing a log level/field system from scratch.
package fitlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the shared structured logger type, a thin alias over
// *zap.Logger so call sites read exactly like ordinary zap call sites.
type Logger = zap.Logger

// New builds a production-profile logger at the given level, writing
// JSON to stderr.
func New(level zapcore.Level) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Nop returns a logger that discards everything, for tests and library
// callers who configure their own logging.
func Nop() *Logger {
	return zap.NewNop()
}
