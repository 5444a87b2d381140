// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/luxfi/fit/deviceclock"
	"github.com/luxfi/fit/fit"
	"github.com/luxfi/fit/fitconfig"
	"github.com/luxfi/fit/fitlog"
	"github.com/luxfi/fit/rsaverify"
)

// buildVerifier loads a fitctl config and assembles a *fit.Verifier from
// it. It also builds a structured logger at the configured level; an
// error building it is returned, and the logger is not passed to the
// Verifier.
func buildVerifier(configPath string) (*fit.Verifier, error) {
	cfg, err := fitconfig.Load(configPath)
	if err != nil {
		return nil, err
	}

	pemBytes, err := os.ReadFile(cfg.PublicKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "fitctl: read public key")
	}
	pub, err := rsaverify.ParsePEM(pemBytes)
	if err != nil {
		return nil, errors.Wrap(err, "fitctl: parse public key")
	}

	var device fit.DeviceIDSource = deviceclock.NoDevice{}
	if cfg.DeviceID != "" {
		id, err := hex.DecodeString(cfg.DeviceID)
		if err != nil {
			return nil, errors.Wrap(err, "fitctl: decode device_id")
		}
		device = deviceclock.StaticDeviceID{ID: id}
	}

	if _, err := fitlog.New(logLevel(cfg.LogLevel)); err != nil {
		return nil, errors.Wrap(err, "fitctl: build logger")
	}

	return fit.New(pub, deviceclock.SystemClock{}, device), nil
}

func logLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
