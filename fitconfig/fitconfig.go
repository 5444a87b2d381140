// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fitconfig loads the cmd/fitctl CLI's configuration file: the
// trusted public key, the device id to present for fingerprint binding,
// and the verbosity of fitlog. YAML via gopkg.in/yaml.v3 matches the
// teacher's convention of config-by-struct-tag rather than a hand-rolled
// flat-file parser.
package fitconfig

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a fitctl config file.
type Config struct {
	// PublicKeyPath points at a PEM-encoded RSA public key.
	PublicKeyPath string `yaml:"public_key_path"`

	// DeviceID is a fixed device identity, 4-64 bytes once decoded,
	// presented for fingerprint binding. Optional.
	DeviceID string `yaml:"device_id,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "fitconfig: read config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "fitconfig: parse config")
	}
	if cfg.PublicKeyPath == "" {
		return nil, errors.New("fitconfig: public_key_path is required")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
