// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fitconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_DefaultsLogLevel(t *testing.T) {
	path := writeConfig(t, "public_key_path: /tmp/pub.pem\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/pub.pem", cfg.PublicKeyPath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_RequiresPublicKeyPath(t *testing.T) {
	path := writeConfig(t, "log_level: debug\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_PropagatesExplicitLogLevel(t *testing.T) {
	path := writeConfig(t, "public_key_path: /tmp/pub.pem\nlog_level: debug\ndevice_id: \"aabbcc\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "aabbcc", cfg.DeviceID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}
