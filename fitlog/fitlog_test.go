// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fitlog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNop_DiscardsWithoutPanic(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Info("discarded")
	log.Error("also discarded")
}

func TestNew_BuildsAtRequestedLevel(t *testing.T) {
	log, err := New(zapcore.DebugLevel)
	require.NoError(t, err)
	require.NotNil(t, log)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_RespectsHigherLevelFloor(t *testing.T) {
	log, err := New(zapcore.ErrorLevel)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}
