// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deviceclock defines the two caller-supplied collaborators
// the decision engine suspends on: a wall clock and a device identity
// source. Both take a context.Context so an implementation that does
// real I/O (a flash-backed RTC, a TPM-backed device id) can be
// cancelled or time-limited by the caller, since the engine itself
// imposes no internal timeout.
package deviceclock

import (
	"context"
	"time"
)

// Clock supplies the current time for license expiration decisions.
type Clock interface {
	Now(ctx context.Context) (time.Time, error)
}

// DeviceIDSource supplies the device's raw identity bytes (4-64 bytes)
// for fingerprint binding.
type DeviceIDSource interface {
	DeviceID(ctx context.Context) ([]byte, error)
}

// SystemClock is a Clock backed by time.Now, ignoring ctx cancellation
// since time.Now never blocks.
type SystemClock struct{}

func (SystemClock) Now(context.Context) (time.Time, error) {
	return time.Now(), nil
}

// FixedClock is a Clock that always reports the same instant, for
// deterministic replay and tests.
type FixedClock struct {
	At time.Time
}

func (f FixedClock) Now(context.Context) (time.Time, error) {
	return f.At, nil
}

// StaticDeviceID is a DeviceIDSource that always returns the same bytes,
// the common case for a host-side verifier that reads a device id once
// at startup.
type StaticDeviceID struct {
	ID []byte
}

func (s StaticDeviceID) DeviceID(context.Context) ([]byte, error) {
	return s.ID, nil
}

// NoDevice is a DeviceIDSource for callers with no fingerprint binding
// capability; its DeviceID is never expected to be called unless a
// license actually carries a fingerprint field.
type NoDevice struct{}

func (NoDevice) DeviceID(context.Context) ([]byte, error) {
	return nil, nil
}
