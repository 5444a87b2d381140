// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deviceclock

import (
	"context"
	"testing"
	"time"
)

func TestFixedClock_ReturnsConstantTime(t *testing.T) {
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	c := FixedClock{At: at}
	got, err := c.Now(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(at) {
		t.Errorf("Now() = %v, want %v", got, at)
	}
}

func TestStaticDeviceID_ReturnsConfiguredID(t *testing.T) {
	d := StaticDeviceID{ID: []byte("device-abc")}
	got, err := d.DeviceID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "device-abc" {
		t.Errorf("DeviceID() = %q, want %q", got, "device-abc")
	}
}

func TestNoDevice_ReturnsNil(t *testing.T) {
	var d NoDevice
	got, err := d.DeviceID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("DeviceID() = %v, want nil", got)
	}
}

func TestSystemClock_ReportsRecentTime(t *testing.T) {
	var c SystemClock
	before := time.Now()
	got, err := c.Now(context.Background())
	after := time.Now()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Before(before) || got.After(after) {
		t.Errorf("Now() = %v, want between %v and %v", got, before, after)
	}
}
