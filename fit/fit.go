// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fit is the public surface of the license-verification engine:
// Consume, ConsumeAt, GetInfo, Validate, and Version.
package fit

import (
	"context"
	"time"

	"github.com/luxfi/fit/audit"
	"github.com/luxfi/fit/cache"
	"github.com/luxfi/fit/decision"
	"github.com/luxfi/fit/deviceclock"
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/info"
	"github.com/luxfi/fit/memreader"
	"github.com/luxfi/fit/rsaverify"
)

// version is reported by Version.
const (
	versionMajor    = 1
	versionMinor    = 0
	versionRevision = 0
)

// Version reports the engine's own version triple.
func Version() (major, minor, revision int) {
	return versionMajor, versionMinor, versionRevision
}

// PublicKey is re-exported so callers need only import this package for
// the common path.
type PublicKey = rsaverify.PublicKey

// Clock and DeviceIDSource are re-exported from deviceclock for the same
// reason.
type (
	Clock          = deviceclock.Clock
	DeviceIDSource = deviceclock.DeviceIDSource
)

// Status is re-exported from fiterrors.
type Status = fiterrors.Status

// Verifier binds a trusted public key, a clock, and a device identity
// source to the validation cache. It is not safe for concurrent use:
// callers sharing one long-lived instance across goroutines must wrap
// it in their own mutex.
type Verifier struct {
	pub    *PublicKey
	clock  Clock
	device DeviceIDSource
	cache  cache.Cache
	audit  *audit.Log
}

// New constructs a Verifier. device may be deviceclock.NoDevice{} for
// callers with no fingerprint-binding capability.
func New(pub *PublicKey, clock Clock, device DeviceIDSource) *Verifier {
	return &Verifier{pub: pub, clock: clock, device: device}
}

// WithAudit attaches a tamper-evident local audit log: every Consume/
// ConsumeAt outcome is recorded there, keyed by the license's DM hash.
// Optional; a Verifier with no audit log attached skips recording
// entirely.
func (v *Verifier) WithAudit(log *audit.Log) *Verifier {
	v.audit = log
	return v
}

// Consume answers whether featureID is currently permitted by license,
// resolving "now" via the Verifier's Clock.
func (v *Verifier) Consume(ctx context.Context, license []byte, featureID uint16) (Status, error) {
	now, err := v.clock.Now(ctx)
	if err != nil {
		return fiterrors.NoClockSupport, err
	}
	return v.consumeAt(ctx, license, featureID, now)
}

// ConsumeAt answers the same question as Consume but against an
// explicit decision timestamp instead of calling the Clock, for
// deterministic replay and testing. Supplemented from original_source's
// fit_api.h FIT_CheckFeatureEx, which takes the same explicit-time
// parameter for the same reason.
func (v *Verifier) ConsumeAt(ctx context.Context, license []byte, featureID uint16, at time.Time) (Status, error) {
	return v.consumeAt(ctx, license, featureID, at)
}

func (v *Verifier) consumeAt(ctx context.Context, license []byte, featureID uint16, now time.Time) (Status, error) {
	r := memreader.NewByteSliceReader(license)
	status, err := decision.Evaluate(ctx, r, v.pub, &v.cache, v.device, int64(featureID), now)
	v.recordAudit(r, status, now)
	return status, err
}

// recordAudit appends an outcome to the attached audit log, if any. A
// failure to recompute the DM hash (e.g. a malformed license) is not
// itself audited; the Evaluate error already reported it to the caller.
func (v *Verifier) recordAudit(r memreader.Reader, status Status, at time.Time) {
	if v.audit == nil {
		return
	}
	dmHash, err := decision.LicenseDMHash(r)
	if err != nil {
		return
	}
	v.audit.Record(dmHash, status, at.UnixMilli())
}

// Validate performs signature and optional fingerprint verification
// without a feature lookup, and never touches the validation cache.
func (v *Verifier) Validate(ctx context.Context, license []byte) (Status, error) {
	r := memreader.NewByteSliceReader(license)
	return decision.Validate(ctx, r, v.pub, v.device)
}

// GetInfo projects license into an *info.License tree using arenaSize
// bytes of working memory.
func (v *Verifier) GetInfo(license []byte, arenaSize int) (*info.License, error) {
	r := memreader.NewByteSliceReader(license)
	arena := info.NewArena(make([]byte, arenaSize))
	return info.Build(r, arena)
}

// ConsumeReader, ValidateReader, and GetInfoReader are the
// memreader.Reader-backed variants of Consume/Validate/GetInfo, for
// callers whose license blob lives in a backing store that is not
// directly addressable (flash, EEPROM) and so cannot be handed over as
// a plain []byte.

func (v *Verifier) ConsumeReader(ctx context.Context, r memreader.Reader, featureID uint16) (Status, error) {
	now, err := v.clock.Now(ctx)
	if err != nil {
		return fiterrors.NoClockSupport, err
	}
	return decision.Evaluate(ctx, r, v.pub, &v.cache, v.device, int64(featureID), now)
}

func (v *Verifier) ValidateReader(ctx context.Context, r memreader.Reader) (Status, error) {
	return decision.Validate(ctx, r, v.pub, v.device)
}

func (v *Verifier) GetInfoReader(r memreader.Reader, arenaSize int) (*info.License, error) {
	arena := info.NewArena(make([]byte, arenaSize))
	return info.Build(r, arena)
}
