// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package decision

import (
	"bytes"
	"context"
	"encoding/binary"

	"github.com/luxfi/fit/deviceclock"
	"github.com/luxfi/fit/dmhash"
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/memreader"
	"github.com/luxfi/fit/visitor"
	"github.com/luxfi/fit/wire"
)

// fingerprintRecordSize is the fixed wire width of a fingerprint field:
// 4-byte magic + 1-byte alg id + 16-byte DM hash.
const fingerprintRecordSize = 4 + 1 + 16

// fingerprintMagic is little-endian-encoded ASCII "fitF".
const fingerprintMagic = 0x666D7446

// checkFingerprint compares a license's embedded fingerprint record
// against the current device identity. It is a no-op (fiterrors.OK)
// when the header carries no fingerprint field at all.
func checkFingerprint(ctx context.Context, r memreader.Reader, device deviceclock.DeviceIDSource) (fiterrors.Status, error) {
	capture := &visitor.AddressCapture{Depth: 2, Position: 3}
	if status, err := wire.ParseObject(r, 0, 0, 0, capture); status != fiterrors.StopParse && status != fiterrors.OK {
		return status, err
	}
	if !capture.Found {
		return fiterrors.OK, nil
	}

	record, err := capture.Pointer.Bytes()
	if err != nil {
		return fiterrors.InvalidV2C, err
	}
	if len(record) != fingerprintRecordSize {
		return fiterrors.FingerprintMagicInvalid, fiterrors.New(fiterrors.FingerprintMagicInvalid)
	}

	magic := binary.LittleEndian.Uint32(record[0:4])
	if magic != fingerprintMagic {
		return fiterrors.FingerprintMagicInvalid, fiterrors.New(fiterrors.FingerprintMagicInvalid)
	}
	algID := record[4]
	if algID != 1 {
		return fiterrors.UnknownFingerprintAlg, fiterrors.New(fiterrors.UnknownFingerprintAlg)
	}
	storedHash := record[5:21]

	deviceID, err := device.DeviceID(ctx)
	if err != nil {
		return fiterrors.InternalError, err
	}
	if len(deviceID) < 4 || len(deviceID) > 64 {
		return fiterrors.InvalidDeviceLength, fiterrors.New(fiterrors.InvalidDeviceLength)
	}

	computed, err := dmhash.Sum(deviceID)
	if err != nil {
		return fiterrors.InternalError, err
	}
	if !bytes.Equal(storedHash, computed[:]) {
		return fiterrors.FingerprintMismatch, fiterrors.New(fiterrors.FingerprintMismatch)
	}
	return fiterrors.OK, nil
}
