// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package decision implements the license-decision engine: cache
// fast-path, signature verification, fingerprint binding, and
// feature/license-model evaluation, wired together in a fixed
// state-machine order.
package decision

import (
	"context"
	"time"

	"github.com/luxfi/fit/abreastdm"
	"github.com/luxfi/fit/cache"
	"github.com/luxfi/fit/deviceclock"
	"github.com/luxfi/fit/dmhash"
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/memreader"
	"github.com/luxfi/fit/rsaverify"
	"github.com/luxfi/fit/visitor"
	"github.com/luxfi/fit/wire"
)

// licenseSubTree locates the top-level license object (depth 0, position
// 0) and returns the raw bytes of its encoding: the license root
// object's own bytes, not including the signature sibling.
func licenseSubTree(r memreader.Reader) ([]byte, error) {
	capture := &visitor.AddressCapture{Depth: 0, Position: 0}
	status, err := wire.ParseObject(r, 0, 0, 0, capture)
	if status != fiterrors.StopParse && status != fiterrors.OK {
		return nil, err
	}
	if !capture.Found {
		return nil, fiterrors.New(fiterrors.InvalidV2C)
	}
	bodyLen, err := capture.Pointer.Uint32LE()
	if err != nil {
		return nil, err
	}
	return memreader.ReadBytes(r, capture.Pointer.Addr+4, bodyLen)
}

// captureSignature locates the RSA signature bytes (depth 1, position 3,
// the signature array's single element's rsa_sig field).
func captureSignature(r memreader.Reader) ([]byte, error) {
	capture := &visitor.AddressCapture{Depth: 1, Position: 3}
	status, err := wire.ParseObject(r, 0, 0, 0, capture)
	if status != fiterrors.StopParse && status != fiterrors.OK {
		return nil, err
	}
	if !capture.Found {
		return nil, fiterrors.New(fiterrors.InvalidV2C)
	}
	return capture.Pointer.Bytes()
}

// verifySignature recomputes Abreast-DM over the license sub-tree and
// checks it against the stored RSA signature. On any failure it clears
// c, since a cryptographic failure invalidates the cache; on success it
// stores dmHash.
func verifySignature(r memreader.Reader, pub *rsaverify.PublicKey, c *cache.Cache, dmHash [16]byte) (fiterrors.Status, error) {
	subTree, err := licenseSubTree(r)
	if err != nil {
		c.Clear()
		return fiterrors.InvalidV2C, err
	}
	digest, err := abreastdm.Sum(subTree)
	if err != nil {
		c.Clear()
		return fiterrors.InternalError, err
	}
	sig, err := captureSignature(r)
	if err != nil {
		c.Clear()
		return fiterrors.InvalidV2C, err
	}
	if err := pub.Verify(digest[:], sig); err != nil {
		c.Clear()
		return fiterrors.RsaVerifyFailed, err
	}
	c.Store(dmHash)
	return fiterrors.OK, nil
}

// licPropFor walks the whole tree looking for featureID, returning the
// enclosing lic_prop's wire.Pointer on a match.
func licPropFor(r memreader.Reader, featureID int64) (wire.Pointer, bool, error) {
	consume := &visitor.Consume{WantFeatureID: featureID}
	status, err := wire.ParseObject(r, 0, 0, 0, consume)
	if status != fiterrors.StopParse && status != fiterrors.OK {
		return wire.Pointer{}, false, err
	}
	return consume.LicPropPtr, consume.Found, nil
}

// LicenseDMHash recomputes the Davies-Meyer hash over the license
// sub-tree, the same key the cache and audit log use to identify a
// license instance. Exposed so callers (e.g. an audit log) can key
// records without reaching into this package's internals.
func LicenseDMHash(r memreader.Reader) ([16]byte, error) {
	subTree, err := licenseSubTree(r)
	if err != nil {
		return [16]byte{}, err
	}
	return dmhash.Sum(subTree)
}

// Evaluate implements the full consume decision: cache fast-path,
// signature verification, fingerprint check, feature lookup, and
// license-model evaluation against now.
func Evaluate(ctx context.Context, r memreader.Reader, pub *rsaverify.PublicKey, c *cache.Cache, device deviceclock.DeviceIDSource, featureID int64, now time.Time) (fiterrors.Status, error) {
	if status, err := wire.ParseObject(r, 0, 0, 0, visitor.ValidateField{}); status != fiterrors.OK {
		c.Clear()
		return status, err
	}

	subTree, err := licenseSubTree(r)
	if err != nil {
		c.Clear()
		return fiterrors.InvalidV2C, err
	}
	dmHash, err := dmhash.Sum(subTree)
	if err != nil {
		c.Clear()
		return fiterrors.InternalError, err
	}

	if !c.Hit(dmHash) {
		if status, err := verifySignature(r, pub, c, dmHash); status != fiterrors.OK {
			return status, err
		}
	}

	if status, err := checkFingerprint(ctx, r, device); status != fiterrors.OK {
		if status.ClearsCache() {
			c.Clear()
		}
		return status, err
	}

	licPropPtr, found, err := licPropFor(r, featureID)
	if err != nil {
		c.Clear()
		return fiterrors.InvalidV2C, err
	}
	if !found {
		return fiterrors.FeatureNotFound, fiterrors.New(fiterrors.FeatureNotFound)
	}

	model := &licModel{}
	if status, err := wire.ParseObject(licPropPtr.R, licPropPtr.Addr, 6, 0, model); status != fiterrors.OK {
		c.Clear()
		return status, err
	}
	return model.evaluate(now)
}

// Validate implements the validate_license operation: RSA
// verification plus the optional fingerprint check, no feature lookup,
// and it never touches the cache.
func Validate(ctx context.Context, r memreader.Reader, pub *rsaverify.PublicKey, device deviceclock.DeviceIDSource) (fiterrors.Status, error) {
	if status, err := wire.ParseObject(r, 0, 0, 0, visitor.ValidateField{}); status != fiterrors.OK {
		return status, err
	}

	subTree, err := licenseSubTree(r)
	if err != nil {
		return fiterrors.InvalidV2C, err
	}
	digest, err := abreastdm.Sum(subTree)
	if err != nil {
		return fiterrors.InternalError, err
	}
	sig, err := captureSignature(r)
	if err != nil {
		return fiterrors.InvalidV2C, err
	}
	if err := pub.Verify(digest[:], sig); err != nil {
		return fiterrors.RsaVerifyFailed, err
	}

	return checkFingerprint(ctx, r, device)
}
