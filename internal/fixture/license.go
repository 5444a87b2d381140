// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixture

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"

	"github.com/luxfi/fit/abreastdm"
)

// LicProp describes one part's licensing model: exactly one of
// Perpetual, (StartDate/EndDate), or DurationFromFirstUse should be set,
// mirroring the lic_prop shape.
type LicProp struct {
	FeatureIDs           []int64
	Perpetual            *int64
	StartDate            *int64
	EndDate              *int64
	DurationFromFirstUse *int64
}

// License describes a minimal, single-vendor/single-product/single-part
// license tree, enough to exercise every decision-engine path in
// the testable properties without building a general-purpose
// license compiler.
type License struct {
	LicgenVersion int64
	LMVersion     int64
	UID           string
	Fingerprint   []byte // pre-built 21-byte record, or nil for none
	LcID          int64
	VendorID      int64
	VendorName    string
	ProductID     int64
	VersionRegex  string
	PartID        int64
	LicProp       LicProp
}

// lic_prop's fields occupy fixed schema positions: 0
// feature_array, 1 perpetual, 2 start_date, 3 end_date, 4 counter_array,
// 5 duration_from_first_use. perpetual/start+end/duration are mutually
// exclusive alternatives, so a fixture using start_date+end_date must
// still skip position 1, and one using duration_from_first_use must
// skip 1-3 — plain positional encoding would misplace them, hence
// SparseObject.
func licPropPayload(p LicProp) []byte {
	byPos := map[int][]byte{}

	var featureObjs [][]byte
	for _, id := range p.FeatureIDs {
		featureObjs = append(featureObjs, Object(rawTransformedInt(id)))
	}
	byPos[0] = Array(featureObjs...)

	if p.Perpetual != nil {
		byPos[1] = rawTransformedInt(*p.Perpetual)
	}
	if p.StartDate != nil {
		byPos[2] = rawUntransformedInt(*p.StartDate)
	}
	if p.EndDate != nil {
		byPos[3] = rawUntransformedInt(*p.EndDate)
	}
	if p.DurationFromFirstUse != nil {
		byPos[4] = Array() // counters, always empty in these fixtures
		byPos[5] = rawTransformedInt(*p.DurationFromFirstUse)
	}
	return SparseObject(byPos)
}

// licenseBody builds the "license" object's own encoding (everything
// under depth 1's license branch), the exact bytes the Davies-Meyer and
// Abreast-DM hashes are computed over.
func licenseBody(l License) []byte {
	part := Object(rawTransformedInt(l.PartID), licPropPayload(l.LicProp))
	product := Object(rawTransformedInt(l.ProductID), []byte(l.VersionRegex), Array(part))
	vendor := Object(rawTransformedInt(l.VendorID), product, []byte(l.VendorName))
	container := Object(rawUntransformedInt(l.LcID), Array(vendor))

	var headerFields [][]byte
	headerFields = append(headerFields, rawTransformedInt(l.LicgenVersion))
	headerFields = append(headerFields, rawTransformedInt(l.LMVersion))
	headerFields = append(headerFields, []byte(l.UID))
	if l.Fingerprint != nil {
		headerFields = append(headerFields, l.Fingerprint)
	}
	header := Object(headerFields...)

	return Object(header, Array(container))
}

// Build assembles a complete V2C-rooted license blob, signing the
// license body with priv using the same Abreast-DM-as-SHA-256 deviation
// rsaverify.Verify expects.
func Build(l License, priv *rsa.PrivateKey) ([]byte, error) {
	body := licenseBody(l)

	digest, err := abreastdm.Sum(body)
	if err != nil {
		return nil, err
	}
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		return nil, err
	}

	signatureElement := Object(rawTransformedInt(1), sig) // alg_id=1, rsa_sig
	root := Object(body, Array(signatureElement))
	return root, nil
}

// BuildTamperedSignature is identical to Build but flips one bit of the
// signature before embedding it, for negative-path tests.
func BuildTamperedSignature(l License, priv *rsa.PrivateKey) ([]byte, error) {
	body := licenseBody(l)

	digest, err := abreastdm.Sum(body)
	if err != nil {
		return nil, err
	}
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		return nil, err
	}
	sig[0] ^= 0x01

	signatureElement := Object(rawTransformedInt(1), sig)
	root := Object(body, Array(signatureElement))
	return root, nil
}

// FingerprintRecord builds a 21-byte {magic, alg_id, hash} record from a
// device id's Davies-Meyer hash, matching the fixed layout.
func FingerprintRecord(dmHash [16]byte) []byte {
	rec := make([]byte, 0, 21)
	rec = append(rec, le32(0x666D7446)...)
	rec = append(rec, 1) // alg_id
	rec = append(rec, dmHash[:]...)
	return rec
}
