// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fit

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/fit/audit"
	"github.com/luxfi/fit/deviceclock"
	"github.com/luxfi/fit/internal/fixture"
	"github.com/luxfi/fit/rsaverify"
)

const arenaSize = 16 * 1024

func testVerifier(t *testing.T, now time.Time, device DeviceIDSource) (*Verifier, *rsa.PrivateKey) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, rsaverify.ModulusBits)
	require.NoError(t, err)
	pub, err := rsaverify.FromModulus(priv.PublicKey.N.Bytes(), priv.PublicKey.E)
	require.NoError(t, err)
	return New(pub, deviceclock.FixedClock{At: now}, device), priv
}

func perpetualLicense() fixture.License {
	one := int64(1)
	return fixture.License{
		LicgenVersion: 100,
		LMVersion:     1,
		UID:           "fit-test-uid",
		LcID:          9,
		VendorID:      5,
		VendorName:    "acme",
		ProductID:     2,
		VersionRegex:  "2.*",
		PartID:        1,
		LicProp: fixture.LicProp{
			FeatureIDs: []int64{42},
			Perpetual:  &one,
		},
	}
}

func TestVersion(t *testing.T) {
	major, minor, rev := Version()
	require.Equal(t, 1, major)
	require.Equal(t, 0, minor)
	require.Equal(t, 0, rev)
}

func TestVerifier_Consume_OK(t *testing.T) {
	now := time.Now()
	v, priv := testVerifier(t, now, deviceclock.NoDevice{})
	blob, err := fixture.Build(perpetualLicense(), priv)
	require.NoError(t, err)

	status, err := v.Consume(context.Background(), blob, 42)
	require.NoError(t, err)
	require.Equal(t, Status(0), status) // fiterrors.OK
}

func TestVerifier_Consume_FeatureNotFound(t *testing.T) {
	now := time.Now()
	v, priv := testVerifier(t, now, deviceclock.NoDevice{})
	blob, err := fixture.Build(perpetualLicense(), priv)
	require.NoError(t, err)

	status, err := v.Consume(context.Background(), blob, 7)
	require.Error(t, err)
	require.NotEqual(t, Status(0), status)
}

func TestVerifier_ConsumeAt_Expired(t *testing.T) {
	start := time.Now().Add(-72 * time.Hour)
	end := time.Now().Add(-24 * time.Hour)
	startU, endU := start.Unix(), end.Unix()

	v, priv := testVerifier(t, time.Now(), deviceclock.NoDevice{})
	l := perpetualLicense()
	l.LicProp = fixture.LicProp{FeatureIDs: []int64{42}, StartDate: &startU, EndDate: &endU}
	blob, err := fixture.Build(l, priv)
	require.NoError(t, err)

	status, err := v.ConsumeAt(context.Background(), blob, 42, time.Now())
	require.Error(t, err)
	require.NotEqual(t, Status(0), status)
}

func TestVerifier_Validate_TamperedSignature(t *testing.T) {
	v, priv := testVerifier(t, time.Now(), deviceclock.NoDevice{})
	blob, err := fixture.BuildTamperedSignature(perpetualLicense(), priv)
	require.NoError(t, err)

	status, err := v.Validate(context.Background(), blob)
	require.Error(t, err)
	require.NotEqual(t, Status(0), status)
}

func TestVerifier_GetInfo(t *testing.T) {
	v, priv := testVerifier(t, time.Now(), deviceclock.NoDevice{})
	blob, err := fixture.Build(perpetualLicense(), priv)
	require.NoError(t, err)

	lic, err := v.GetInfo(blob, arenaSize)
	require.NoError(t, err)
	require.Equal(t, "fit-test-uid", lic.UID)
	require.Len(t, lic.Vendors, 1)
	require.Equal(t, int64(5), lic.Vendors[0].VendorID)
	require.NotNil(t, lic.Vendors[0].Product)
	require.Equal(t, int64(2), lic.Vendors[0].Product.ProductID)
	require.Len(t, lic.Vendors[0].Product.Parts, 1)
	require.Len(t, lic.Vendors[0].Product.Parts[0].Features, 1)
	require.Equal(t, int64(42), lic.Vendors[0].Product.Parts[0].Features[0].FeatureID)
}

func TestVerifier_WithAudit_RecordsConsumeOutcome(t *testing.T) {
	now := time.Now()
	v, priv := testVerifier(t, now, deviceclock.NoDevice{})
	log := &audit.Log{}
	v.WithAudit(log)

	blob, err := fixture.Build(perpetualLicense(), priv)
	require.NoError(t, err)

	_, err = v.Consume(context.Background(), blob, 42)
	require.NoError(t, err)

	require.Len(t, log.Entries, 1)
	require.True(t, audit.Verify(log.Entries[0]))
}
