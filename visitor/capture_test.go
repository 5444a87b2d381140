// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package visitor_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/internal/fixture"
	"github.com/luxfi/fit/memreader"
	"github.com/luxfi/fit/schema"
	"github.com/luxfi/fit/visitor"
	"github.com/luxfi/fit/wire"
)

func buildTestBlob(t *testing.T) []byte {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	one := int64(1)
	l := fixture.License{
		LicgenVersion: 100,
		LMVersion:     1,
		UID:           "capture-test",
		LcID:          1,
		VendorID:      1,
		VendorName:    "v",
		ProductID:     1,
		VersionRegex:  "*",
		PartID:        1,
		LicProp:       fixture.LicProp{FeatureIDs: []int64{9}, Perpetual: &one},
	}
	blob, err := fixture.Build(l, priv)
	require.NoError(t, err)
	return blob
}

func TestAddressCapture_FindsRequestedCoordinate(t *testing.T) {
	blob := buildTestBlob(t)
	r := memreader.NewByteSliceReader(blob)

	capture := &visitor.AddressCapture{Depth: 1, Position: 3}
	status, err := wire.ParseObject(r, 0, 0, 0, capture)
	require.NoError(t, err)
	require.Equal(t, fiterrors.StopParse, status)
	require.True(t, capture.Found)
	require.Equal(t, schema.TagRSASignature, capture.Tag)
	require.EqualValues(t, 256, capture.Pointer.Length)
}

func TestAddressCapture_NotFound(t *testing.T) {
	blob := buildTestBlob(t)
	r := memreader.NewByteSliceReader(blob)

	capture := &visitor.AddressCapture{Depth: 15, Position: 15}
	status, err := wire.ParseObject(r, 0, 0, 0, capture)
	require.NoError(t, err)
	require.Equal(t, fiterrors.OK, status)
	require.False(t, capture.Found)
}
