// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package visitor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/memreader"
	"github.com/luxfi/fit/schema"
	"github.com/luxfi/fit/visitor"
	"github.com/luxfi/fit/wire"
)

func TestInfoExtract_VisitsWholeTree(t *testing.T) {
	blob := buildTestBlob(t)
	r := memreader.NewByteSliceReader(blob)

	var fields []visitor.Field
	e := &visitor.InfoExtract{Callback: func(f visitor.Field) error {
		fields = append(fields, f)
		return nil
	}}
	status, err := wire.ParseObject(r, 0, 0, 0, e)
	require.NoError(t, err)
	require.Equal(t, fiterrors.OK, status)
	require.Nil(t, e.Err())

	var sawFeature bool
	for _, f := range fields {
		if f.Tag == schema.TagFeatureID {
			sawFeature = true
		}
	}
	require.True(t, sawFeature)
}

func TestInfoExtract_CallbackErrorAbortsWalk(t *testing.T) {
	blob := buildTestBlob(t)
	r := memreader.NewByteSliceReader(blob)

	boom := errors.New("boom")
	e := &visitor.InfoExtract{Callback: func(f visitor.Field) error {
		return boom
	}}
	status, err := wire.ParseObject(r, 0, 0, 0, e)
	require.Error(t, err)
	require.Equal(t, fiterrors.InternalError, status)
	require.ErrorIs(t, e.Err(), boom)
}
