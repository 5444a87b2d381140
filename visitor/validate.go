// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package visitor implements the four concrete wire.Visitor kinds used
// to walk a parsed license tree: field validation, address capture,
// feature lookup, and info extraction all satisfy the single
// wire.Visitor interface.
package visitor

import (
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/schema"
	"github.com/luxfi/fit/wire"
)

// ValidateField enforces the per-field range checks on every scalar in
// a license tree. It never stops the walk early; every field in the
// tree is checked.
type ValidateField struct{}

var _ wire.Visitor = ValidateField{}

func (ValidateField) Visit(ptr wire.Pointer, depth, position int, length uint32, tag schema.TagID) (fiterrors.Status, error) {
	switch tag {
	case schema.TagUID:
		if length > 32 {
			return fiterrors.InvalidFieldLength, fiterrors.New(fiterrors.InvalidFieldLength)
		}
	case schema.TagVersionRegex:
		if length > 32 {
			return fiterrors.InvalidFieldLength, fiterrors.New(fiterrors.InvalidFieldLength)
		}
	case schema.TagVendorName:
		if length > 32 {
			return fiterrors.InvalidFieldLength, fiterrors.New(fiterrors.InvalidFieldLength)
		}
	case schema.TagRSASignature:
		if length != 256 {
			return fiterrors.InvalidFieldLength, fiterrors.New(fiterrors.InvalidFieldLength)
		}

	case schema.TagLicgenVersion:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		if v < 100 {
			return fiterrors.InvalidLicgenVersion, fiterrors.New(fiterrors.InvalidLicgenVersion)
		}

	case schema.TagAlgID:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		if v != 1 {
			return fiterrors.UnknownAlg, fiterrors.New(fiterrors.UnknownAlg)
		}

	case schema.TagVendorID:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		if !wire.WithinUint256Bound(v, 0x00FFFFFF) {
			return fiterrors.InvalidVendorID, fiterrors.New(fiterrors.InvalidVendorID)
		}

	case schema.TagLcID:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		if !wire.WithinUint256Bound(v, 0xFFFFFFFF) {
			return fiterrors.InvalidContainerID, fiterrors.New(fiterrors.InvalidContainerID)
		}

	case schema.TagProductID:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		if !wire.WithinUint256Bound(v, 65471) {
			return fiterrors.InvalidProductID, fiterrors.New(fiterrors.InvalidProductID)
		}

	case schema.TagFeatureID:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		if !wire.WithinUint256Bound(v, 65471) {
			return fiterrors.InvalidFeatureID, fiterrors.New(fiterrors.InvalidFeatureID)
		}

	case schema.TagStartDate:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		if v <= 0 || !wire.WithinUint256Bound(v, 0x7FFFFFFF) {
			return fiterrors.InvalidStartDate, fiterrors.New(fiterrors.InvalidStartDate)
		}

	case schema.TagEndDate:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		// Open Question resolution: validated against the
		// end-date range here, not reusing the start-date bound as the
		// original source did — that duplication was a bug, per
		// the explicit instruction to apply the correct bound.
		if v <= 0 || !wire.WithinUint256Bound(v, 0x7FFFFFFF) {
			return fiterrors.InvalidEndDate, fiterrors.New(fiterrors.InvalidEndDate)
		}
	}

	return fiterrors.ContinueParse, nil
}
