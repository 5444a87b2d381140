// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package decision

import (
	"time"

	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/schema"
	"github.com/luxfi/fit/wire"
)

// licModel collects the scalar fields of one lic_prop object: exactly
// one of Perpetual, (StartDate and/or EndDate), or DurationFromFirstUse
// is expected to be present, per the lic_prop shape.
type licModel struct {
	Perpetual            *int64
	StartDate            *int64
	EndDate              *int64
	DurationFromFirstUse *int64
}

var _ wire.Visitor = (*licModel)(nil)

func (m *licModel) Visit(ptr wire.Pointer, depth, position int, length uint32, tag schema.TagID) (fiterrors.Status, error) {
	switch tag {
	case schema.TagPerpetual:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		m.Perpetual = &v
	case schema.TagStartDate:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		m.StartDate = &v
	case schema.TagEndDate:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		m.EndDate = &v
	case schema.TagDurationFromFirstUse:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		m.DurationFromFirstUse = &v
	}
	return fiterrors.ContinueParse, nil
}

// evaluate applies the license-model rules against now.
func (m *licModel) evaluate(now time.Time) (fiterrors.Status, error) {
	switch {
	case m.Perpetual != nil && *m.Perpetual != 0:
		if m.StartDate != nil && now.Before(time.Unix(*m.StartDate, 0).UTC()) {
			return fiterrors.InactiveLicense, fiterrors.New(fiterrors.InactiveLicense)
		}
		return fiterrors.OK, nil

	case m.StartDate != nil || m.EndDate != nil:
		if m.StartDate != nil && now.Before(time.Unix(*m.StartDate, 0).UTC()) {
			return fiterrors.InactiveLicense, fiterrors.New(fiterrors.InactiveLicense)
		}
		if m.EndDate != nil && now.After(time.Unix(*m.EndDate, 0).UTC()) {
			return fiterrors.FeatureExpired, fiterrors.New(fiterrors.FeatureExpired)
		}
		return fiterrors.OK, nil

	case m.DurationFromFirstUse != nil:
		// No counter/first-use persistence is implemented (an explicit
		// non-goal), so this license model can never be evaluated.
		return fiterrors.RequestNotSupported, fiterrors.New(fiterrors.RequestNotSupported)

	default:
		return fiterrors.InvalidLicenseType, fiterrors.New(fiterrors.InvalidLicenseType)
	}
}
