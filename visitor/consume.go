// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package visitor

import (
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/schema"
	"github.com/luxfi/fit/wire"
)

// Consume looks for a single feature_id match anywhere under the
// enclosing license. It tracks the most recently entered lic_prop
// object so that, on a match, it can hand back the address of the
// enclosing lic_prop rather than just the feature_id scalar — the
// decision engine needs the whole lic_prop
// (perpetual/start_date/end_date/duration_from_first_use) to evaluate
// the license model, not just the matched feature id.
type Consume struct {
	WantFeatureID int64

	Found      bool
	LicPropPtr wire.Pointer
}

var _ wire.Visitor = (*Consume)(nil)

func (c *Consume) Visit(ptr wire.Pointer, depth, position int, length uint32, tag schema.TagID) (fiterrors.Status, error) {
	switch tag {
	case schema.TagLicProp:
		// ptr points at the lic_prop field's 4-byte length prefix, not
		// its body (the Length the parser passes here is always the
		// prefix's own width); read the real body length ourselves so
		// LicPropPtr spans the actual object encoding.
		innerLen, err := ptr.Uint32LE()
		if err != nil {
			return fiterrors.InvalidV2C, err
		}
		c.LicPropPtr = wire.Pointer{R: ptr.R, Addr: ptr.Addr + 4, Length: innerLen}
		return fiterrors.ContinueParse, nil

	case schema.TagFeatureID:
		v, err := ptr.DecodeInt(tag)
		if err != nil {
			return fiterrors.InvalidFieldLength, err
		}
		if v != c.WantFeatureID {
			return fiterrors.ContinueParse, nil
		}
		c.Found = true
		return fiterrors.StopParse, nil

	default:
		return fiterrors.ContinueParse, nil
	}
}
