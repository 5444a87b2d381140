// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"fmt"
	"strings"
)

// String renders the license tree as indented text, in the spirit of
// original_source's demo_getinfo.c sample, which prints the same
// vendor/product/part/feature hierarchy to the console.
func (l *License) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "license uid=%q lc_id=%d licgen_version=%d lm_version=%d fingerprint=%v\n",
		l.UID, l.LcID, l.LicgenVersion, l.LMVersion, l.HasFingerprint)
	for _, v := range l.Vendors {
		fmt.Fprintf(&b, "  vendor id=%d name=%q\n", v.VendorID, v.VendorName)
		if v.Product == nil {
			continue
		}
		p := v.Product
		fmt.Fprintf(&b, "    product id=%d version_regex=%q\n", p.ProductID, p.VersionRegex)
		for _, part := range p.Parts {
			fmt.Fprintf(&b, "      part id=%d %s\n", part.PartID, part.describeModel())
			for _, f := range part.Features {
				fmt.Fprintf(&b, "        feature id=%d\n", f.FeatureID)
			}
			for _, c := range part.Counters {
				fmt.Fprintf(&b, "        counter id=%d limit=%d soft_limit=%d is_field=%d\n",
					c.CounterID, c.Limit, c.SoftLimit, c.IsField)
			}
		}
	}
	return b.String()
}

func (p *Part) describeModel() string {
	switch {
	case p.Perpetual != nil && *p.Perpetual != 0:
		return "perpetual"
	case p.StartDate != nil || p.EndDate != nil:
		return fmt.Sprintf("start=%v end=%v", derefOrNil(p.StartDate), derefOrNil(p.EndDate))
	case p.DurationFromFirstUse != nil:
		return fmt.Sprintf("duration_from_first_use=%d", *p.DurationFromFirstUse)
	default:
		return "unknown"
	}
}

func derefOrNil(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
