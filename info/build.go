// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"github.com/luxfi/fit/memreader"
	"github.com/luxfi/fit/schema"
	"github.com/luxfi/fit/visitor"
	"github.com/luxfi/fit/wire"
)

// builder tracks the innermost Vendor/Product/Part/Counter seen so far
// while walking the license in pre-order, relying on field visits
// occurring in strict pre-order over the schema tree. Each new
// vendor_id/product_id/part_id/feature_id/counter_id field opens a
// fresh struct that subsequent sibling fields attach to.
type builder struct {
	arena *Arena
	lic   *License

	vendor  *Vendor
	product *Product
	part    *Part
	counter *Counter
}

func (b *builder) onField(f visitor.Field) error {
	switch f.Tag {
	case schema.TagLicgenVersion:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		b.lic.LicgenVersion = v

	case schema.TagLMVersion:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		b.lic.LMVersion = v

	case schema.TagUID:
		raw, err := f.Pointer.Bytes()
		if err != nil {
			return err
		}
		s, err := b.arena.AllocString(raw)
		if err != nil {
			return err
		}
		b.lic.UID = s

	case schema.TagFingerprint:
		b.lic.HasFingerprint = true

	case schema.TagLcID:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		b.lic.LcID = v

	case schema.TagVendorID:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		b.vendor = &Vendor{VendorID: v}
		b.lic.Vendors = append(b.lic.Vendors, b.vendor)

	case schema.TagVendorName:
		raw, err := f.Pointer.Bytes()
		if err != nil {
			return err
		}
		s, err := b.arena.AllocString(raw)
		if err != nil {
			return err
		}
		if b.vendor != nil {
			b.vendor.VendorName = s
		}

	case schema.TagProductID:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		b.product = &Product{ProductID: v}
		if b.vendor != nil {
			b.vendor.Product = b.product
		}

	case schema.TagVersionRegex:
		raw, err := f.Pointer.Bytes()
		if err != nil {
			return err
		}
		s, err := b.arena.AllocString(raw)
		if err != nil {
			return err
		}
		if b.product != nil {
			b.product.VersionRegex = s
		}

	case schema.TagPartID:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		b.part = &Part{PartID: v}
		if b.product != nil {
			b.product.Parts = append(b.product.Parts, b.part)
		}

	case schema.TagPerpetual:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		if b.part != nil {
			b.part.Perpetual = &v
		}

	case schema.TagStartDate:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		if b.part != nil {
			b.part.StartDate = &v
		}

	case schema.TagEndDate:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		if b.part != nil {
			b.part.EndDate = &v
		}

	case schema.TagDurationFromFirstUse:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		if b.part != nil {
			b.part.DurationFromFirstUse = &v
		}

	case schema.TagFeatureID:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		if b.part != nil {
			b.part.Features = append(b.part.Features, &Feature{FeatureID: v})
		}

	case schema.TagCounterID:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		b.counter = &Counter{CounterID: v}
		if b.part != nil {
			b.part.Counters = append(b.part.Counters, b.counter)
		}

	case schema.TagCounterLimit:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		if b.counter != nil {
			b.counter.Limit = v
		}

	case schema.TagCounterSoftLimit:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		if b.counter != nil {
			b.counter.SoftLimit = v
		}

	case schema.TagCounterIsField:
		v, err := f.Pointer.DecodeInt(f.Tag)
		if err != nil {
			return err
		}
		if b.counter != nil {
			b.counter.IsField = v
		}
	}
	return nil
}

// Build walks the license rooted at r and materializes a *License tree,
// copying its string fields into arena.
func Build(r memreader.Reader, arena *Arena) (*License, error) {
	b := &builder{arena: arena, lic: &License{}}
	extract := &visitor.InfoExtract{Callback: b.onField}
	if _, err := wire.ParseObject(r, 0, 0, 0, extract); err != nil {
		if extract.Err() != nil {
			return nil, extract.Err()
		}
		return nil, err
	}
	return b.lic, nil
}
