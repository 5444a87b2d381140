// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

// License is the root of the arena-backed projection of a parsed
// license, following the schema tree's shape: Vendors -> Products ->
// Parts -> Features/Counters.
type License struct {
	LicgenVersion  int64
	LMVersion      int64
	UID            string
	LcID           int64
	HasFingerprint bool
	Vendors        []*Vendor
}

// Vendor mirrors the depth-3 "vendor" struct.
type Vendor struct {
	VendorID   int64
	VendorName string
	Product    *Product
}

// Product mirrors the depth-4 "product" struct.
type Product struct {
	ProductID    int64
	VersionRegex string
	Parts        []*Part
}

// Part mirrors the depth-5 "part" struct, flattened together with its
// lic_prop object.
type Part struct {
	PartID               int64
	Perpetual            *int64
	StartDate            *int64
	EndDate              *int64
	DurationFromFirstUse *int64
	Features             []*Feature
	Counters             []*Counter
}

// Feature mirrors the depth-7 "feature" struct.
type Feature struct {
	FeatureID int64
}

// Counter mirrors the depth-7 "counter" struct.
type Counter struct {
	CounterID int64
	Limit     int64
	SoftLimit int64
	IsField   int64
}
