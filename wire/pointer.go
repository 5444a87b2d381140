// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wire implements the recursive-descent license parser over
// the tag/length/value schema.
package wire

import (
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/memreader"
	"github.com/luxfi/fit/schema"
)

// Pointer is a memory-pointer into the backing store: an address and a
// byte length. Visitors receive a Pointer rather than a raw byte slice
// so flash-backed license blobs never need to be materialized in full.
type Pointer struct {
	R      memreader.Reader
	Addr   memreader.Addr
	Length uint32
}

// Bytes reads the full extent of the pointer into a freshly allocated
// slice.
func (p Pointer) Bytes() ([]byte, error) {
	return memreader.ReadBytes(p.R, p.Addr, p.Length)
}

// Uint16LE reads the pointer's first two bytes as a little-endian value.
func (p Pointer) Uint16LE() (uint16, error) {
	return memreader.ReadU16LE(p.R, p.Addr)
}

// Uint32LE reads the pointer's first four bytes as a little-endian
// value.
func (p Pointer) Uint32LE() (uint32, error) {
	return memreader.ReadU32LE(p.R, p.Addr)
}

// DecodeInt decodes an integer field regardless of whether the license
// generator chose the 2-byte inline encoding or the 4-byte data-tail
// encoding for this particular field instance (both are legal; the
// choice is per-instance, not fixed by the schema).
func (p Pointer) DecodeInt(tag schema.TagID) (int64, error) {
	switch p.Length {
	case 2:
		d, err := p.Uint16LE()
		if err != nil {
			return 0, err
		}
		return DecodeInline(d), nil
	case 4:
		raw, err := p.Uint32LE()
		if err != nil {
			return 0, err
		}
		return DecodeDataTailInt(tag, raw), nil
	default:
		return 0, fiterrors.New(fiterrors.InvalidFieldLength)
	}
}
