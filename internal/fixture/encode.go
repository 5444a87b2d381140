// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixture builds synthetic, well-formed license blobs for
// tests, by hand-encoding the wire format in its always-legal "every
// field in the data tail" form (the encoder never needs the
// inline-integer optimization; the parser accepts either form, and the
// decoder tests separately exercise inline decoding).
package fixture

import "encoding/binary"

func le16(v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return b[:]
}

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

// dataTailEntry wraps payload with the 4-byte little-endian length every
// data-tail field carries ahead of its value.
func dataTailEntry(payload []byte) []byte {
	return append(le32(uint32(len(payload))), payload...)
}

// Object encodes an object whose N fields are, in positional order, all
// present and all stored in the data tail (every descriptor is zero).
// Each entry in payloads is the field's raw payload — for a string or
// transformed integer, the value bytes; for a nested object, that
// object's own Object() encoding; for an array, that array's Array()
// body.
func Object(payloads ...[]byte) []byte {
	out := le16(uint16(len(payloads)))
	for range payloads {
		out = append(out, le16(0)...)
	}
	for _, p := range payloads {
		out = append(out, dataTailEntry(p)...)
	}
	return out
}

// Array encodes the body of an array (excluding the data-tail length
// wrapper its containing field applies): a concatenation of elements,
// each itself length-prefixed.
func Array(elements ...[]byte) []byte {
	var body []byte
	for _, e := range elements {
		body = append(body, le32(uint32(len(e)))...)
		body = append(body, e...)
	}
	return body
}

// rawTransformedInt encodes a data-tail integer that undergoes the
// standard d/2-1 transform (all integer fields except start_date,
// end_date, lc_id; see wire.isRawField).
func rawTransformedInt(v int64) []byte {
	return le32(uint32(2 * (v + 1)))
}

// rawUntransformedInt encodes a data-tail integer read back as-is.
func rawUntransformedInt(v int64) []byte {
	return le32(uint32(v))
}

// SparseObject encodes an object whose present fields occupy the local
// positions given by byPos (0-based, relative to this object's own
// first field), inserting skip descriptors for any gap before a later
// field — needed for lic_prop, where perpetual/start_date/end_date/
// duration_from_first_use are mutually-exclusive alternatives at fixed,
// non-contiguous positions.
func SparseObject(byPos map[int][]byte) []byte {
	positions := make([]int, 0, len(byPos))
	for p := range byPos {
		positions = append(positions, p)
	}
	for i := 1; i < len(positions); i++ {
		for j := i; j > 0 && positions[j-1] > positions[j]; j-- {
			positions[j-1], positions[j] = positions[j], positions[j-1]
		}
	}

	var descriptors []byte
	var dataTail []byte
	cur := 0
	n := 0
	for _, pos := range positions {
		if pos > cur {
			skip := pos - cur
			descriptors = append(descriptors, le16(uint16(2*skip-1))...)
			n++
			cur = pos
		}
		descriptors = append(descriptors, le16(0)...)
		n++
		dataTail = append(dataTail, dataTailEntry(byPos[pos])...)
		cur++
	}

	out := le16(uint16(n))
	out = append(out, descriptors...)
	out = append(out, dataTail...)
	return out
}
