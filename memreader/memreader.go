// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memreader provides a pluggable byte-read abstraction over a
// license blob's backing store. The blob may live somewhere not directly
// addressable by the host (flash, EEPROM), so every access is routed
// through a callback rather than a raw pointer.
package memreader

import "encoding/binary"

// Addr is an opaque position within a backing store. Its only defined
// operations are equality and the arithmetic the Reader performs on the
// caller's behalf via ReadU8/ReadU16LE/ReadU32LE.
type Addr uint32

// Reader reads bytes from a backing store one byte at a time. Flash- or
// EEPROM-backed implementations may block on bus access; RAM-backed ones
// (ByteSliceReader) never do.
type Reader interface {
	// ReadU8 returns the byte at addr, or an error if addr is out of range.
	ReadU8(addr Addr) (byte, error)
	// Len reports the total addressable length of the backing store.
	Len() Addr
}

// ReadU16LE reads a little-endian 16-bit value starting at addr.
func ReadU16LE(r Reader, addr Addr) (uint16, error) {
	var buf [2]byte
	for i := range buf {
		b, err := r.ReadU8(addr + Addr(i))
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadU32LE reads a little-endian 32-bit value starting at addr.
func ReadU32LE(r Reader, addr Addr) (uint32, error) {
	var buf [4]byte
	for i := range buf {
		b, err := r.ReadU8(addr + Addr(i))
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadBytes reads n contiguous bytes starting at addr.
func ReadBytes(r Reader, addr Addr, n uint32) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		b, err := r.ReadU8(addr + Addr(i))
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// ByteSliceReader is a RAM-backed Reader over a fully-resident license
// blob — the common case for host-side verification.
type ByteSliceReader struct {
	data []byte
}

// NewByteSliceReader wraps data for sequential or random-access reads.
// The slice is borrowed, never copied or mutated.
func NewByteSliceReader(data []byte) *ByteSliceReader {
	return &ByteSliceReader{data: data}
}

func (r *ByteSliceReader) ReadU8(addr Addr) (byte, error) {
	if int(addr) < 0 || int(addr) >= len(r.data) {
		return 0, ErrOutOfRange
	}
	return r.data[addr], nil
}

func (r *ByteSliceReader) Len() Addr {
	return Addr(len(r.data))
}

// Slice returns the raw bytes in [start, start+n), bypassing the
// byte-at-a-time callback. The returned slice aliases the wrapped data.
func (r *ByteSliceReader) Slice(start Addr, n uint32) ([]byte, error) {
	end := int(start) + int(n)
	if int(start) < 0 || end > len(r.data) || end < int(start) {
		return nil, ErrOutOfRange
	}
	return r.data[start:end], nil
}
