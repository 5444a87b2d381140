// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memreader

import "testing"

func TestByteSliceReader_ReadU8(t *testing.T) {
	r := NewByteSliceReader([]byte{0x10, 0x20, 0x30})
	b, err := r.ReadU8(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != 0x20 {
		t.Errorf("ReadU8(1) = %#x, want 0x20", b)
	}
}

func TestByteSliceReader_OutOfRange(t *testing.T) {
	r := NewByteSliceReader([]byte{0x01})
	if _, err := r.ReadU8(5); err != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestReadU16LE(t *testing.T) {
	r := NewByteSliceReader([]byte{0x34, 0x12})
	v, err := ReadU16LE(r, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("ReadU16LE = %#x, want 0x1234", v)
	}
}

func TestReadU32LE(t *testing.T) {
	r := NewByteSliceReader([]byte{0x78, 0x56, 0x34, 0x12})
	v, err := ReadU32LE(r, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("ReadU32LE = %#x, want 0x12345678", v)
	}
}

func TestReadBytes(t *testing.T) {
	r := NewByteSliceReader([]byte("hello world"))
	b, err := ReadBytes(r, 6, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "world" {
		t.Errorf("ReadBytes = %q, want %q", b, "world")
	}
}

func TestByteSliceReader_Slice(t *testing.T) {
	r := NewByteSliceReader([]byte("0123456789"))
	s, err := r.Slice(2, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(s) != "2345" {
		t.Errorf("Slice = %q, want %q", s, "2345")
	}
	if _, err := r.Slice(8, 10); err != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange for overrun slice, got %v", err)
	}
}
