// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package info implements the license-info builder: it materializes a
// *License tree whose string fields are copied into a caller-sized,
// non-growing arena (the tree's structs are ordinary Go allocations).
// Grounded on original_source's
// fitgood/sample/demo_getinfo.c, which hands the info builder a fixed
// static buffer rather than letting it allocate freely — reproduced here
// as a bump allocator over a caller-supplied []byte that exhausts to
// InsufficientMemory instead of growing.
package info

import "github.com/luxfi/fit/fiterrors"

// Arena is a bump allocator over a fixed-size byte buffer. It never
// grows; once exhausted, every further allocation fails.
type Arena struct {
	buf []byte
	off int
}

// NewArena wraps buf for bump allocation. The caller sizes buf to bound
// the worst-case info record, mirroring demo_getinfo.c's static buffer.
func NewArena(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// alloc reserves n bytes and returns them zeroed.
func (a *Arena) alloc(n int) ([]byte, error) {
	if a.off+n > len(a.buf) {
		return nil, fiterrors.New(fiterrors.InsufficientMemory)
	}
	b := a.buf[a.off : a.off+n]
	a.off += n
	return b, nil
}

// AllocString copies src into the arena and returns a string backed by
// the copy, so the result outlives the license blob's own backing store
// (which may be a non-addressable flash region released after the call).
func (a *Arena) AllocString(src []byte) (string, error) {
	b, err := a.alloc(len(src))
	if err != nil {
		return "", err
	}
	copy(b, src)
	return string(b), nil
}

// Used reports how many bytes have been allocated so far.
func (a *Arena) Used() int { return a.off }

// Remaining reports how many bytes are still available.
func (a *Arena) Remaining() int { return len(a.buf) - a.off }
