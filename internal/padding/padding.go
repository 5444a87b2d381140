// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package padding implements the zero-pad-plus-length-trailer scheme
// shared by dmhash and abreastdm.
package padding

import "encoding/binary"

// BlockSize is the compression function's block size in bytes.
const BlockSize = 16

// Pad zero-pads message and appends an 8-byte big-endian trailer holding
// the message's bit length, truncated to 16 bits, so that the result is
// a whole number of BlockSize blocks.
//
// Ported from fit_dm_hash_init's two-step zero-pad: first pad with
// (BlockSize/2 - length%(BlockSize/2)) zero bytes — a full half-block
// of zeros when length is already half-block-aligned, not zero of
// them — then, if that lands exactly on a whole-block boundary, append
// one more zero half-block before the trailer. This reaches an odd
// multiple of BlockSize/2 every time, never landing the trailer flush
// against a block boundary — reproduce exactly; do not shortcut to a
// single "round up to BlockSize" step.
func Pad(message []byte) []byte {
	padded := make([]byte, len(message), len(message)+3*BlockSize)
	copy(padded, message)

	zeropads := BlockSize/2 - len(message)%(BlockSize/2)
	for i := 0; i < zeropads; i++ {
		padded = append(padded, 0)
	}
	if len(padded)%BlockSize == 0 {
		for i := 0; i < BlockSize/2; i++ {
			padded = append(padded, 0)
		}
	}

	var trailer [8]byte
	binary.BigEndian.PutUint64(trailer[:], uint64(uint16(len(message)*8)))
	return append(padded, trailer[:]...)
}
