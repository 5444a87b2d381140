// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dmhash implements the 128-bit Davies-Meyer hash construction
// used for the validation-cache key and for device-fingerprint binding.
// It is ported from original_source's fitgood/src/dm_hash.c, preserving
// the non-standard padding trailer (the message bit length truncated to
// 16 bits) byte-for-byte.
package dmhash

import (
	"github.com/luxfi/fit/aesblock"
	"github.com/luxfi/fit/internal/padding"
)

// Size is the digest length in bytes.
const Size = 16

// initialChain is H0 = 0xFF...FF.
var initialChain = [Size]byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// Sum computes the Davies-Meyer hash of message using the default AES
// cipher factory.
func Sum(message []byte) ([Size]byte, error) {
	return SumWithFactory(message, aesblock.DefaultFactory)
}

// SumWithFactory computes the hash using a caller-supplied cipher
// factory, letting tests instrument AES block-encryption counts.
func SumWithFactory(message []byte, factory aesblock.Factory) ([Size]byte, error) {
	padded := padding.Pad(message)

	h := initialChain
	var out [Size]byte
	for off := 0; off < len(padded); off += Size {
		block := padded[off : off+Size]
		c, err := factory(block)
		if err != nil {
			return [Size]byte{}, err
		}
		c.EncryptBlock(out[:], h[:])
		for i := range h {
			h[i] = out[i] ^ h[i]
		}
	}

	// Finalization: H = AES_encrypt(key=Hn, plaintext=Hn) XOR Hn.
	c, err := factory(h[:])
	if err != nil {
		return [Size]byte{}, err
	}
	c.EncryptBlock(out[:], h[:])
	for i := range h {
		h[i] = out[i] ^ h[i]
	}
	return h, nil
}
