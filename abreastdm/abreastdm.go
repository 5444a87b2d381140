// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package abreastdm implements the 256-bit Abreast-DM double-pipe hash
// construction over AES-256. This is the message digest RSA signs.
// Ported from original_source's fit-fitgood_plus_blinky/src/abreast_dm.c.
package abreastdm

import (
	"github.com/luxfi/fit/aesblock"
	"github.com/luxfi/fit/internal/padding"
)

// HalfSize is the width of each of the two state pipes (G and H) in
// bytes. Size is the combined digest length.
const (
	HalfSize = 16
	Size     = 2 * HalfSize
)

var initialHalf = [HalfSize]byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// Sum computes the Abreast-DM digest of message using the default AES
// cipher factory.
func Sum(message []byte) ([Size]byte, error) {
	return SumWithFactory(message, aesblock.DefaultFactory)
}

// SumWithFactory computes the digest using a caller-supplied AES-256
// cipher factory (each call re-keys AES from 32 bytes of message/state
// material), letting tests instrument block-encryption counts.
func SumWithFactory(message []byte, factory aesblock.Factory) ([Size]byte, error) {
	padded := padding.Pad(message)

	g := initialHalf
	h := initialHalf

	for off := 0; off < len(padded); off += HalfSize {
		m := padded[off : off+HalfSize]

		// Gi = Gi-1 XOR AES(key=Hi-1||Mi, Gi-1). Updated first, in place,
		// since Hi's key below uses this already-updated Gi, not Gi-1.
		gKey := concat(h[:], m)
		gCipher, err := factory(gKey)
		if err != nil {
			return [Size]byte{}, err
		}
		var gEnc [HalfSize]byte
		gCipher.EncryptBlock(gEnc[:], g[:])
		var nextG [HalfSize]byte
		xorBytes(nextG[:], g[:], gEnc[:])

		// Hi = Hi-1 XOR AES(key=Mi||Gi, ~Hi-1).
		hKey := concat(m, nextG[:])
		hCipher, err := factory(hKey)
		if err != nil {
			return [Size]byte{}, err
		}
		var hPlain [HalfSize]byte
		notBytes(hPlain[:], h[:])
		var hEnc [HalfSize]byte
		hCipher.EncryptBlock(hEnc[:], hPlain[:])
		var nextH [HalfSize]byte
		xorBytes(nextH[:], h[:], hEnc[:])

		g, h = nextG, nextH
	}

	// Finalization: encrypt each half under the concatenated final state
	// as the AES-256 key, and XOR the result back into that half.
	finalKey := concat(g[:], h[:])
	finalCipher, err := factory(finalKey)
	if err != nil {
		return [Size]byte{}, err
	}
	var gFinalEnc, hFinalEnc [HalfSize]byte
	finalCipher.EncryptBlock(gFinalEnc[:], g[:])
	finalCipher.EncryptBlock(hFinalEnc[:], h[:])

	var out [Size]byte
	xorBytes(out[:HalfSize], g[:], gFinalEnc[:])
	xorBytes(out[HalfSize:], h[:], hFinalEnc[:])
	return out, nil
}

func concat(a, b []byte) []byte {
	out := make([]byte, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func notBytes(dst, src []byte) {
	for i := range dst {
		dst[i] = ^src[i]
	}
}
