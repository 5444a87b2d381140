// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package abreastdm

import (
	"crypto/aes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum_Deterministic(t *testing.T) {
	msg := []byte("signed license sub-tree bytes")

	a, err := Sum(msg)
	require.NoError(t, err)
	b, err := Sum(msg)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSum_DifferentInputsDiffer(t *testing.T) {
	a, err := Sum([]byte("license body one"))
	require.NoError(t, err)
	b, err := Sum([]byte("license body two"))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSum_OutputSize(t *testing.T) {
	h, err := Sum([]byte("x"))
	require.NoError(t, err)
	require.Len(t, h, Size)
	require.Equal(t, 32, Size)
}

// referenceUpdateBlk re-derives AES256_AbreastDmHash_UpdateBlk from
// original_source/fit-fitgood_plus_blinky/src/abreast_dm.c: the G half
// is updated first, in place, and the H half's AES key is built from
// that already-updated G, not the prior round's G. Getting this
// ordering backwards silently produces a different digest for any
// multi-block message.
func referenceUpdateBlk(t *testing.T, block []byte, g, h *[HalfSize]byte) {
	t.Helper()

	gKey := append(append([]byte(nil), h[:]...), block...)
	gCipher, err := aes.NewCipher(gKey)
	require.NoError(t, err)
	var gEnc [HalfSize]byte
	gCipher.Encrypt(gEnc[:], g[:])
	var nextG [HalfSize]byte
	for i := range nextG {
		nextG[i] = g[i] ^ gEnc[i]
	}

	hKey := append(append([]byte(nil), block...), nextG[:]...)
	hCipher, err := aes.NewCipher(hKey)
	require.NoError(t, err)
	var notH [HalfSize]byte
	for i := range notH {
		notH[i] = ^h[i]
	}
	var hEnc [HalfSize]byte
	hCipher.Encrypt(hEnc[:], notH[:])
	var nextH [HalfSize]byte
	for i := range nextH {
		nextH[i] = h[i] ^ hEnc[i]
	}

	*g, *h = nextG, nextH
}

// referenceAbreastDM re-derives fit_get_AbreastDM_Hash independently of
// internal/padding and SumWithFactory, processing full blocks directly
// (the C loop's `(cntr+16) < length` boundary, which never treats an
// exact last block as "full") before padding only the trailing
// remainder with the same rule dmhash's reference uses.
func referenceAbreastDM(t *testing.T, message []byte) [Size]byte {
	t.Helper()
	g := initialHalf
	h := initialHalf

	cntr := 0
	for cntr+16 < len(message) {
		referenceUpdateBlk(t, message[cntr:cntr+16], &g, &h)
		cntr += 16
	}
	remainder := append([]byte(nil), message[cntr:]...)
	padded := referencePad(remainder, len(message))
	for off := 0; off < len(padded); off += 16 {
		referenceUpdateBlk(t, padded[off:off+16], &g, &h)
	}

	finalKey := append(append([]byte(nil), g[:]...), h[:]...)
	finalCipher, err := aes.NewCipher(finalKey)
	require.NoError(t, err)
	var gEnc, hEnc [HalfSize]byte
	finalCipher.Encrypt(gEnc[:], g[:])
	finalCipher.Encrypt(hEnc[:], h[:])

	var out [Size]byte
	for i := 0; i < HalfSize; i++ {
		out[i] = g[i] ^ gEnc[i]
		out[HalfSize+i] = h[i] ^ hEnc[i]
	}
	return out
}

// referencePad mirrors dmhash's referencePad; both hash constructions
// share the exact same fit_dm_hash_init padding rule.
func referencePad(remainder []byte, fullLen int) []byte {
	padded := append([]byte(nil), remainder...)
	zeropads := 8 - len(remainder)%8
	for i := 0; i < zeropads; i++ {
		padded = append(padded, 0)
	}
	if len(padded)%16 == 0 {
		for i := 0; i < 8; i++ {
			padded = append(padded, 0)
		}
	}
	var trailer [8]byte
	binary.BigEndian.PutUint64(trailer[:], uint64(uint16(fullLen*8)))
	return append(padded, trailer[:]...)
}

func TestSum_MatchesReferenceConstruction(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 15, 16, 17, 24, 31, 32, 33} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i*11 + 5)
		}

		got, err := Sum(msg)
		require.NoErrorf(t, err, "length %d", n)
		want := referenceAbreastDM(t, msg)
		require.Equalf(t, want, got, "length %d", n)
	}
}

func TestSum_OneBitFlipChangesDigest(t *testing.T) {
	msg := []byte("a deterministic message to hash twice over")
	flipped := append([]byte(nil), msg...)
	flipped[0] ^= 0x01

	a, err := Sum(msg)
	require.NoError(t, err)
	b, err := Sum(flipped)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
