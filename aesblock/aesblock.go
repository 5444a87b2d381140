// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package aesblock provides the single-block AES primitive shared by the
// Davies-Meyer and Abreast-DM compression functions. Key schedule and
// block encryption are delegated directly to stdlib crypto/aes rather
// than reimplemented.
package aesblock

import (
	"crypto/aes"
	"crypto/cipher"
)

// BlockSize is the AES block size in bytes, for both the 128- and
// 256-bit key variants.
const BlockSize = 16

// Cipher encrypts a single 16-byte block under a fixed key. It is the Go
// analog of the spec's key_schedule + encrypt_block pair: constructing a
// Cipher performs the key schedule once, EncryptBlock performs the
// encryption.
type Cipher interface {
	EncryptBlock(dst, src []byte)
}

type stdCipher struct {
	block cipher.Block
}

// NewCipher performs the AES key schedule for a 128- or 256-bit key.
func NewCipher(key []byte) (Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &stdCipher{block: block}, nil
}

// Factory constructs a per-block AES cipher from block-derived key
// material. Both Davies-Meyer and Abreast-DM re-key AES on every message
// block (the block itself, or a concatenation of state and block, is the
// key) so the compression functions take a Factory instead of a single
// Cipher. Tests substitute an instrumented Factory to count block
// encryptions across the whole hash.
type Factory func(key []byte) (Cipher, error)

// DefaultFactory performs a plain stdlib AES key schedule per call.
var DefaultFactory Factory = NewCipher

// EncryptBlock encrypts exactly one 16-byte block. dst and src may
// overlap completely, matching crypto/cipher.Block's contract.
func (c *stdCipher) EncryptBlock(dst, src []byte) {
	c.block.Encrypt(dst, src)
}
