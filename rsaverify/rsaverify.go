// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rsaverify checks an RSA-2048, public-exponent-3, PKCS#1 v1.5
// signature over an Abreast-DM digest. This wraps stdlib crypto/rsa
// directly rather than reimplementing PKCS#1 padding and verification.
package rsaverify

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"math/big"

	"github.com/pkg/errors"
)

// ModulusBits is the required RSA key size.
const ModulusBits = 2048

// PublicKey is the license-signing key, loaded either from a firmware
// PEM blob (host tooling) or assembled directly from modulus/exponent
// bytes (the embedded fit_pubkey.h path recovered from original_source).
type PublicKey struct {
	key *rsa.PublicKey
}

// ParsePEM loads a PEM-encoded RSA public key.
func ParsePEM(pemBytes []byte) (*PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("rsaverify: no PEM block found")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "rsaverify: parse public key")
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("rsaverify: not an RSA public key")
	}
	if rsaPub.N.BitLen() != ModulusBits {
		return nil, errors.Errorf("rsaverify: expected %d-bit modulus, got %d", ModulusBits, rsaPub.N.BitLen())
	}
	return &PublicKey{key: rsaPub}, nil
}

// FromModulus assembles a public key directly from big-endian modulus
// bytes and the exponent, matching the embedded fit_pubkey.h layout
// ({modulus[256], exponent}) recovered from original_source — the path
// used when the key itself is compiled into firmware rather than loaded
// from a PEM file at runtime.
func FromModulus(modulus []byte, exponent int) (*PublicKey, error) {
	key := &rsa.PublicKey{
		N: new(big.Int).SetBytes(modulus),
		E: exponent,
	}
	if key.N.BitLen() > ModulusBits || key.N.BitLen() <= ModulusBits-8 {
		return nil, errors.Errorf("rsaverify: expected %d-bit modulus, got %d", ModulusBits, key.N.BitLen())
	}
	return &PublicKey{key: key}, nil
}

// Verify checks sig (256 bytes) against digest, a 32-byte Abreast-DM
// result. The verifier is told crypto.SHA256 even though digest was not
// produced by SHA-256 — a deliberate, load-bearing deviation required
// for compatibility with existing signed licenses. The caller's
// signature must have been produced with the same convention.
func (p *PublicKey) Verify(digest, sig []byte) error {
	if len(sig) != 256 {
		return errors.Errorf("rsaverify: signature must be 256 bytes, got %d", len(sig))
	}
	if len(digest) != 32 {
		return errors.Errorf("rsaverify: digest must be 32 bytes, got %d", len(digest))
	}
	if err := rsa.VerifyPKCS1v15(p.key, crypto.SHA256, digest, sig); err != nil {
		return errors.Wrap(err, "rsaverify: signature verification failed")
	}
	return nil
}
