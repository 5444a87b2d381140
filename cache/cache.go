// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cache implements a single-slot validation cache: it remembers
// the last license (by its Davies-Meyer hash) whose RSA signature has
// already been verified, so a repeated consume call against the same
// bytes can skip both Abreast-DM and RSA work. Deliberately a plain
// struct, not thread-safe — callers wanting concurrent sharing wrap an
// instance in their own mutex rather than the cache growing internal
// locking.
package cache

// Cache is one slot: a Davies-Meyer hash and whether it was last seen
// validated. The zero value is empty (Validated false never matches).
type Cache struct {
	dmHash    [16]byte
	validated bool
}

// Hit reports whether hash matches the cached entry and it was recorded
// as validated.
func (c *Cache) Hit(hash [16]byte) bool {
	return c.validated && c.dmHash == hash
}

// Store records hash as validated, per a successful signature check.
func (c *Cache) Store(hash [16]byte) {
	c.dmHash = hash
	c.validated = true
}

// Clear invalidates the cache. Called on any fatal parse error or
// cryptographic failure.
func (c *Cache) Clear() {
	c.dmHash = [16]byte{}
	c.validated = false
}
