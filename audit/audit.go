// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package audit implements an optional, tamper-evident local audit
// trail of verification outcomes (DM hash -> decision -> timestamp).
// It supplements, not replaces, the Abreast-DM/DM signature and cache
// paths. Each entry is keyed by a BLAKE3 digest of its own contents,
// hashing the concatenated fields through zeebo/blake3 into a fixed-
// size key rather than inventing a new hashing convention.
package audit

import (
	"github.com/zeebo/blake3"

	"github.com/luxfi/fit/fiterrors"
)

// Entry is one append-only audit record.
type Entry struct {
	DMHash     [16]byte
	Status     fiterrors.Status
	UnixMillis int64
	Key        [32]byte
}

// Log is an in-memory, append-only sequence of Entry records. A host
// that wants persistence appends Log.Entries to its own durable store;
// this package only computes the tamper-evident key.
type Log struct {
	Entries []Entry
}

// Record computes the entry's key and appends it to the log.
func (l *Log) Record(dmHash [16]byte, status fiterrors.Status, unixMillis int64) Entry {
	e := Entry{DMHash: dmHash, Status: status, UnixMillis: unixMillis}
	e.Key = key(dmHash, status, unixMillis)
	l.Entries = append(l.Entries, e)
	return e
}

// Verify reports whether e's Key still matches its contents, detecting
// any in-memory corruption or tampering of the three recorded fields.
func Verify(e Entry) bool {
	return key(e.DMHash, e.Status, e.UnixMillis) == e.Key
}

// key derives a BLAKE3 digest over the entry's fields.
func key(dmHash [16]byte, status fiterrors.Status, unixMillis int64) [32]byte {
	h := blake3.New()
	h.Write(dmHash[:])
	h.Write([]byte{byte(status), byte(status >> 8), byte(status >> 16), byte(status >> 24)})
	u := uint64(unixMillis)
	h.Write([]byte{
		byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24),
		byte(u >> 32), byte(u >> 40), byte(u >> 48), byte(u >> 56),
	})
	var out [32]byte
	h.Digest().Read(out[:])
	return out
}
