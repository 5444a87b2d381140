package memreader

import "errors"

// ErrOutOfRange is returned when a read falls outside the backing store.
var ErrOutOfRange = errors.New("memreader: address out of range")
