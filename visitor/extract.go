// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package visitor

import (
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/schema"
	"github.com/luxfi/fit/wire"
)

// Field is one (depth, position)-resolved field instance handed to an
// InfoExtract callback.
type Field struct {
	Tag      schema.TagID
	Depth    int
	Position int
	Pointer  wire.Pointer
}

// InfoExtract walks the whole tree without stopping early, translating
// every (depth, position) coordinate into its schema.TagID and handing
// the field off to a caller-supplied callback. A callback error aborts the walk with InternalError.
type InfoExtract struct {
	Callback func(Field) error

	err error
}

var _ wire.Visitor = (*InfoExtract)(nil)

func (e *InfoExtract) Visit(ptr wire.Pointer, depth, position int, length uint32, tag schema.TagID) (fiterrors.Status, error) {
	if err := e.Callback(Field{Tag: tag, Depth: depth, Position: position, Pointer: ptr}); err != nil {
		e.err = err
		return fiterrors.InternalError, err
	}
	return fiterrors.ContinueParse, nil
}

// Err returns the first error a callback returned, if any.
func (e *InfoExtract) Err() error { return e.err }
