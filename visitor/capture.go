// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package visitor

import (
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/schema"
	"github.com/luxfi/fit/wire"
)

// AddressCapture stops the walk as soon as it sees the requested
// (depth, position) coordinate and records the field's pointer. Used to
// locate the signature bytes and the license sub-tree boundary without
// walking the whole tree.
type AddressCapture struct {
	Depth    int
	Position int

	Found   bool
	Pointer wire.Pointer
	Tag     schema.TagID
}

var _ wire.Visitor = (*AddressCapture)(nil)

func (c *AddressCapture) Visit(ptr wire.Pointer, depth, position int, length uint32, tag schema.TagID) (fiterrors.Status, error) {
	if depth != c.Depth || position != c.Position {
		return fiterrors.ContinueParse, nil
	}
	c.Found = true
	c.Pointer = ptr
	c.Tag = tag
	return fiterrors.StopParse, nil
}
