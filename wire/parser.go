package wire

import (
	"github.com/luxfi/fit/fiterrors"
	"github.com/luxfi/fit/memreader"
	"github.com/luxfi/fit/schema"
)

// Visitor is called once per field instance encountered during a parse,
// in pre-order over the wire encoding. Returning
// fiterrors.StopParse ends the walk successfully; any other non-OK,
// non-ContinueParse status is treated as fatal and aborts the walk.
type Visitor interface {
	Visit(ptr Pointer, depth, position int, length uint32, tag schema.TagID) (fiterrors.Status, error)
}

// descriptorSize is the width of one field descriptor.
const descriptorSize = 2

// lengthPrefixSize is the width of a data-tail length prefix, and of an
// array element's length prefix.
const lengthPrefixSize = 4

// ParseObject walks one object encoding starting at addr, whose fields
// are numbered from startPos at the given depth. It
// returns fiterrors.OK on a full, uninterrupted walk, fiterrors.StopParse
// if the visitor stopped the walk early (a successful outcome), or a
// fatal status otherwise.
func ParseObject(r memreader.Reader, addr memreader.Addr, depth, startPos int, v Visitor) (fiterrors.Status, error) {
	if depth < 0 || depth >= schema.MaxDepth {
		return fiterrors.InvalidParam1, fiterrors.New(fiterrors.InvalidParam1)
	}

	n, err := memreader.ReadU16LE(r, addr)
	if err != nil {
		return fiterrors.InvalidV2C, fiterrors.Wrap(fiterrors.InvalidV2C, err)
	}

	dataTailOffset := memreader.Addr((int(n) + 1) * 2)
	pos := startPos

	for i := 0; i < int(n); i++ {
		if pos < 0 || pos >= schema.MaxPosition {
			return fiterrors.InvalidParam2, fiterrors.New(fiterrors.InvalidParam2)
		}

		descAddr := addr + descriptorSize + memreader.Addr(i*descriptorSize)
		d, err := memreader.ReadU16LE(r, descAddr)
		if err != nil {
			return fiterrors.InvalidV2C, fiterrors.Wrap(fiterrors.InvalidV2C, err)
		}

		switch {
		case d == 0:
			status, err, advance := parseDataTailField(r, addr, dataTailOffset, depth, pos, v)
			if status != fiterrors.OK && status != fiterrors.ContinueParse {
				return status, err
			}
			dataTailOffset += advance
			pos++

		case d%2 == 1:
			pos += (int(d) + 1) / 2

		default:
			wt, tag := schema.Lookup(depth, pos)
			if wt == schema.WireTypeUnknown {
				return fiterrors.InvalidWireType, fiterrors.New(fiterrors.InvalidWireType)
			}
			// The decoded value (DecodeInline(d)) is available to the
			// visitor by reading the descriptor bytes back through the
			// pointer; we hand over the raw bytes rather than a decoded
			// value, matching the pointer-based visitor
			// contract.
			status, err := v.Visit(Pointer{R: r, Addr: descAddr, Length: descriptorSize}, depth, pos, descriptorSize, tag)
			if status == fiterrors.StopParse {
				return fiterrors.StopParse, nil
			}
			if status != fiterrors.OK && status != fiterrors.ContinueParse {
				return status, err
			}
			pos++
		}
	}

	return fiterrors.OK, nil
}

// parseDataTailField handles one d==0 field: its value lives in the
// object's data tail at dataTailOffset. Returns the status from the
// visitor (or from a nested parse), and how far to advance
// dataTailOffset.
func parseDataTailField(r memreader.Reader, objAddr memreader.Addr, dataTailOffset memreader.Addr, depth, pos int, v Visitor) (fiterrors.Status, error, memreader.Addr) {
	wt, tag := schema.Lookup(depth, pos)
	fieldAddr := objAddr + dataTailOffset

	switch wt {
	case schema.WireTypeInteger, schema.WireTypeString:
		length, err := memreader.ReadU32LE(r, fieldAddr)
		if err != nil {
			return fiterrors.InvalidV2C, fiterrors.Wrap(fiterrors.InvalidV2C, err), 0
		}
		valueAddr := fieldAddr + lengthPrefixSize
		status, err := v.Visit(Pointer{R: r, Addr: valueAddr, Length: length}, depth, pos, length, tag)
		if status == fiterrors.StopParse {
			return fiterrors.StopParse, nil, lengthPrefixSize + memreader.Addr(length)
		}
		if status != fiterrors.OK && status != fiterrors.ContinueParse {
			return status, err, 0
		}
		return fiterrors.OK, nil, lengthPrefixSize + memreader.Addr(length)

	case schema.WireTypeObject:
		status, err := v.Visit(Pointer{R: r, Addr: fieldAddr, Length: lengthPrefixSize}, depth, pos, lengthPrefixSize, tag)
		if status != fiterrors.OK && status != fiterrors.ContinueParse && status != fiterrors.StopParse {
			return status, err, 0
		}
		innerLen, err := memreader.ReadU32LE(r, fieldAddr)
		if err != nil {
			return fiterrors.InvalidV2C, fiterrors.Wrap(fiterrors.InvalidV2C, err), 0
		}
		if status != fiterrors.StopParse {
			childStart := schema.ChildStart(depth, pos)
			status, err = ParseObject(r, fieldAddr+lengthPrefixSize, depth+1, childStart, v)
			if status != fiterrors.OK && status != fiterrors.ContinueParse && status != fiterrors.StopParse {
				return status, err, 0
			}
		}
		return statusAfterChild(status), nil, lengthPrefixSize + memreader.Addr(innerLen)

	case schema.WireTypeArray:
		status, err := v.Visit(Pointer{R: r, Addr: fieldAddr, Length: lengthPrefixSize}, depth, pos, lengthPrefixSize, tag)
		if status != fiterrors.OK && status != fiterrors.ContinueParse && status != fiterrors.StopParse {
			return status, err, 0
		}
		arrayLen, err := memreader.ReadU32LE(r, fieldAddr)
		if err != nil {
			return fiterrors.InvalidV2C, fiterrors.Wrap(fiterrors.InvalidV2C, err), 0
		}
		if status != fiterrors.StopParse {
			childStart := schema.ChildStart(depth, pos)
			status, err = ParseArray(r, fieldAddr+lengthPrefixSize, arrayLen, depth+1, childStart, v)
			if status != fiterrors.OK && status != fiterrors.ContinueParse && status != fiterrors.StopParse {
				return status, err, 0
			}
		}
		return statusAfterChild(status), nil, lengthPrefixSize + memreader.Addr(arrayLen)

	default:
		return fiterrors.InvalidWireType, fiterrors.New(fiterrors.InvalidWireType), 0
	}
}

// statusAfterChild propagates StopParse up so an address-capture or
// consume visitor that matched inside a nested object ends the whole
// walk, not just the nested one.
func statusAfterChild(childStatus fiterrors.Status) fiterrors.Status {
	if childStatus == fiterrors.StopParse {
		return fiterrors.StopParse
	}
	return fiterrors.OK
}

// ParseArray walks an array body of arrayLen bytes starting at addr,
// dispatching each element as an object parse at depth (the caller
// passes the array field's depth+1) beginning at elementStart. Each
// element's declared
// length is checked against the array's declared total length as
// consumption proceeds — recovered from original_source's parser.c,
// which tracks bytes-consumed-so-far against the array length after
// every element rather than trusting it blindly, surfacing InvalidV2C on
// overrun.
func ParseArray(r memreader.Reader, addr memreader.Addr, arrayLen uint32, depth, elementStart int, v Visitor) (fiterrors.Status, error) {
	var consumed uint32
	for consumed < arrayLen {
		elemAddr := addr + memreader.Addr(consumed)
		elemLen, err := memreader.ReadU32LE(r, elemAddr)
		if err != nil {
			return fiterrors.InvalidV2C, fiterrors.Wrap(fiterrors.InvalidV2C, err)
		}
		consumed += lengthPrefixSize
		if consumed+elemLen > arrayLen {
			return fiterrors.InvalidV2C, fiterrors.New(fiterrors.InvalidV2C)
		}

		status, err := ParseObject(r, elemAddr+lengthPrefixSize, depth, elementStart, v)
		if status == fiterrors.StopParse {
			return fiterrors.StopParse, nil
		}
		if status != fiterrors.OK && status != fiterrors.ContinueParse {
			return status, err
		}
		consumed += elemLen
	}
	if consumed != arrayLen {
		return fiterrors.InvalidV2C, fiterrors.New(fiterrors.InvalidV2C)
	}
	return fiterrors.OK, nil
}
