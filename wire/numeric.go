package wire

import (
	"github.com/holiman/uint256"

	"github.com/luxfi/fit/schema"
)

// DecodeInline decodes a 16-bit inline field descriptor's value: the
// wire carries 2*(value+1), the low bit reserved as the zero/skip/inline
// discriminator.
func DecodeInline(d uint16) int64 {
	return int64(d)/2 - 1
}

// isRawField reports the 32-bit data-tail integer positions that carry their
// value as-is, with no /2-1 transform applied: start_date and end_date
// need their full unix-timestamp range, and lc_id needs its full 32-bit
// range.
func isRawField(tag schema.TagID) bool {
	switch tag {
	case schema.TagStartDate, schema.TagEndDate, schema.TagLcID:
		return true
	default:
		return false
	}
}

// DecodeDataTailInt decodes a 32-bit data-tail integer field according
// to the numeric semantics: most integer fields undergo the
// same d/2-1 transform as inline 16-bit fields; start_date, end_date,
// and lc_id are read as-is.
func DecodeDataTailInt(tag schema.TagID, raw uint32) int64 {
	if isRawField(tag) {
		return int64(raw)
	}
	return int64(raw)/2 - 1
}

// WithinUint256Bound reports whether v, treated as an unsigned quantity,
// is within [0, max]. Field reads route through holiman/uint256 for
// exact-width bounds checking rather than ad hoc int64/uint32
// comparisons.
func WithinUint256Bound(v int64, max uint64) bool {
	if v < 0 {
		return false
	}
	val := uint256.NewInt(uint64(v))
	bound := uint256.NewInt(max)
	return val.Cmp(bound) <= 0
}
