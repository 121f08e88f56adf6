package encoding

import (
	"encoding/binary"
	"math"

	"github.com/jo-migo/toml-to-rdb/format"
)

// AppendLength appends the RDB variable-width encoding of n to dst and
// returns the extended slice.
//
// The encoding uses four size classes, selected by the first byte:
//   - n < 2^6: 1 byte, top bits 00, length in the low 6 bits
//   - n < 2^14: 2 bytes, top bits 01, 14-bit big-endian length
//   - n < 2^32-1: marker 0x80, then 4-byte big-endian length
//   - otherwise: marker 0x81, then 8-byte big-endian length
//
// The function is total: every uint64 has exactly one encoding, and no
// input fails. Lengths are always derived from byte or element counts
// computed earlier, so no range validation is needed here.
func AppendLength(dst []byte, n uint64) []byte {
	switch {
	case n < 1<<6:
		return append(dst, format.Len6Bit|byte(n))
	case n < 1<<14:
		return append(dst, format.Len14Bit|byte(n>>8), byte(n))
	case n < math.MaxUint32:
		dst = append(dst, format.Len32Bit)
		return binary.BigEndian.AppendUint32(dst, uint32(n))
	default:
		dst = append(dst, format.Len64Bit)
		return binary.BigEndian.AppendUint64(dst, n)
	}
}

// AppendString appends the RDB string encoding of s to dst: the byte length
// of s in length encoding, followed by the raw UTF-8 bytes.
func AppendString(dst []byte, s string) []byte {
	dst = AppendLength(dst, uint64(len(s)))
	return append(dst, s...)
}
