// Package format defines the on-disk constants of the RDB snapshot layout:
// the file magic, record type codes, opcodes, and length-encoding markers.
package format

import (
	"fmt"
	"strings"
)

type (
	RecordType      byte
	CompressionType uint8
)

const (
	// Magic is the ASCII prefix of every RDB file, followed by a
	// zero-padded four-digit decimal version number.
	Magic = "REDIS"

	// DefaultVersion is the RDB major version emitted when none is configured.
	DefaultVersion = 7

	// MaxVersion is the largest version representable by the four-digit header.
	MaxVersion = 9999
)

const (
	TypeString RecordType = 0x00 // TypeString is the type code of a plain string record.
	TypeSet    RecordType = 0x02 // TypeSet is the type code of a set record.
	TypeHash   RecordType = 0x04 // TypeHash is the type code of a hash record.
)

// Opcodes interleaved with records in the RDB stream.
const (
	OpcodeSelectDB byte = 0xFE // selects the logical database; followed by its index
	OpcodeEOF      byte = 0xFF // terminates the record stream; followed by the checksum trailer
)

// The first two bits of a length encoding select one of four size classes.
// The 6-bit and 14-bit classes pack the length into the remaining bits of
// the prefix byte(s); the 32-bit and 64-bit classes use a full marker byte
// followed by a big-endian integer.
const (
	Len6Bit  byte = 0x00 // 00xxxxxx, length in the low 6 bits
	Len14Bit byte = 0x40 // 01xxxxxx xxxxxxxx, 14-bit big-endian length
	Len32Bit byte = 0x80 // marker byte + 4-byte big-endian length
	Len64Bit byte = 0x81 // marker byte + 8-byte big-endian length
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed input stream.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents a gzip-compressed input stream.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents a Zstandard-compressed input stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4-frame-compressed input stream.
	CompressionS2   CompressionType = 0x5 // CompressionS2 represents an S2-compressed input stream.
)

func (t RecordType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeSet:
		return "Set"
	case TypeHash:
		return "Hash"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionS2:
		return "s2"
	default:
		return "unknown"
	}
}

// ParseCompressionType maps a user-facing name to a CompressionType.
// Matching is case-insensitive; the empty string means no compression.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "gzip":
		return CompressionGzip, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	case "s2":
		return CompressionS2, nil
	default:
		return 0, fmt.Errorf("unknown compression type %q", name)
	}
}
