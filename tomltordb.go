// Package tomltordb converts a stream of line-oriented TOML key/value
// declarations into a Redis RDB snapshot.
//
// The output is a byte-exact RDB file: a "REDIS" magic plus a four-digit
// version, a SELECTDB opcode for database 0, one type-tagged record per
// logical TOML entry, and an EOF opcode followed by a little-endian CRC-64
// trailer over every preceding byte.
//
// Top-level value shapes map onto three record types:
//   - a scalar line (name = "ada") becomes a string record
//   - an array (tags = ["a", "b"]) becomes a set record
//   - a bracketed table block becomes a hash record with its fields in
//     declaration order
//
// Basic usage:
//
//	f, _ := os.Open("config.toml")
//	defer f.Close()
//
//	var out bytes.Buffer
//	if err := tomltordb.Dump(f, &out); err != nil {
//	    log.Fatal(err)
//	}
//
// Selecting a version and compressed input:
//
//	err := tomltordb.Dump(f, &out,
//	    rdb.WithVersion(6),
//	    rdb.WithCompression(format.CompressionGzip),
//	)
//
// This package provides convenient wrappers around the rdb package; use rdb
// directly to construct a reusable Dumper.
package tomltordb

import (
	"io"
	"strings"

	"github.com/jo-migo/toml-to-rdb/rdb"
)

// Dump reads TOML from r and writes a complete RDB dump to w.
//
// A non-nil error means w holds a truncated, unusable artifact; there is no
// partial-record recovery.
func Dump(r io.Reader, w io.Writer, opts ...rdb.Option) error {
	d, err := rdb.NewDumper(opts...)
	if err != nil {
		return err
	}

	return d.Dump(r, w)
}

// DumpString is a convenience wrapper over Dump for in-memory input.
func DumpString(input string, w io.Writer, opts ...rdb.Option) error {
	return Dump(strings.NewReader(input), w, opts...)
}
