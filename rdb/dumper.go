// Package rdb drives the full dump pass: it frames the RDB file around the
// records produced from the segmented TOML input.
package rdb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/jo-migo/toml-to-rdb/checksum"
	"github.com/jo-migo/toml-to-rdb/compress"
	"github.com/jo-migo/toml-to-rdb/format"
	"github.com/jo-migo/toml-to-rdb/record"
	"github.com/jo-migo/toml-to-rdb/segment"
)

// Dumper converts one TOML input stream into one RDB output stream.
//
// A Dumper holds only configuration and may be reused for any number of
// sequential passes; each Dump call owns its own checksum state and
// segmenter. It is not safe to share one pass across goroutines, and there
// is no need to: the pass is single-threaded and fully synchronous.
type Dumper struct {
	version     int
	compression format.CompressionType
}

// NewDumper creates a Dumper with the given options applied over the
// defaults (version format.DefaultVersion, uncompressed input).
func NewDumper(opts ...Option) (*Dumper, error) {
	d := &Dumper{
		version:     format.DefaultVersion,
		compression: format.CompressionNone,
	}

	if err := applyOptions(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Dump reads line-oriented TOML from r and writes the complete RDB dump to
// w: header, one record per fragment, then the EOF opcode and checksum
// trailer.
//
// The first failure aborts the pass. Bytes already flushed stay in w, so a
// non-nil error means w holds an unusable truncated artifact.
func (d *Dumper) Dump(r io.Reader, w io.Writer) error {
	decoder, err := compress.GetDecoder(d.compression)
	if err != nil {
		return err
	}

	r, err = decoder.WrapReader(r)
	if err != nil {
		return err
	}

	cw := checksum.NewWriter(w)

	if err := d.writeHeader(cw); err != nil {
		return err
	}

	seg := segment.New(r)
	for {
		fragment, err := seg.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		rec, err := record.Parse(fragment)
		if err != nil {
			return err
		}

		if err := rec.EncodeTo(cw); err != nil {
			return err
		}
	}

	return writeTrailer(cw, w)
}

// writeHeader emits the magic, the zero-padded four-digit version, and the
// SELECTDB opcode for database 0, all through the checksum writer.
func (d *Dumper) writeHeader(cw *checksum.Writer) error {
	header := fmt.Appendf(nil, "%s%04d", format.Magic, d.version)
	header = append(header, format.OpcodeSelectDB, 0x00)

	if _, err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	return nil
}

// writeTrailer emits the EOF opcode through the checksum writer, then the
// finalized 64-bit sum in little-endian order directly to the sink. The
// trailer bytes are the one part of the file excluded from their own
// checksum.
func writeTrailer(cw *checksum.Writer, w io.Writer) error {
	if _, err := cw.Write([]byte{format.OpcodeEOF}); err != nil {
		return fmt.Errorf("write eof opcode: %w", err)
	}

	trailer := binary.LittleEndian.AppendUint64(nil, cw.Sum64())
	if _, err := w.Write(trailer); err != nil {
		return fmt.Errorf("write checksum trailer: %w", err)
	}

	return nil
}
