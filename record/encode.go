package record

import (
	"fmt"

	"github.com/jo-migo/toml-to-rdb/checksum"
	"github.com/jo-migo/toml-to-rdb/encoding"
	"github.com/jo-migo/toml-to-rdb/format"
	"github.com/jo-migo/toml-to-rdb/internal/pool"
)

// EncodeTo assembles the record's full type-tagged byte sequence and writes
// it through cw in a single call, so the sink never holds a partial record
// and a stringify failure aborts before any byte of the record is flushed.
//
// Set records preserve the source order and multiplicity of their elements:
// duplicate stringified elements are emitted as-is even though the result
// is not a valid set under Redis semantics. The source behavior is kept
// rather than deduplicated.
func (r *Record) EncodeTo(cw *checksum.Writer) error {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	buf.B = append(buf.B, byte(r.Type))
	buf.B = encoding.AppendString(buf.B, r.Key)

	var err error
	switch r.Type {
	case format.TypeString:
		err = r.appendString(buf)
	case format.TypeSet:
		err = r.appendSet(buf)
	case format.TypeHash:
		err = r.appendHash(buf)
	}
	if err != nil {
		return fmt.Errorf("encode record %q: %w", r.Key, err)
	}

	if _, err := cw.Write(buf.B); err != nil {
		return fmt.Errorf("write record %q: %w", r.Key, err)
	}

	return nil
}

func (r *Record) appendString(buf *pool.ByteBuffer) error {
	s, err := stringify(r.scalar)
	if err != nil {
		return err
	}

	buf.B = encoding.AppendString(buf.B, s)

	return nil
}

func (r *Record) appendSet(buf *pool.ByteBuffer) error {
	buf.B = encoding.AppendLength(buf.B, uint64(len(r.elems)))

	for _, elem := range r.elems {
		s, err := stringify(elem)
		if err != nil {
			return err
		}

		buf.B = encoding.AppendString(buf.B, s)
	}

	return nil
}

func (r *Record) appendHash(buf *pool.ByteBuffer) error {
	buf.B = encoding.AppendLength(buf.B, uint64(len(r.fields)))

	for _, field := range r.fields {
		s, err := stringify(field.Value)
		if err != nil {
			return err
		}

		buf.B = encoding.AppendString(buf.B, field.Key)
		buf.B = encoding.AppendString(buf.B, s)
	}

	return nil
}
