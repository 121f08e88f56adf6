package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Decoder decompresses LZ4 frame streams.
type LZ4Decoder struct{}

var _ Decoder = (*LZ4Decoder)(nil)

// NewLZ4Decoder creates a new LZ4 frame stream decoder.
func NewLZ4Decoder() LZ4Decoder {
	return LZ4Decoder{}
}

// WrapReader returns a reader yielding the decompressed bytes of r.
// Frame validation happens lazily on the first read.
func (d LZ4Decoder) WrapReader(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}
