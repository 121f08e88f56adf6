package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Decoder decompresses S2 streams.
type S2Decoder struct{}

var _ Decoder = (*S2Decoder)(nil)

// NewS2Decoder creates a new S2 stream decoder.
func NewS2Decoder() S2Decoder {
	return S2Decoder{}
}

// WrapReader returns a reader yielding the decompressed bytes of r.
// Stream validation happens lazily on the first read.
func (d S2Decoder) WrapReader(r io.Reader) (io.Reader, error) {
	return s2.NewReader(r), nil
}
