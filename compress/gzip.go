package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipDecoder decompresses gzip streams, the compression the original
// command-line flag selects.
type GzipDecoder struct{}

var _ Decoder = (*GzipDecoder)(nil)

// NewGzipDecoder creates a new gzip stream decoder.
func NewGzipDecoder() GzipDecoder {
	return GzipDecoder{}
}

// WrapReader returns a reader yielding the decompressed bytes of r.
// It fails immediately if r does not start with a valid gzip header.
func (d GzipDecoder) WrapReader(r io.Reader) (io.Reader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}

	return zr, nil
}
