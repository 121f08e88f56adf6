package compress

import "io"

// NoOpDecoder passes the input stream through untouched. It backs
// CompressionNone so the dump path always goes through the same WrapReader
// seam regardless of configuration.
type NoOpDecoder struct{}

var _ Decoder = (*NoOpDecoder)(nil)

// NewNoOpDecoder creates a new no-operation decoder that bypasses data.
func NewNoOpDecoder() NoOpDecoder {
	return NoOpDecoder{}
}

// WrapReader returns r unchanged.
func (d NoOpDecoder) WrapReader(r io.Reader) (io.Reader, error) {
	return r, nil
}
