//go:build !nobuild

package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WrapReader returns a reader yielding the decompressed bytes of r.
func (d ZstdDecoder) WrapReader(r io.Reader) (io.Reader, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("open zstd stream: %w", err)
	}

	return zr, nil
}
