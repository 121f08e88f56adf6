package compress

import (
	"fmt"
	"io"

	"github.com/jo-migo/toml-to-rdb/format"
)

// Decoder wraps an input stream with transparent decompression.
//
// Decoders are stateless factories: WrapReader may be called for any number
// of independent streams, and each returned reader owns its own
// decompression state.
type Decoder interface {
	// WrapReader returns a reader yielding the decompressed bytes of r.
	//
	// The returned reader borrows r; it is valid only as long as r is.
	// For CompressionNone the input reader is returned unchanged.
	WrapReader(r io.Reader) (io.Reader, error)
}

var builtinDecoders = map[format.CompressionType]Decoder{
	format.CompressionNone: NewNoOpDecoder(),
	format.CompressionGzip: NewGzipDecoder(),
	format.CompressionZstd: NewZstdDecoder(),
	format.CompressionLZ4:  NewLZ4Decoder(),
	format.CompressionS2:   NewS2Decoder(),
}

// GetDecoder retrieves the built-in Decoder for the specified compression type.
func GetDecoder(compressionType format.CompressionType) (Decoder, error) {
	if decoder, ok := builtinDecoders[compressionType]; ok {
		return decoder, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
