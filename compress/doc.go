// Package compress provides transparent decompression for the TOML input
// stream.
//
// The dump pass reads the input exactly once, front to back, so every codec
// is exposed as a streaming reader wrapper rather than a block codec:
//
//	decoder, err := compress.GetDecoder(format.CompressionGzip)
//	if err != nil { ... }
//	r, err := decoder.WrapReader(compressedInput)
//
// Supported algorithms:
//   - none: pass-through (the default)
//   - gzip: the compression the original --gzipped flag selects
//   - zstd: pure-Go reader, with a cgo libzstd variant behind a build tag
//   - lz4:  LZ4 frame format
//   - s2:   S2/Snappy-compatible stream format
//
// Decompression applies to the input only. The emitted RDB stream is never
// compressed here, and the checksum always covers the uncompressed output
// bytes.
package compress
