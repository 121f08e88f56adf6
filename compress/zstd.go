package compress

// ZstdDecoder decompresses Zstandard streams.
//
// Two implementations exist, selected at build time the same way the
// encoder side would be: a pure-Go reader (zstd_pure.go) and a cgo reader
// over libzstd (zstd_cgo.go). The pure-Go path is the one normally built.
type ZstdDecoder struct{}

var _ Decoder = (*ZstdDecoder)(nil)

// NewZstdDecoder creates a new Zstandard stream decoder.
func NewZstdDecoder() ZstdDecoder {
	return ZstdDecoder{}
}
