package rdb

import (
	"fmt"

	"github.com/jo-migo/toml-to-rdb/compress"
	"github.com/jo-migo/toml-to-rdb/errs"
	"github.com/jo-migo/toml-to-rdb/format"
	"github.com/jo-migo/toml-to-rdb/internal/options"
)

// Option configures a Dumper. Options are applied in order by NewDumper;
// the first failing option aborts construction.
type Option = options.Option[*Dumper]

func applyOptions(d *Dumper, opts ...Option) error {
	return options.Apply(d, opts...)
}

// WithVersion sets the RDB major version written into the header. The
// header carries exactly four decimal digits, so v must be in [0, 9999].
func WithVersion(v int) Option {
	return options.New(func(d *Dumper) error {
		if v < 0 || v > format.MaxVersion {
			return fmt.Errorf("%w: %d", errs.ErrInvalidVersion, v)
		}

		d.version = v

		return nil
	})
}

// WithCompression selects the decompression applied to the input stream.
func WithCompression(t format.CompressionType) Option {
	return options.New(func(d *Dumper) error {
		if _, err := compress.GetDecoder(t); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, t)
		}

		d.compression = t

		return nil
	})
}
