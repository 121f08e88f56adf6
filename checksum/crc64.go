// Package checksum implements the CRC-64 variant used by the RDB trailer
// and the write-through accumulator that threads it through a dump pass.
package checksum

import (
	"hash/crc64"
	"io"
)

// Poly is the Jones polynomial in reversed bit order, the CRC-64 variant
// Redis uses for the RDB trailer (init 0, no final xor, reflected).
const Poly = 0x95AC9329AC4BC9B5

var table = crc64.MakeTable(Poly)

// Update folds p into crc and returns the new running sum.
//
// hash/crc64 applies an all-ones init and final xor; complementing the
// state on the way in and out cancels both, leaving the raw reflected
// CRC the RDB format expects. Update(0, nil) == 0, and folding a stream
// in chunks equals folding it in one call.
func Update(crc uint64, p []byte) uint64 {
	return ^crc64.Update(^crc, table, p)
}

// Writer wraps an output sink and folds every written byte into a running
// CRC-64. All dump output except the trailer's own 8 checksum bytes must
// pass through a single Writer, in emission order.
//
// Writer is not safe for concurrent use; a dump pass owns exactly one.
type Writer struct {
	w   io.Writer
	crc uint64
}

// NewWriter returns a Writer over w with the sum seeded at zero.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write forwards p to the underlying sink and folds the bytes actually
// written into the running sum. On a short write the sum covers only the
// flushed prefix, so it still matches the bytes present in the sink.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.crc = Update(w.crc, p[:n])

	return n, err
}

// Sum64 returns the CRC of every byte written so far.
func (w *Writer) Sum64() uint64 {
	return w.crc
}
