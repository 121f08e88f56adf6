// Package encoding implements the low-level RDB wire encoders: the
// variable-width length encoding and the length-prefixed string encoding
// built on top of it.
//
// All encoders are append-style: they take a destination slice and return
// the extended slice, so callers can assemble a full record in one buffer
// before writing it out. Higher-level record assembly lives in the record
// package; this package knows nothing about keys, values, or checksums.
package encoding
