// Package record implements generic fixed-layout binary records.
//
// Igor binary wave files are a sequence of C structures written with
// standard sizes and no alignment padding. This package describes such a
// structure as an ordered list of typed fields, compiles the field offsets
// and packed size once at construction, and provides byte-order-qualified
// Unpack and Pack operations over byte buffers.
//
// A Field is a named primitive with an optional repeat shape: a scalar
// decodes to a single typed value, a repeated field decodes to a slice
// (or, for two-dimensional character fields, a slice of byte slices).
// In-memory pointer fields in the file format are stored on disk as 4-byte
// unsigned integers and are declared as Uint32 fields here.
//
// The wave header records end with a placeholder field that overlaps the
// start of the payload. When a wave holds no points the file may stop
// short of that placeholder; a Record constructed with a tail guard pads
// the missing bytes with zeros, retries the unpack, and requires the guard
// field (the point count) to decode to exactly zero.
package record
