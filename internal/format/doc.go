// Package format holds the static layout knowledge of the Igor binary
// wave format: the exact header record for each of the four historical
// file versions, the version registry that pairs a bin header with its
// wave header and checksum window, the byte-order self-detection rule,
// and the 16-bit rolling header checksum.
//
// The field tables reproduce WaveMetrics Technical Note 003 structures
// with standard sizes and no alignment padding. Fields that only have
// meaning in Igor's memory image (handles, pointers) are stored on disk
// as 4-byte integers and are declared that way here.
package format
