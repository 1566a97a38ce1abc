package format

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-ibw/internal/record"
)

// ErrUnknownVersion is returned when the version field does not name a
// supported file revision.
var ErrUnknownVersion = errors.New("unknown Igor binary wave version")

// Spec pairs the header records of one file version with its checksum
// window.
type Spec struct {
	Version int
	Bin     *record.Record
	Wave    *record.Record

	// ChecksumWindow is the number of header bytes covered by the
	// rolling checksum: bin header plus wave header, except that
	// version 5 excludes its 4-byte wData placeholder.
	ChecksumWindow int

	// Tail is the packed size of the wave header's wData placeholder,
	// which overlaps the start of the payload.
	Tail int
}

// HeaderSize returns the combined packed size of both headers.
func (s Spec) HeaderSize() int {
	return s.Bin.Size() + s.Wave.Size()
}

var versions = map[int]Spec{
	1: {Version: 1, Bin: BinHeader1, Wave: WaveHeader2, ChecksumWindow: BinHeader1.Size() + WaveHeader2.Size(), Tail: 16},
	2: {Version: 2, Bin: BinHeader2, Wave: WaveHeader2, ChecksumWindow: BinHeader2.Size() + WaveHeader2.Size(), Tail: 16},
	3: {Version: 3, Bin: BinHeader3, Wave: WaveHeader2, ChecksumWindow: BinHeader3.Size() + WaveHeader2.Size(), Tail: 16},
	5: {Version: 5, Bin: BinHeader5, Wave: WaveHeader5, ChecksumWindow: BinHeader5.Size() + WaveHeader5.Size() - 4, Tail: 4},
}

// Lookup maps a decoded version number to its header pair.
func Lookup(version int) (Spec, error) {
	s, ok := versions[version]
	if !ok {
		return Spec{}, fmt.Errorf("%w: version field = %d", ErrUnknownVersion, version)
	}
	return s, nil
}

// Versions returns the supported version numbers in ascending order.
func Versions() []int {
	return []int{1, 2, 3, 5}
}
