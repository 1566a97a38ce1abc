package ibw

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/robert-malhotra/go-ibw/internal/dtype"
	"github.com/robert-malhotra/go-ibw/internal/format"
	"github.com/robert-malhotra/go-ibw/internal/record"
)

// Open reads and decodes a single .ibw file.
func Open(path string, opts ...Option) (*Wave, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	w, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// DecodeBytes decodes a complete in-memory .ibw document.
func DecodeBytes(b []byte, opts ...Option) (*Wave, error) {
	return Decode(bytes.NewReader(b), opts...)
}

// Decode reads one Igor binary wave from r, which must be positioned at
// the start of the file. The whole document is consumed in one
// sequential pass.
func Decode(r io.Reader, opts ...Option) (*Wave, error) {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(o)
	}

	// The version field's own byte order is unknown until decoded: read
	// it in native order first and let the zero-low-byte rule decide.
	common := make([]byte, format.BinHeaderCommon.Size())
	if _, err := io.ReadFull(r, common); err != nil {
		return nil, fmt.Errorf("%w: reading version field: %v", ErrFormat, err)
	}
	rawVersion := format.NativeOrder().Uint16(common)
	order := format.ResolveOrder(format.NeedToReorderBytes(rawVersion))
	version := int(int16(order.Uint16(common)))

	spec, err := format.Lookup(version)
	if err != nil {
		return nil, fmt.Errorf("%w: version field = %d", ErrFormat, version)
	}

	// Read the remaining header bytes. A version 5 file holding an empty
	// wave may stop short of the wave header's wData placeholder; the
	// record engine handles that, so tolerate a short read here.
	headerSize := spec.HeaderSize()
	header := make([]byte, headerSize)
	copy(header, common)
	n, err := io.ReadFull(r, header[len(common):])
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		header = header[:len(common)+n]
	default:
		return nil, fmt.Errorf("reading headers: %w", err)
	}

	if len(header) < spec.ChecksumWindow {
		return nil, fmt.Errorf("%w: %d header bytes, checksum window is %d",
			ErrFormat, len(header), spec.ChecksumWindow)
	}
	if c := format.Checksum(header, order, 0, spec.ChecksumWindow); c != 0 {
		return nil, fmt.Errorf("%w: error in checksum, should be 0, is %d", ErrFormat, c)
	}

	binInfo, err := spec.Bin.Unpack(order, header, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: bin header: %v", ErrFormat, err)
	}
	waveInfo, err := spec.Wave.Unpack(order, header, spec.Bin.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: wave header: %v", ErrFormat, err)
	}

	wfmSize := intField(binInfo, "wfmSize")
	typeCode := int(intField(waveInfo, "type"))
	npnts := int(intField(waveInfo, "npnts"))

	// wfmSize counts the wave header without its wData placeholder plus
	// the payload, so the payload length falls out directly.
	var waveDataSize int
	if version == 5 {
		waveDataSize = int(wfmSize) - (spec.Wave.Size() - spec.Tail)
	} else {
		waveDataSize = int(wfmSize) - spec.Wave.Size()
	}

	var shape []int
	if version == 5 {
		shape = leadingShape(waveInfo["nDim"].([]int32))
	} else {
		shape = []int{npnts}
	}

	isText := typeCode == dtype.TextWave
	var elem dtype.Type
	if isText {
		if version != 5 {
			return nil, fmt.Errorf("%w: text wave in a version %d file", ErrFormat, version)
		}
		if waveDataSize < 0 {
			return nil, fmt.Errorf("%w: wfmSize = %d", ErrFormat, wfmSize)
		}
	} else {
		var ok bool
		elem, ok = dtype.Lookup(typeCode)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported wave type code 0x%x", ErrFormat, typeCode)
		}
		if waveDataSize != npnts*elem.Size {
			return nil, fmt.Errorf("%w: payload is %d bytes, %d points of %s need %d",
				ErrFormat, waveDataSize, npnts, elem.Name, npnts*elem.Size)
		}
	}

	// The first Tail payload bytes overlap the end of the header buffer.
	// An empty wave has no payload and nothing more is read for it.
	var payload []byte
	if npnts != 0 {
		payload = make([]byte, waveDataSize)
		overlap := spec.Tail
		if overlap > waveDataSize {
			overlap = waveDataSize
		}
		copy(payload[:overlap], header[headerSize-spec.Tail:])
		if waveDataSize > spec.Tail {
			if _, err := io.ReadFull(r, payload[spec.Tail:]); err != nil {
				return nil, fmt.Errorf("%w: reading %d payload bytes: %v",
					ErrFormat, waveDataSize-spec.Tail, err)
			}
		}
	}

	var data any
	if !isText {
		data, err = dtype.Decode(typeCode, order, payload, npnts)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
	}

	if err := decodeSections(r, version, binInfo, isText, o); err != nil {
		return nil, err
	}

	if isText {
		sIndices, _ := binInfo["sIndices"].([]byte)
		strs, err := splitText(payload, sIndices)
		if err != nil {
			return nil, err
		}
		data = strs
	}

	return &Wave{
		Version:   version,
		ByteOrder: order,
		Type:      typeCode,
		Shape:     shape,
		Data:      data,
		BinInfo:   binInfo,
		WaveInfo:  waveInfo,
	}, nil
}

// leadingShape keeps the leading run of positive dimension extents; a
// zero extent ends the dimension list. A wave with no positive extents
// has shape (0,).
func leadingShape(nDim []int32) []int {
	var shape []int
	for _, n := range nDim {
		if n <= 0 {
			break
		}
		shape = append(shape, int(n))
	}
	if len(shape) == 0 {
		return []int{0}
	}
	return shape
}

func intField(m map[string]any, name string) int64 {
	v, _ := record.AsInt(m[name])
	return v
}
