package ibw

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/robert-malhotra/go-ibw/internal/dtype"
)

// Wave is a fully decoded Igor binary wave.
type Wave struct {
	// Version is the file format revision (1, 2, 3 or 5).
	Version int

	// ByteOrder is the resolved byte order of the file.
	ByteOrder binary.ByteOrder

	// Type is the wave type code; 0 marks a text wave.
	Type int

	// Shape holds 1 to 4 dimension extents. Data is flat in column-major
	// order: the first dimension varies fastest.
	Shape []int

	// Data is a flat typed slice ([]float32, []float64, []int16,
	// []complex64, []dtype.ComplexInt16, ...) or []string for text waves.
	Data any

	// BinInfo holds the raw bin header fields plus the decoded trailing
	// sections ("note", "formula", "dataEUnits", "dimEUnits",
	// "dimLabels", "sIndices") for the versions that define them.
	BinInfo map[string]any

	// WaveInfo holds the raw wave header fields.
	WaveInfo map[string]any
}

// Igor timestamps count seconds since 1904-01-01T00:00:00 UTC.
const igorEpochOffset = 2082844800

// Name returns the wave name.
func (w *Wave) Name() string {
	b, _ := w.WaveInfo["bname"].([]byte)
	return cString(b)
}

// NPnts returns the total number of points.
func (w *Wave) NPnts() int {
	n, _ := w.WaveInfo["npnts"].(int32)
	return int(n)
}

// Rank returns the number of dimensions.
func (w *Wave) Rank() int { return len(w.Shape) }

// IsText reports whether the wave is a text wave.
func (w *Wave) IsText() bool { return w.Type == dtype.TextWave }

// Strings returns the string data of a text wave, or nil for numeric
// waves.
func (w *Wave) Strings() []string {
	s, _ := w.Data.([]string)
	return s
}

// Note returns the wave note, or "" if the file carries none.
func (w *Wave) Note() string { return stringField(w.BinInfo, "note") }

// Formula returns the dependency formula, or "" if the wave has none.
func (w *Wave) Formula() string { return stringField(w.BinInfo, "formula") }

// DataUnits returns the units of the data values. Version 5 files may
// carry units longer than the 3-byte header field in the extended data
// units section, which takes precedence.
func (w *Wave) DataUnits() string {
	if eu := stringField(w.BinInfo, "dataEUnits"); eu != "" {
		return eu
	}
	b, _ := w.WaveInfo["dataUnits"].([]byte)
	return cString(b)
}

// DimUnits returns the units of the given dimension. For version 1-3
// files only dimension 0 (the X axis) has units.
func (w *Wave) DimUnits(dim int) string {
	if w.Version == 5 {
		if eus, ok := w.BinInfo["dimEUnits"].([]string); ok && dim < len(eus) && eus[dim] != "" {
			return eus[dim]
		}
		if rows, ok := w.WaveInfo["dimUnits"].([][]byte); ok && dim < len(rows) {
			return cString(rows[dim])
		}
		return ""
	}
	if dim == 0 {
		b, _ := w.WaveInfo["xUnits"].([]byte)
		return cString(b)
	}
	return ""
}

// DimLabels returns the labels of the given dimension (version 5 only).
func (w *Wave) DimLabels(dim int) []string {
	labels, ok := w.BinInfo["dimLabels"].([][]string)
	if !ok || dim >= len(labels) {
		return nil
	}
	return labels[dim]
}

// Scale returns the axis scaling of the given dimension: the index value
// of element e is delta*e + offset.
func (w *Wave) Scale(dim int) (delta, offset float64) {
	if w.Version == 5 {
		sfA, _ := w.WaveInfo["sfA"].([]float64)
		sfB, _ := w.WaveInfo["sfB"].([]float64)
		if dim < len(sfA) {
			return sfA[dim], sfB[dim]
		}
		return 0, 0
	}
	if dim != 0 {
		return 0, 0
	}
	delta, _ = w.WaveInfo["hsA"].(float64)
	offset, _ = w.WaveInfo["hsB"].(float64)
	return delta, offset
}

// FullScale returns the stored full-scale bounds and whether they are
// meaningful. The values are returned exactly as stored; the format
// documentation is self-contradictory about which bound is which, so no
// min/max reinterpretation is applied.
func (w *Wave) FullScale() (top, bot float64, valid bool) {
	fsValid, _ := w.WaveInfo["fsValid"].(int16)
	top, _ = w.WaveInfo["topFullScale"].(float64)
	bot, _ = w.WaveInfo["botFullScale"].(float64)
	return top, bot, fsValid != 0
}

// Created returns the creation timestamp. Version 1 files do not record
// one; the zero value of the field maps to the 1904 epoch.
func (w *Wave) Created() time.Time { return w.igorTime("creationDate") }

// Modified returns the last-modification timestamp.
func (w *Wave) Modified() time.Time { return w.igorTime("modDate") }

func (w *Wave) igorTime(field string) time.Time {
	secs, _ := w.WaveInfo[field].(uint32)
	return time.Unix(int64(secs)-igorEpochOffset, 0).UTC()
}

// Floats converts the data of a real-valued numeric wave to []float64.
// Text and complex waves are rejected.
func (w *Wave) Floats() ([]float64, error) {
	switch d := w.Data.(type) {
	case []float64:
		out := make([]float64, len(d))
		copy(out, d)
		return out, nil
	case []float32:
		return floatSlice(d, func(v float32) float64 { return float64(v) }), nil
	case []int8:
		return floatSlice(d, func(v int8) float64 { return float64(v) }), nil
	case []uint8:
		return floatSlice(d, func(v uint8) float64 { return float64(v) }), nil
	case []int16:
		return floatSlice(d, func(v int16) float64 { return float64(v) }), nil
	case []uint16:
		return floatSlice(d, func(v uint16) float64 { return float64(v) }), nil
	case []int32:
		return floatSlice(d, func(v int32) float64 { return float64(v) }), nil
	case []uint32:
		return floatSlice(d, func(v uint32) float64 { return float64(v) }), nil
	}
	return nil, fmt.Errorf("wave data of type %T has no real float representation", w.Data)
}

func floatSlice[T any](in []T, conv func(T) float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = conv(v)
	}
	return out
}

func stringField(m map[string]any, name string) string {
	s, _ := m[name].(string)
	return s
}

// cString returns the bytes before the first null as a string.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
