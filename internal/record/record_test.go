package record

import (
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestKindSizes(t *testing.T) {
	tests := []struct {
		kind Kind
		size int
	}{
		{Char, 1},
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
		{Uint16, 2},
		{Int32, 4},
		{Uint32, 4},
		{Int64, 8},
		{Uint64, 8},
		{Float32, 4},
		{Float64, 8},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Size(); got != tt.size {
				t.Errorf("Size() = %d, expected %d", got, tt.size)
			}
		})
	}
}

func TestOffsetsAndSize(t *testing.T) {
	r := New("thing", []Field{
		{Kind: Int16, Name: "version"},
		{Kind: Int32, Name: "size", Shape: []int{3}},
		{Kind: Float64, Name: "scale"},
	})

	if got := r.Size(); got != 2+12+8 {
		t.Errorf("Size() = %d, expected 22", got)
	}
	offsets := map[string]int{"version": 0, "size": 2, "scale": 14}
	for name, expected := range offsets {
		if got := r.Offset(name); got != expected {
			t.Errorf("Offset(%q) = %d, expected %d", name, got, expected)
		}
	}
	if got := r.Offset("missing"); got != -1 {
		t.Errorf("Offset of unknown field = %d, expected -1", got)
	}
}

// roundTripRecord covers every kind, scalar and repeated, including
// boundary values for each integer width.
func roundTripRecord() (*Record, map[string]any) {
	r := New("everything", []Field{
		{Kind: Char, Name: "c"},
		{Kind: Int8, Name: "i8"},
		{Kind: Uint8, Name: "u8"},
		{Kind: Int16, Name: "i16"},
		{Kind: Uint16, Name: "u16"},
		{Kind: Int32, Name: "i32"},
		{Kind: Uint32, Name: "u32"},
		{Kind: Int64, Name: "i64"},
		{Kind: Uint64, Name: "u64"},
		{Kind: Float32, Name: "f32"},
		{Kind: Float64, Name: "f64"},
		{Kind: Char, Name: "name", Shape: []int{8}},
		{Kind: Int16, Name: "pair", Shape: []int{2}},
		{Kind: Float64, Name: "coefs", Shape: []int{3}},
	})
	values := map[string]any{
		"c":     byte(0x41),
		"i8":    int8(math.MinInt8),
		"u8":    byte(math.MaxUint8),
		"i16":   int16(math.MinInt16),
		"u16":   uint16(math.MaxUint16),
		"i32":   int32(math.MinInt32),
		"u32":   uint32(math.MaxUint32),
		"i64":   int64(math.MinInt64),
		"u64":   uint64(math.MaxUint64),
		"f32":   float32(1.5),
		"f64":   -2.25,
		"name":  []byte{'w', 'a', 'v', 'e', '0', 0, 0, 0},
		"pair":  []int16{math.MaxInt16, -1},
		"coefs": []float64{0.5, -0.5, 1e300},
	}
	return r, values
}

func TestPackUnpackRoundTrip(t *testing.T) {
	orders := map[string]binary.ByteOrder{
		"little": binary.LittleEndian,
		"big":    binary.BigEndian,
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			r, values := roundTripRecord()
			buf, err := r.Pack(order, values)
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			if len(buf) != r.Size() {
				t.Fatalf("packed %d bytes, expected %d", len(buf), r.Size())
			}
			got, err := r.Unpack(order, buf, 0)
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if !reflect.DeepEqual(got, values) {
				t.Errorf("round trip mismatch:\ngot:      %v\nexpected: %v", got, values)
			}
		})
	}
}

func TestPackByteLayout(t *testing.T) {
	r := New("pair", []Field{
		{Kind: Int16, Name: "a"},
		{Kind: Int32, Name: "b"},
	})
	values := map[string]any{"a": 0x0102, "b": 0x03040506}

	le, err := r.Pack(binary.LittleEndian, values)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if expected := []byte{0x02, 0x01, 0x06, 0x05, 0x04, 0x03}; !reflect.DeepEqual(le, expected) {
		t.Errorf("little-endian layout = % x, expected % x", le, expected)
	}

	be, err := r.Pack(binary.BigEndian, values)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if expected := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}; !reflect.DeepEqual(be, expected) {
		t.Errorf("big-endian layout = % x, expected % x", be, expected)
	}
}

func TestPackStringAndDefaults(t *testing.T) {
	r := New("named", []Field{
		{Kind: Char, Name: "bname", Shape: []int{6}},
		{Kind: Int32, Name: "reserved", Default: 0},
		{Kind: Int16, Name: "whVersion", Default: 1},
	})
	buf, err := r.Pack(binary.LittleEndian, map[string]any{"bname": "ab"})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	expected := []byte{'a', 'b', 0, 0, 0, 0, 0, 0, 0, 0, 1, 0}
	if !reflect.DeepEqual(buf, expected) {
		t.Errorf("packed % x, expected % x", buf, expected)
	}
}

func TestPackMissingField(t *testing.T) {
	r := New("strict", []Field{
		{Kind: Int16, Name: "version"},
		{Kind: Int32, Name: "size"},
	})
	_, err := r.Pack(binary.LittleEndian, map[string]any{"version": 1})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "size") || !strings.Contains(err.Error(), "strict") {
		t.Errorf("error should name field and record: %v", err)
	}
}

func TestPackScalarBroadcast(t *testing.T) {
	r := New("padded", []Field{
		{Kind: Int32, Name: "unused", Shape: []int{4}, Default: 0},
	})
	buf, err := r.Pack(binary.LittleEndian, nil)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if len(buf) != 16 {
		t.Fatalf("packed %d bytes, expected 16", len(buf))
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %#x, expected 0", i, b)
		}
	}
}

func TestUnpack2DCharField(t *testing.T) {
	r := New("units", []Field{
		{Kind: Char, Name: "dimUnits", Shape: []int{2, 3}},
	})
	buf, err := r.Pack(binary.LittleEndian, map[string]any{
		"dimUnits": [][]byte{[]byte("ms"), []byte("V")},
	})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	got, err := r.Unpack(binary.LittleEndian, buf, 0)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	expected := [][]byte{{'m', 's', 0}, {'V', 0, 0}}
	if !reflect.DeepEqual(got["dimUnits"], expected) {
		t.Errorf("dimUnits = %q, expected %q", got["dimUnits"], expected)
	}
}

func TestUnpackAtOffset(t *testing.T) {
	r := New("inner", []Field{{Kind: Uint16, Name: "v"}})
	buf := []byte{0xFF, 0xFF, 0x34, 0x12}
	got, err := r.Unpack(binary.LittleEndian, buf, 2)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if got["v"] != uint16(0x1234) {
		t.Errorf("v = %v, expected 0x1234", got["v"])
	}
}

func TestUnpackTruncated(t *testing.T) {
	r := New("header", []Field{
		{Kind: Int16, Name: "version"},
		{Kind: Int32, Name: "size"},
	})
	_, err := r.Unpack(binary.LittleEndian, []byte{1, 0, 2}, 0)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestTailGuardZeroPointCount(t *testing.T) {
	r := New("waveish", []Field{
		{Kind: Int32, Name: "npnts"},
		{Kind: Float32, Name: "wData", Shape: []int{4}},
	}).WithTailGuard("npnts")

	// Input stops before wData; npnts is zero, so the missing tail is
	// zero-filled.
	got, err := r.Unpack(binary.LittleEndian, []byte{0, 0, 0, 0}, 0)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !reflect.DeepEqual(got["wData"], []float32{0, 0, 0, 0}) {
		t.Errorf("wData = %v, expected zeros", got["wData"])
	}
}

func TestTailGuardNonZeroPointCount(t *testing.T) {
	r := New("waveish", []Field{
		{Kind: Int32, Name: "npnts"},
		{Kind: Float32, Name: "wData", Shape: []int{4}},
	}).WithTailGuard("npnts")

	_, err := r.Unpack(binary.LittleEndian, []byte{7, 0, 0, 0}, 0)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated for non-zero guard, got %v", err)
	}
	if !strings.Contains(err.Error(), "npnts") {
		t.Errorf("error should name the guard field: %v", err)
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		in       any
		expected int64
		ok       bool
	}{
		{int8(-5), -5, true},
		{uint8(200), 200, true},
		{int16(-30000), -30000, true},
		{uint32(4000000000), 4000000000, true},
		{int(42), 42, true},
		{"nope", 0, false},
		{1.5, 0, false},
	}
	for _, tt := range tests {
		got, ok := AsInt(tt.in)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("AsInt(%v) = (%d, %v), expected (%d, %v)", tt.in, got, ok, tt.expected, tt.ok)
		}
	}
}
