package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestHeaderSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
		got  int
	}{
		{"BinHeaderCommon", 2, BinHeaderCommon.Size()},
		{"BinHeader1", 8, BinHeader1.Size()},
		{"BinHeader2", 16, BinHeader2.Size()},
		{"BinHeader3", 18, BinHeader3.Size()},
		{"BinHeader5", 64, BinHeader5.Size()},
		{"WaveHeader2", 126, WaveHeader2.Size()},
		{"WaveHeader5", 324, WaveHeader5.Size()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.size {
				t.Errorf("packed size = %d, expected %d", tt.got, tt.size)
			}
		})
	}
}

func TestChecksumWindows(t *testing.T) {
	windows := map[int]int{1: 134, 2: 142, 3: 144, 5: 384}
	for version, expected := range windows {
		spec, err := Lookup(version)
		if err != nil {
			t.Fatalf("Lookup(%d) failed: %v", version, err)
		}
		if spec.ChecksumWindow != expected {
			t.Errorf("version %d checksum window = %d, expected %d",
				version, spec.ChecksumWindow, expected)
		}
	}
}

func TestLookupTails(t *testing.T) {
	for _, version := range []int{1, 2, 3} {
		spec, err := Lookup(version)
		if err != nil {
			t.Fatalf("Lookup(%d) failed: %v", version, err)
		}
		if spec.Tail != 16 {
			t.Errorf("version %d tail = %d, expected 16", version, spec.Tail)
		}
		if spec.Wave != WaveHeader2 {
			t.Errorf("version %d should use WaveHeader2", version)
		}
	}
	spec, err := Lookup(5)
	if err != nil {
		t.Fatalf("Lookup(5) failed: %v", err)
	}
	if spec.Tail != 4 {
		t.Errorf("version 5 tail = %d, expected 4", spec.Tail)
	}
	if spec.Wave != WaveHeader5 {
		t.Error("version 5 should use WaveHeader5")
	}
}

func TestLookupUnknownVersion(t *testing.T) {
	for _, version := range []int{0, 4, 6, 7, -1, 256} {
		_, err := Lookup(version)
		if !errors.Is(err, ErrUnknownVersion) {
			t.Errorf("Lookup(%d) = %v, expected ErrUnknownVersion", version, err)
		}
	}
}

func TestVersions(t *testing.T) {
	for _, v := range Versions() {
		if _, err := Lookup(v); err != nil {
			t.Errorf("Versions() lists %d but Lookup rejects it: %v", v, err)
		}
	}
}

func TestNeedToReorderBytes(t *testing.T) {
	tests := []struct {
		raw      uint16
		expected bool
	}{
		{1, false},
		{2, false},
		{3, false},
		{5, false},
		{0x0100, true},
		{0x0200, true},
		{0x0500, true},
	}
	for _, tt := range tests {
		if got := NeedToReorderBytes(tt.raw); got != tt.expected {
			t.Errorf("NeedToReorderBytes(%#04x) = %v, expected %v", tt.raw, got, tt.expected)
		}
	}
}

func TestResolveOrder(t *testing.T) {
	native := NativeOrder()
	if got := ResolveOrder(false); got != native {
		t.Errorf("ResolveOrder(false) = %v, expected native %v", got, native)
	}
	swapped := ResolveOrder(true)
	if swapped == native {
		t.Error("ResolveOrder(true) should differ from native order")
	}
	// Both orders must agree with the version self-detection rule: a
	// version written in the swapped order has a zero low byte when read
	// natively.
	var b [2]byte
	swapped.PutUint16(b[:], 5)
	if !NeedToReorderBytes(native.Uint16(b[:])) {
		t.Error("swapped version field should trigger the reorder rule")
	}
	native.PutUint16(b[:], 5)
	if NeedToReorderBytes(native.Uint16(b[:])) {
		t.Error("native version field should not trigger the reorder rule")
	}
}

func TestBinHeader5FieldOffsets(t *testing.T) {
	// The checksum immediately follows the version in version 5 files,
	// unlike versions 1-3 where it is last.
	if off := BinHeader5.Offset("checksum"); off != 2 {
		t.Errorf("BinHeader5 checksum offset = %d, expected 2", off)
	}
	if off := BinHeader1.Offset("checksum"); off != 6 {
		t.Errorf("BinHeader1 checksum offset = %d, expected 6", off)
	}
	if off := WaveHeader5.Offset("wData"); off != WaveHeader5.Size()-4 {
		t.Errorf("WaveHeader5 wData offset = %d, expected %d", off, WaveHeader5.Size()-4)
	}
	if off := WaveHeader2.Offset("wData"); off != WaveHeader2.Size()-16 {
		t.Errorf("WaveHeader2 wData offset = %d, expected %d", off, WaveHeader2.Size()-16)
	}
}

func TestWindowStopsBeforeWData5(t *testing.T) {
	spec, err := Lookup(5)
	if err != nil {
		t.Fatal(err)
	}
	wDataStart := spec.Bin.Size() + spec.Wave.Offset("wData")
	if spec.ChecksumWindow != wDataStart {
		t.Errorf("version 5 window = %d, expected to end at wData (%d)",
			spec.ChecksumWindow, wDataStart)
	}
}

func TestUnpackBinHeader5(t *testing.T) {
	values := map[string]any{
		"version":        5,
		"checksum":       0,
		"wfmSize":        344,
		"formulaSize":    0,
		"noteSize":       11,
		"dataEUnitsSize": 0,
		"dimEUnitsSize":  []int32{0, 0, 0, 0},
		"dimLabelsSize":  []int32{0, 0, 0, 0},
		"sIndicesSize":   0,
	}
	buf, err := BinHeader5.Pack(binary.LittleEndian, values)
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	got, err := BinHeader5.Unpack(binary.LittleEndian, buf, 0)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if got["wfmSize"] != int32(344) || got["noteSize"] != int32(11) {
		t.Errorf("unexpected sizes: wfmSize=%v noteSize=%v", got["wfmSize"], got["noteSize"])
	}
	if got["optionsSize1"] != int32(0) {
		t.Errorf("optionsSize1 default = %v, expected 0", got["optionsSize1"])
	}
}
