package format

import "encoding/binary"

// NeedToReorderBytes reports whether the file was written on a platform
// with the opposite byte order. For every valid version number the low
// byte is non-zero in the writer's order, so a zero low byte in the raw
// version field means the bytes are swapped relative to this machine.
func NeedToReorderBytes(rawVersion uint16) bool {
	return rawVersion&0xFF == 0
}

// NativeOrder returns the byte order of this machine.
func NativeOrder() binary.ByteOrder {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	if b[0] == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ResolveOrder returns the byte order of the file given the reorder
// decision from the raw version field.
func ResolveOrder(needToReorder bool) binary.ByteOrder {
	native := NativeOrder()
	if !needToReorder {
		return native
	}
	if native == binary.ByteOrder(binary.LittleEndian) {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
