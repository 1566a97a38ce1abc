package format

import "encoding/binary"

// Checksum computes the rolling header checksum over the first nbytes of
// buf: every 2-byte window is reinterpreted as a signed 16-bit integer in
// the given order and summed (a trailing odd byte is ignored).
//
// The writer stores a checksum field such that the sum over the whole
// window is zero, and computed the sum with native C int arithmetic. Its
// overflow behavior is reproduced exactly: if the running total exceeds
// 2^31 it is reduced modulo 2^32 and, if still above 2^31, decremented by
// 2^31. The result is the low 16 bits of the total. File compatibility
// depends on these exact constants; do not substitute a generic 16-bit
// checksum.
func Checksum(buf []byte, order binary.ByteOrder, oldcksum int64, nbytes int) int64 {
	if nbytes > len(buf) {
		nbytes = len(buf)
	}
	sum := oldcksum
	for i := 0; i+1 < nbytes; i += 2 {
		sum += int64(int16(order.Uint16(buf[i:])))
	}
	if sum > 1<<31 {
		sum %= 1 << 32
		if sum > 1<<31 {
			sum -= 1 << 31
		}
	}
	return sum & 0xFFFF
}
