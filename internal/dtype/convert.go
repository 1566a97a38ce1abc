package dtype

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decode materializes n elements of the given type code from raw payload
// bytes in the given order, returning a flat typed slice. Element order
// in data is the file's column-major (first-dimension-fastest) layout;
// the returned slice preserves it.
func Decode(code int, order binary.ByteOrder, data []byte, n int) (any, error) {
	t, ok := Lookup(code)
	if !ok {
		return nil, fmt.Errorf("unsupported wave type code 0x%x", code)
	}
	if len(data) < n*t.Size {
		return nil, fmt.Errorf("%s payload needs %d bytes, have %d", t.Name, n*t.Size, len(data))
	}

	switch code {
	case 2:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(data[4*i:]))
		}
		return out, nil
	case 4:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(data[8*i:]))
		}
		return out, nil
	case 3:
		out := make([]complex64, n)
		for i := range out {
			re := math.Float32frombits(order.Uint32(data[8*i:]))
			im := math.Float32frombits(order.Uint32(data[8*i+4:]))
			out[i] = complex(re, im)
		}
		return out, nil
	case 1, 5:
		out := make([]complex128, n)
		for i := range out {
			re := math.Float64frombits(order.Uint64(data[16*i:]))
			im := math.Float64frombits(order.Uint64(data[16*i+8:]))
			out[i] = complex(re, im)
		}
		return out, nil
	case 8:
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(data[i])
		}
		return out, nil
	case 0x48:
		out := make([]uint8, n)
		copy(out, data[:n])
		return out, nil
	case 0x10:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(order.Uint16(data[2*i:]))
		}
		return out, nil
	case 0x50:
		out := make([]uint16, n)
		for i := range out {
			out[i] = order.Uint16(data[2*i:])
		}
		return out, nil
	case 0x20:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(order.Uint32(data[4*i:]))
		}
		return out, nil
	case 0x60:
		out := make([]uint32, n)
		for i := range out {
			out[i] = order.Uint32(data[4*i:])
		}
		return out, nil
	case 9:
		out := make([]ComplexInt8, n)
		for i := range out {
			out[i] = ComplexInt8{Re: int8(data[2*i]), Im: int8(data[2*i+1])}
		}
		return out, nil
	case 0x49:
		out := make([]ComplexUint8, n)
		for i := range out {
			out[i] = ComplexUint8{Re: data[2*i], Im: data[2*i+1]}
		}
		return out, nil
	case 0x11:
		out := make([]ComplexInt16, n)
		for i := range out {
			out[i] = ComplexInt16{
				Re: int16(order.Uint16(data[4*i:])),
				Im: int16(order.Uint16(data[4*i+2:])),
			}
		}
		return out, nil
	case 0x51:
		out := make([]ComplexUint16, n)
		for i := range out {
			out[i] = ComplexUint16{
				Re: order.Uint16(data[4*i:]),
				Im: order.Uint16(data[4*i+2:]),
			}
		}
		return out, nil
	case 0x21:
		out := make([]ComplexInt32, n)
		for i := range out {
			out[i] = ComplexInt32{
				Re: int32(order.Uint32(data[8*i:])),
				Im: int32(order.Uint32(data[8*i+4:])),
			}
		}
		return out, nil
	case 0x61:
		out := make([]ComplexUint32, n)
		for i := range out {
			out[i] = ComplexUint32{
				Re: order.Uint32(data[8*i:]),
				Im: order.Uint32(data[8*i+4:]),
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported wave type code 0x%x", code)
}
