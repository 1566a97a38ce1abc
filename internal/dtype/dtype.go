package dtype

// TextWave is the type code of a text wave. Text waves carry no numeric
// elements; their payload is split into strings via the string-index
// table instead.
const TextWave = 0

// Complex integer pair types, one per integer width. The file stores the
// real part first.
type (
	ComplexInt8   struct{ Re, Im int8 }
	ComplexInt16  struct{ Re, Im int16 }
	ComplexInt32  struct{ Re, Im int32 }
	ComplexUint8  struct{ Re, Im uint8 }
	ComplexUint16 struct{ Re, Im uint16 }
	ComplexUint32 struct{ Re, Im uint32 }
)

// Type describes one numeric element type.
type Type struct {
	Code int
	Name string
	// Size is the packed size of one element in bytes; complex types
	// count both halves of the pair.
	Size int
}

// From IgorMath.h. Keys are the wave type codes; 0x40 folded into a code
// marks the unsigned variant, bit 0 the complex variant.
var types = map[int]Type{
	1:    {1, "complex128", 16}, // NT_CMPLX alone: complex with default real width
	2:    {2, "float32", 4},     // NT_FP32
	3:    {3, "complex64", 8},
	4:    {4, "float64", 8}, // NT_FP64
	5:    {5, "complex128", 16},
	8:    {8, "int8", 1}, // NT_I8
	9:    {9, "complexInt8", 2},
	0x10: {0x10, "int16", 2}, // NT_I16
	0x11: {0x11, "complexInt16", 4},
	0x20: {0x20, "int32", 4}, // NT_I32
	0x21: {0x21, "complexInt32", 8},
	0x48: {0x48, "uint8", 1},
	0x49: {0x49, "complexUint8", 2},
	0x50: {0x50, "uint16", 2},
	0x51: {0x51, "complexUint16", 4},
	0x60: {0x60, "uint32", 4},
	0x61: {0x61, "complexUint32", 8},
}

// Lookup returns the element type for a wave type code. Code 0 (text)
// and unknown codes report !ok.
func Lookup(code int) (Type, bool) {
	t, ok := types[code]
	return t, ok
}
