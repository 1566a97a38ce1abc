package record

// Kind identifies the primitive type of a field.
type Kind uint8

const (
	// Char is a raw byte. Scalar Char fields decode to a byte; repeated
	// Char fields decode to []byte (or [][]byte for two-dimensional
	// shapes) so that fixed-size C strings stay addressable as bytes.
	Char Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
)

// Size returns the packed size in bytes of a single element.
func (k Kind) Size() int {
	switch k {
	case Char, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case Char:
		return "char"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "unknown"
}

// Field is one named primitive within a record.
type Field struct {
	Kind Kind
	Name string

	// Shape is the repeat shape. nil means scalar. The element count is
	// the product of the entries.
	Shape []int

	// Default is used by Pack when no value is supplied for the field.
	// A scalar default on a repeated field is broadcast to every element.
	Default any
}

// Count returns the number of elements in the field.
func (f Field) Count() int {
	n := 1
	for _, d := range f.Shape {
		n *= d
	}
	return n
}

// PackedSize returns the packed size of the field in bytes.
func (f Field) PackedSize() int {
	return f.Count() * f.Kind.Size()
}
