package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Errors
var (
	ErrTruncated    = errors.New("record: input shorter than packed size")
	ErrMissingField = errors.New("record: field not set and has no default")
)

// Record is a compiled fixed-layout structure description. Field offsets
// and the packed size are computed once at construction; standard sizes,
// no alignment padding.
type Record struct {
	name      string
	fields    []Field
	offsets   []int
	size      int
	tailGuard string
}

// New compiles a record from an ordered field list.
func New(name string, fields []Field) *Record {
	r := &Record{
		name:    name,
		fields:  fields,
		offsets: make([]int, len(fields)),
	}
	off := 0
	for i, f := range fields {
		r.offsets[i] = off
		off += f.PackedSize()
	}
	r.size = off
	return r
}

// WithTailGuard enables the optional-tail relaxation: if the input is
// shorter than the packed size, the missing tail is zero-filled and the
// unpack retried, provided the named guard field decodes to exactly zero.
func (r *Record) WithTailGuard(field string) *Record {
	r.tailGuard = field
	return r
}

// Name returns the record name.
func (r *Record) Name() string { return r.name }

// Size returns the packed size in bytes.
func (r *Record) Size() int { return r.size }

// Offset returns the byte offset of the named field within the record,
// or -1 if the record has no such field.
func (r *Record) Offset(name string) int {
	for i, f := range r.fields {
		if f.Name == name {
			return r.offsets[i]
		}
	}
	return -1
}

// Unpack decodes the record from buf starting at offset. Scalar fields
// decode to a single typed value, repeated fields to a typed slice.
func (r *Record) Unpack(order binary.ByteOrder, buf []byte, offset int) (map[string]any, error) {
	avail := len(buf) - offset
	if avail < 0 {
		avail = 0
	}
	if avail < r.size {
		if r.tailGuard == "" {
			return nil, fmt.Errorf("%w: %s needs %d bytes, have %d",
				ErrTruncated, r.name, r.size, avail)
		}
		padded := make([]byte, offset+r.size)
		copy(padded, buf)
		values := r.unpack(order, padded, offset)
		if n, _ := AsInt(values[r.tailGuard]); n != 0 {
			return nil, fmt.Errorf("%w: %s is %d bytes short but %s = %d",
				ErrTruncated, r.name, r.size-avail, r.tailGuard, n)
		}
		return values, nil
	}
	return r.unpack(order, buf, offset), nil
}

func (r *Record) unpack(order binary.ByteOrder, buf []byte, offset int) map[string]any {
	values := make(map[string]any, len(r.fields))
	for i, f := range r.fields {
		pos := offset + r.offsets[i]
		if f.Shape == nil {
			values[f.Name] = decodeScalar(f.Kind, order, buf[pos:])
			continue
		}
		if f.Kind == Char && len(f.Shape) == 2 {
			rows := make([][]byte, f.Shape[0])
			w := f.Shape[1]
			for j := range rows {
				rows[j] = append([]byte(nil), buf[pos+j*w:pos+(j+1)*w]...)
			}
			values[f.Name] = rows
			continue
		}
		values[f.Name] = decodeSlice(f.Kind, order, buf[pos:], f.Count())
	}
	return values
}

// Pack encodes the record into a fresh byte slice. Every field must be
// present in values or carry a default.
func (r *Record) Pack(order binary.ByteOrder, values map[string]any) ([]byte, error) {
	buf := make([]byte, r.size)
	for i, f := range r.fields {
		v, ok := values[f.Name]
		if !ok || v == nil {
			v = f.Default
		}
		if v == nil {
			return nil, fmt.Errorf("%w: %s in %s", ErrMissingField, f.Name, r.name)
		}
		dst := buf[r.offsets[i] : r.offsets[i]+f.PackedSize()]
		if err := encodeField(f, order, dst, v); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", r.name, f.Name, err)
		}
	}
	return buf, nil
}

func decodeScalar(k Kind, order binary.ByteOrder, b []byte) any {
	switch k {
	case Char, Uint8:
		return b[0]
	case Int8:
		return int8(b[0])
	case Int16:
		return int16(order.Uint16(b))
	case Uint16:
		return order.Uint16(b)
	case Int32:
		return int32(order.Uint32(b))
	case Uint32:
		return order.Uint32(b)
	case Int64:
		return int64(order.Uint64(b))
	case Uint64:
		return order.Uint64(b)
	case Float32:
		return math.Float32frombits(order.Uint32(b))
	case Float64:
		return math.Float64frombits(order.Uint64(b))
	}
	return nil
}

func decodeSlice(k Kind, order binary.ByteOrder, b []byte, n int) any {
	switch k {
	case Char, Uint8:
		return append([]byte(nil), b[:n]...)
	case Int8:
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(b[i])
		}
		return out
	case Int16:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(order.Uint16(b[2*i:]))
		}
		return out
	case Uint16:
		out := make([]uint16, n)
		for i := range out {
			out[i] = order.Uint16(b[2*i:])
		}
		return out
	case Int32:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(order.Uint32(b[4*i:]))
		}
		return out
	case Uint32:
		out := make([]uint32, n)
		for i := range out {
			out[i] = order.Uint32(b[4*i:])
		}
		return out
	case Int64:
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(order.Uint64(b[8*i:]))
		}
		return out
	case Uint64:
		out := make([]uint64, n)
		for i := range out {
			out[i] = order.Uint64(b[8*i:])
		}
		return out
	case Float32:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(order.Uint32(b[4*i:]))
		}
		return out
	case Float64:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(b[8*i:]))
		}
		return out
	}
	return nil
}

func encodeField(f Field, order binary.ByteOrder, dst []byte, v any) error {
	if f.Shape == nil {
		return encodeScalar(f.Kind, order, dst, v)
	}
	return encodeRepeated(f, order, dst, v)
}

func encodeScalar(k Kind, order binary.ByteOrder, dst []byte, v any) error {
	switch k {
	case Char, Int8, Uint8:
		i, ok := AsInt(v)
		if !ok {
			return fmt.Errorf("cannot encode %T as %s", v, k)
		}
		dst[0] = byte(i)
	case Int16, Uint16:
		i, ok := AsInt(v)
		if !ok {
			return fmt.Errorf("cannot encode %T as %s", v, k)
		}
		order.PutUint16(dst, uint16(i))
	case Int32, Uint32:
		i, ok := AsInt(v)
		if !ok {
			return fmt.Errorf("cannot encode %T as %s", v, k)
		}
		order.PutUint32(dst, uint32(i))
	case Int64, Uint64:
		i, ok := AsInt(v)
		if !ok {
			return fmt.Errorf("cannot encode %T as %s", v, k)
		}
		order.PutUint64(dst, uint64(i))
	case Float32:
		fv, ok := asFloat(v)
		if !ok {
			return fmt.Errorf("cannot encode %T as %s", v, k)
		}
		order.PutUint32(dst, math.Float32bits(float32(fv)))
	case Float64:
		fv, ok := asFloat(v)
		if !ok {
			return fmt.Errorf("cannot encode %T as %s", v, k)
		}
		order.PutUint64(dst, math.Float64bits(fv))
	}
	return nil
}

func encodeRepeated(f Field, order binary.ByteOrder, dst []byte, v any) error {
	count := f.Count()
	es := f.Kind.Size()

	// Char fields accept strings and short byte slices; the remainder is
	// zero-filled, matching on-disk fixed-size C strings.
	switch val := v.(type) {
	case string:
		if f.Kind != Char {
			return fmt.Errorf("cannot encode string as %s", f.Kind)
		}
		if len(val) > count {
			return fmt.Errorf("string of %d bytes exceeds field size %d", len(val), count)
		}
		copy(dst, val)
		return nil
	case []byte:
		if f.Kind != Char && f.Kind != Uint8 {
			return fmt.Errorf("cannot encode []byte as %s", f.Kind)
		}
		if len(val) > count {
			return fmt.Errorf("%d bytes exceed field size %d", len(val), count)
		}
		copy(dst, val)
		return nil
	case [][]byte:
		if f.Kind != Char || len(f.Shape) != 2 {
			return fmt.Errorf("cannot encode [][]byte as %s with shape %v", f.Kind, f.Shape)
		}
		if len(val) > f.Shape[0] {
			return fmt.Errorf("%d rows exceed field shape %v", len(val), f.Shape)
		}
		w := f.Shape[1]
		for j, row := range val {
			if len(row) > w {
				return fmt.Errorf("row of %d bytes exceeds width %d", len(row), w)
			}
			copy(dst[j*w:(j+1)*w], row)
		}
		return nil
	case []int8:
		return encodeIntSlice(f, order, dst, len(val), func(i int) int64 { return int64(val[i]) })
	case []int16:
		return encodeIntSlice(f, order, dst, len(val), func(i int) int64 { return int64(val[i]) })
	case []uint16:
		return encodeIntSlice(f, order, dst, len(val), func(i int) int64 { return int64(val[i]) })
	case []int32:
		return encodeIntSlice(f, order, dst, len(val), func(i int) int64 { return int64(val[i]) })
	case []uint32:
		return encodeIntSlice(f, order, dst, len(val), func(i int) int64 { return int64(val[i]) })
	case []int64:
		return encodeIntSlice(f, order, dst, len(val), func(i int) int64 { return val[i] })
	case []uint64:
		return encodeIntSlice(f, order, dst, len(val), func(i int) int64 { return int64(val[i]) })
	case []int:
		return encodeIntSlice(f, order, dst, len(val), func(i int) int64 { return int64(val[i]) })
	case []float32:
		if f.Kind != Float32 {
			return fmt.Errorf("cannot encode []float32 as %s", f.Kind)
		}
		if len(val) != count {
			return fmt.Errorf("%d values for field of %d elements", len(val), count)
		}
		for i, x := range val {
			order.PutUint32(dst[4*i:], math.Float32bits(x))
		}
		return nil
	case []float64:
		if f.Kind != Float64 {
			return fmt.Errorf("cannot encode []float64 as %s", f.Kind)
		}
		if len(val) != count {
			return fmt.Errorf("%d values for field of %d elements", len(val), count)
		}
		for i, x := range val {
			order.PutUint64(dst[8*i:], math.Float64bits(x))
		}
		return nil
	}

	// Scalar default broadcast to every element.
	if i, ok := AsInt(v); ok {
		for j := 0; j < count; j++ {
			if err := encodeScalar(f.Kind, order, dst[j*es:], i); err != nil {
				return err
			}
		}
		return nil
	}
	if fv, ok := asFloat(v); ok {
		for j := 0; j < count; j++ {
			if err := encodeScalar(f.Kind, order, dst[j*es:], fv); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("cannot encode %T as repeated %s", v, f.Kind)
}

func encodeIntSlice(f Field, order binary.ByteOrder, dst []byte, n int, at func(int) int64) error {
	switch f.Kind {
	case Char, Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64:
	default:
		return fmt.Errorf("cannot encode integer slice as %s", f.Kind)
	}
	if n != f.Count() {
		return fmt.Errorf("%d values for field of %d elements", n, f.Count())
	}
	es := f.Kind.Size()
	for i := 0; i < n; i++ {
		if err := encodeScalar(f.Kind, order, dst[i*es:], at(i)); err != nil {
			return err
		}
	}
	return nil
}

// AsInt converts any integer value produced by Unpack (or accepted by
// Pack) to int64.
func AsInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	if i, ok := AsInt(v); ok {
		return float64(i), true
	}
	return 0, false
}
