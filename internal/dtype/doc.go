// Package dtype maps Igor's numeric type codes to Go element types and
// materializes raw payload bytes into typed slices.
//
// The code values come from IgorMath.h. Bit 0 (NT_CMPLX) marks a complex
// variant of the base type and bit 6 (NT_UNSIGNED, 0x40) marks unsigned
// integers. The table is reproduced verbatim rather than derived from the
// flag bits so that unsupported combinations are rejected exactly as the
// format defines them. Code 0 is a text wave, which has no numeric
// element type.
//
// Go has no complex integer types, so complex integer codes decode to
// slices of small Re/Im pair structs ([ComplexInt8] through
// [ComplexUint32]). Complex floating codes decode to the builtin
// complex64 and complex128.
package dtype
