// Package ibw reads Igor Binary Wave (.ibw) files.
//
// An Igor binary wave is a single named, typed, dimensioned array plus
// metadata: axis scaling, units, timestamps, a free-text note, an
// optional dependency formula and, in version 5 files, dimension labels
// and extended unit strings. Four incompatible header revisions exist
// (versions 1, 2, 3 and 5); all are supported. The byte order of a file
// is self-describing and files from either platform decode identically.
//
// # Reading
//
//	wave, err := ibw.Open("scan.ibw")
//	if err != nil {
//		...
//	}
//	fmt.Println(wave.Name(), wave.Shape)
//	data := wave.Data.([]float64) // flat, column-major
//
// Decoding is all-or-nothing: on any error no partial wave is returned.
// Numeric data is materialized as a flat typed slice in the file's
// column-major (first-dimension-fastest) element order; text waves
// decode to []string.
//
// Non-zero padding between the payload and the note of version 2 and 3
// files is a hard error by default. [WithLenient] downgrades it to a
// warning on the logger configured with [WithLogger].
//
// Writing .ibw files is not supported; [Encode] always returns
// [ErrNotImplemented].
package ibw
