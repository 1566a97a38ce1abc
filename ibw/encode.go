package ibw

import "io"

// Encode would write wave to w as an Igor binary wave file. The write
// path is intentionally unsupported; the function exists so callers get
// a definite error instead of a missing symbol.
func Encode(w io.Writer, wave *Wave) error {
	_ = w
	_ = wave
	return ErrNotImplemented
}
