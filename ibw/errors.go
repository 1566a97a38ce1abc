package ibw

import "errors"

// Common errors
var (
	// ErrFormat reports an unparsable document: unrecognized version,
	// checksum failure, a payload size that contradicts the declared
	// point count, or a corrupt string-index table. Wrapped messages
	// carry the offending raw value.
	ErrFormat = errors.New("not a valid Igor binary wave file")

	// ErrPadding reports non-zero post-data padding in a version 2 or 3
	// file. Only returned in strict mode; lenient mode logs instead.
	ErrPadding = errors.New("post-data padding not zero")

	// ErrNotImplemented is returned by Encode: the write path of the
	// format is intentionally unsupported.
	ErrNotImplemented = errors.New("igor binary wave encoding is not implemented")
)
