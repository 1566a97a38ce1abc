package ibw

import "fmt"

// splitText partitions a text wave's byte payload into strings using the
// string-index table: one offset per payload byte position, each offset
// greater than the running start closing the string [start, offset).
// Bytes map 1:1 to string bytes; no character decoding is applied.
func splitText(payload, sIndices []byte) ([]string, error) {
	var strs []string
	start := 0
	for i, idx := range sIndices {
		offset := int(idx)
		switch {
		case offset > len(payload):
			return nil, fmt.Errorf("%w: string index %d at position %d exceeds payload size %d",
				ErrFormat, offset, i, len(payload))
		case offset > start:
			strs = append(strs, string(payload[start:offset]))
			start = offset
		case offset != 0:
			return nil, fmt.Errorf("%w: string index %d at position %d behind offset %d",
				ErrFormat, offset, i, start)
		}
	}
	return strs, nil
}
