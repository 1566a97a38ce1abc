package ibw

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// decodeSections consumes the version-specific byte ranges that follow
// the payload. The sections are strictly ordered and each length comes
// from an already-decoded bin header field, so they must be read in file
// order. Decoded sections are added to binInfo under their upstream
// field names; absent sections decode to "".
func decodeSections(r io.Reader, version int, binInfo map[string]any, isText bool, o *decodeOptions) error {
	switch version {
	case 1:
		// No post-data information.
		return nil

	case 2, 3:
		if err := consumePadding(r, o); err != nil {
			return err
		}
		note, err := readTrimmed(r, intField(binInfo, "noteSize"), "note")
		if err != nil {
			return err
		}
		binInfo["note"] = note
		if version == 3 {
			// The dependency formula is stored with no trailing null.
			formula, err := readTrimmed(r, intField(binInfo, "formulaSize"), "formula")
			if err != nil {
				return err
			}
			binInfo["formula"] = formula
		}
		return nil

	case 5:
		formula, err := readTrimmed(r, intField(binInfo, "formulaSize"), "formula")
		if err != nil {
			return err
		}
		binInfo["formula"] = formula

		note, err := readTrimmed(r, intField(binInfo, "noteSize"), "note")
		if err != nil {
			return err
		}
		binInfo["note"] = note

		dataEUnits, err := readTrimmed(r, intField(binInfo, "dataEUnitsSize"), "extended data units")
		if err != nil {
			return err
		}
		binInfo["dataEUnits"] = dataEUnits

		dimSizes := binInfo["dimEUnitsSize"].([]int32)
		dimEUnits := make([]string, len(dimSizes))
		for i, size := range dimSizes {
			s, err := readTrimmed(r, int64(size), "extended dimension units")
			if err != nil {
				return err
			}
			dimEUnits[i] = s
		}
		binInfo["dimEUnits"] = dimEUnits

		labelSizes := binInfo["dimLabelsSize"].([]int32)
		dimLabels := make([][]string, len(labelSizes))
		for i, size := range labelSizes {
			raw, err := readSection(r, int64(size), "dimension labels")
			if err != nil {
				return err
			}
			dimLabels[i] = splitLabels(raw)
		}
		binInfo["dimLabels"] = dimLabels

		if isText {
			sIndices, err := readSection(r, intField(binInfo, "sIndicesSize"), "string indices")
			if err != nil {
				return err
			}
			binInfo["sIndices"] = sIndices
		}
		return nil
	}
	return nil
}

// consumePadding reads the 16 padding bytes between payload and note of
// version 2 and 3 files. They must be all zero; lenient mode reports a
// warning and keeps going.
func consumePadding(r io.Reader, o *decodeOptions) error {
	pad, err := readSection(r, 16, "padding")
	if err != nil {
		return err
	}
	for _, b := range pad {
		if b == 0 {
			continue
		}
		if o.strict {
			return fmt.Errorf("%w: % x", ErrPadding, pad)
		}
		o.logger.Warn("post-data padding not zero",
			zap.String("bytes", fmt.Sprintf("% x", pad)))
		break
	}
	return nil
}

func readSection(r io.Reader, size int64, what string) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading %s (%d bytes): %v", ErrFormat, what, size, err)
	}
	return buf, nil
}

func readTrimmed(r io.Reader, size int64, what string) (string, error) {
	buf, err := readSection(r, size, what)
	if err != nil {
		return "", err
	}
	return trimText(buf), nil
}

// trimText strips surrounding whitespace and control bytes from a text
// section.
func trimText(b []byte) string {
	return strings.TrimFunc(string(b), func(r rune) bool {
		return r <= ' ' || r == 0x7f
	})
}

// splitLabels splits a dimension-label set on its null delimiters,
// dropping empty entries.
func splitLabels(raw []byte) []string {
	var labels []string
	for _, part := range strings.Split(string(raw), "\x00") {
		if len(part) > 0 {
			labels = append(labels, part)
		}
	}
	return labels
}
