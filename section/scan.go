package section

import (
	"fmt"

	"github.com/wxradar/radarcore/internal"
)

// ScanTo forward-scans data (a slice that starts at a section boundary
// after Section 0) looking for the next section whose section number
// equals target. Each
// step reads a section's 4-byte length followed by its 1-byte section
// number; sections that don't match are skipped over without being parsed,
// which is how this decoder passes transparently over Section 2 (local
// use, optional), Section 4 (product definition, out of scope), and
// Section 6 (bitmap, out of scope).
//
// Scanning stops, reporting not found, when the declared section length is
// zero or the section number reaches 8 (the end section, "7777", which
// carries no length/number header of its own) or higher.
func ScanTo(data []byte, target uint8) (body []byte, rest []byte, found bool, err error) {
	offset := 0
	for {
		if offset+4 <= len(data) && string(data[offset:offset+4]) == "7777" {
			return nil, nil, false, nil
		}
		if offset+5 > len(data) {
			return nil, nil, false, fmt.Errorf("section scan: insufficient data at offset %d for section header", offset)
		}

		length, err := internal.ReadUint(data, offset, 4)
		if err != nil {
			return nil, nil, false, err
		}
		secNum := data[offset+4]

		if length == 0 || secNum >= 8 {
			return nil, nil, false, nil
		}

		if offset+int(length) > len(data) {
			return nil, nil, false, fmt.Errorf("section scan: section %d length %d exceeds remaining data (%d bytes at offset %d)",
				secNum, length, len(data)-offset, offset)
		}

		if secNum == target {
			return data[offset : offset+int(length)], data[offset+int(length):], true, nil
		}

		offset += int(length)
	}
}
