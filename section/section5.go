package section

import (
	"fmt"

	"github.com/wxradar/radarcore/internal"
	"github.com/wxradar/radarcore/packing"
)

// Section5 represents the GRIB2 Data Representation Section (Section 5).
//
// This section describes how the data values are packed/compressed,
// including the packing method, number of bits per value, and scaling
// parameters.
type Section5 struct {
	Length                     uint32               // Total length of this section in bytes
	NumDataValues              uint32               // Number of data values
	DataRepresentationTemplate uint16               // Data representation template number (Table 5.0)
	Representation             packing.Representation // Parsed representation (template-specific)
}

// ParseSection5 parses the GRIB2 Data Representation Section (Section 5).
//
// Section 5 structure (variable length, minimum 11 bytes + template):
//
//	Bytes 1-4:   Length of section (uint32)
//	Byte 5:      Section number (must be 5)
//	Bytes 6-9:   Number of data values (uint32)
//	Bytes 10-11: Data representation template number (Table 5.0)
//	Bytes 12-n:  Data representation (template-specific)
//
// Supported templates:
//   - 0:   Simple packing
//   - 40:  JPEG 2000 (approximated)
//   - 41:  PNG-embedded
//   - 200: MRMS run-length packing
//
// Returns an error if:
//   - The section is too short
//   - The section number is not 5
//   - The template number is not supported
func ParseSection5(sectionData []byte) (*Section5, error) {
	if len(sectionData) < 11 {
		return nil, fmt.Errorf("section 5 must be at least 11 bytes, got %d", len(sectionData))
	}

	r := internal.NewReader(sectionData)

	length, _ := r.Uint32()
	if int(length) != len(sectionData) {
		return nil, fmt.Errorf("section 5 length mismatch: header says %d bytes, have %d bytes", length, len(sectionData))
	}

	sectionNum, _ := r.Uint8()
	if sectionNum != 5 {
		return nil, fmt.Errorf("expected section 5, got section %d", sectionNum)
	}

	numDataValues, _ := r.Uint32()
	dataRepresentationTemplateNumber, _ := r.Uint16()

	templateData, _ := r.Bytes(r.Remaining())

	var parsedRepresentation packing.Representation
	var err error

	switch dataRepresentationTemplateNumber {
	case 0:
		parsedRepresentation, err = packing.ParseSimplePacking(numDataValues, templateData)
	case 40:
		parsedRepresentation, err = packing.ParseJPEG2000Packing(numDataValues, templateData)
	case 41:
		parsedRepresentation, err = packing.ParsePNGEmbeddedPacking(numDataValues, templateData)
	case 200:
		parsedRepresentation, err = packing.ParseRunLengthPacking(numDataValues, templateData)
	default:
		return nil, fmt.Errorf("data representation template %d: %w", dataRepresentationTemplateNumber, ErrUnsupportedPackingTemplate)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse data representation template 5.%d: %w", dataRepresentationTemplateNumber, err)
	}

	return &Section5{
		Length:                     length,
		NumDataValues:              numDataValues,
		DataRepresentationTemplate: dataRepresentationTemplateNumber,
		Representation:             parsedRepresentation,
	}, nil
}

// RepresentationDescription returns a human-readable description of the data representation.
func (s *Section5) RepresentationDescription() string {
	if s.Representation != nil {
		return s.Representation.String()
	}
	return fmt.Sprintf("Unknown data representation template %d", s.DataRepresentationTemplate)
}
