package radarcore

import (
	"errors"

	"github.com/wxradar/radarcore/section"
)

// Message represents a single parsed GRIB2 message: the subset of sections
// needed to decompress and render one MRMS RALA reflectivity field.
type Message struct {
	// Section0 contains the indicator section with discipline and message length
	Section0 *section.Section0

	// Section1 contains identification information (center, reference time, etc.)
	Section1 *section.Section1

	// Section2 contains local use data (optional, may be nil)
	Section2 *section.Section2

	// Section3 contains the grid definition
	Section3 *section.Section3

	// Section5 contains the data representation template
	Section5 *section.Section5

	// Section7 contains the packed data
	Section7 *section.Section7

	// RawData is the original message bytes.
	RawData []byte
}

// ParseMessage parses a complete GRIB2 message from raw bytes.
//
// The input must contain a single complete GRIB2 message starting with
// "GRIB" and ending with "7777". This decoder walks sections 0, 1, an
// optional 2, 3, 5, and 7, skipping Section 4 (product definition) and
// Section 6 (bitmap) transparently via a forward scan, since neither is
// needed to unpack an MRMS reflectivity field.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < 16 {
		return nil, wrapInvalidFormat(0, "message too short for Section 0", nil)
	}
	if data[0] != 'G' || data[1] != 'R' || data[2] != 'I' || data[3] != 'B' {
		return nil, wrapInvalidFormat(0, "expected \"GRIB\" magic number", nil)
	}
	if len(data) < 4 || string(data[len(data)-4:]) != "7777" {
		return nil, wrapInvalidFormat(len(data)-4, "expected \"7777\" end marker", nil)
	}

	sec0, err := section.ParseSection0(data[0:16])
	if err != nil {
		return nil, wrapInvalidFormat(0, "failed to parse Section 0", err)
	}
	if sec0.Edition != 2 {
		return nil, &UnsupportedEditionError{Edition: sec0.Edition}
	}
	if uint64(len(data)) != sec0.MessageLength {
		return nil, wrapInvalidFormat(0, "Section 0 message length does not match data length", nil)
	}

	msg := &Message{Section0: sec0, RawData: data}
	offset := 16

	sec1Body, rest, found, err := section.ScanTo(data[offset:], 1)
	if err != nil {
		return nil, wrapInvalidFormat(offset, "failed to scan for Section 1", err)
	}
	if !found {
		return nil, &MissingSectionError{Section: 1}
	}
	sec1, err := section.ParseSection1(sec1Body)
	if err != nil {
		return nil, wrapInvalidFormat(offset, "failed to parse Section 1", err)
	}
	msg.Section1 = sec1
	offset = len(data) - len(rest)

	// Section 2 is optional local-use data; peek without consuming the
	// scan if it's absent.
	if offset+5 <= len(data) && data[offset+4] == 2 {
		sec2Body, rest2, found2, err := section.ScanTo(data[offset:], 2)
		if err != nil {
			return nil, wrapInvalidFormat(offset, "failed to scan for Section 2", err)
		}
		if found2 {
			sec2, err := section.ParseSection2(sec2Body)
			if err != nil {
				return nil, wrapInvalidFormat(offset, "failed to parse Section 2", err)
			}
			msg.Section2 = sec2
			offset = len(data) - len(rest2)
		}
	}

	sec3Body, rest, found, err := section.ScanTo(data[offset:], 3)
	if err != nil {
		return nil, wrapInvalidFormat(offset, "failed to scan for Section 3", err)
	}
	if !found {
		return nil, &MissingSectionError{Section: 3}
	}
	sec3, err := section.ParseSection3(sec3Body)
	if err != nil {
		if errors.Is(err, section.ErrUnsupportedGridTemplate) {
			templateNumber := 0
			if len(sec3Body) >= 14 {
				templateNumber = int(sec3Body[12])<<8 | int(sec3Body[13])
			}
			return nil, wrapUnsupportedGridTemplate(templateNumber, err)
		}
		return nil, wrapInvalidFormat(offset, "failed to parse Section 3", err)
	}
	msg.Section3 = sec3
	offset = len(data) - len(rest)

	sec5Body, rest, found, err := section.ScanTo(data[offset:], 5)
	if err != nil {
		return nil, wrapInvalidFormat(offset, "failed to scan for Section 5", err)
	}
	if !found {
		return nil, &MissingSectionError{Section: 5}
	}
	sec5, err := section.ParseSection5(sec5Body)
	if err != nil {
		if errors.Is(err, section.ErrUnsupportedPackingTemplate) {
			templateNumber := 0
			if len(sec5Body) >= 11 {
				templateNumber = int(sec5Body[9])<<8 | int(sec5Body[10])
			}
			return nil, wrapUnsupportedPacking(templateNumber, err)
		}
		return nil, wrapInvalidFormat(offset, "failed to parse Section 5", err)
	}
	msg.Section5 = sec5
	offset = len(data) - len(rest)

	sec7Body, _, found, err := section.ScanTo(data[offset:], 7)
	if err != nil {
		return nil, wrapInvalidFormat(offset, "failed to scan for Section 7", err)
	}
	if !found {
		return nil, &MissingSectionError{Section: 7}
	}
	sec7, err := section.ParseSection7(sec7Body)
	if err != nil {
		return nil, wrapInvalidFormat(offset, "failed to parse Section 7", err)
	}
	msg.Section7 = sec7

	return msg, nil
}

// DecodeData unpacks this message's reflectivity field into dBZ values, in
// grid scan order. Missing cells carry the packing.Missing sentinel.
func (m *Message) DecodeData() ([]float32, error) {
	if m.Section5 == nil || m.Section5.Representation == nil {
		return nil, &MissingSectionError{Section: 5}
	}
	if m.Section7 == nil {
		return nil, &MissingSectionError{Section: 7}
	}
	values, err := m.Section5.Representation.Decode(m.Section7.Data)
	if err != nil {
		// Section 7 is the last section before the "7777" end marker.
		offset := len(m.RawData) - 4 - int(m.Section7.Length)
		return nil, wrapInvalidFormat(offset, "failed to decode Section 7 data", err)
	}
	return values, nil
}

// String returns a human-readable summary of the message.
func (m *Message) String() string {
	if m.Section0 == nil {
		return "Invalid GRIB2 message"
	}

	discipline := "Unknown"
	if m.Section0 != nil {
		discipline = m.Section0.DisciplineName()
	}

	grid := "Unknown"
	if m.Section3 != nil && m.Section3.Grid != nil {
		grid = m.Section3.Grid.String()
	}

	return "GRIB2 Message: Discipline=" + discipline + ", Grid=" + grid
}
