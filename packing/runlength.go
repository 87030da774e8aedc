package packing

// RunLengthPacking represents Data Representation Template 5.200: the MRMS
// run-length encoding used by RALA and other Multi-Radar Multi-Sensor
// products. The Section 7 data buffer is a stream of (value_byte,
// count_byte) pairs; each pair expands to count copies of a decoded dBZ
// value.
//
// dBZ = -999 when value_byte == 0, otherwise value_byte*0.5 - 33. This
// formula is carried over from the MRMS reference decoder without further
// documentation of its derivation.
type RunLengthPacking struct {
	NumberOfDataValues uint32
}

// ParseRunLengthPacking parses Data Representation Template 5.200. The
// template body carries no fields this decoder needs; decoding is driven
// entirely by the (value, count) pairs in Section 7.
func ParseRunLengthPacking(numDataValues uint32, _ []byte) (*RunLengthPacking, error) {
	return &RunLengthPacking{NumberOfDataValues: numDataValues}, nil
}

// TemplateNumber returns 200.
func (t *RunLengthPacking) TemplateNumber() int { return 200 }

// NumDataValues returns the number of data values.
func (t *RunLengthPacking) NumDataValues() uint32 { return t.NumberOfDataValues }

// Decode expands the (value_byte, count_byte) pairs into a dense field.
// Decoding stops once the field is full or the buffer is exhausted,
// whichever comes first; a short buffer simply leaves the remainder at the
// zero value rather than erroring, matching the source decoder's leniency.
func (t *RunLengthPacking) Decode(packedData []byte) ([]float32, error) {
	field := make([]float32, t.NumberOfDataValues)

	idx := 0
	for i := 0; i+1 < len(packedData) && idx < len(field); i += 2 {
		valueByte := packedData[i]
		count := int(packedData[i+1])

		var dbz float32
		if valueByte == 0 {
			dbz = Missing
		} else {
			dbz = float32(valueByte)*0.5 - 33
		}

		for c := 0; c < count && idx < len(field); c++ {
			field[idx] = dbz
			idx++
		}
	}

	return field, nil
}

// String returns a human-readable description.
func (t *RunLengthPacking) String() string {
	return "Template 5.200: MRMS run-length packing"
}
