package section

import (
	"math"
	"testing"
)

func makeSection5Template50Data(numDataValues uint32, refValue float32, binaryScale, decimalScale int16, bitsPerValue uint8) []byte {
	// Section 5 with Template 5.0 (Simple Packing): 11 (header) + 10 (template) = 21 bytes.
	data := make([]byte, 21)

	data[0] = 0x00
	data[1] = 0x00
	data[2] = 0x00
	data[3] = 0x15 // 21 in hex

	data[4] = 5 // section number

	data[5] = byte(numDataValues >> 24)
	data[6] = byte(numDataValues >> 16)
	data[7] = byte(numDataValues >> 8)
	data[8] = byte(numDataValues)

	data[9] = 0x00
	data[10] = 0x00 // template number 0 (simple packing)

	refBits := math.Float32bits(refValue)
	data[11] = byte(refBits >> 24)
	data[12] = byte(refBits >> 16)
	data[13] = byte(refBits >> 8)
	data[14] = byte(refBits)

	var bsBytes uint16
	if binaryScale < 0 {
		bsBytes = 0x8000 | uint16(-binaryScale)
	} else {
		bsBytes = uint16(binaryScale)
	}
	data[15] = byte(bsBytes >> 8)
	data[16] = byte(bsBytes)

	var dsBytes uint16
	if decimalScale < 0 {
		dsBytes = 0x8000 | uint16(-decimalScale)
	} else {
		dsBytes = uint16(decimalScale)
	}
	data[17] = byte(dsBytes >> 8)
	data[18] = byte(dsBytes)

	data[19] = bitsPerValue
	data[20] = 0 // type of original field values

	return data
}

func TestParseSection5Template50(t *testing.T) {
	data := makeSection5Template50Data(100, 250.0, 0, 0, 12)

	sec5, err := ParseSection5(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sec5.Length != 21 {
		t.Errorf("Length: got %d, want 21", sec5.Length)
	}
	if sec5.NumDataValues != 100 {
		t.Errorf("NumDataValues: got %d, want 100", sec5.NumDataValues)
	}
	if sec5.DataRepresentationTemplate != 0 {
		t.Errorf("DataRepresentationTemplate: got %d, want 0", sec5.DataRepresentationTemplate)
	}
	if sec5.Representation == nil {
		t.Fatal("Representation should not be nil")
	}
	if sec5.Representation.TemplateNumber() != 0 {
		t.Errorf("Representation.TemplateNumber() = %d, want 0", sec5.Representation.TemplateNumber())
	}
	if sec5.Representation.NumDataValues() != 100 {
		t.Errorf("Representation.NumDataValues() = %d, want 100", sec5.Representation.NumDataValues())
	}
}

func TestParseSection5TooShort(t *testing.T) {
	data := make([]byte, 5)
	if _, err := ParseSection5(data); err == nil {
		t.Fatal("expected error for too short section, got nil")
	}
}

func TestParseSection5WrongSectionNumber(t *testing.T) {
	data := makeSection5Template50Data(100, 250.0, 0, 0, 12)
	data[4] = 6 // change to section 6
	if _, err := ParseSection5(data); err == nil {
		t.Fatal("expected error for wrong section number, got nil")
	}
}

func TestParseSection5UnsupportedTemplate(t *testing.T) {
	data := makeSection5Template50Data(100, 250.0, 0, 0, 12)
	data[9] = 0x03
	data[10] = 0xE7
	if _, err := ParseSection5(data); err == nil {
		t.Fatal("expected error for unsupported template, got nil")
	}
}

func TestParseSection5Template200RunLength(t *testing.T) {
	data := make([]byte, 11)
	data[3] = 11
	data[4] = 5

	numValues := uint32(4)
	data[5] = byte(numValues >> 24)
	data[6] = byte(numValues >> 16)
	data[7] = byte(numValues >> 8)
	data[8] = byte(numValues)

	data[9] = byte(200 >> 8)
	data[10] = byte(200)

	sec5, err := ParseSection5(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sec5.DataRepresentationTemplate != 200 {
		t.Errorf("DataRepresentationTemplate = %d, want 200", sec5.DataRepresentationTemplate)
	}
	if sec5.Representation.TemplateNumber() != 200 {
		t.Errorf("Representation.TemplateNumber() = %d, want 200", sec5.Representation.TemplateNumber())
	}

	// (The worked arithmetic for this fixture treats 64 as the value byte;
	// 0x40, not 0x80, is the byte that reproduces dBZ = 64*0.5-33 = -1.)
	field, err := sec5.Representation.Decode([]byte{0x40, 0x04})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, v := range field {
		if math.Abs(float64(v)-(-1.0)) > 1e-6 {
			t.Errorf("field[%d] = %v, want -1.0", i, v)
		}
	}
}

func TestTemplate50Decode(t *testing.T) {
	tests := []struct {
		name           string
		refValue       float32
		binaryScale    int16
		decimalScale   int16
		bitsPerValue   uint8
		packedValues   []uint32
		expectedValues []float64
	}{
		{
			name:           "No scaling",
			refValue:       100.0,
			binaryScale:    0,
			decimalScale:   0,
			bitsPerValue:   8,
			packedValues:   []uint32{0, 1, 2, 10, 255},
			expectedValues: []float64{100.0, 101.0, 102.0, 110.0, 355.0},
		},
		{
			name:           "Binary scaling only",
			refValue:       0.0,
			binaryScale:    -2, // divide by 4
			decimalScale:   0,
			bitsPerValue:   8,
			packedValues:   []uint32{0, 4, 8, 16},
			expectedValues: []float64{0.0, 1.0, 2.0, 4.0},
		},
		{
			name:           "Decimal scaling only",
			refValue:       1000.0,
			binaryScale:    0,
			decimalScale:   1, // divide by 10
			bitsPerValue:   8,
			packedValues:   []uint32{0, 10, 20},
			expectedValues: []float64{100.0, 101.0, 102.0},
		},
		{
			name:           "Both scaling factors",
			refValue:       500.0,
			binaryScale:    -1, // divide by 2
			decimalScale:   1,  // divide by 10
			bitsPerValue:   8,
			packedValues:   []uint32{0, 2, 4, 6},
			expectedValues: []float64{50.0, 50.1, 50.2, 50.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := makeSection5Template50Data(uint32(len(tt.packedValues)),
				tt.refValue, tt.binaryScale, tt.decimalScale, tt.bitsPerValue)

			sec5, err := ParseSection5(data)
			if err != nil {
				t.Fatalf("ParseSection5 failed: %v", err)
			}

			packedData := packValues(tt.packedValues, int(tt.bitsPerValue))

			values, err := sec5.Representation.Decode(packedData)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if len(values) != len(tt.expectedValues) {
				t.Fatalf("got %d values, want %d", len(values), len(tt.expectedValues))
			}

			for i, expected := range tt.expectedValues {
				if math.Abs(float64(values[i])-expected) > 0.001 {
					t.Errorf("value[%d]: got %g, want %g", i, values[i], expected)
				}
			}
		})
	}
}

func TestTemplate50DecodeZeroBitsPerValue(t *testing.T) {
	data := makeSection5Template50Data(5, 273.15, 0, 0, 0)

	sec5, err := ParseSection5(data)
	if err != nil {
		t.Fatalf("ParseSection5 failed: %v", err)
	}

	values, err := sec5.Representation.Decode([]byte{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(values) != 5 {
		t.Fatalf("got %d values, want 5", len(values))
	}

	for i, val := range values {
		if math.Abs(float64(val)-273.15) > 0.001 {
			t.Errorf("value[%d]: got %g, want 273.15", i, val)
		}
	}
}

// packValues packs values into bytes at the specified bit width, MSB first.
func packValues(values []uint32, bitsPerValue int) []byte {
	if bitsPerValue == 0 {
		return []byte{}
	}

	totalBits := len(values) * bitsPerValue
	numBytes := (totalBits + 7) / 8
	data := make([]byte, numBytes)

	bitOffset := 0
	for _, value := range values {
		for bit := bitsPerValue - 1; bit >= 0; bit-- {
			if (value & (1 << uint(bit))) != 0 {
				byteIdx := bitOffset / 8
				bitIdx := 7 - (bitOffset % 8)
				data[byteIdx] |= 1 << uint(bitIdx)
			}
			bitOffset++
		}
	}

	return data
}
