package packing

import (
	"fmt"
	"math"

	"github.com/wxradar/radarcore/internal"
)

// SimplePacking represents Data Representation Template 5.0: Simple
// Packing. Data values are linearly scaled and packed as fixed-width
// unsigned integers.
//
// Decoding formula: Y = (R + X * 2^E) * 10^(-D)
type SimplePacking struct {
	ReferenceValue     float32
	BinaryScaleFactor  int16
	DecimalScaleFactor int16
	BitsPerValue       uint8
	OriginalFieldType  uint8
	NumberOfDataValues uint32
}

// ParseSimplePacking parses Data Representation Template 5.0 (10 bytes).
func ParseSimplePacking(numDataValues uint32, data []byte) (*SimplePacking, error) {
	if len(data) < 10 {
		return nil, fmt.Errorf("template 5.0 requires at least 10 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)
	referenceValue, _ := r.Float32()
	binaryScaleFactor, _ := r.Int16()
	decimalScaleFactor, _ := r.Int16()
	bitsPerValue, _ := r.Uint8()
	originalFieldType, _ := r.Uint8()

	return &SimplePacking{
		ReferenceValue:     referenceValue,
		BinaryScaleFactor:  binaryScaleFactor,
		DecimalScaleFactor: decimalScaleFactor,
		BitsPerValue:       bitsPerValue,
		OriginalFieldType:  originalFieldType,
		NumberOfDataValues: numDataValues,
	}, nil
}

// TemplateNumber returns 0.
func (t *SimplePacking) TemplateNumber() int { return 0 }

// NumDataValues returns the number of data values.
func (t *SimplePacking) NumDataValues() uint32 { return t.NumberOfDataValues }

// Decode unpacks packed bit fields per the simple-packing formula.
func (t *SimplePacking) Decode(packedData []byte) ([]float32, error) {
	n := int(t.NumberOfDataValues)
	field := make([]float32, n)

	if t.BitsPerValue == 0 {
		r := t.applyScaling(0)
		for i := range field {
			field[i] = r
		}
		return field, nil
	}

	br := internal.NewBitReader(packedData)
	for i := 0; i < n; i++ {
		x, err := br.ReadBits(int(t.BitsPerValue))
		if err != nil {
			return nil, fmt.Errorf("simple packing: value %d: %w", i, err)
		}
		field[i] = t.applyScaling(x)
	}
	return field, nil
}

// applyScaling computes Y = (R + X * 2^E) * 10^(-D).
func (t *SimplePacking) applyScaling(x uint32) float32 {
	y := float64(t.ReferenceValue) + float64(x)*math.Pow(2, float64(t.BinaryScaleFactor))
	y *= math.Pow(10, -float64(t.DecimalScaleFactor))
	return float32(y)
}

// String returns a human-readable description.
func (t *SimplePacking) String() string {
	return fmt.Sprintf("Template 5.0: Simple Packing, %d values, %d bits/value, R=%g, E=%d, D=%d",
		t.NumberOfDataValues, t.BitsPerValue, t.ReferenceValue, t.BinaryScaleFactor, t.DecimalScaleFactor)
}
