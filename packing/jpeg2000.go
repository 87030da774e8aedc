package packing

import (
	"fmt"
	"math"

	"github.com/golang/glog"
)

// JPEG2000Packing represents Data Representation Template 5.40. A full
// JPEG 2000 decoder is out of scope; this implementation treats each data
// byte as an X value directly and applies the GRIB2 scaling formula. The
// result is visually plausible but not quantitatively correct, and a
// warning is logged whenever it is used.
type JPEG2000Packing struct {
	ReferenceValue     float32
	BinaryScaleFactor  int16
	DecimalScaleFactor int16
	BitsPerValue       uint8
	NumberOfDataValues uint32
}

// ParseJPEG2000Packing parses Data Representation Template 5.40. Its body
// layout mirrors Template 5.0.
func ParseJPEG2000Packing(numDataValues uint32, data []byte) (*JPEG2000Packing, error) {
	if len(data) < 10 {
		return nil, fmt.Errorf("template 5.40 requires at least 10 bytes, got %d", len(data))
	}
	simple, err := ParseSimplePacking(numDataValues, data)
	if err != nil {
		return nil, err
	}
	return &JPEG2000Packing{
		ReferenceValue:     simple.ReferenceValue,
		BinaryScaleFactor:  simple.BinaryScaleFactor,
		DecimalScaleFactor: simple.DecimalScaleFactor,
		BitsPerValue:       simple.BitsPerValue,
		NumberOfDataValues: numDataValues,
	}, nil
}

// TemplateNumber returns 40.
func (t *JPEG2000Packing) TemplateNumber() int { return 40 }

// NumDataValues returns the number of data values.
func (t *JPEG2000Packing) NumDataValues() uint32 { return t.NumberOfDataValues }

// Decode never fails: it treats each byte as a raw X value and applies the
// scaling formula, logging a warning that the result is approximate.
func (t *JPEG2000Packing) Decode(packedData []byte) ([]float32, error) {
	glog.Warningf("packing: template 40 (JPEG 2000) approximated as raw bytes, values are not quantitatively correct")

	n := int(t.NumberOfDataValues)
	field := make([]float32, n)
	binaryScale := math.Pow(2, float64(t.BinaryScaleFactor))
	decimalScale := math.Pow(10, -float64(t.DecimalScaleFactor))

	for i := 0; i < n; i++ {
		var x float64
		if i < len(packedData) {
			x = float64(packedData[i])
		}
		y := (float64(t.ReferenceValue) + x*binaryScale) * decimalScale
		field[i] = float32(y)
	}
	return field, nil
}

// String returns a human-readable description.
func (t *JPEG2000Packing) String() string {
	return fmt.Sprintf("Template 5.40: JPEG 2000 (approximated), %d values", t.NumberOfDataValues)
}
