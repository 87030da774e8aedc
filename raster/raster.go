// Package raster reorients a decoded dBZ field according to its GRIB2
// scanning mode and renders it to a PNG image via the color scale.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/wxradar/radarcore/color"
	"github.com/wxradar/radarcore/internal"
)

// pixelPool reuses the RGBA pixel buffer across Render calls. It is the
// pipeline's largest per-call allocation besides the decoded field itself.
var pixelPool = internal.NewByteBufferPool()

// Render reorients field (in GRIB2 scan order) into a north-up, west-left
// RGBA image of the given width and height, maps every cell through the
// color scale, and PNG-encodes the result.
//
// Orientation bits of scanningMode (Table 3.4):
//   - 0x80 clear: points scan west to east (i increases east); set: east
//     to west.
//   - 0x40 clear: points scan north to south (j increases south); set:
//     south to north.
func Render(field []float32, width, height int, scanningMode uint8) ([]byte, error) {
	if len(field) != width*height {
		return nil, fmt.Errorf("raster: field has %d values, want %d (%dx%d)", len(field), width*height, width, height)
	}

	pix := pixelPool.Get(4 * width * height)
	defer pixelPool.Put(pix)
	img := &image.RGBA{Pix: pix, Stride: 4 * width, Rect: image.Rect(0, 0, width, height)}

	westToEast := scanningMode&0x80 == 0
	northToSouth := scanningMode&0x40 == 0

	for j := 0; j < height; j++ {
		srcY := j
		if !northToSouth {
			srcY = height - 1 - j
		}
		for i := 0; i < width; i++ {
			srcX := i
			if !westToEast {
				srcX = width - 1 - i
			}
			srcIndex := srcY*width + srcX
			rgba := color.Map(float64(field[srcIndex]))
			img.SetRGBA(i, j, rgba)
		}
	}

	var buf bytes.Buffer
	// png.DefaultCompression corresponds to zlib/flate level 6.
	enc := &png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("raster: png encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Reorient applies the same scan-mode reorientation as Render but returns
// the raw dBZ field in north-up, west-left row-major order without
// rendering to color. Exposed for round-trip tests and for callers that
// need the numeric field alongside the image.
func Reorient(field []float32, width, height int, scanningMode uint8) ([]float32, error) {
	if len(field) != width*height {
		return nil, fmt.Errorf("raster: field has %d values, want %d (%dx%d)", len(field), width*height, width, height)
	}

	out := make([]float32, len(field))
	westToEast := scanningMode&0x80 == 0
	northToSouth := scanningMode&0x40 == 0

	for j := 0; j < height; j++ {
		srcY := j
		if !northToSouth {
			srcY = height - 1 - j
		}
		for i := 0; i < width; i++ {
			srcX := i
			if !westToEast {
				srcX = width - 1 - i
			}
			out[j*width+i] = field[srcY*width+srcX]
		}
	}
	return out, nil
}
