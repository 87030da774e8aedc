package packing

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodeGrayPNG(t *testing.T, values []uint8, width, height int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i, v := range values {
		img.Pix[i] = v
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestPNGEmbeddedPackingE6(t *testing.T) {
	// E6 fixture: 2x1 grayscale PNG with pixels [100, 200], R=0, E=0, D=0.
	pngBytes := encodeGrayPNG(t, []uint8{100, 200}, 2, 1)

	tmpl, err := ParsePNGEmbeddedPacking(2, buildTemplate50(0, 0, 0, 8, 0))
	if err != nil {
		t.Fatal(err)
	}
	field, err := tmpl.Decode(pngBytes)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{100, 200}
	for i := range want {
		if field[i] != want[i] {
			t.Errorf("field[%d] = %v, want %v", i, field[i], want[i])
		}
	}
}

func TestPNGEmbeddedPackingMissingRules(t *testing.T) {
	// X == 0 must map to the sentinel regardless of R/E/D.
	pngBytes := encodeGrayPNG(t, []uint8{0, 1}, 2, 1)
	tmpl, err := ParsePNGEmbeddedPacking(2, buildTemplate50(0, 0, 0, 8, 0))
	if err != nil {
		t.Fatal(err)
	}
	field, err := tmpl.Decode(pngBytes)
	if err != nil {
		t.Fatal(err)
	}
	if field[0] != Missing {
		t.Errorf("field[0] = %v, want sentinel for X==0", field[0])
	}
}

func TestPNGEmbeddedPackingFallbackOnDecodeFailure(t *testing.T) {
	tmpl, err := ParsePNGEmbeddedPacking(2, buildTemplate50(0, 0, 0, 8, 0))
	if err != nil {
		t.Fatal(err)
	}
	garbage := append([]byte{0, 1, 2, 3, 4, 5, 6, 7}, []byte{5, 10}...)
	field, err := tmpl.Decode(garbage)
	if err != nil {
		t.Fatalf("Decode() on malformed PNG should fall back, not error: %v", err)
	}
	if len(field) != 2 {
		t.Fatalf("len(field) = %d, want 2", len(field))
	}
	if field[0] != 5 || field[1] != 10 {
		t.Errorf("fallback field = %v, want [5, 10]", field)
	}
}
