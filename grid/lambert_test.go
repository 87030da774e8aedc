package grid

import "testing"

func buildTemplate30(nx, ny uint32, la1, lo1 int32, scanMode uint8) []byte {
	buf := make([]byte, 51)
	putU32 := func(off int, v uint32) {
		buf[off] = byte(v >> 24)
		buf[off+1] = byte(v >> 16)
		buf[off+2] = byte(v >> 8)
		buf[off+3] = byte(v)
	}
	putI32 := func(off int, v int32) {
		if v < 0 {
			putU32(off, uint32(-v)|0x80000000)
		} else {
			putU32(off, uint32(v))
		}
	}
	putU32(16, nx)
	putU32(20, ny)
	putI32(24, la1)
	putI32(28, lo1)
	buf[50] = scanMode
	return buf
}

func TestParseLambertConformalGridFixedBounds(t *testing.T) {
	data := buildTemplate30(10, 10, 38_000_000, -97_000_000, 0)
	g, err := ParseLambertConformalGrid(data)
	if err != nil {
		t.Fatal(err)
	}
	b := g.Bounds()
	if b != (Bounds{North: 55.0, South: 20.0, East: -60.0, West: -130.0}) {
		t.Errorf("Bounds() = %+v, want fixed CONUS box regardless of header", b)
	}
	if g.NumPoints() != 100 {
		t.Errorf("NumPoints() = %d, want 100", g.NumPoints())
	}
}

func TestParseLambertConformalGridTooShort(t *testing.T) {
	if _, err := ParseLambertConformalGrid(make([]byte, 5)); err == nil {
		t.Error("expected error for truncated template")
	}
}
