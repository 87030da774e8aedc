package color

import (
	"image/color"
	"math"
	"testing"
)

func TestMapAtEveryStopExactly(t *testing.T) {
	for _, s := range Stops {
		got := Map(s.DBZ)
		if got != s.Color {
			t.Errorf("Map(%v) = %v, want exact stop color %v", s.DBZ, got, s.Color)
		}
	}
}

func TestMapInterpolatesBetweenStops(t *testing.T) {
	// Midpoint between 25 (0,200,0,250) and 30 (0,144,0,255).
	got := Map(27.5)
	want := color.RGBA{0, 172, 0, 253} // (200+144)/2=172, (250+255)/2=252.5->253
	if got != want {
		t.Errorf("Map(27.5) = %v, want %v", got, want)
	}
}

func TestMapMissingSentinel(t *testing.T) {
	if got := Map(-999); got != (color.RGBA{0, 0, 0, 0}) {
		t.Errorf("Map(-999) = %v, want transparent", got)
	}
	if got := Map(-901); got != (color.RGBA{0, 0, 0, 0}) {
		t.Errorf("Map(-901) = %v, want transparent", got)
	}
	if got := Map(math.NaN()); got != (color.RGBA{0, 0, 0, 0}) {
		t.Errorf("Map(NaN) = %v, want transparent", got)
	}
}

func TestMapClampsBelowAndAboveRange(t *testing.T) {
	if got := Map(-40); got != Stops[0].Color {
		t.Errorf("Map(-40) = %v, want first stop color", got)
	}
	if got := Map(100); got != Stops[len(Stops)-1].Color {
		t.Errorf("Map(100) = %v, want last stop color", got)
	}
}

func TestMapE2RunLengthRegionIsTransparent(t *testing.T) {
	// -1 dBZ sits between the -30 and 0 stops, both fully transparent,
	// so any value in that span must interpolate to transparent too.
	if got := Map(-1); got != (color.RGBA{0, 0, 0, 0}) {
		t.Errorf("Map(-1) = %v, want transparent", got)
	}
}

func TestMapMonotoneContinuity(t *testing.T) {
	// Property 3: every dBZ in [-30, 75] decomposes into a piecewise
	// linear interpolation; adjacent samples should never jump more than
	// the largest single-stop delta.
	prev := Map(-30)
	for dbz := -29.5; dbz <= 75; dbz += 0.5 {
		cur := Map(dbz)
		maxDelta := 255
		if absInt(int(cur.R)-int(prev.R)) > maxDelta ||
			absInt(int(cur.G)-int(prev.G)) > maxDelta ||
			absInt(int(cur.B)-int(prev.B)) > maxDelta ||
			absInt(int(cur.A)-int(prev.A)) > maxDelta {
			t.Fatalf("discontinuity at dBZ=%v: %v -> %v", dbz, prev, cur)
		}
		prev = cur
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
