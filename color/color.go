// Package color maps decoded dBZ reflectivity values to RGBA pixels using
// the product's fixed 17-stop color scale.
package color

import (
	"image/color"
	"math"

	"golang.org/x/exp/slices"

	"github.com/wxradar/radarcore/packing"
)

// Stop is one point on the dBZ-to-RGBA ramp.
type Stop struct {
	DBZ   float64
	Color color.RGBA
}

// Stops is the authoritative 17-stop reflectivity color scale, from -30 to
// 75 dBZ. Must stay sorted by DBZ ascending; Map relies on it for binary
// search.
var Stops = []Stop{
	{-30, color.RGBA{0, 0, 0, 0}},
	{0, color.RGBA{0, 0, 0, 0}},
	{5, color.RGBA{4, 68, 94, 160}},
	{10, color.RGBA{0, 160, 180, 200}},
	{15, color.RGBA{0, 200, 160, 220}},
	{20, color.RGBA{0, 230, 0, 240}},
	{25, color.RGBA{0, 200, 0, 250}},
	{30, color.RGBA{0, 144, 0, 255}},
	{35, color.RGBA{255, 255, 0, 255}},
	{40, color.RGBA{255, 192, 0, 255}},
	{45, color.RGBA{255, 128, 0, 255}},
	{50, color.RGBA{255, 0, 0, 255}},
	{55, color.RGBA{200, 0, 0, 255}},
	{60, color.RGBA{255, 0, 200, 255}},
	{65, color.RGBA{160, 0, 255, 255}},
	{70, color.RGBA{255, 255, 255, 255}},
	{75, color.RGBA{200, 200, 255, 255}},
}

// transparent is returned for sentinel/NaN/out-of-range-low input.
var transparent = color.RGBA{0, 0, 0, 0}

// Map returns the RGBA color for a decoded dBZ value, per spec §4.5:
//   - dbz < -900 or NaN maps to fully transparent (sentinel/missing).
//   - dbz below the first stop clamps to the first stop's color.
//   - dbz at or above the last stop clamps to the last stop's color.
//   - otherwise, linearly interpolate each channel between the
//     bracketing stops, rounding to the nearest integer.
func Map(dbz float64) color.RGBA {
	if math.IsNaN(dbz) || packing.IsMissing(float32(dbz)) {
		return transparent
	}

	first, last := Stops[0], Stops[len(Stops)-1]
	if dbz < first.DBZ {
		return first.Color
	}
	if dbz >= last.DBZ {
		return last.Color
	}

	// slices.BinarySearchFunc finds the insertion point i such that
	// Stops[i-1].DBZ <= dbz < Stops[i].DBZ (since dbz is known to be
	// strictly within [first.DBZ, last.DBZ) at this point).
	i, found := slices.BinarySearchFunc(Stops, dbz, func(s Stop, target float64) int {
		switch {
		case s.DBZ < target:
			return -1
		case s.DBZ > target:
			return 1
		default:
			return 0
		}
	})
	if found {
		return Stops[i].Color
	}

	lo, hi := Stops[i-1], Stops[i]
	t := (dbz - lo.DBZ) / (hi.DBZ - lo.DBZ)
	return color.RGBA{
		R: lerp(lo.Color.R, hi.Color.R, t),
		G: lerp(lo.Color.G, hi.Color.G, t),
		B: lerp(lo.Color.B, hi.Color.B, t),
		A: lerp(lo.Color.A, hi.Color.A, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(v))
}
