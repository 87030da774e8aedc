package grid

import (
	"fmt"

	"github.com/wxradar/radarcore/internal"
)

// LatLonGrid represents a GRIB2 Latitude/Longitude grid (Template 3.0):
// a regular grid with constant spacing in latitude and longitude.
type LatLonGrid struct {
	Ni           uint32 // Number of points along a parallel (longitude)
	Nj           uint32 // Number of points along a meridian (latitude)
	La1          float64
	Lo1          float64
	ResFlags     uint8
	La2          float64
	Lo2          float64
	Di           float64
	Dj           float64
	ScanMode     uint8 // Scanning mode (Table 3.4)
}

// ParseLatLonGrid parses Grid Definition Template 3.0 from the
// template-specific bytes that follow Section 3's fixed 14-byte header.
//
// Layout (relative to the start of the template body):
//
//	0-15:  shape-of-earth parameters (unused by this decoder)
//	16-19: Ni
//	20-23: Nj
//	24-27: basic angle of initial production domain
//	28-31: subdivisions of basic angle
//	32-35: La1 (sign-magnitude, scaled by the angle divisor)
//	36-39: Lo1
//	40:    resolution and component flags
//	41-44: La2
//	45-48: Lo2
//	49-52: Di
//	53-56: Dj
//	57:    scanning mode
//
// La1/Lo1/La2/Lo2/Di/Dj are divided by the angle divisor: basic_angle *
// subdivisions, or 1,000,000 if either is zero.
func ParseLatLonGrid(data []byte) (*LatLonGrid, error) {
	if len(data) < 58 {
		return nil, fmt.Errorf("template 3.0 requires at least 58 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)
	r.Skip(16)

	ni, _ := r.Uint32()
	nj, _ := r.Uint32()

	basicAngle, _ := r.Uint32()
	subdivisions, _ := r.Uint32()
	divisor := float64(1_000_000)
	if basicAngle != 0 && subdivisions != 0 {
		divisor = float64(basicAngle) * float64(subdivisions)
	}

	la1i, _ := r.Int32()
	lo1i, _ := r.Int32()
	resFlags, _ := r.Uint8()
	la2i, _ := r.Int32()
	lo2i, _ := r.Int32()
	dii, _ := r.Int32()
	dji, _ := r.Int32()
	scanMode, _ := r.Uint8()

	return &LatLonGrid{
		Ni:       ni,
		Nj:       nj,
		La1:      float64(la1i) / divisor,
		Lo1:      normalizeLongitude(float64(lo1i) / divisor),
		ResFlags: resFlags,
		La2:      float64(la2i) / divisor,
		Lo2:      normalizeLongitude(float64(lo2i) / divisor),
		Di:       float64(dii) / divisor,
		Dj:       float64(dji) / divisor,
		ScanMode: scanMode,
	}, nil
}

// TemplateNumber returns 0 for Lat/Lon grids.
func (g *LatLonGrid) TemplateNumber() int { return 0 }

// Width returns Ni.
func (g *LatLonGrid) Width() int { return int(g.Ni) }

// Height returns Nj.
func (g *LatLonGrid) Height() int { return int(g.Nj) }

// NumPoints returns the total number of grid points.
func (g *LatLonGrid) NumPoints() int { return int(g.Ni) * int(g.Nj) }

// ScanningMode returns the raw scanning mode byte.
func (g *LatLonGrid) ScanningMode() uint8 { return g.ScanMode }

// Bounds returns the axis-aligned min/max of the two declared corners.
func (g *LatLonGrid) Bounds() Bounds {
	north, south := g.La1, g.La2
	if south > north {
		north, south = south, north
	}
	west, east := g.Lo1, g.Lo2
	if west > east {
		west, east = east, west
	}
	return Bounds{North: north, South: south, East: east, West: west}
}

// String returns a human-readable description of the grid.
func (g *LatLonGrid) String() string {
	return fmt.Sprintf("Lat/Lon grid: %d x %d points (%.3f, %.3f) to (%.3f, %.3f)",
		g.Ni, g.Nj, g.La1, g.Lo1, g.La2, g.Lo2)
}
