package grid

import (
	"fmt"

	"github.com/wxradar/radarcore/internal"
)

// Fixed CONUS bounding box used in place of a real Lambert Conformal
// inverse projection. No header field overrides this; see ParseLambertConformalGrid.
const (
	conusNorth = 55.0
	conusSouth = 20.0
	conusEast  = -60.0
	conusWest  = -130.0
)

// LambertConformalGrid represents Grid Definition Template 3.30: Lambert
// Conformal projection, as used by regional models like HRRR and MRMS CONUS
// products.
//
// This decoder does not compute a correct inverse projection from grid
// (i, j) to geographic coordinates; that is out of scope here. Bounds are
// always reported as the fixed CONUS rectangle, regardless of the header
// values. Downstream consumers treat the rendered raster as if it mapped
// onto that rectangle. La1/Lo1 are retained only for diagnostic display.
type LambertConformalGrid struct {
	Nx       uint32
	Ny       uint32
	La1      float64 // degrees, diagnostic only
	Lo1      float64 // degrees, diagnostic only
	ScanMode uint8
}

// ParseLambertConformalGrid parses the Nx, Ny, La1, Lo1, and scanning mode
// fields of Grid Definition Template 3.30. It does not read the projection
// parameters (LoV, Latin1/2, Dx/Dy) since no projection is computed.
func ParseLambertConformalGrid(data []byte) (*LambertConformalGrid, error) {
	if len(data) < 51 {
		return nil, fmt.Errorf("template 3.30 requires at least 51 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)
	r.Skip(16) // shape-of-earth parameters

	nx, _ := r.Uint32()
	ny, _ := r.Uint32()
	la1i, _ := r.Int32()
	lo1i, _ := r.Int32()
	r.Skip(1) // resolution and component flags
	r.Skip(8) // LaD, LoV
	r.Skip(8) // Dx, Dy
	r.Skip(1) // projection center flag
	scanMode, _ := r.Uint8()

	return &LambertConformalGrid{
		Nx:       nx,
		Ny:       ny,
		La1:      float64(la1i) / 1e6,
		Lo1:      normalizeLongitude(float64(lo1i) / 1e6),
		ScanMode: scanMode,
	}, nil
}

// TemplateNumber returns 30 for Lambert Conformal.
func (g *LambertConformalGrid) TemplateNumber() int { return 30 }

// Width returns Nx.
func (g *LambertConformalGrid) Width() int { return int(g.Nx) }

// Height returns Ny.
func (g *LambertConformalGrid) Height() int { return int(g.Ny) }

// NumPoints returns the total number of grid points.
func (g *LambertConformalGrid) NumPoints() int { return int(g.Nx) * int(g.Ny) }

// ScanningMode returns the raw scanning mode byte.
func (g *LambertConformalGrid) ScanningMode() uint8 { return g.ScanMode }

// Bounds always returns the fixed CONUS rectangle; see the type doc comment.
func (g *LambertConformalGrid) Bounds() Bounds {
	return Bounds{North: conusNorth, South: conusSouth, East: conusEast, West: conusWest}
}

// String returns a human-readable description.
func (g *LambertConformalGrid) String() string {
	return fmt.Sprintf("Lambert Conformal: %dx%d grid, La1=%.3f, Lo1=%.3f (bounds approximated to fixed CONUS box)",
		g.Nx, g.Ny, g.La1, g.Lo1)
}
