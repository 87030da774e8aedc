package radarcore

import (
	"encoding/json"
	"time"

	"github.com/wxradar/radarcore/grid"
)

// Metadata describes the geospatial alignment of a rendered PNG: its
// reference timestamp, bounding box, and pixel dimensions.
type Metadata struct {
	Timestamp time.Time   `json:"timestamp"`
	Bounds    grid.Bounds `json:"bounds"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
}

// metadataJSON mirrors Metadata's wire shape, since grid.Bounds and
// time.Time don't naturally serialize to the exact field names and
// ISO-8601 string format the spec's external interface requires.
type metadataJSON struct {
	Timestamp string     `json:"timestamp"`
	Bounds    boundsJSON `json:"bounds"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
}

type boundsJSON struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// MarshalJSON renders the ISO-8601 UTC timestamp and the bounds object in
// the exact shape documented in the pipeline's external interface.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(metadataJSON{
		Timestamp: m.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
		Bounds: boundsJSON{
			North: m.Bounds.North,
			South: m.Bounds.South,
			East:  m.Bounds.East,
			West:  m.Bounds.West,
		},
		Width:  m.Width,
		Height: m.Height,
	})
}
