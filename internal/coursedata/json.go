// Package coursedata loads the ordered atomic segment stream the core
// consumes (spec.md §6.1). GPX parsing and map-matching are explicitly out
// of scope (spec.md §1); this package only handles the already-segmented
// JSON shape, generalizing the original GpxLoader.load_from_json_data
// ability to re-derive segments from a prior trace-shaped document.
package coursedata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nick-riduck/bike-course-simulator/internal/model"
)

// point mirrors one row of a trace-shaped course document: dist_km, ele,
// grade_pct, heading, and optional coordinates.
type point struct {
	DistKm   float64 `json:"dist_km"`
	EleM     float64 `json:"ele"`
	GradePct float64 `json:"grade_pct"`
	Heading  float64 `json:"heading"`
	Crr      float64 `json:"crr"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// LoadSegmentsJSON loads a course document from path and converts it into
// the Segment stream the core consumes.
func LoadSegmentsJSON(path string) ([]model.Segment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var points []point
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("failed to parse course document: %w", err)
	}
	return SegmentsFromPoints(points)
}

// SegmentsFromPoints converts an ordered list of cumulative-distance points
// into a Segment stream: each segment spans from the previous point to the
// current one. A point with dist_km == 0 at index 0 is treated as the start
// marker and produces no segment of its own.
func SegmentsFromPoints(points []point) ([]model.Segment, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("DEGENERATE_INPUT: empty course document")
	}

	raw := make([]model.Segment, 0, len(points))
	prevDist := 0.0
	prevEle := points[0].EleM
	startIdx := 0
	if points[0].DistKm == 0 {
		startIdx = 1
	}

	prevLat, prevLon := points[0].Lat, points[0].Lon
	for i := startIdx; i < len(points); i++ {
		p := points[i]
		curDist := p.DistKm * 1000
		length := curDist - prevDist
		if length <= 0 {
			continue
		}

		raw = append(raw, model.Segment{
			LengthM:    length,
			Grade:      p.GradePct / 100,
			HeadingDeg: p.Heading,
			StartEleM:  prevEle,
			EndEleM:    p.EleM,
			Crr:        p.Crr,
			Lat:        p.Lat,
			Lon:        p.Lon,
			StartLat:   prevLat,
			StartLon:   prevLon,
		})

		prevDist = curDist
		prevEle = p.EleM
		prevLat, prevLon = p.Lat, p.Lon
	}

	return model.NewSegmentStream(raw)
}
