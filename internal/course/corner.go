package course

import "math"

const corneringMu = 0.8
const gravity = 9.81

// corneringSpeedLimitMps caps entry speed into a segment based on the
// turn angle between consecutive headings, treating the segment as an arc
// (spec.md §4.4 step 1). angleDeg is the smallest signed arc in [0,180]
// between the previous and current heading.
func corneringSpeedLimitMps(angleDeg, lengthM float64) (limit float64, applies bool) {
	if angleDeg <= 1 || lengthM <= 0 {
		return 0, false
	}
	angleRad := angleDeg * math.Pi / 180
	radius := lengthM / angleRad
	return math.Sqrt(corneringMu * gravity * radius), true
}

// headingDelta returns the smallest signed arc between two headings,
// wrapped into [0, 180] degrees.
func headingDelta(prevDeg, curDeg float64) float64 {
	d := math.Mod(curDeg-prevDeg, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}
