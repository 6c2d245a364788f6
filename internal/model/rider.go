package model

import (
	"errors"
	"math"
	"sort"
)

// RiderProfile is the rider's physiological profile for a pacing run.
// Units:
// - CPWatts: W (critical power)
// - WPrimeMaxJoules: J (anaerobic capacity)
// - MassKg: kg
// - PDC: {duration_seconds -> sustainable_watts}, at least one entry
type RiderProfile struct {
	CPWatts         float64
	WPrimeMaxJoules float64
	MassKg          float64
	PDC             map[float64]float64

	// RiegelK is the fatigue exponent used to extrapolate the PDC beyond its
	// longest key. Spec default 0.10 (long-endurance realism); the source
	// material also used 0.07 in places, so this is kept configurable
	// instead of hard-coded.
	RiegelK float64
}

// RiderState is the mutable anaerobic-reserve tracker for one simulation pass.
// It is never shared across concurrent passes; the optimizer re-initializes
// one per bisection iteration.
type RiderState struct {
	WPrimeBal float64
}

func (r *RiderProfile) Validate() error {
	if r.CPWatts <= 0 {
		return errors.New("cp_watts must be > 0")
	}
	if r.WPrimeMaxJoules <= 0 {
		return errors.New("w_prime_max_joules must be > 0")
	}
	if r.MassKg <= 0 {
		return errors.New("mass_kg must be > 0")
	}
	if len(r.PDC) == 0 {
		return errors.New("pdc must have at least one entry")
	}
	for k := range r.PDC {
		if k <= 0 {
			return errors.New("pdc keys must be strictly positive durations")
		}
	}
	return nil
}

// NewRiderState resets the anaerobic reserve to full for a fresh pass.
func (r *RiderProfile) NewRiderState() *RiderState {
	return &RiderState{WPrimeBal: r.WPrimeMaxJoules}
}

// sortedPDCKeys returns the PDC duration keys in ascending order.
func (r *RiderProfile) sortedPDCKeys() []float64 {
	keys := make([]float64, 0, len(r.PDC))
	for k := range r.PDC {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

// PowerLimit returns the power-duration-curve's sustainable power for
// duration T seconds (§4.1):
//   - T <= min(keys): value at the smallest key.
//   - T >= max(keys): Riegel extrapolation P = P_max * (T/T_max)^-k.
//   - otherwise: linear interpolation between the bracketing keys.
func (r *RiderProfile) PowerLimit(durationSec float64) float64 {
	keys := r.sortedPDCKeys()
	if len(keys) == 0 {
		return r.CPWatts
	}

	tMin, tMax := keys[0], keys[len(keys)-1]
	if durationSec <= tMin {
		return r.PDC[tMin]
	}
	if durationSec >= tMax {
		k := r.RiegelK
		if k == 0 {
			k = 0.10
		}
		pMax := r.PDC[tMax]
		return pMax * math.Pow(durationSec/tMax, -k)
	}

	// Bracket and interpolate linearly.
	for i := 0; i < len(keys)-1; i++ {
		lo, hi := keys[i], keys[i+1]
		if durationSec >= lo && durationSec <= hi {
			if hi == lo {
				return r.PDC[lo]
			}
			frac := (durationSec - lo) / (hi - lo)
			return r.PDC[lo] + frac*(r.PDC[hi]-r.PDC[lo])
		}
	}
	return r.PDC[tMax]
}

// WithinEnvelope reports whether power is sustainable for durationSec per
// the PDC, allowing a 5 W margin. This is a non-fatal sanity signal,
// distinct from the optimizer's terminal NP-vs-envelope feasibility check
// (the original source's Rider.check_pdc_limit).
func (r *RiderProfile) WithinEnvelope(power, durationSec float64) bool {
	return power <= r.PowerLimit(durationSec)+5
}

// DynamicPowerCap returns a duration-dependent cap factor (multiple of CP)
// used to seed a tighter P_cap than the bare 2..3x heuristic in §4.5 alone.
// Linearly interpolated over fixed anchor points, grounded on the original
// Rider.get_dynamic_max_cap design-document points.
func (r *RiderProfile) DynamicPowerCap(estimatedHours float64) float64 {
	type point struct {
		hours float64
		cap   float64
	}
	points := []point{
		{1.0, 1.20},
		{3.0, 1.10},
		{5.0, 1.05},
		{8.0, 1.00},
	}
	if estimatedHours <= points[0].hours {
		return points[0].cap
	}
	if estimatedHours >= points[len(points)-1].hours {
		return points[len(points)-1].cap
	}
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		if estimatedHours >= a.hours && estimatedHours <= b.hours {
			frac := (estimatedHours - a.hours) / (b.hours - a.hours)
			return a.cap + frac*(b.cap-a.cap)
		}
	}
	return 1.0
}

// UpdateAnaerobicBalance applies the Skiba two-regime model to state for a
// segment/chunk delivering power over dt seconds (§4.1). The balance is
// intentionally left unclamped; callers use WPrimeBal < 0 as the bonk
// predicate.
func (r *RiderProfile) UpdateAnaerobicBalance(state *RiderState, power, dt float64) {
	delta := power - r.CPWatts
	switch {
	case delta > 0:
		state.WPrimeBal -= delta * dt
	case delta < 0:
		deficit := -delta
		tau := 546*math.Exp(-0.01*deficit) + 316
		wExp := r.WPrimeMaxJoules - state.WPrimeBal
		state.WPrimeBal = r.WPrimeMaxJoules - wExp*math.Exp(-dt/tau)
	default:
		// power == CP: no change.
	}
}

// IsBonked reports whether the anaerobic reserve has gone negative.
func (s *RiderState) IsBonked() bool {
	return s.WPrimeBal < 0
}
