// Package pacing maps a rider's base power and the local segment terrain to
// a target mechanical power for the next chunk of course (spec.md §4.2).
//
// Variants are represented as a tagged sum type rather than an interface
// hierarchy with subclasses: Strategy carries a Kind plus the parameters for
// whichever kind is active, and TargetPower switches on Kind. This collapses
// what the source material implemented as several near-duplicate physics
// engines into one pluggable function passed into the simulator by value.
package pacing

import "math"

// Kind tags which pacing mode a Strategy uses.
type Kind int

const (
	GradeProportional Kind = iota
	SpeedAsymmetric
)

// Params bundles the named constants for both pacing modes (spec.md §9:
// "global configuration and magic numbers" are named parameters, not
// process-wide mutable state).
type Params struct {
	// Grade-proportional mode.
	AlphaClimb   float64 // default 2.5
	AlphaDescent float64 // default 10
	GCoast       float64 // default -0.05

	// Speed-relative asymmetric mode.
	BetaSlow float64 // sensitivity while climbing/slow (ratio > 0)
	BetaFast float64 // sensitivity while descending/fast (ratio <= 0)
}

// DefaultParams returns the spec-mandated defaults.
func DefaultParams() Params {
	return Params{
		AlphaClimb:   2.5,
		AlphaDescent: 10,
		GCoast:       -0.05,
		BetaSlow:     1.0,
		BetaFast:     -1.0,
	}
}

// Strategy is the tagged pacing-mode value threaded into the simulator.
type Strategy struct {
	Kind   Kind
	Params Params
}

// Input bundles the per-segment call-site context needed to compute a
// target power.
type Input struct {
	BasePower float64
	PCap      float64
	Grade     float64

	// CurrentSpeedMps and VRefMps are only used by SpeedAsymmetric.
	CurrentSpeedMps float64
	VRefMps         float64
}

// TargetPower computes the segment target power under the strategy's mode
// (spec.md §4.2), matching on Kind rather than dispatching through an
// interface implementation.
func (s Strategy) TargetPower(in Input) float64 {
	switch s.Kind {
	case SpeedAsymmetric:
		return s.speedAsymmetric(in)
	default:
		return s.gradeProportional(in)
	}
}

func (s Strategy) gradeProportional(in Input) float64 {
	p := s.Params
	g := in.Grade

	if g >= 0 {
		target := in.BasePower * (1 + p.AlphaClimb*g)
		return math.Min(in.PCap, target)
	}
	if g >= p.GCoast {
		factor := 1 + p.AlphaDescent*g
		if factor < 0 {
			factor = 0
		}
		return in.BasePower * factor
	}
	return 0
}

func (s Strategy) speedAsymmetric(in Input) float64 {
	p := s.Params
	g := in.Grade

	if g < p.GCoast {
		return 0
	}

	vRef := in.VRefMps
	if vRef <= 0 {
		vRef = 1
	}
	ratio := 1 - in.CurrentSpeedMps/vRef

	beta := p.BetaFast
	if ratio > 0 {
		beta = p.BetaSlow
	}

	factor := 1 + beta*ratio
	if factor < 0.1 {
		factor = 0.1
	}
	target := in.BasePower * factor
	return math.Min(in.PCap, target)
}
