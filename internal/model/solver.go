package model

// SolverParams groups the named constants governing the outer optimizer and
// the simulator's torque-limit fatigue and entry speed (spec.md §9:
// every constant named in the spec is a named parameter, never a
// process-wide mutable global).
type SolverParams struct {
	// BisectionIterations applies to the pacing optimizer (§4.5). The
	// adaptive v_ref flat-speed solve uses its own fixed 30 iterations.
	BisectionIterations int

	// BasePowerLowWatts/BasePowerHighWatts bound the optimizer's bisection
	// range over P_base.
	BasePowerLowWatts  float64
	BasePowerHighWatts float64

	// PCapMultiple sets how generous the per-iteration P_cap is relative
	// to the bisection midpoint (P_cap = PCapMultiple * mid).
	PCapMultiple float64

	// TorqueLimitFactorG is the initial torque limit expressed as a
	// multiple of body weight at the pedals (spec.md §4.4 step 3).
	TorqueLimitFactorG float64
	// TorqueFatigueExponent governs the post-first-hour decay of the
	// torque limit: factor *= (3600/t_cum)^exponent.
	TorqueFatigueExponent float64

	// RiegelK records the default fatigue exponent for PDC extrapolation.
	// PowerLimit does not read this field; it uses RiderProfile.RiegelK
	// (0.10 when that is zero).
	RiegelK float64

	// InitialEntrySpeedMps is the cold-start entry speed (spec.md §9:
	// mandated 0.1 m/s unless RollingStartMps overrides it).
	InitialEntrySpeedMps float64
	RollingStartMps      float64
}

// DefaultSolverParams returns the spec-mandated defaults.
func DefaultSolverParams() SolverParams {
	return SolverParams{
		BisectionIterations:   15,
		BasePowerLowWatts:     10,
		BasePowerHighWatts:    1500,
		PCapMultiple:          2.5,
		TorqueLimitFactorG:    1.5,
		TorqueFatigueExponent: 0.05,
		RiegelK:               0.10,
		InitialEntrySpeedMps:  0.1,
	}
}

// EntrySpeedMps returns the configured cold-start or rolling-start entry
// speed.
func (s SolverParams) EntrySpeedMps() float64 {
	if s.RollingStartMps > 0 {
		return s.RollingStartMps
	}
	if s.InitialEntrySpeedMps > 0 {
		return s.InitialEntrySpeedMps
	}
	return 0.1
}
