package model

import "errors"

// PhysicsParams holds the bike/environment constants shared across a run.
// Units:
// - CdA: m^2 (drag coefficient * frontal area)
// - CrrDefault: dimensionless rolling resistance coefficient
// - BikeMassKg: kg
// - DrivetrainLoss: fraction in [0,1)
// - AirDensity: kg/m^3
// - DraftingFactor: fraction in [0, 0.5]
type PhysicsParams struct {
	CdA            float64
	CrrDefault     float64
	BikeMassKg     float64
	DrivetrainLoss float64
	AirDensity     float64
	DraftingFactor float64
}

func (p *PhysicsParams) Validate() error {
	if p.CdA <= 0 {
		return errors.New("cda must be > 0")
	}
	if p.CrrDefault < 0 {
		return errors.New("crr_default must be >= 0")
	}
	if p.BikeMassKg <= 0 {
		return errors.New("bike_mass_kg must be > 0")
	}
	if p.DrivetrainLoss < 0 || p.DrivetrainLoss >= 1 {
		return errors.New("drivetrain_loss must be in [0,1)")
	}
	if p.AirDensity <= 0 {
		return errors.New("air_density must be > 0")
	}
	if p.DraftingFactor < 0 || p.DraftingFactor > 0.5 {
		return errors.New("drafting_factor must be in [0,0.5]")
	}
	return nil
}

// EffectiveCdA returns CdA reduced by the drafting factor.
func (p *PhysicsParams) EffectiveCdA() float64 {
	return p.CdA * (1 - p.DraftingFactor)
}

// EnvironmentVector describes ambient wind for a run or a segment.
// WindDirDeg follows the meteorological convention: the direction the wind
// blows FROM.
type EnvironmentVector struct {
	WindSpeedMps float64
	WindDirDeg   float64
}

func (e *EnvironmentVector) Validate() error {
	if e.WindSpeedMps < 0 {
		return errors.New("wind_speed_mps must be >= 0")
	}
	if e.WindDirDeg < 0 || e.WindDirDeg >= 360 {
		return errors.New("wind_dir_deg must be in [0,360)")
	}
	return nil
}
