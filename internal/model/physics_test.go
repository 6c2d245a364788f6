package model

import "testing"

func validPhysics() PhysicsParams {
	return PhysicsParams{
		CdA:            0.32,
		CrrDefault:     0.005,
		BikeMassKg:     9,
		DrivetrainLoss: 0.02,
		AirDensity:     1.225,
		DraftingFactor: 0.1,
	}
}

func TestPhysicsParamsValidate(t *testing.T) {
	p := validPhysics()
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid physics, got %v", err)
	}

	bad := validPhysics()
	bad.CdA = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for cda <= 0")
	}

	bad = validPhysics()
	bad.DrivetrainLoss = 1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for drivetrain_loss >= 1")
	}

	bad = validPhysics()
	bad.DraftingFactor = 0.9
	if err := bad.Validate(); err == nil {
		t.Error("expected error for drafting_factor out of [0,0.5]")
	}
}

func TestEffectiveCdA(t *testing.T) {
	p := validPhysics()
	got := p.EffectiveCdA()
	want := 0.32 * 0.9
	if got != want {
		t.Errorf("EffectiveCdA() = %v, want %v", got, want)
	}
}

func TestEnvironmentVectorValidate(t *testing.T) {
	e := EnvironmentVector{WindSpeedMps: 5, WindDirDeg: 270}
	if err := e.Validate(); err != nil {
		t.Fatalf("expected valid environment, got %v", err)
	}

	bad := EnvironmentVector{WindSpeedMps: -1, WindDirDeg: 0}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative wind speed")
	}

	bad = EnvironmentVector{WindSpeedMps: 1, WindDirDeg: 360}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for wind_dir_deg == 360")
	}
}
