package model

import (
	"math"
	"testing"
)

func testRider() RiderProfile {
	return RiderProfile{
		CPWatts:         250,
		WPrimeMaxJoules: 20000,
		MassKg:          75,
		PDC: map[float64]float64{
			60:   400,
			300:  310,
			1200: 270,
		},
		RiegelK: 0.10,
	}
}

func TestRiderProfileValidate(t *testing.T) {
	r := testRider()
	if err := r.Validate(); err != nil {
		t.Fatalf("expected valid rider, got %v", err)
	}

	bad := testRider()
	bad.CPWatts = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for cp_watts <= 0")
	}

	bad = testRider()
	bad.PDC = nil
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for empty PDC")
	}
}

func TestPowerLimitBelowShortestKey(t *testing.T) {
	r := testRider()
	if got := r.PowerLimit(10); got != 400 {
		t.Errorf("PowerLimit(10) = %v, want 400 (clamped to shortest key)", got)
	}
}

func TestPowerLimitInterpolates(t *testing.T) {
	r := testRider()
	got := r.PowerLimit(180) // halfway between 60 and 300
	want := 400 + 0.5*(310-400)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PowerLimit(180) = %v, want %v", got, want)
	}
}

func TestPowerLimitRiegelExtrapolation(t *testing.T) {
	r := testRider()
	got := r.PowerLimit(3600)
	want := 270 * math.Pow(3600.0/1200.0, -0.10)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PowerLimit(3600) = %v, want %v", got, want)
	}
}

func TestDynamicPowerCapAnchors(t *testing.T) {
	r := testRider()
	cases := []struct {
		hours float64
		want  float64
	}{
		{0.5, 1.20},
		{1.0, 1.20},
		{3.0, 1.10},
		{5.0, 1.05},
		{8.0, 1.00},
		{10.0, 1.00},
	}
	for _, c := range cases {
		if got := r.DynamicPowerCap(c.hours); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("DynamicPowerCap(%v) = %v, want %v", c.hours, got, c.want)
		}
	}
}

func TestDynamicPowerCapInterpolatesBetweenAnchors(t *testing.T) {
	r := testRider()
	got := r.DynamicPowerCap(2.0) // halfway between (1.0, 1.20) and (3.0, 1.10)
	want := 1.15
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("DynamicPowerCap(2.0) = %v, want %v", got, want)
	}
}

func TestUpdateAnaerobicBalanceDepletesAboveCP(t *testing.T) {
	r := testRider()
	state := r.NewRiderState()
	r.UpdateAnaerobicBalance(state, 350, 10) // 100W over CP for 10s
	want := 20000.0 - 100*10
	if math.Abs(state.WPrimeBal-want) > 1e-6 {
		t.Errorf("WPrimeBal = %v, want %v", state.WPrimeBal, want)
	}
}

func TestUpdateAnaerobicBalanceRecoversBelowCP(t *testing.T) {
	r := testRider()
	state := &RiderState{WPrimeBal: 10000} // half-depleted
	r.UpdateAnaerobicBalance(state, 100, 60)
	if state.WPrimeBal <= 10000 {
		t.Errorf("expected recovery, WPrimeBal = %v, started at 10000", state.WPrimeBal)
	}
	if state.WPrimeBal > r.WPrimeMaxJoules {
		t.Errorf("recovered balance %v exceeds WPrimeMaxJoules %v", state.WPrimeBal, r.WPrimeMaxJoules)
	}
}

func TestUpdateAnaerobicBalanceAtCPIsNoOp(t *testing.T) {
	r := testRider()
	state := &RiderState{WPrimeBal: 15000}
	r.UpdateAnaerobicBalance(state, r.CPWatts, 30)
	if state.WPrimeBal != 15000 {
		t.Errorf("expected no change at power == CP, got %v", state.WPrimeBal)
	}
}

func TestIsBonked(t *testing.T) {
	s := &RiderState{WPrimeBal: -1}
	if !s.IsBonked() {
		t.Error("expected IsBonked() true for negative balance")
	}
	s.WPrimeBal = 0
	if s.IsBonked() {
		t.Error("expected IsBonked() false at exactly zero")
	}
}

func TestWithinEnvelopeAllowsMargin(t *testing.T) {
	r := testRider()
	limit := r.PowerLimit(60)
	if !r.WithinEnvelope(limit+4, 60) {
		t.Error("expected power within 5W margin to be accepted")
	}
	if r.WithinEnvelope(limit+10, 60) {
		t.Error("expected power 10W over the limit to be rejected")
	}
}
