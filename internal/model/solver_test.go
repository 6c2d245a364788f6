package model

import "testing"

func TestDefaultSolverParams(t *testing.T) {
	s := DefaultSolverParams()
	if s.BisectionIterations != 15 {
		t.Errorf("expected 15 bisection iterations, got %d", s.BisectionIterations)
	}
	if s.BasePowerLowWatts != 10 || s.BasePowerHighWatts != 1500 {
		t.Errorf("expected base power range [10,1500], got [%v,%v]", s.BasePowerLowWatts, s.BasePowerHighWatts)
	}
}

func TestEntrySpeedMpsPrefersRollingStart(t *testing.T) {
	s := DefaultSolverParams()
	s.RollingStartMps = 6.0
	if got := s.EntrySpeedMps(); got != 6.0 {
		t.Errorf("expected rolling start speed 6.0, got %v", got)
	}
}

func TestEntrySpeedMpsFallsBackToInitial(t *testing.T) {
	s := DefaultSolverParams()
	if got := s.EntrySpeedMps(); got != 0.1 {
		t.Errorf("expected default initial entry speed 0.1, got %v", got)
	}
}

func TestEntrySpeedMpsDefaultsWhenBothZero(t *testing.T) {
	s := SolverParams{}
	if got := s.EntrySpeedMps(); got != 0.1 {
		t.Errorf("expected hard fallback 0.1, got %v", got)
	}
}
