package weather

import (
	"testing"
	"time"

	"github.com/nick-riduck/bike-course-simulator/internal/model"
)

func TestFetchWindScenarioModeBypassesNetwork(t *testing.T) {
	scenario := model.EnvironmentVector{WindSpeedMps: 6.5, WindDirDeg: 225}
	c := &Client{ScenarioMode: true, Scenario: scenario}

	got, err := c.FetchWind(37.0, -122.0, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != scenario {
		t.Errorf("expected scenario passthrough %v, got %v", scenario, got)
	}
}

func TestNearestHourPicksClosestTimestamp(t *testing.T) {
	var resp openMeteoResponse
	resp.Hourly.Time = []string{"2026-07-01T12:00", "2026-07-01T13:00", "2026-07-01T14:00"}
	resp.Hourly.WindSpeed10m = []float64{3.0, 5.0, 7.0}
	resp.Hourly.WindDirection10 = []float64{90, 180, 270}

	at := time.Date(2026, 7, 1, 13, 10, 0, 0, time.UTC)
	env, err := nearestHour(resp, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.WindSpeedMps != 5.0 || env.WindDirDeg != 180 {
		t.Errorf("expected the 13:00 entry (5.0 m/s, 180 deg), got %v", env)
	}
}

func TestNearestHourErrorsOnEmptyData(t *testing.T) {
	var resp openMeteoResponse
	if _, err := nearestHour(resp, time.Now()); err == nil {
		t.Error("expected an error for an empty hourly response")
	}
}
