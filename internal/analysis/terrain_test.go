package analysis

import (
	"math"
	"testing"

	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/pacing"
)

func TestComputeTerrainProfileEmptySegments(t *testing.T) {
	p := ComputeTerrainProfile("empty", nil)
	if p.TotalDistanceKm != 0 || p.TotalClimbM != 0 {
		t.Errorf("expected zero-value profile for no segments, got %+v", p)
	}
}

func TestComputeTerrainProfileAccumulatesClimbAndDescent(t *testing.T) {
	segments := []model.Segment{
		{LengthM: 1000, Grade: 0.05, StartEleM: 0, EndEleM: 50},
		{LengthM: 1000, Grade: -0.03, StartEleM: 50, EndEleM: 20},
	}
	p := ComputeTerrainProfile("test", segments)
	if p.TotalDistanceKm != 2 {
		t.Errorf("expected 2km total distance, got %v", p.TotalDistanceKm)
	}
	if p.TotalClimbM != 50 {
		t.Errorf("expected 50m climb, got %v", p.TotalClimbM)
	}
	if p.TotalDescentM != 30 {
		t.Errorf("expected 30m descent, got %v", p.TotalDescentM)
	}
	if p.OraclePacingSec != -1 {
		t.Errorf("expected sentinel -1 for unset oracle pacing, got %v", p.OraclePacingSec)
	}
}

func TestComputeTerrainProfileGradePercentiles(t *testing.T) {
	segments := []model.Segment{
		{LengthM: 100, Grade: 0.01},
		{LengthM: 100, Grade: 0.05},
		{LengthM: 100, Grade: 0.10},
	}
	p := ComputeTerrainProfile("test", segments)
	wantMean := (1.0 + 5.0 + 10.0) / 3.0
	if math.Abs(p.MeanGradePct-wantMean) > 1e-9 {
		t.Errorf("expected mean grade %.4f%%, got %.4f%%", wantMean, p.MeanGradePct)
	}
	if p.P95GradePct < p.P05GradePct {
		t.Errorf("expected p95 >= p05, got p95=%v p05=%v", p.P95GradePct, p.P05GradePct)
	}
}

func TestRankByDifficultyOrdersFeasibleCoursesByTime(t *testing.T) {
	flat := []model.Segment{{LengthM: 2000, Grade: 0}}
	hilly := []model.Segment{{LengthM: 2000, Grade: 0.08}}

	rider := &model.RiderProfile{
		CPWatts:         250,
		WPrimeMaxJoules: 20000,
		MassKg:          75,
		PDC:             map[float64]float64{60: 400, 300: 310, 1200: 270},
		RiegelK:         0.10,
	}
	physics := model.PhysicsParams{CdA: 0.32, CrrDefault: 0.005, BikeMassKg: 9, DrivetrainLoss: 0.02, AirDensity: 1.225}
	strategy := pacing.Strategy{Kind: pacing.GradeProportional, Params: pacing.DefaultParams()}

	ranked := RankByDifficulty(map[string][]model.Segment{
		"flat":  flat,
		"hilly": hilly,
	}, rider, physics, model.EnvironmentVector{}, strategy)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked courses, got %d", len(ranked))
	}
	if ranked[0].OraclePacingSec < 0 || ranked[1].OraclePacingSec < 0 {
		t.Fatalf("expected both short flat/hilly courses to be feasible, got %+v", ranked)
	}
	if ranked[0].OraclePacingSec > ranked[1].OraclePacingSec {
		t.Errorf("expected ascending order by oracle pacing time, got %v then %v", ranked[0].OraclePacingSec, ranked[1].OraclePacingSec)
	}
}
