// Package analysis ranks several course segment streams by difficulty and
// "oracle" best-case pacing time, the structural analogue of the teacher's
// per-location arbitrage-potential ranking (internal/analysis in the
// teacher). Grade-distribution percentiles use gonum/stat instead of the
// teacher's hand-rolled percentileSorted.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/optimizer"
	"github.com/nick-riduck/bike-course-simulator/internal/pacing"
)

// TerrainProfile is a course-level difficulty summary, independent of any
// particular rider — it describes the course itself.
type TerrainProfile struct {
	Name string

	TotalDistanceKm float64
	TotalClimbM     float64
	TotalDescentM   float64

	MeanGradePct float64
	P95GradePct  float64
	P05GradePct  float64

	// OraclePacingSec is the full optimizer's best (shortest) feasible
	// total time for the canonical rider/physics passed to
	// RankByDifficulty, or -1 if no feasible pacing was found.
	OraclePacingSec float64
}

func ComputeTerrainProfile(name string, segments []model.Segment) TerrainProfile {
	p := TerrainProfile{Name: name}
	if len(segments) == 0 {
		return p
	}

	grades := make([]float64, len(segments))
	for i, s := range segments {
		p.TotalDistanceKm += s.LengthM / 1000
		rise := s.EndEleM - s.StartEleM
		if rise > 0 {
			p.TotalClimbM += rise
		} else {
			p.TotalDescentM += -rise
		}
		grades[i] = s.Grade * 100
	}

	sorted := append([]float64(nil), grades...)
	sort.Float64s(sorted)

	p.MeanGradePct = floats.Sum(grades) / float64(len(grades))
	p.P95GradePct = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	p.P05GradePct = stat.Quantile(0.05, stat.Empirical, sorted, nil)
	p.OraclePacingSec = -1
	return p
}

// RankByDifficulty computes a TerrainProfile (including a full optimizer
// run) per named course and sorts ascending by OraclePacingSec (hardest =
// slowest best-case time last).
func RankByDifficulty(courses map[string][]model.Segment, rider *model.RiderProfile, physics model.PhysicsParams, env model.EnvironmentVector, strategy pacing.Strategy) []TerrainProfile {
	out := make([]TerrainProfile, 0, len(courses))
	for name, segments := range courses {
		profile := ComputeTerrainProfile(name, segments)
		if len(segments) > 0 {
			res := optimizer.FindOptimalPacing(optimizer.Request{
				Segments: segments,
				Rider:    rider,
				Physics:  physics,
				Env:      env,
				Solver:   model.DefaultSolverParams(),
				Strategy: strategy,
			})
			if res.IsFeasible {
				profile.OraclePacingSec = res.TotalTimeSec
			}
		}
		out = append(out, profile)
	}
	sort.Slice(out, func(i, j int) bool {
		// Feasible courses first, ordered by total time; infeasible last.
		if out[i].OraclePacingSec < 0 && out[j].OraclePacingSec < 0 {
			return out[i].Name < out[j].Name
		}
		if out[i].OraclePacingSec < 0 {
			return false
		}
		if out[j].OraclePacingSec < 0 {
			return true
		}
		return out[i].OraclePacingSec < out[j].OraclePacingSec
	})
	return out
}
