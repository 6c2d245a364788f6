// Package optimizer implements the outer pacing-strategy search: the
// highest feasible base intensity compatible with the rider's
// fatigue-adjusted power-duration envelope (spec.md §4.5).
package optimizer

import (
	"math"

	"github.com/nick-riduck/bike-course-simulator/internal/course"
	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/pacing"
)

// Request bundles the inputs to FindOptimalPacing.
type Request struct {
	Segments []model.Segment
	Rider    *model.RiderProfile
	Physics  model.PhysicsParams
	Env      model.EnvironmentVector
	Solver   model.SolverParams
	Strategy pacing.Strategy
}

// FindOptimalPacing bisects over P_base for Solver.BisectionIterations
// rounds, re-simulating the whole course each round, and returns the best
// feasible pass found (or the last attempt, marked infeasible, if none
// were feasible). Feasibility requires both no bonk and NP within the
// rider's fatigue-adjusted envelope for the resulting duration.
func FindOptimalPacing(req Request) model.SimulationResult {
	if len(req.Segments) == 0 {
		return model.SimulationResult{FailureKind: model.FailureDegenerate}
	}

	low := req.Solver.BasePowerLowWatts
	high := req.Solver.BasePowerHighWatts

	totalLenM := model.TotalLengthM(req.Segments)
	estHours := estimateDurationHours(totalLenM)
	dynamicCapFactor := req.Rider.DynamicPowerCap(estHours)

	var best *model.SimulationResult
	var last model.SimulationResult

	iterations := req.Solver.BisectionIterations
	if iterations <= 0 {
		iterations = 15
	}

	for i := 0; i < iterations; i++ {
		mid := (low + high) / 2
		pCap := req.Solver.PCapMultiple * mid
		if pCap <= 0 {
			pCap = mid * 2
		}
		pCap = math.Min(pCap, req.Rider.CPWatts*dynamicCapFactor)

		vRef := flatSteadyStateSpeed(mid, req.Physics, req.Rider.MassKg+req.Physics.BikeMassKg)

		res := course.Simulate(course.Request{
			Segments:  req.Segments,
			Rider:     req.Rider,
			Physics:   req.Physics,
			Env:       req.Env,
			Solver:    req.Solver,
			Strategy:  req.Strategy,
			BasePower: mid,
			PCap:      pCap,
			VRefMps:   vRef,
		})
		last = res

		intensity := res.NormalizedPowerWatts
		if !res.IsFeasible {
			intensity = mid
		}
		pLimit := req.Rider.PowerLimit(res.TotalTimeSec)
		if res.TotalTimeSec <= 0 {
			pLimit = req.Rider.PowerLimit(estHours * 3600)
		}

		feasible := res.IsFeasible && intensity <= pLimit
		if !feasible {
			if !res.IsFeasible {
				// keep the original failure kind (BONK)
			} else {
				res.FailureKind = model.FailureOverEnvelope
				res.IsFeasible = false
				last = res
			}
			high = mid
			continue
		}

		kept := res
		best = &kept
		low = mid
	}

	if best != nil {
		return *best
	}
	return last
}

// estimateDurationHours gives the optimizer a rough duration estimate (used
// only to seed the dynamic power cap) before any simulation has run, the
// same role the original solver's "est_hours" played before its Riegel
// limit calculation.
func estimateDurationHours(totalLenM float64) float64 {
	const roughSpeedKmh = 25.0
	distKm := totalLenM / 1000
	if distKm <= 0 {
		return 1
	}
	return distKm / roughSpeedKmh
}

// flatSteadyStateSpeed solves P*(1-loss) = (0.5*rho*A*v^2 + crr*m*g)*v for v
// by bisection, giving the adaptive reference speed used by the
// speed-relative pacing strategy (spec.md §4.5).
func flatSteadyStateSpeed(power float64, phys model.PhysicsParams, totalMassKg float64) float64 {
	const g = 9.81
	lo, hi := 0.0, 55.0
	pAvail := power * (1 - phys.DrivetrainLoss)

	f := func(v float64) float64 {
		resistiveForce := 0.5*phys.AirDensity*phys.EffectiveCdA()*v*v + phys.CrrDefault*totalMassKg*g
		return resistiveForce*v - pAvail
	}

	for i := 0; i < 30; i++ {
		mid := (lo + hi) / 2
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
