// Package course implements the course simulator (spec.md §4.4): it iterates
// segments, threads rider/kinetic state forward, enforces the cornering
// speed limit, accumulates summary statistics, and produces a per-segment
// trace. This is the control-flow hub the pacing optimizer drives: for each
// bisection iteration it runs one full pass here.
package course

import (
	"log"
	"math"

	"github.com/nick-riduck/bike-course-simulator/internal/integrator"
	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/pacing"
)

// Request bundles everything one simulation pass needs.
type Request struct {
	Segments []model.Segment
	Rider    *model.RiderProfile
	Physics  model.PhysicsParams
	Env      model.EnvironmentVector
	Solver   model.SolverParams
	Strategy pacing.Strategy

	BasePower float64
	PCap      float64

	// VRefMps is the adaptive reference speed for SpeedAsymmetric pacing
	// (spec.md §4.5); ignored for GradeProportional.
	VRefMps float64
}

// Simulate runs one full pass over the course and returns the result. The
// simulator exclusively owns the RiderState it creates for this pass; it is
// never shared across concurrent simulations (spec.md §3 ownership, §5
// concurrency model).
func Simulate(req Request) model.SimulationResult {
	if len(req.Segments) == 0 {
		return model.SimulationResult{FailureKind: model.FailureDegenerate}
	}

	state := req.Rider.NewRiderState()

	vCurrent := req.Solver.EntrySpeedMps()
	cumTime := 0.0
	cumDist := 0.0
	cumEle := req.Segments[0].StartEleM

	var sumPT, sumP4T, minWPrime float64
	minWPrime = req.Rider.WPrimeMaxJoules

	trace := make([]model.SimulationTracePoint, 0, len(req.Segments))

	for i, seg := range req.Segments {
		// 1. Cornering speed limit.
		if i > 0 {
			prevHeading := req.Segments[i-1].HeadingDeg
			angle := headingDelta(prevHeading, seg.HeadingDeg)
			if limit, applies := corneringSpeedLimitMps(angle, seg.LengthM); applies && vCurrent > limit {
				vCurrent = limit
			}
		}

		// 2. Wind projection.
		vHead := windHeadComponent(req.Env, seg.HeadingDeg)

		// 3. Torque-limit fatigue.
		forceLimit := torqueLimit(req.Rider.MassKg+req.Physics.BikeMassKg, cumTime, req.Solver)

		// 4. Target power.
		pTarget := req.Strategy.TargetPower(pacing.Input{
			BasePower:       req.BasePower,
			PCap:            req.PCap,
			Grade:           seg.Grade,
			CurrentSpeedMps: vCurrent,
			VRefMps:         req.VRefMps,
		})

		// 5. Integrator.
		totalMass := req.Rider.MassKg + req.Physics.BikeMassKg
		res := integrator.Integrate(
			integrator.Segment{LengthM: seg.LengthM, Grade: seg.Grade},
			pTarget,
			vCurrent,
			vHead,
			forceLimit,
			integrator.Params{
				TotalMassKg:    totalMass,
				AirDensity:     req.Physics.AirDensity,
				EffectiveCdA:   req.Physics.EffectiveCdA(),
				DrivetrainLoss: req.Physics.DrivetrainLoss,
				Crr:            seg.CrrFor(req.Physics.CrrDefault),
			},
		)

		// 6. Rider update.
		req.Rider.UpdateAnaerobicBalance(state, res.DeliveredPower, res.ElapsedSec)
		if state.WPrimeBal < minWPrime {
			minWPrime = state.WPrimeBal
		}

		// Soft PDC sanity check: non-fatal, just a warning for the operator.
		if res.ElapsedSec > 0 && !req.Rider.WithinEnvelope(res.DeliveredPower, res.ElapsedSec) {
			log.Printf("[Course] segment %d power %.0fW exceeds PDC envelope for %.0fs duration", i, res.DeliveredPower, res.ElapsedSec)
		}

		cumTime += res.ElapsedSec
		cumDist += seg.LengthM
		cumEle = seg.EndEleM
		sumPT += res.DeliveredPower * res.ElapsedSec
		sumP4T += math.Pow(res.DeliveredPower, 4) * res.ElapsedSec

		avgSpeedKmh := 0.0
		if res.ElapsedSec > 0 {
			avgSpeedKmh = (seg.LengthM / res.ElapsedSec) * 3.6
		}

		trace = append(trace, model.SimulationTracePoint{
			DistKm:     cumDist / 1000,
			EleM:       cumEle,
			GradePct:   seg.Grade * 100,
			SpeedKmh:   avgSpeedKmh,
			PowerWatts: res.DeliveredPower,
			TimeSec:    cumTime,
			WPrimeBalJ: state.WPrimeBal,
			Walking:    res.Walking,
		})

		// 7. Bonk check.
		if state.IsBonked() {
			return finalize(req, trace, cumTime, sumPT, sumP4T, minWPrime, false, model.FailureBonk)
		}

		// 9. Advance entry speed.
		vCurrent = res.ExitSpeedMps
	}

	return finalize(req, trace, cumTime, sumPT, sumP4T, minWPrime, true, model.FailureNone)
}

func finalize(req Request, trace []model.SimulationTracePoint, totalTime, sumPT, sumP4T, minWPrime float64, ok bool, failure model.FailureKind) model.SimulationResult {
	totalDistKm := model.TotalLengthM(req.Segments[:len(trace)]) / 1000

	avgPower, np, avgSpeed := 0.0, 0.0, 0.0
	if totalTime > 0 {
		avgPower = sumPT / totalTime
		np = math.Pow(sumP4T/totalTime, 0.25)
		avgSpeed = (totalDistKm * 3600) / totalTime
	}

	return model.SimulationResult{
		TotalTimeSec:         totalTime,
		AvgSpeedKmh:          avgSpeed,
		AvgPowerWatts:        avgPower,
		NormalizedPowerWatts: np,
		WorkKJ:               sumPT / 1000,
		WPrimeMinJoules:      minWPrime,
		BasePowerWatts:       req.BasePower,
		IsFeasible:           ok,
		FailureKind:          failure,
		Trace:                trace,
	}
}

// windHeadComponent projects the environment wind vector onto the segment
// heading: v_head = wind_speed * cos(wind_dir - heading), both in radians
// (spec.md §4.4 step 2).
func windHeadComponent(env model.EnvironmentVector, headingDeg float64) float64 {
	rel := (env.WindDirDeg - headingDeg) * math.Pi / 180
	return env.WindSpeedMps * math.Cos(rel)
}

// torqueLimit returns the current torque-limited pedal force cap: an
// initial 1.5g-at-the-pedals bound, decayed by (3600/t)^0.05 after the
// first hour (spec.md §4.4 step 3).
func torqueLimit(massKg, cumTimeSec float64, solver model.SolverParams) float64 {
	fMax := massKg * gravity * solver.TorqueLimitFactorG
	if cumTimeSec > 3600 {
		fMax *= math.Pow(3600/cumTimeSec, solver.TorqueFatigueExponent)
	}
	return fMax
}
