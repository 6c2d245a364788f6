// Package integrator solves the segment-level work-energy balance: given a
// segment, a target power, an entry speed, and a head/tailwind component, it
// produces the exit speed, elapsed time, a walking flag, and the
// actually-delivered power after torque and brake limits (spec.md §4.3).
package integrator

import "math"

const (
	// ChunkTargetLenM is the target length for discretizing a segment into
	// sub-chunks with (approximately) constant inputs.
	ChunkTargetLenM = 20.0

	bisectionIterations = 15
	vOutLowMps          = 0.01
	vOutHighMps         = 45.0

	walkingThresholdKmh = 5.0
	walkingPowerWatts   = 30.0

	brakeThresholdKmh = 50.0

	minVAvgMps = 0.1
)

// Params bundles the physics constants the integrator needs per call. These
// are a subset/projection of model.PhysicsParams plus the run's total mass,
// kept decoupled from the model package so the integrator has no import
// cycle back to the simulator that owns the rider/physics state.
type Params struct {
	TotalMassKg    float64 // rider + bike (+ any fixed cargo)
	AirDensity     float64
	EffectiveCdA   float64 // CdA * (1 - drafting)
	DrivetrainLoss float64 // fraction in [0,1)
	Crr            float64
}

// Result is what one segment integration produces.
type Result struct {
	ExitSpeedMps    float64
	ElapsedSec      float64
	Walking         bool
	DeliveredPower  float64
}

// Segment is the minimal shape the integrator needs from a course segment.
type Segment struct {
	LengthM float64
	Grade   float64
}

const g = 9.81

// Integrate runs the segment, target power, entry speed, wind component
// (m/s, positive = headwind), and torque limit (N) through the work-energy
// balance, chunked into ~20 m pieces (spec.md §4.3).
func Integrate(seg Segment, targetPower, vIn, vWind, forceLimit float64, p Params) Result {
	length := seg.LengthM
	if length <= 0 {
		return Result{ExitSpeedMps: vIn}
	}

	nChunks := int(math.Round(length / ChunkTargetLenM))
	if nChunks < 1 {
		nChunks = 1
	}
	chunkLen := length / float64(nChunks)

	v := vIn
	totalTime := 0.0
	weightedPowerTime := 0.0
	anyWalking := false

	fGravity := p.TotalMassKg * g * seg.Grade
	fRoll := p.TotalMassKg * g * p.Crr
	pAvail := targetPower * (1 - p.DrivetrainLoss)

	for c := 0; c < nChunks; c++ {
		vOut, walking := solveChunk(v, chunkLen, pAvail, vWind, forceLimit, fGravity, fRoll, p)

		vAvgRaw := (v + vOut) / 2
		vAvgChunk := vAvgRaw
		if walking {
			vAvgChunk = kmhToMps(walkingThresholdKmh)
		}
		if vAvgChunk < minVAvgMps {
			vAvgChunk = minVAvgMps
		}

		dt := chunkLen / vAvgChunk

		delivered := targetPower
		if walking {
			delivered = walkingPowerWatts
		} else {
			fRequired := pedalForce(pAvail, vAvgRaw)
			if fRequired > forceLimit {
				delivered = forceLimit * vAvgRaw / (1 - p.DrivetrainLoss)
			}
		}

		totalTime += dt
		weightedPowerTime += delivered * dt

		if walking {
			anyWalking = true
			v = kmhToMps(walkingThresholdKmh)
		} else {
			v = vOut
		}
	}

	avgDelivered := 0.0
	if totalTime > 0 {
		avgDelivered = weightedPowerTime / totalTime
	}

	return Result{
		ExitSpeedMps:   v,
		ElapsedSec:     totalTime,
		Walking:        anyWalking,
		DeliveredPower: avgDelivered,
	}
}

// solveChunk bisects for the exit speed of one constant-input chunk and
// applies the minimum-speed walking clamp.
func solveChunk(vIn, chunkLen, pAvail, vWind, forceLimit, fGravity, fRoll float64, p Params) (vOut float64, walking bool) {
	lo, hi := vOutLowMps, vOutHighMps

	energyBalance := func(vCand float64) float64 {
		vAvg := (vIn + vCand) / 2
		fNet := netForce(pAvail, vAvg, vWind, forceLimit, fGravity, fRoll, p)
		lhs := 0.5*p.TotalMassKg*vIn*vIn + fNet*chunkLen
		rhs := 0.5 * p.TotalMassKg * vCand * vCand
		return lhs - rhs
	}

	for i := 0; i < bisectionIterations; i++ {
		mid := (lo + hi) / 2
		if energyBalance(mid) > 0 {
			// Net energy still positive at mid: true v_out is higher.
			lo = mid
		} else {
			hi = mid
		}
	}
	vOut = (lo + hi) / 2

	if mpsToKmh(vOut) < walkingThresholdKmh {
		return kmhToMps(walkingThresholdKmh), true
	}
	return vOut, false
}

func netForce(pAvail, vAvg, vWind, forceLimit, fGravity, fRoll float64, p Params) float64 {
	fPedal := pedalForceLimited(pAvail, vAvg, forceLimit)
	fDrag := dragForce(vAvg, vWind, p)
	fBrake := brakeForce(vAvg, p.TotalMassKg)
	return fPedal - fDrag - fGravity - fRoll - fBrake
}

func pedalForce(pAvail, vAvg float64) float64 {
	v := vAvg
	if v < minVAvgMps {
		v = minVAvgMps
	}
	return pAvail / v
}

func pedalForceLimited(pAvail, vAvg, forceLimit float64) float64 {
	f := pedalForce(pAvail, vAvg)
	if f > forceLimit {
		return forceLimit
	}
	return f
}

// dragForce is signed: a headwind component increases drag, a tailwind
// exceeding ground speed can push (negative retarding force).
func dragForce(vAvg, vWind float64, p Params) float64 {
	vAir := vAvg + vWind
	return 0.5 * p.AirDensity * p.EffectiveCdA * vAir * math.Abs(vAir)
}

// brakeForce models the downhill soft wall: above 50 km/h, convert an
// empirical deceleration curve into a retarding force. Documented as policy,
// not physics (spec.md §9).
func brakeForce(vAvg, totalMassKg float64) float64 {
	vKmh := mpsToKmh(vAvg)
	if vKmh <= brakeThresholdKmh {
		return 0
	}
	decel := 0.22 * math.Pow(vKmh-brakeThresholdKmh, 1.2) / 3.6
	return totalMassKg * decel
}

func mpsToKmh(v float64) float64 { return v * 3.6 }
func kmhToMps(v float64) float64 { return v / 3.6 }
