package main

import (
	"flag"
	"fmt"

	"github.com/nick-riduck/bike-course-simulator/internal/coursedata"
	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/optimizer"
	"github.com/nick-riduck/bike-course-simulator/internal/pacing"
)

// Demo:
// - Load a course segment stream from a JSON file
// - Instantiate a rider profile and physics parameters
// - Run the outer pacing optimizer to show how the pieces fit together
func main() {
	coursePath := flag.String("course", "examples/courses/flat_tt.json", "Path to course segment JSON")
	cp := flag.Float64("cp", 280, "Rider critical power (watts)")
	wPrime := flag.Float64("w-prime", 20000, "Rider W' (joules)")
	weight := flag.Float64("weight", 75, "Rider weight (kg)")
	n := flag.Int("n", 12, "Number of trace rows to print")
	flag.Parse()

	segments, err := coursedata.LoadSegmentsJSON(*coursePath)
	if err != nil {
		panic(err)
	}

	rider := model.RiderProfile{
		CPWatts:         *cp,
		WPrimeMaxJoules: *wPrime,
		MassKg:          *weight,
		PDC: map[float64]float64{
			5:    *cp * 4.0,
			60:   *cp * 1.5,
			300:  *cp * 1.15,
			1200: *cp * 1.02,
		},
		RiegelK: 0.10,
	}
	if err := rider.Validate(); err != nil {
		panic(err)
	}

	physics := model.PhysicsParams{
		CdA:            0.32,
		CrrDefault:     0.005,
		BikeMassKg:     9,
		DrivetrainLoss: 0.02,
		AirDensity:     1.225,
	}

	strategy := pacing.Strategy{Kind: pacing.GradeProportional, Params: pacing.DefaultParams()}

	result := optimizer.FindOptimalPacing(optimizer.Request{
		Segments: segments,
		Rider:    &rider,
		Physics:  physics,
		Env:      model.EnvironmentVector{},
		Solver:   model.DefaultSolverParams(),
		Strategy: strategy,
	})

	fmt.Printf("Loaded %d segments from %s\n", len(segments), *coursePath)
	fmt.Printf("Feasible=%v FailReason=%q BasePower=%.1fW\n\n", result.IsFeasible, result.FailureKind, result.BasePowerWatts)

	for i := 0; i < min(*n, len(result.Trace)); i++ {
		t := result.Trace[i]
		fmt.Printf(
			"dist=%6.2fkm ele=%6.1fm grade=%5.1f%% speed=%5.1fkm/h power=%5.0fW w'=%7.0fJ walking=%v\n",
			t.DistKm, t.EleM, t.GradePct, t.SpeedKmh, t.PowerWatts, t.WPrimeBalJ, t.Walking,
		)
	}

	fmt.Printf("\nDone. TotalTime=%.1fs AvgSpeed=%.2fkm/h NP=%.1fW W'min=%.0fJ\n",
		result.TotalTimeSec, result.AvgSpeedKmh, result.NormalizedPowerWatts, result.WPrimeMinJoules)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
