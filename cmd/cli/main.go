package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nick-riduck/bike-course-simulator/internal/analysis"
	"github.com/nick-riduck/bike-course-simulator/internal/config"
	"github.com/nick-riduck/bike-course-simulator/internal/course"
	"github.com/nick-riduck/bike-course-simulator/internal/coursedata"
	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/optimizer"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "plan":
		cmdPlan(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli plan --course course.json --config examples/config.yaml --out results/trace.csv")
	fmt.Println("  cli rank --courses examples/courses --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - plan runs the outer pacing optimizer and writes a per-segment trace CSV")
	fmt.Println("  - rank computes a terrain difficulty + oracle pacing time per course")
}

func cmdPlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	coursePath := fs.String("course", "", "Path to course segment JSON")
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/trace.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *coursePath == "" {
		fmt.Println("--course is required")
		os.Exit(2)
	}
	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	segments, err := coursedata.LoadSegmentsJSON(*coursePath)
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	rider, err := cfg.Rider.ToModel()
	if err != nil {
		panic(err)
	}

	res := optimizer.FindOptimalPacing(optimizer.Request{
		Segments: segments,
		Rider:    &rider,
		Physics:  cfg.Physics.ToModel(),
		Env:      cfg.Physics.ToEnvironment(),
		Solver:   cfg.Solver.ToModel(),
		Strategy: cfg.Pacing.ToStrategy(),
	})

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := course.WriteTraceCSV(*outPath, res.Trace); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d trace rows to %s\n", len(res.Trace), *outPath)
	fmt.Printf("Feasible=%v FailReason=%q\n", res.IsFeasible, res.FailureKind)
	fmt.Printf("TotalTime=%.1fs AvgSpeed=%.2fkm/h NP=%.1fW BasePower=%.1fW W'min=%.0fJ\n",
		res.TotalTimeSec, res.AvgSpeedKmh, res.NormalizedPowerWatts, res.BasePowerWatts, res.WPrimeMinJoules)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	courseDir := fs.String("courses", "", "Directory of course segment JSON files")
	cfgPath := fs.String("config", "", "Path to YAML config (rider/physics/strategy)")
	_ = fs.Parse(args)

	if *courseDir == "" {
		fmt.Println("--courses is required")
		os.Exit(2)
	}
	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	rider, err := cfg.Rider.ToModel()
	if err != nil {
		panic(err)
	}

	list, err := coursedata.DiscoverPresets(*courseDir)
	if err != nil {
		panic(err)
	}

	courses := make(map[string][]model.Segment, len(list.Courses))
	for _, p := range list.Courses {
		segments, err := coursedata.LoadSegmentsJSON(p.File)
		if err != nil {
			fmt.Printf("  warning: failed to load %s: %v\n", p.File, err)
			continue
		}
		courses[p.Name] = segments
	}

	profiles := analysis.RankByDifficulty(courses, &rider, cfg.Physics.ToModel(), cfg.Physics.ToEnvironment(), cfg.Pacing.ToStrategy())

	fmt.Printf("%-4s %-24s %-10s %-10s %-10s %-10s %-12s\n", "rank", "course", "dist_km", "climb_m", "mean_grd%", "p95_grd%", "oracle_sec")
	for i, p := range profiles {
		fmt.Printf(
			"%-4d %-24s %-10.1f %-10.0f %-10.2f %-10.2f %-12.1f\n",
			i+1,
			p.Name,
			p.TotalDistanceKm,
			p.TotalClimbM,
			p.MeanGradePct,
			p.P95GradePct,
			p.OraclePacingSec,
		)
	}
}
