package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nick-riduck/bike-course-simulator/internal/coursedata"
	"github.com/nick-riduck/bike-course-simulator/internal/weather"
)

// fetch-weather prefetches the wind vector for a course's starting
// coordinates and writes it to a small JSON file whose wind_speed_mps and
// wind_dir_deg fields match the physics section of a plan config; the
// config loader does not read this file itself. The course-wide analogue
// of the teacher's update-locations tool (cmd/update-locations in the
// teacher), which refreshes Grid Status location metadata instead.
func main() {
	var (
		coursePath = flag.String("course", "", "Path to course segment JSON")
		outputPath = flag.String("output", "", "Output file path (default: <course>.wind.json)")
		baseURL    = flag.String("base-url", "", "Override the Open-Meteo base URL")
		atFlag     = flag.String("at", "", "RFC3339 timestamp to fetch wind for (default: now)")
	)
	flag.Parse()

	if *coursePath == "" {
		log.Fatal("--course is required")
	}

	segments, err := coursedata.LoadSegmentsJSON(*coursePath)
	if err != nil {
		log.Fatalf("failed to load course: %v", err)
	}
	if len(segments) == 0 {
		log.Fatal("course has no segments")
	}

	lat := segments[0].StartLat
	lon := segments[0].StartLon
	if lat == 0 && lon == 0 {
		log.Fatal("course has no start coordinates; cannot fetch wind")
	}

	at := time.Now()
	if *atFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			log.Fatalf("invalid --at timestamp: %v", err)
		}
		at = parsed
	}

	if *outputPath == "" {
		*outputPath = *coursePath + ".wind.json"
	}

	client := weather.NewClient(*baseURL)

	fmt.Printf("Fetching wind for lat=%.4f lon=%.4f at=%s\n", lat, lon, at.Format(time.RFC3339))
	env, err := client.FetchWind(lat, lon, at)
	if err != nil {
		log.Fatalf("failed to fetch wind: %v", err)
	}

	raw, err := json.MarshalIndent(struct {
		WindSpeedMps float64   `json:"wind_speed_mps"`
		WindDirDeg   float64   `json:"wind_dir_deg"`
		FetchedAt    time.Time `json:"fetched_at"`
		Lat          float64   `json:"lat"`
		Lon          float64   `json:"lon"`
	}{env.WindSpeedMps, env.WindDirDeg, at, lat, lon}, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal wind output: %v", err)
	}

	if err := os.WriteFile(*outputPath, raw, 0o644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	fmt.Printf("Wrote wind vector (%.1f m/s from %.0f deg) to %s\n", env.WindSpeedMps, env.WindDirDeg, *outputPath)
}
