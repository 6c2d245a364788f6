package course

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/nick-riduck/bike-course-simulator/internal/model"
)

// WriteTraceCSV writes a pacing simulation's per-segment trace, the
// direct analogue of the teacher's backtest.WriteLedgerCSV
// (internal/backtest/csv.go in the teacher).
func WriteTraceCSV(path string, trace []model.SimulationTracePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"dist_km",
		"ele_m",
		"grade_pct",
		"speed_kmh",
		"power_watts",
		"time_sec",
		"w_prime_bal_j",
		"walking",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, t := range trace {
		row := []string{
			fmtFloat(t.DistKm),
			fmtFloat(t.EleM),
			fmtFloat(t.GradePct),
			fmtFloat(t.SpeedKmh),
			fmtFloat(t.PowerWatts),
			fmtFloat(t.TimeSec),
			fmtFloat(t.WPrimeBalJ),
			strconv.FormatBool(t.Walking),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
