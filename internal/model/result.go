package model

// FailureKind enumerates the exhaustive set of ways a simulation or
// optimizer pass can fail (§7). Failures are values on the result, never
// exceptions.
type FailureKind string

const (
	FailureNone           FailureKind = ""
	FailureBonk           FailureKind = "BONK"
	FailureOverEnvelope   FailureKind = "OVER_ENVELOPE"
	FailureDegenerate     FailureKind = "DEGENERATE_INPUT"
	FailureNumeric        FailureKind = "NUMERIC"
)

// SimulationTracePoint is one produced per-segment record (§3, §6.5).
type SimulationTracePoint struct {
	DistKm     float64
	EleM       float64
	GradePct   float64
	SpeedKmh   float64
	PowerWatts float64
	TimeSec    float64
	WPrimeBalJ float64
	Walking    bool
}

// SimulationResult is the output of one course simulation pass (§3, §6.4).
type SimulationResult struct {
	TotalTimeSec         float64
	AvgSpeedKmh          float64
	AvgPowerWatts        float64
	NormalizedPowerWatts float64
	WorkKJ               float64
	WPrimeMinJoules      float64
	BasePowerWatts       float64
	IsFeasible           bool
	FailureKind          FailureKind
	Trace                []SimulationTracePoint
}
