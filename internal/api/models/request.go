package models

// PlanRequest represents the request body for running the pacing optimizer.
type PlanRequest struct {
	Course   CourseSource   `json:"course" binding:"required"`
	Rider    RiderConfig    `json:"rider" binding:"required"`
	Physics  PhysicsConfig  `json:"physics" binding:"required"`
	Strategy StrategyConfig `json:"strategy" binding:"required"`
	Options  PlanOptions    `json:"options,omitempty"`
}

// CourseSource identifies where to load the segment stream from.
type CourseSource struct {
	PresetID string `json:"preset_id,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

// RiderConfig carries the rider profile fields (spec.md §6.2).
type RiderConfig struct {
	CP         float64            `json:"cp" binding:"required"`
	WPrimeMax  float64            `json:"w_prime_max" binding:"required"`
	WeightKg   float64            `json:"weight_kg" binding:"required"`
	PDC        map[string]float64 `json:"pdc" binding:"required"`
	RiegelK    float64            `json:"riegel_k,omitempty"`
}

// PhysicsConfig carries physics and environment fields (spec.md §6.3).
type PhysicsConfig struct {
	CdA            float64 `json:"cda" binding:"required"`
	Crr            float64 `json:"crr" binding:"required"`
	BikeWeightKg   float64 `json:"bike_weight_kg" binding:"required"`
	DrivetrainLoss float64 `json:"drivetrain_loss"`
	AirDensity     float64 `json:"air_density,omitempty"`
	DraftingFactor float64 `json:"drafting_factor,omitempty"`
	WindSpeedMps   float64 `json:"wind_speed_mps,omitempty"`
	WindDirDeg     float64 `json:"wind_dir_deg,omitempty"`
}

// StrategyConfig selects and parameterizes the pacing strategy.
type StrategyConfig struct {
	Mode   string         `json:"mode" binding:"required"` // "grade_proportional" | "speed_asymmetric"
	Params map[string]any `json:"params,omitempty"`
}

// PlanOptions holds optional request-level switches.
type PlanOptions struct {
	IncludeTrace bool `json:"include_trace,omitempty"`
}

// CompareRequest runs the optimizer once per named variation.
type CompareRequest struct {
	Course     CourseSource          `json:"course" binding:"required"`
	BaseRider  RiderConfig           `json:"base_rider" binding:"required"`
	Physics    PhysicsConfig         `json:"physics" binding:"required"`
	Variations []CompareVariation    `json:"variations" binding:"required"`
}

// CompareVariation names one strategy variant to run against BaseRider.
type CompareVariation struct {
	Name     string         `json:"name" binding:"required"`
	Strategy StrategyConfig `json:"strategy" binding:"required"`
}

// RankRequest ranks several courses by difficulty for a canonical rider.
type RankRequest struct {
	CourseDir string `form:"course_dir,omitempty"`
}
