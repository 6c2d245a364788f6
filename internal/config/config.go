// Package config loads the YAML configuration for a pacing run: rider
// profile, physics parameters, pacing strategy selection, and solver
// constants. Layered the way the teacher's battery-backtest config loader
// works: a top-level Config with nested sections, an optional external
// rider file merged on top of inline overrides, and Validate() constructing
// the real domain objects so errors surface at load time.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/pacing"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load rider parameters from a separate YAML file (e.g.
	// examples/riders/*.yaml). If both RiderFile and Rider are provided,
	// Rider's non-zero fields override RiderFile.
	RiderFile string        `yaml:"rider_file"`
	Rider     RiderConfig   `yaml:"rider"`
	Physics   PhysicsConfig `yaml:"physics"`
	Pacing    PacingConfig  `yaml:"pacing"`
	Solver    SolverConfig  `yaml:"solver"`
}

type RiderConfig struct {
	Name            string         `yaml:"name"`
	CPWatts         float64        `yaml:"cp"`
	WPrimeMaxJoules float64        `yaml:"w_prime_max"`
	WeightKg        float64        `yaml:"weight_kg"`
	PDC             map[string]any `yaml:"pdc"`
	RiegelK         float64        `yaml:"riegel_k"`
}

type PhysicsConfig struct {
	CdA            float64 `yaml:"cda"`
	Crr            float64 `yaml:"crr"`
	BikeWeightKg   float64 `yaml:"bike_weight_kg"`
	DrivetrainLoss float64 `yaml:"drivetrain_loss"`
	AirDensity     float64 `yaml:"air_density"`
	DraftingFactor float64 `yaml:"drafting_factor"`
	WindSpeedMps   float64 `yaml:"wind_speed_mps"`
	WindDirDeg     float64 `yaml:"wind_dir_deg"`
}

type PacingConfig struct {
	Mode         string  `yaml:"mode"` // "grade_proportional" | "speed_asymmetric"
	AlphaClimb   float64 `yaml:"alpha_climb"`
	AlphaDescent float64 `yaml:"alpha_descent"`
	GCoast       float64 `yaml:"g_coast"`
	BetaSlow     float64 `yaml:"beta_slow"`
	BetaFast     float64 `yaml:"beta_fast"`
}

type SolverConfig struct {
	BisectionIterations   int     `yaml:"bisection_iterations"`
	BasePowerLowWatts     float64 `yaml:"base_power_low_watts"`
	BasePowerHighWatts    float64 `yaml:"base_power_high_watts"`
	PCapMultiple          float64 `yaml:"p_cap_multiple"`
	TorqueLimitFactorG    float64 `yaml:"torque_limit_factor_g"`
	TorqueFatigueExponent float64 `yaml:"torque_fatigue_exponent"`
	RollingStartMps       float64 `yaml:"rolling_start_mps"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	applyDefaults(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it. Useful
// for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.RiderFile != "" {
		riderPath := c.RiderFile
		if !filepath.IsAbs(riderPath) {
			cand := filepath.Join(filepath.Dir(path), riderPath)
			if _, err := os.Stat(cand); err == nil {
				riderPath = cand
			}
		}
		loaded, err := loadRiderFile(riderPath)
		if err != nil {
			return nil, err
		}
		c.Rider = mergeRider(loaded, c.Rider)
	}
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Physics.AirDensity == 0 {
		c.Physics.AirDensity = 1.225
	}
	if c.Pacing.Mode == "" {
		c.Pacing.Mode = "grade_proportional"
	}
	if c.Pacing.AlphaClimb == 0 {
		c.Pacing.AlphaClimb = 2.5
	}
	if c.Pacing.AlphaDescent == 0 {
		c.Pacing.AlphaDescent = 10
	}
	if c.Pacing.GCoast == 0 {
		c.Pacing.GCoast = -0.05
	}
	if c.Solver.BisectionIterations == 0 {
		c.Solver.BisectionIterations = 15
	}
	if c.Solver.BasePowerHighWatts == 0 {
		c.Solver.BasePowerHighWatts = 1500
	}
	if c.Solver.BasePowerLowWatts == 0 {
		c.Solver.BasePowerLowWatts = 10
	}
	if c.Solver.PCapMultiple == 0 {
		c.Solver.PCapMultiple = 2.5
	}
	if c.Solver.TorqueLimitFactorG == 0 {
		c.Solver.TorqueLimitFactorG = 1.5
	}
	if c.Solver.TorqueFatigueExponent == 0 {
		c.Solver.TorqueFatigueExponent = 0.05
	}
	if c.Rider.RiegelK == 0 {
		c.Rider.RiegelK = 0.10
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	rider, err := c.Rider.ToModel()
	if err != nil {
		return fmt.Errorf("rider config invalid: %w", err)
	}
	if err := rider.Validate(); err != nil {
		return fmt.Errorf("rider config invalid: %w", err)
	}
	physics := c.Physics.ToModel()
	if err := physics.Validate(); err != nil {
		return fmt.Errorf("physics config invalid: %w", err)
	}
	return nil
}

// ToModel converts the YAML rider section into model.RiderProfile, using
// cast to coerce the loosely-typed PDC map (string/int/float duration keys
// to float64 seconds, and watt values that may arrive as ints or strings).
func (r RiderConfig) ToModel() (model.RiderProfile, error) {
	pdc := make(map[float64]float64, len(r.PDC))
	for k, v := range r.PDC {
		sec, err := cast.ToFloat64E(k)
		if err != nil {
			return model.RiderProfile{}, fmt.Errorf("pdc key %q: %w", k, err)
		}
		watts, err := cast.ToFloat64E(v)
		if err != nil {
			return model.RiderProfile{}, fmt.Errorf("pdc value for key %q: %w", k, err)
		}
		pdc[sec] = watts
	}
	return model.RiderProfile{
		CPWatts:         r.CPWatts,
		WPrimeMaxJoules: r.WPrimeMaxJoules,
		MassKg:          r.WeightKg,
		PDC:             pdc,
		RiegelK:         r.RiegelK,
	}, nil
}

func (p PhysicsConfig) ToModel() model.PhysicsParams {
	return model.PhysicsParams{
		CdA:            p.CdA,
		CrrDefault:     p.Crr,
		BikeMassKg:     p.BikeWeightKg,
		DrivetrainLoss: p.DrivetrainLoss,
		AirDensity:     p.AirDensity,
		DraftingFactor: p.DraftingFactor,
	}
}

func (p PhysicsConfig) ToEnvironment() model.EnvironmentVector {
	return model.EnvironmentVector{
		WindSpeedMps: p.WindSpeedMps,
		WindDirDeg:   p.WindDirDeg,
	}
}

func (p PacingConfig) ToStrategy() pacing.Strategy {
	kind := pacing.GradeProportional
	if p.Mode == "speed_asymmetric" {
		kind = pacing.SpeedAsymmetric
	}
	params := pacing.DefaultParams()
	if p.AlphaClimb != 0 {
		params.AlphaClimb = p.AlphaClimb
	}
	if p.AlphaDescent != 0 {
		params.AlphaDescent = p.AlphaDescent
	}
	if p.GCoast != 0 {
		params.GCoast = p.GCoast
	}
	if p.BetaSlow != 0 {
		params.BetaSlow = p.BetaSlow
	}
	if p.BetaFast != 0 {
		params.BetaFast = p.BetaFast
	}
	return pacing.Strategy{Kind: kind, Params: params}
}

func (s SolverConfig) ToModel() model.SolverParams {
	sp := model.DefaultSolverParams()
	if s.BisectionIterations != 0 {
		sp.BisectionIterations = s.BisectionIterations
	}
	if s.BasePowerLowWatts != 0 {
		sp.BasePowerLowWatts = s.BasePowerLowWatts
	}
	if s.BasePowerHighWatts != 0 {
		sp.BasePowerHighWatts = s.BasePowerHighWatts
	}
	if s.PCapMultiple != 0 {
		sp.PCapMultiple = s.PCapMultiple
	}
	if s.TorqueLimitFactorG != 0 {
		sp.TorqueLimitFactorG = s.TorqueLimitFactorG
	}
	if s.TorqueFatigueExponent != 0 {
		sp.TorqueFatigueExponent = s.TorqueFatigueExponent
	}
	sp.RollingStartMps = s.RollingStartMps
	return sp
}

type riderFileWrapper struct {
	Rider RiderConfig `yaml:"rider"`
}

func loadRiderFile(path string) (RiderConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RiderConfig{}, err
	}
	var w riderFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return RiderConfig{}, err
	}
	return w.Rider, nil
}

// mergeRider overlays non-zero fields from override onto base.
func mergeRider(base, override RiderConfig) RiderConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CPWatts != 0 {
		out.CPWatts = override.CPWatts
	}
	if override.WPrimeMaxJoules != 0 {
		out.WPrimeMaxJoules = override.WPrimeMaxJoules
	}
	if override.WeightKg != 0 {
		out.WeightKg = override.WeightKg
	}
	if len(override.PDC) > 0 {
		out.PDC = override.PDC
	}
	if override.RiegelK != 0 {
		out.RiegelK = override.RiegelK
	}
	return out
}
