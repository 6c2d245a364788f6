package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/nick-riduck/bike-course-simulator/internal/api/models"
	"github.com/nick-riduck/bike-course-simulator/internal/coursedata"
	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/optimizer"
	"github.com/nick-riduck/bike-course-simulator/internal/pacing"
)

// PlanHandler handles pacing-plan requests.
type PlanHandler struct {
	CourseDir string
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(courseDir string) *PlanHandler {
	if courseDir == "" {
		courseDir = coursedata.GetDefaultCourseDir()
	}
	return &PlanHandler{CourseDir: courseDir}
}

// RunPlan handles POST /api/v1/plans.
func (h *PlanHandler) RunPlan(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	segments, err := h.loadCourse(req.Course)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_COURSE", Message: err.Error()},
		})
		return
	}

	rider, err := toRiderProfile(req.Rider)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_RIDER", Message: err.Error()},
		})
		return
	}

	physics, env := toPhysics(req.Physics)
	if err := physics.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_PHYSICS", Message: err.Error()},
		})
		return
	}

	strategy, err := toStrategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_STRATEGY", Message: err.Error()},
		})
		return
	}

	result := optimizer.FindOptimalPacing(optimizer.Request{
		Segments: segments,
		Rider:    &rider,
		Physics:  physics,
		Env:      env,
		Solver:   model.DefaultSolverParams(),
		Strategy: strategy,
	})

	resp := buildPlanResponse(result, req.Options.IncludeTrace)
	resp.ID = uuid.NewString()
	c.JSON(http.StatusOK, resp)
}

// GetTrace handles GET /api/v1/plans/:id/trace.
//
// Placeholder: result caching by plan ID is not yet implemented; use
// include_trace=true on the plan request instead.
func (h *PlanHandler) GetTrace(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusNotImplemented, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "NOT_IMPLEMENTED",
			Message: "Trace retrieval not yet implemented. Use include_trace=true in the plan request.",
		},
	})
	_ = id // TODO: implement result caching keyed by plan ID
}

// ComparePlans handles POST /api/v1/plans/compare.
func (h *PlanHandler) ComparePlans(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	segments, err := h.loadCourse(req.Course)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_COURSE", Message: err.Error()},
		})
		return
	}
	rider, err := toRiderProfile(req.BaseRider)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_RIDER", Message: err.Error()},
		})
		return
	}
	physics, env := toPhysics(req.Physics)

	results := make([]models.CompareResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		strategy, err := toStrategy(v.Strategy)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "INVALID_STRATEGY", Message: fmt.Sprintf("%s: %v", v.Name, err)},
			})
			return
		}
		res := optimizer.FindOptimalPacing(optimizer.Request{
			Segments: segments,
			Rider:    &rider,
			Physics:  physics,
			Env:      env,
			Solver:   model.DefaultSolverParams(),
			Strategy: strategy,
		})
		results = append(results, models.CompareResult{
			Name:    v.Name,
			Summary: buildSummary(res),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: results})
}

func (h *PlanHandler) loadCourse(src models.CourseSource) ([]model.Segment, error) {
	path := src.FilePath
	if path == "" && src.PresetID != "" {
		path = fmt.Sprintf("%s/%s.json", h.CourseDir, src.PresetID)
	}
	if path == "" {
		return nil, fmt.Errorf("course.file_path or course.preset_id is required")
	}
	return coursedata.LoadSegmentsJSON(path)
}

func toRiderProfile(r models.RiderConfig) (model.RiderProfile, error) {
	pdc := make(map[float64]float64, len(r.PDC))
	for k, v := range r.PDC {
		sec, err := cast.ToFloat64E(k)
		if err != nil {
			return model.RiderProfile{}, fmt.Errorf("pdc key %q: %w", k, err)
		}
		pdc[sec] = v
	}
	rider := model.RiderProfile{
		CPWatts:         r.CP,
		WPrimeMaxJoules: r.WPrimeMax,
		MassKg:          r.WeightKg,
		PDC:             pdc,
		RiegelK:         r.RiegelK,
	}
	if err := rider.Validate(); err != nil {
		return model.RiderProfile{}, err
	}
	return rider, nil
}

func toPhysics(p models.PhysicsConfig) (model.PhysicsParams, model.EnvironmentVector) {
	phys := model.PhysicsParams{
		CdA:            p.CdA,
		CrrDefault:     p.Crr,
		BikeMassKg:     p.BikeWeightKg,
		DrivetrainLoss: p.DrivetrainLoss,
		AirDensity:     p.AirDensity,
		DraftingFactor: p.DraftingFactor,
	}
	if phys.AirDensity == 0 {
		phys.AirDensity = 1.225
	}
	env := model.EnvironmentVector{
		WindSpeedMps: p.WindSpeedMps,
		WindDirDeg:   p.WindDirDeg,
	}
	return phys, env
}

func toStrategy(s models.StrategyConfig) (pacing.Strategy, error) {
	kind := pacing.GradeProportional
	switch s.Mode {
	case "grade_proportional", "":
		kind = pacing.GradeProportional
	case "speed_asymmetric":
		kind = pacing.SpeedAsymmetric
	default:
		return pacing.Strategy{}, fmt.Errorf("unknown strategy mode %q", s.Mode)
	}

	params := pacing.DefaultParams()
	for k, v := range s.Params {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			continue
		}
		switch k {
		case "alpha_climb":
			params.AlphaClimb = f
		case "alpha_descent":
			params.AlphaDescent = f
		case "g_coast":
			params.GCoast = f
		case "beta_slow":
			params.BetaSlow = f
		case "beta_fast":
			params.BetaFast = f
		}
	}
	return pacing.Strategy{Kind: kind, Params: params}, nil
}

func buildSummary(res model.SimulationResult) models.PlanSummary {
	return models.PlanSummary{
		TotalTimeSec:         res.TotalTimeSec,
		AvgSpeedKmh:          res.AvgSpeedKmh,
		AvgPowerWatts:        res.AvgPowerWatts,
		NormalizedPowerWatts: res.NormalizedPowerWatts,
		WorkKJ:               res.WorkKJ,
		WPrimeMinJoules:      res.WPrimeMinJoules,
		BasePowerWatts:       res.BasePowerWatts,
		IsSuccess:            res.IsFeasible,
		FailReason:           string(res.FailureKind),
	}
}

func buildPlanResponse(res model.SimulationResult, includeTrace bool) models.PlanResponse {
	status := "ok"
	if !res.IsFeasible {
		status = "infeasible"
	}
	resp := models.PlanResponse{
		Status:  status,
		Summary: buildSummary(res),
	}
	if includeTrace {
		resp.Trace = make([]models.TracePoint, 0, len(res.Trace))
		for _, t := range res.Trace {
			resp.Trace = append(resp.Trace, models.TracePoint{
				DistKm:    t.DistKm,
				Ele:       t.EleM,
				GradePct:  t.GradePct,
				SpeedKmh:  t.SpeedKmh,
				Power:     t.PowerWatts,
				TimeSec:   t.TimeSec,
				WPrimeBal: t.WPrimeBalJ,
				Walking:   t.Walking,
			})
		}
	}
	return resp
}
