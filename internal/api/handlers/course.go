package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nick-riduck/bike-course-simulator/internal/api/models"
	"github.com/nick-riduck/bike-course-simulator/internal/analysis"
	"github.com/nick-riduck/bike-course-simulator/internal/config"
	"github.com/nick-riduck/bike-course-simulator/internal/coursedata"
	"github.com/nick-riduck/bike-course-simulator/internal/model"
	"github.com/nick-riduck/bike-course-simulator/internal/pacing"
)

// CourseHandler serves course presets and difficulty rankings, the
// analogue of the teacher's DatasetHandler plus RankHandler
// (internal/api/handlers/datasets.go, rank.go).
type CourseHandler struct {
	CourseDir string
	RiderFile string
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseDir, riderFile string) *CourseHandler {
	if courseDir == "" {
		courseDir = coursedata.GetDefaultCourseDir()
	}
	return &CourseHandler{CourseDir: courseDir, RiderFile: riderFile}
}

// ListCourses handles GET /api/v1/courses.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	list, err := coursedata.DiscoverPresets(h.CourseDir)
	if err != nil {
		c.JSON(http.StatusOK, []models.CourseInfo{})
		return
	}
	out := make([]models.CourseInfo, 0, len(list.Courses))
	for _, p := range list.Courses {
		out = append(out, models.CourseInfo{ID: p.ID, Name: p.Name, File: p.File})
	}
	c.JSON(http.StatusOK, out)
}

// RankCourses handles GET /api/v1/courses/rank.
//
// Ranks every course preset in CourseDir by oracle best-case pacing time
// for a canonical rider, loaded from RiderFile if set, otherwise a
// built-in default profile.
func (h *CourseHandler) RankCourses(c *gin.Context) {
	list, err := coursedata.DiscoverPresets(h.CourseDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "COURSE_DIR_ERROR", Message: err.Error()},
		})
		return
	}

	courses := make(map[string][]model.Segment, len(list.Courses))
	for _, p := range list.Courses {
		segments, err := coursedata.LoadSegmentsJSON(p.File)
		if err != nil {
			continue
		}
		courses[p.Name] = segments
	}

	rider, physics, env, strategy, err := h.canonicalRider()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "RIDER_CONFIG_ERROR", Message: err.Error()},
		})
		return
	}

	profiles := analysis.RankByDifficulty(courses, rider, physics, env, strategy)
	out := make([]models.RankedCourse, 0, len(profiles))
	for i, p := range profiles {
		out = append(out, models.RankedCourse{
			Rank:            i + 1,
			Name:            p.Name,
			TotalDistanceKm: p.TotalDistanceKm,
			TotalClimbM:     p.TotalClimbM,
			MeanGradePct:    p.MeanGradePct,
			P95GradePct:     p.P95GradePct,
			OraclePacingSec: p.OraclePacingSec,
		})
	}
	c.JSON(http.StatusOK, models.RankResponse{Rankings: out})
}

func (h *CourseHandler) canonicalRider() (*model.RiderProfile, model.PhysicsParams, model.EnvironmentVector, pacing.Strategy, error) {
	if h.RiderFile != "" {
		cfg, err := config.Load(h.RiderFile)
		if err != nil {
			return nil, model.PhysicsParams{}, model.EnvironmentVector{}, pacing.Strategy{}, err
		}
		rider, err := cfg.Rider.ToModel()
		if err != nil {
			return nil, model.PhysicsParams{}, model.EnvironmentVector{}, pacing.Strategy{}, err
		}
		return &rider, cfg.Physics.ToModel(), cfg.Physics.ToEnvironment(), cfg.Pacing.ToStrategy(), nil
	}

	rider := model.RiderProfile{
		CPWatts:         250,
		WPrimeMaxJoules: 20000,
		MassKg:          75,
		PDC: map[float64]float64{
			5:    1000,
			60:   400,
			300:  310,
			1200: 270,
		},
		RiegelK: 0.10,
	}
	physics := model.PhysicsParams{
		CdA:            0.32,
		CrrDefault:     0.005,
		BikeMassKg:     9,
		DrivetrainLoss: 0.02,
		AirDensity:     1.225,
	}
	strategy := pacing.Strategy{Kind: pacing.GradeProportional, Params: pacing.DefaultParams()}
	return &rider, physics, model.EnvironmentVector{}, strategy, nil
}
