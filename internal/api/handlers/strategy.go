package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nick-riduck/bike-course-simulator/internal/api/models"
)

// StrategyHandler serves metadata about the available pacing strategies,
// the analogue of the teacher's StrategyHandler (internal/api/handlers/strategy.go).
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler.
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies.
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, []models.StrategyInfo{
		{
			Name:        "grade_proportional",
			Description: "Scales target power above/below base power proportionally to instantaneous grade; coasts below the gravity-assisted coast grade.",
			Parameters: []models.ParameterInfo{
				{Name: "alpha_climb", Type: "float", Description: "Climbing power boost per unit grade", Default: 2.5},
				{Name: "alpha_descent", Type: "float", Description: "Descending power reduction per unit grade", Default: 10.0},
				{Name: "g_coast", Type: "float", Description: "Grade below which the rider coasts (zero power)", Default: -0.05},
			},
		},
		{
			Name:        "speed_asymmetric",
			Description: "Targets a reference speed with asymmetric response: pushes harder when below reference speed than it eases off when above it.",
			Parameters: []models.ParameterInfo{
				{Name: "beta_slow", Type: "float", Description: "Power gain applied when below reference speed", Default: 1.0},
				{Name: "beta_fast", Type: "float", Description: "Power gain applied when above reference speed", Default: -1.0},
				{Name: "g_coast", Type: "float", Description: "Grade below which the rider coasts (zero power)", Default: -0.05},
			},
		},
	})
}
