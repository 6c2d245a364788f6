package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/nick-riduck/bike-course-simulator/internal/api/models"
	"github.com/nick-riduck/bike-course-simulator/internal/config"
)

// RiderHandler serves the rider presets available on disk, the analogue of
// the teacher's BatteryHandler (internal/api/handlers/battery.go).
type RiderHandler struct {
	RiderDir string
}

// NewRiderHandler creates a new rider handler.
func NewRiderHandler(riderDir string) *RiderHandler {
	if riderDir == "" {
		riderDir = "./examples/riders"
	}
	return &RiderHandler{RiderDir: riderDir}
}

// ListRiders handles GET /api/v1/riders.
func (h *RiderHandler) ListRiders(c *gin.Context) {
	entries, err := os.ReadDir(h.RiderDir)
	if err != nil {
		c.JSON(http.StatusOK, []models.RiderInfo{})
		return
	}

	riders := make([]models.RiderInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.RiderDir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var rc config.RiderConfig
		if err := yaml.Unmarshal(raw, &rc); err != nil {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		riders = append(riders, models.RiderInfo{
			ID:   id,
			Name: rc.Name,
			File: path,
			CP:   rc.CPWatts,
		})
	}
	c.JSON(http.StatusOK, riders)
}

// GetRider handles GET /api/v1/riders/:id.
func (h *RiderHandler) GetRider(c *gin.Context) {
	id := c.Param("id")
	path := filepath.Join(h.RiderDir, id+".yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "RIDER_NOT_FOUND", Message: "rider preset " + id + " not found"},
		})
		return
	}
	var rc config.RiderConfig
	if err := yaml.Unmarshal(raw, &rc); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "RIDER_PARSE_ERROR", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, models.RiderInfo{
		ID:   id,
		Name: rc.Name,
		File: path,
		CP:   rc.CPWatts,
	})
}
