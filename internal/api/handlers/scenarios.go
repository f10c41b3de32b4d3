package handlers

import (
	"net/http"

	"capex-forecast/internal/scenario"
	"capex-forecast/internal/sensitivity"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler serves the preset catalog and tracked-parameter list so the
// dashboard can render pickers without hardcoding them.
type ScenarioHandler struct{}

func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"scenarios": scenario.Defaults(),
		"timelines": scenario.DefaultTimelines(),
	})
}

// ListParameters handles GET /api/v1/parameters
func (h *ScenarioHandler) ListParameters(c *gin.Context) {
	params := sensitivity.TrackedParameters()
	out := make([]gin.H, 0, len(params))
	for _, p := range params {
		out = append(out, gin.H{
			"name":  p,
			"label": sensitivity.ParameterLabel(p),
		})
	}
	c.JSON(http.StatusOK, gin.H{"parameters": out})
}
