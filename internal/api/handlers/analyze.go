package handlers

import (
	"net/http"
	"time"

	"capex-forecast/internal/api/models"
	"capex-forecast/internal/capex"
	"capex-forecast/internal/scenario"
	"capex-forecast/internal/sensitivity"
	"capex-forecast/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyzeHandler runs the full analysis (breakdown + scenario grid +
// sensitivity sweep) and stores the result for later retrieval/export.
type AnalyzeHandler struct {
	calc     *capex.Calculator
	analyzer *sensitivity.Analyzer
	runs     store.RunStore
}

func NewAnalyzeHandler(calc *capex.Calculator, analyzer *sensitivity.Analyzer, runs store.RunStore) *AnalyzeHandler {
	return &AnalyzeHandler{calc: calc, analyzer: analyzer, runs: runs}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	params := req.Project.ToParameters()
	breakdown, err := h.calc.CostBreakdown(params)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// Resolve scenario presets: all by default, or the named subset.
	presets := scenario.Defaults()
	if len(req.Scenarios) > 0 {
		selected := make([]scenario.Preset, 0, len(req.Scenarios))
		for _, name := range req.Scenarios {
			p, err := scenario.ByName(presets, name)
			if err != nil {
				respondError(c, http.StatusBadRequest, "UNKNOWN_SCENARIO", err.Error())
				return
			}
			selected = append(selected, p)
		}
		presets = selected
	}

	grid, err := scenario.EvaluateGrid(h.calc, params, req.Timelines, presets)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := models.AnalyzeResponse{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		ProjectName: req.Project.Name,
		Breakdown:   breakdown,
		Grid:        grid,
	}

	if !req.Options.SkipSensitivity {
		rangePct := req.Options.SensitivityRangePct
		if rangePct == 0 {
			rangePct = 20
		}
		sens, err := h.analyzer.Analyze(params, rangePct)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		tornado, err := h.analyzer.TornadoData(params, rangePct)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		resp.Sensitivity = sens
		resp.Tornado = tornado
	}

	if req.Options.EscalationYears > 0 {
		series, err := scenario.EscalationSeries(h.calc, params, req.Options.EscalationYears)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		resp.Escalation = series
	}

	run := &store.AnalysisRun{
		ID:          resp.ID,
		CreatedAt:   resp.CreatedAt,
		ProjectName: resp.ProjectName,
		Params:      params,
		Breakdown:   breakdown,
		Grid:        grid,
		Sensitivity: resp.Sensitivity,
		Tornado:     resp.Tornado,
	}
	if err := h.runs.Save(run); err != nil {
		// The analysis itself succeeded; losing the stored copy only breaks
		// later export, so report it as a warning header instead of failing.
		c.Header("X-Run-Store-Error", err.Error())
	}

	c.JSON(http.StatusOK, resp)
}
