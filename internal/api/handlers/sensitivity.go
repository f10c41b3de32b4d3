package handlers

import (
	"math/rand"
	"net/http"

	"capex-forecast/internal/api/models"
	"capex-forecast/internal/sensitivity"

	"github.com/gin-gonic/gin"
)

// SensitivityHandler exposes the perturbation-based analyses: the ±range
// sweep, single-parameter impact, tornado ranking, Monte Carlo sampling and
// break-even search.
type SensitivityHandler struct {
	analyzer *sensitivity.Analyzer
}

func NewSensitivityHandler(analyzer *sensitivity.Analyzer) *SensitivityHandler {
	return &SensitivityHandler{analyzer: analyzer}
}

// Sensitivity handles POST /api/v1/sensitivity
func (h *SensitivityHandler) Sensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	results, err := h.analyzer.Analyze(req.Project.ToParameters(), req.RangePct)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SensitivityResponse{
		RangePct: req.RangePct,
		Results:  results,
	})
}

// Impact handles POST /api/v1/sensitivity/impact
func (h *SensitivityHandler) Impact(c *gin.Context) {
	var req models.ImpactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	newCost, delta, err := h.analyzer.ParameterImpact(req.Project.ToParameters(), req.Parameter, req.ChangePct)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ImpactResponse{
		Parameter: req.Parameter,
		ChangePct: req.ChangePct,
		NewCost:   newCost,
		CostDelta: delta,
	})
}

// Tornado handles POST /api/v1/tornado
func (h *SensitivityHandler) Tornado(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	entries, err := h.analyzer.TornadoData(req.Project.ToParameters(), req.RangePct)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TornadoResponse{
		RangePct: req.RangePct,
		Entries:  entries,
	})
}

// MonteCarlo handles POST /api/v1/montecarlo
func (h *SensitivityHandler) MonteCarlo(c *gin.Context) {
	var req models.MonteCarloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	seed := rand.Int63()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	summary, err := h.analyzer.MonteCarlo(req.Project.ToParameters(), req.Simulations, req.Distributions, rng)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !req.IncludeResults {
		summary.Results = nil
	}
	c.JSON(http.StatusOK, models.MonteCarloResponse{
		Simulations: req.Simulations,
		Seed:        seed,
		Summary:     summary,
	})
}

// BreakEven handles POST /api/v1/breakeven
func (h *SensitivityHandler) BreakEven(c *gin.Context) {
	var req models.BreakEvenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.analyzer.BreakEven(req.Project.ToParameters(), req.TargetCost, req.Parameter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
