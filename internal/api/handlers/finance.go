package handlers

import (
	"math"
	"net/http"

	"capex-forecast/internal/api/models"
	"capex-forecast/internal/capex"
	"capex-forecast/internal/finance"

	"github.com/gin-gonic/gin"
)

// FinanceHandler exposes the time-value-of-money utilities.
type FinanceHandler struct {
	calc *capex.Calculator
}

func NewFinanceHandler(calc *capex.Calculator) *FinanceHandler {
	return &FinanceHandler{calc: calc}
}

// LCOE handles POST /api/v1/lcoe
func (h *FinanceHandler) LCOE(c *gin.Context) {
	var req models.LCOERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	lcoe := h.calc.LevelizedCost(req.TotalCapex, req.CapacityMW, req.CapacityFactor, req.LifetimeYears, req.DiscountRate)
	c.JSON(http.StatusOK, models.LCOEResponse{LCOE: lcoe})
}

// CashFlow handles POST /api/v1/finance/cashflow
func (h *FinanceHandler) CashFlow(c *gin.Context) {
	var req models.CashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	schedule, err := finance.CashFlowSchedule(req.Capex, req.AnnualRevenue, req.AnnualOpex, req.ProjectLife, req.ConstructionYears)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// DebtService handles POST /api/v1/finance/debt-service
func (h *FinanceHandler) DebtService(c *gin.Context) {
	var req models.DebtServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	schedule, err := finance.DebtService(req.Principal, req.InterestRate, req.TermYears, req.PaymentType)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Depreciation handles POST /api/v1/finance/depreciation
func (h *FinanceHandler) Depreciation(c *gin.Context) {
	var req models.DepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	schedule, err := finance.DepreciationSchedule(req.AssetCost, req.Method, req.AssetLife)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// Metrics handles POST /api/v1/finance/metrics
func (h *FinanceHandler) Metrics(c *gin.Context) {
	var req models.MetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	guess := 0.1
	if req.InitialGuess != nil {
		guess = *req.InitialGuess
	}

	resp := models.MetricsResponse{
		NPV: finance.NPV(req.CashFlows, req.DiscountRate),
		IRR: finance.IRR(req.CashFlows, guess),
	}
	if payback := finance.PaybackPeriod(req.CashFlows); !math.IsInf(payback, 1) {
		resp.PaybackYears = &payback
	}
	c.JSON(http.StatusOK, resp)
}
