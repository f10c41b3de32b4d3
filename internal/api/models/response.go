package models

import (
	"time"

	"capex-forecast/internal/model"
	"capex-forecast/internal/scenario"
)

// AnalyzeResponse is the stored-run view returned by POST /analyze and
// GET /runs/:id.
type AnalyzeResponse struct {
	ID          string                             `json:"id"`
	CreatedAt   time.Time                          `json:"created_at"`
	ProjectName string                             `json:"project_name,omitempty"`
	Breakdown   model.CostBreakdown                `json:"breakdown"`
	Grid        []scenario.GridRow                 `json:"grid"`
	Sensitivity map[string]model.SensitivityResult `json:"sensitivity,omitempty"`
	Tornado     []model.TornadoEntry               `json:"tornado,omitempty"`
	Escalation  []float64                          `json:"escalation,omitempty"`
}

// SensitivityResponse maps tracked parameter names to their sweep results.
type SensitivityResponse struct {
	RangePct float64                            `json:"range_pct"`
	Results  map[string]model.SensitivityResult `json:"results"`
}

// ImpactResponse is a single-parameter perturbation outcome in dollars.
type ImpactResponse struct {
	Parameter string  `json:"parameter"`
	ChangePct float64 `json:"change_pct"`
	NewCost   float64 `json:"new_cost"`
	CostDelta float64 `json:"cost_delta"`
}

// TornadoResponse is the ranked tornado chart data.
type TornadoResponse struct {
	RangePct float64              `json:"range_pct"`
	Entries  []model.TornadoEntry `json:"entries"`
}

// MonteCarloResponse wraps the summary; Seed echoes the seed actually used so
// an unseeded run can still be replayed.
type MonteCarloResponse struct {
	Simulations int                     `json:"simulations"`
	Seed        int64                   `json:"seed"`
	Summary     model.MonteCarloSummary `json:"summary"`
}

// LCOEResponse is the levelized cost result in $/MWh.
type LCOEResponse struct {
	LCOE float64 `json:"lcoe_per_mwh"`
}

// MetricsResponse carries NPV/IRR/payback. PaybackYears is null when the
// cumulative flows never reach zero (JSON has no +Inf).
type MetricsResponse struct {
	NPV          float64         `json:"npv"`
	IRR          model.IRRResult `json:"irr"`
	PaybackYears *float64        `json:"payback_years"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
