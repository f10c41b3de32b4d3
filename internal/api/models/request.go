package models

import "capex-forecast/internal/model"

// ProjectPayload carries a full parameter set in a request body.
type ProjectPayload struct {
	Name               string  `json:"name,omitempty"`
	Technology         string  `json:"technology,omitempty"`
	CapacityMW         float64 `json:"capacity_mw" binding:"required"`
	EquipmentCostPerMW float64 `json:"equipment_cost_per_mw" binding:"required"`
	LaborCostPerMW     float64 `json:"labor_cost_per_mw" binding:"required"`
	PermittingCost     float64 `json:"permitting_cost"`
	InterestRate       float64 `json:"interest_rate"`
	TimelineYears      int     `json:"timeline_years" binding:"required"`
	DelayMonths        float64 `json:"delay_months"`
	InflationRate      float64 `json:"inflation_rate"`
	ConstructionMonths int     `json:"construction_months" binding:"required"`
}

func (p ProjectPayload) ToParameters() model.ProjectParameters {
	return model.ProjectParameters{
		CapacityMW:         p.CapacityMW,
		EquipmentCostPerMW: p.EquipmentCostPerMW,
		LaborCostPerMW:     p.LaborCostPerMW,
		PermittingCost:     p.PermittingCost,
		InterestRate:       p.InterestRate,
		TimelineYears:      p.TimelineYears,
		DelayMonths:        p.DelayMonths,
		InflationRate:      p.InflationRate,
		ConstructionMonths: p.ConstructionMonths,
	}
}

// AnalyzeRequest runs the breakdown + scenario grid + sensitivity sweep and
// stores the result as a run.
type AnalyzeRequest struct {
	Project   ProjectPayload  `json:"project" binding:"required"`
	Timelines []int           `json:"timelines,omitempty"` // default: 3, 5, 10
	Scenarios []string        `json:"scenarios,omitempty"` // default: all presets
	Options   AnalyzeOptions  `json:"options,omitempty"`
}

// AnalyzeOptions tunes what the analyze run computes.
type AnalyzeOptions struct {
	SensitivityRangePct float64 `json:"sensitivity_range_pct,omitempty"` // default: 20
	SkipSensitivity     bool    `json:"skip_sensitivity,omitempty"`
	EscalationYears     int     `json:"escalation_years,omitempty"` // 0 = no series
}

// SensitivityRequest runs the ±range sweep over the tracked parameters.
type SensitivityRequest struct {
	Project  ProjectPayload `json:"project" binding:"required"`
	RangePct float64        `json:"range_pct" binding:"required"`
}

// ImpactRequest evaluates a single-sided perturbation of one parameter.
type ImpactRequest struct {
	Project   ProjectPayload `json:"project" binding:"required"`
	Parameter string         `json:"parameter" binding:"required"`
	ChangePct float64        `json:"change_pct" binding:"required"`
}

// MonteCarloRequest runs seeded Monte Carlo sampling over parameter
// distributions.
type MonteCarloRequest struct {
	Project        ProjectPayload                `json:"project" binding:"required"`
	Simulations    int                           `json:"simulations" binding:"required"`
	Seed           *int64                        `json:"seed,omitempty"`
	Distributions  map[string]model.Distribution `json:"distributions" binding:"required"`
	IncludeResults bool                          `json:"include_results,omitempty"`
}

// BreakEvenRequest searches for the parameter value matching a target cost.
type BreakEvenRequest struct {
	Project    ProjectPayload `json:"project" binding:"required"`
	TargetCost float64        `json:"target_cost" binding:"required"`
	Parameter  string         `json:"parameter" binding:"required"`
}

// LCOERequest computes the levelized cost of energy.
type LCOERequest struct {
	TotalCapex     float64 `json:"total_capex" binding:"required"`
	CapacityMW     float64 `json:"capacity_mw" binding:"required"`
	CapacityFactor float64 `json:"capacity_factor" binding:"required"`
	LifetimeYears  int     `json:"lifetime_years" binding:"required"`
	DiscountRate   float64 `json:"discount_rate"`
}

// CashFlowRequest builds a project cash flow schedule.
type CashFlowRequest struct {
	Capex             float64 `json:"capex" binding:"required"`
	AnnualRevenue     float64 `json:"annual_revenue"`
	AnnualOpex        float64 `json:"annual_opex"`
	ProjectLife       int     `json:"project_life" binding:"required"`
	ConstructionYears int     `json:"construction_years" binding:"required"`
}

// DebtServiceRequest builds an amortization schedule.
type DebtServiceRequest struct {
	Principal    float64 `json:"principal" binding:"required"`
	InterestRate float64 `json:"interest_rate"`
	TermYears    int     `json:"term_years" binding:"required"`
	PaymentType  string  `json:"payment_type" binding:"required"` // "equal" or "interest_only"
}

// DepreciationRequest builds a tax depreciation schedule.
type DepreciationRequest struct {
	AssetCost float64 `json:"asset_cost" binding:"required"`
	Method    string  `json:"method" binding:"required"` // "straight_line" or "macrs"
	AssetLife int     `json:"asset_life" binding:"required"`
}

// MetricsRequest computes NPV, IRR and payback over a cash flow series.
type MetricsRequest struct {
	CashFlows    []float64 `json:"cash_flows" binding:"required"`
	DiscountRate float64   `json:"discount_rate"`
	InitialGuess *float64  `json:"initial_guess,omitempty"` // IRR seed, default 0.1
}
