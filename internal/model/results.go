package model

// CostBreakdown is the per-component view of one CapEx evaluation, in dollars.
// Total is always Equipment+Labor+Financing+Other; it is recomputed on every
// call and never mutated in place.
type CostBreakdown struct {
	Equipment float64 `json:"equipment"`
	Labor     float64 `json:"labor"`
	Financing float64 `json:"financing"`
	Other     float64 `json:"other"`
	Total     float64 `json:"total"`
}

// SensitivityResult holds the cost outcomes of perturbing one parameter.
// All values are in millions of dollars; Range = High - Low.
type SensitivityResult struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Range float64 `json:"range"`
	Base  float64 `json:"base"`
}

// TornadoEntry is one bar of a tornado chart. Impacts are deltas from the base
// cost (not absolute costs), in millions. Entries are sorted descending by
// Range, ties kept in tracked-parameter order.
type TornadoEntry struct {
	Parameter  string  `json:"parameter"`
	Label      string  `json:"label"`
	LowImpact  float64 `json:"low_impact"`
	HighImpact float64 `json:"high_impact"`
	Range      float64 `json:"range"`
	BaseCost   float64 `json:"base_cost"`
}

// Distribution types for Monte Carlo sampling.
const (
	DistNormal  = "normal"
	DistUniform = "uniform"
)

// Distribution describes how one parameter is sampled per trial.
// Mean/Std apply to "normal", Min/Max to "uniform".
type Distribution struct {
	Type string  `json:"type"`
	Mean float64 `json:"mean,omitempty"`
	Std  float64 `json:"std,omitempty"`
	Min  float64 `json:"min,omitempty"`
	Max  float64 `json:"max,omitempty"`
}

// MonteCarloSummary aggregates simulated total costs, in millions.
type MonteCarloSummary struct {
	Mean         float64   `json:"mean"`
	Std          float64   `json:"std"`
	Min          float64   `json:"min"`
	Max          float64   `json:"max"`
	Percentile5  float64   `json:"percentile_5"`
	Percentile25 float64   `json:"percentile_25"`
	Percentile50 float64   `json:"percentile_50"`
	Percentile75 float64   `json:"percentile_75"`
	Percentile95 float64   `json:"percentile_95"`
	Results      []float64 `json:"results,omitempty"`
}

// BreakEvenResult is the outcome of a break-even bisection. Value is the
// parameter value whose total cost matched the target within tolerance;
// Converged is false when the iteration budget ran out and Value is the last
// midpoint (best effort).
type BreakEvenResult struct {
	Parameter  string  `json:"parameter"`
	Value      float64 `json:"value"`
	Multiplier float64 `json:"multiplier"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
}

// CashFlowSchedule holds per-year flows of equal length
// (construction_years + project_life + 1). Net[i] = Capex[i]+Revenue[i]+Opex[i].
// Year 0 is all-zero (pre-construction).
type CashFlowSchedule struct {
	Years   []int     `json:"years"`
	Capex   []float64 `json:"capex"`
	Revenue []float64 `json:"revenue"`
	Opex    []float64 `json:"opex"`
	Net     []float64 `json:"net"`
}

// DebtServiceSchedule holds a per-year amortization table of length
// term_years + 1. Balance[0] is the principal; for equal-payment amortization
// Balance[term_years] is 0 within numerical tolerance.
type DebtServiceSchedule struct {
	Years     []int     `json:"years"`
	Balance   []float64 `json:"balance"`
	Interest  []float64 `json:"interest"`
	Principal []float64 `json:"principal"`
	Payment   []float64 `json:"payment"`
}

// IRRResult carries the Newton-Raphson outcome. Rate is a decimal (0.1 = 10%).
// Converged distinguishes a true root from iteration exhaustion or a flat
// derivative.
type IRRResult struct {
	Rate       float64 `json:"rate"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
}
