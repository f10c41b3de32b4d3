package model

import "fmt"

// Parameter names used for sensitivity sweeps, Monte Carlo distributions and
// break-even searches. Keep these values stable; they appear in API requests,
// CSV output and config files.
const (
	ParamCapacity           = "capacity"
	ParamEquipmentCostPerMW = "equipment_cost_per_mw"
	ParamLaborCostPerMW     = "labor_cost_per_mw"
	ParamPermittingCost     = "permitting_cost"
	ParamInterestRate       = "interest_rate"
	ParamTimelineYears      = "timeline_years"
	ParamDelayMonths        = "delay_months"
	ParamInflationRate      = "inflation_rate"
	ParamConstructionMonths = "construction_months"
)

// ProjectParameters defines the full input set for one CapEx evaluation.
// Units:
// - CapacityMW: MW
// - EquipmentCostPerMW, LaborCostPerMW, PermittingCost: $
// - InterestRate, InflationRate: percent (5.5 means 5.5%)
// - TimelineYears: years
// - DelayMonths, ConstructionMonths: months
//
// DelayMonths is a float64 even though user input is whole months: sensitivity
// sweeps and Monte Carlo sampling perturb it multiplicatively and the financing
// formula consumes fractional months.
type ProjectParameters struct {
	CapacityMW         float64
	EquipmentCostPerMW float64
	LaborCostPerMW     float64
	PermittingCost     float64
	InterestRate       float64
	TimelineYears      int
	DelayMonths        float64
	InflationRate      float64
	ConstructionMonths int
}

// Validate rejects inputs that would break the cost formulas. The dashboard
// layer is expected to validate first; this is a defensive backstop for the
// fields several formulas divide by or exponentiate with.
func (p ProjectParameters) Validate() error {
	if p.CapacityMW <= 0 {
		return &InvalidParameterError{Name: ParamCapacity, Reason: "must be > 0"}
	}
	if p.TimelineYears <= 0 {
		return &InvalidParameterError{Name: ParamTimelineYears, Reason: "must be > 0"}
	}
	if p.ConstructionMonths <= 0 {
		return &InvalidParameterError{Name: ParamConstructionMonths, Reason: "must be > 0"}
	}
	if p.DelayMonths < 0 {
		return &InvalidParameterError{Name: ParamDelayMonths, Reason: "must be >= 0"}
	}
	return nil
}

// Value returns a named parameter as a float64 for perturbation-style access.
func (p ProjectParameters) Value(name string) (float64, error) {
	switch name {
	case ParamCapacity:
		return p.CapacityMW, nil
	case ParamEquipmentCostPerMW:
		return p.EquipmentCostPerMW, nil
	case ParamLaborCostPerMW:
		return p.LaborCostPerMW, nil
	case ParamPermittingCost:
		return p.PermittingCost, nil
	case ParamInterestRate:
		return p.InterestRate, nil
	case ParamTimelineYears:
		return float64(p.TimelineYears), nil
	case ParamDelayMonths:
		return p.DelayMonths, nil
	case ParamInflationRate:
		return p.InflationRate, nil
	case ParamConstructionMonths:
		return float64(p.ConstructionMonths), nil
	}
	return 0, fmt.Errorf("unknown parameter %q", name)
}

// WithValue returns a copy with one named parameter replaced. Integer-month
// fields are rounded toward zero, matching how scenario multipliers are applied.
func (p ProjectParameters) WithValue(name string, v float64) (ProjectParameters, error) {
	out := p
	switch name {
	case ParamCapacity:
		out.CapacityMW = v
	case ParamEquipmentCostPerMW:
		out.EquipmentCostPerMW = v
	case ParamLaborCostPerMW:
		out.LaborCostPerMW = v
	case ParamPermittingCost:
		out.PermittingCost = v
	case ParamInterestRate:
		out.InterestRate = v
	case ParamTimelineYears:
		out.TimelineYears = int(v)
	case ParamDelayMonths:
		out.DelayMonths = v
	case ParamInflationRate:
		out.InflationRate = v
	case ParamConstructionMonths:
		out.ConstructionMonths = int(v)
	default:
		return p, fmt.Errorf("unknown parameter %q", name)
	}
	return out, nil
}
