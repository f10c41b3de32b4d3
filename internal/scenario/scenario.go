package scenario

import (
	"fmt"
	"math"

	"capex-forecast/internal/capex"
	"capex-forecast/internal/model"
)

const millions = 1_000_000

// Preset is a named set of multipliers applied to a base parameter set.
// Multipliers scale equipment cost, labor cost and delay; InterestAdjustment
// is added to the interest rate in percentage points.
type Preset struct {
	Name                string  `json:"name" yaml:"name"`
	EquipmentMultiplier float64 `json:"equipment_multiplier" yaml:"equipment_multiplier"`
	LaborMultiplier     float64 `json:"labor_multiplier" yaml:"labor_multiplier"`
	DelayMultiplier     float64 `json:"delay_multiplier" yaml:"delay_multiplier"`
	InterestAdjustment  float64 `json:"interest_adjustment" yaml:"interest_adjustment"`
}

// Defaults returns the standard Base/Optimistic/Pessimistic presets.
func Defaults() []Preset {
	return []Preset{
		{Name: "Base Case", EquipmentMultiplier: 1.0, LaborMultiplier: 1.0, DelayMultiplier: 1.0, InterestAdjustment: 0.0},
		{Name: "Optimistic", EquipmentMultiplier: 0.85, LaborMultiplier: 0.90, DelayMultiplier: 0.5, InterestAdjustment: -0.5},
		{Name: "Pessimistic", EquipmentMultiplier: 1.25, LaborMultiplier: 1.30, DelayMultiplier: 2.0, InterestAdjustment: 1.5},
	}
}

// ByName looks up a preset from the given set (case-sensitive).
func ByName(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown scenario %q", name)
}

// Apply derives an adjusted parameter set. The scaled delay is truncated to
// whole months, matching how the dashboard rounds slider-driven scenarios.
func Apply(p Preset, params model.ProjectParameters) model.ProjectParameters {
	out := params
	out.EquipmentCostPerMW = params.EquipmentCostPerMW * p.EquipmentMultiplier
	out.LaborCostPerMW = params.LaborCostPerMW * p.LaborMultiplier
	out.DelayMonths = math.Trunc(params.DelayMonths * p.DelayMultiplier)
	out.InterestRate = params.InterestRate + p.InterestAdjustment
	return out
}

// GridRow is one scenario x timeline cell of the comparison table.
// Monetary values are in millions except CostPerMWK ($ thousands per MW).
type GridRow struct {
	TimelineYears int     `json:"timeline_years"`
	Scenario      string  `json:"scenario"`
	TotalCostM    float64 `json:"total_cost_m"`
	CostPerMWK    float64 `json:"cost_per_mw_k"`
	EquipmentM    float64 `json:"equipment_m"`
	LaborM        float64 `json:"labor_m"`
	FinancingM    float64 `json:"financing_m"`
	OtherM        float64 `json:"other_m"`
}

// DefaultTimelines are the comparison horizons shown by the dashboard.
func DefaultTimelines() []int { return []int{3, 5, 10} }

// EvaluateGrid computes the full scenario x timeline comparison table.
// Rows are ordered timeline-major, preset order within each timeline.
func EvaluateGrid(calc *capex.Calculator, base model.ProjectParameters, timelines []int, presets []Preset) ([]GridRow, error) {
	if len(timelines) == 0 {
		timelines = DefaultTimelines()
	}
	if len(presets) == 0 {
		presets = Defaults()
	}

	rows := make([]GridRow, 0, len(timelines)*len(presets))
	for _, timeline := range timelines {
		for _, preset := range presets {
			params := Apply(preset, base)
			params.TimelineYears = timeline

			b, err := calc.CostBreakdown(params)
			if err != nil {
				return nil, fmt.Errorf("scenario %q timeline %d: %w", preset.Name, timeline, err)
			}

			rows = append(rows, GridRow{
				TimelineYears: timeline,
				Scenario:      preset.Name,
				TotalCostM:    b.Total / millions,
				CostPerMWK:    b.Total / base.CapacityMW / 1000,
				EquipmentM:    b.Equipment / millions,
				LaborM:        b.Labor / millions,
				FinancingM:    b.Financing / millions,
				OtherM:        b.Other / millions,
			})
		}
	}
	return rows, nil
}

// EscalationSeries projects the base-case total cost forward under inflation:
// element i is the total cost escalated over i years, in millions. Year 1 is
// the unescalated base cost.
func EscalationSeries(calc *capex.Calculator, base model.ProjectParameters, years int) ([]float64, error) {
	if years <= 0 {
		return nil, fmt.Errorf("years must be > 0, got %d", years)
	}
	baseCost, err := calc.TotalCapex(base)
	if err != nil {
		return nil, err
	}

	out := make([]float64, years)
	for year := 1; year <= years; year++ {
		escalated := baseCost * math.Pow(1+base.InflationRate/100, float64(year-1))
		out[year-1] = escalated / millions
	}
	return out, nil
}
