package capex

import (
	"math"

	"capex-forecast/internal/model"
)

// Cost constants in dollars.
const (
	interconnectionPerMW = 25000 // $/MW proxy for interconnection + transmission
	delayCostPerMonth    = 10000 // $/month of permitting delay
	contingencyRate      = 0.05

	referenceConstructionMonths = 12
	durationCostPerMonth        = 0.02
	minDurationMultiplier       = 0.8
	maxDurationMultiplier       = 2.0

	hoursPerYear = 8760
)

// Calculator computes CapEx cost components for a renewable energy project.
// All methods are pure; the struct holds no state.
type Calculator struct{}

func New() *Calculator { return &Calculator{} }

// EquipmentCost returns capacity * costPerMW compounded by inflation over the
// full project timeline (not just the construction window).
func (c *Calculator) EquipmentCost(capacityMW, costPerMW float64, timelineYears int, inflationRate float64) float64 {
	base := capacityMW * costPerMW
	return base * inflationMultiplier(inflationRate, timelineYears)
}

// LaborCost returns capacity * laborCostPerMW adjusted for construction
// duration and compounded by inflation. 12 months is the reference duration;
// each month beyond adds 2%, each month under subtracts 2%, clamped to
// [0.8, 2.0].
func (c *Calculator) LaborCost(capacityMW, laborCostPerMW float64, timelineYears int, inflationRate float64, constructionMonths int) float64 {
	base := capacityMW * laborCostPerMW
	return base * DurationMultiplier(constructionMonths) * inflationMultiplier(inflationRate, timelineYears)
}

// DurationMultiplier is the labor premium/discount for construction duration.
func DurationMultiplier(constructionMonths int) float64 {
	m := 1 + float64(constructionMonths-referenceConstructionMonths)*durationCostPerMonth
	return math.Max(minDurationMultiplier, math.Min(maxDurationMultiplier, m))
}

// FinancingCost returns simple (non-compounding) interest on the principal over
// the timeline, plus a delay penalty of half-rate carrying cost for the delay
// period. This is a proxy for construction carrying cost, not amortized
// interest.
func (c *Calculator) FinancingCost(principal, interestRate float64, timelineYears int, delayMonths float64) float64 {
	rate := interestRate / 100
	interest := principal * rate * float64(timelineYears)
	delayPenalty := principal * rate * (delayMonths / 12) * 0.5
	return interest + delayPenalty
}

// OtherCosts returns permitting plus capacity-based interconnection costs plus
// delay carrying costs, with a 5% contingency on the subtotal.
//
// timelineYears is accepted but unused: unlike equipment and labor, other costs
// are not escalated over the timeline.
func (c *Calculator) OtherCosts(permittingCost, capacityMW float64, timelineYears int, delayMonths float64) float64 {
	_ = timelineYears
	subtotal := permittingCost + capacityMW*interconnectionPerMW + delayMonths*delayCostPerMonth
	return subtotal * (1 + contingencyRate)
}

// TotalCapex evaluates the full parameter set. Financing is computed on the
// sum of the other three components, so it never compounds into itself.
func (c *Calculator) TotalCapex(p model.ProjectParameters) (float64, error) {
	b, err := c.CostBreakdown(p)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// CostBreakdown returns all four components plus their total.
func (c *Calculator) CostBreakdown(p model.ProjectParameters) (model.CostBreakdown, error) {
	if err := p.Validate(); err != nil {
		return model.CostBreakdown{}, err
	}

	equipment := c.EquipmentCost(p.CapacityMW, p.EquipmentCostPerMW, p.TimelineYears, p.InflationRate)
	labor := c.LaborCost(p.CapacityMW, p.LaborCostPerMW, p.TimelineYears, p.InflationRate, p.ConstructionMonths)
	other := c.OtherCosts(p.PermittingCost, p.CapacityMW, p.TimelineYears, p.DelayMonths)

	principal := equipment + labor + other
	financing := c.FinancingCost(principal, p.InterestRate, p.TimelineYears, p.DelayMonths)

	return model.CostBreakdown{
		Equipment: equipment,
		Labor:     labor,
		Financing: financing,
		Other:     other,
		Total:     principal + financing,
	}, nil
}

// LevelizedCost returns LCOE in $/MWh: total CapEx divided by the present
// value of lifetime generation. Returns 0 when the present value is zero
// (zero lifetime, zero capacity factor) rather than dividing by zero.
func (c *Calculator) LevelizedCost(totalCapex, capacityMW, capacityFactor float64, lifetimeYears int, discountRate float64) float64 {
	annualGeneration := capacityMW * hoursPerYear * capacityFactor
	rate := discountRate / 100

	pv := 0.0
	for year := 1; year <= lifetimeYears; year++ {
		pv += annualGeneration / math.Pow(1+rate, float64(year))
	}
	if pv <= 0 {
		return 0
	}
	return totalCapex / pv
}

func inflationMultiplier(inflationRate float64, years int) float64 {
	return math.Pow(1+inflationRate/100, float64(years))
}
