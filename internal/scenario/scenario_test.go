package scenario

import (
	"math"
	"testing"

	"capex-forecast/internal/capex"
	"capex-forecast/internal/model"
)

func baseParams() model.ProjectParameters {
	return model.ProjectParameters{
		CapacityMW:         100,
		EquipmentCostPerMW: 1_200_000,
		LaborCostPerMW:     150_000,
		PermittingCost:     500_000,
		InterestRate:       5.5,
		TimelineYears:      5,
		DelayMonths:        6,
		InflationRate:      2.5,
		ConstructionMonths: 18,
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDefaults(t *testing.T) {
	presets := Defaults()
	if len(presets) != 3 {
		t.Fatalf("got %d presets, want 3", len(presets))
	}
	base := presets[0]
	if base.Name != "Base Case" || base.EquipmentMultiplier != 1 || base.LaborMultiplier != 1 ||
		base.DelayMultiplier != 1 || base.InterestAdjustment != 0 {
		t.Errorf("Base Case preset should be the identity: %+v", base)
	}
	if presets[1].Name != "Optimistic" || presets[2].Name != "Pessimistic" {
		t.Errorf("unexpected preset names: %s, %s", presets[1].Name, presets[2].Name)
	}
}

func TestByName(t *testing.T) {
	presets := Defaults()
	p, err := ByName(presets, "Pessimistic")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if p.EquipmentMultiplier != 1.25 {
		t.Errorf("equipment multiplier = %f, want 1.25", p.EquipmentMultiplier)
	}
	if _, err := ByName(presets, "pessimistic"); err == nil {
		t.Error("lookup is case-sensitive; expected an error")
	}
}

func TestApply(t *testing.T) {
	p := baseParams()
	pessimistic, _ := ByName(Defaults(), "Pessimistic")
	got := Apply(pessimistic, p)

	if !almostEqual(got.EquipmentCostPerMW, 1_500_000, 1e-9) {
		t.Errorf("equipment = %f, want 1500000", got.EquipmentCostPerMW)
	}
	if !almostEqual(got.LaborCostPerMW, 195_000, 1e-9) {
		t.Errorf("labor = %f, want 195000", got.LaborCostPerMW)
	}
	if got.DelayMonths != 12 {
		t.Errorf("delay = %f, want 12", got.DelayMonths)
	}
	if !almostEqual(got.InterestRate, 7.0, 1e-9) {
		t.Errorf("interest = %f, want 7.0", got.InterestRate)
	}
	// Untouched fields carry through.
	if got.CapacityMW != p.CapacityMW || got.PermittingCost != p.PermittingCost {
		t.Error("Apply must not touch capacity or permitting")
	}
}

func TestApplyTruncatesDelay(t *testing.T) {
	p := baseParams()
	p.DelayMonths = 5
	optimistic, _ := ByName(Defaults(), "Optimistic")
	got := Apply(optimistic, p)
	// 5 * 0.5 = 2.5, truncated to whole months.
	if got.DelayMonths != 2 {
		t.Errorf("delay = %f, want 2 (truncated)", got.DelayMonths)
	}
}

func TestEvaluateGrid(t *testing.T) {
	calc := capex.New()
	rows, err := EvaluateGrid(calc, baseParams(), DefaultTimelines(), Defaults())
	if err != nil {
		t.Fatalf("EvaluateGrid: %v", err)
	}
	if len(rows) != 9 {
		t.Fatalf("got %d rows, want 9 (3 timelines x 3 scenarios)", len(rows))
	}

	// Timeline-major ordering with preset order inside each timeline.
	wantOrder := []struct {
		timeline int
		scenario string
	}{
		{3, "Base Case"}, {3, "Optimistic"}, {3, "Pessimistic"},
		{5, "Base Case"}, {5, "Optimistic"}, {5, "Pessimistic"},
		{10, "Base Case"}, {10, "Optimistic"}, {10, "Pessimistic"},
	}
	for i, w := range wantOrder {
		if rows[i].TimelineYears != w.timeline || rows[i].Scenario != w.scenario {
			t.Errorf("row %d = %d/%s, want %d/%s", i, rows[i].TimelineYears, rows[i].Scenario, w.timeline, w.scenario)
		}
	}

	for _, r := range rows {
		if sum := r.EquipmentM + r.LaborM + r.FinancingM + r.OtherM; !almostEqual(sum, r.TotalCostM, 1e-6) {
			t.Errorf("%s/%d: components sum to %f, total is %f", r.Scenario, r.TimelineYears, sum, r.TotalCostM)
		}
		if !almostEqual(r.CostPerMWK, r.TotalCostM*1e6/100/1000, 1e-6) {
			t.Errorf("%s/%d: cost per MW inconsistent", r.Scenario, r.TimelineYears)
		}
	}

	// Pessimistic always costs more than optimistic at the same timeline.
	for i := 0; i < len(rows); i += 3 {
		if rows[i+2].TotalCostM <= rows[i+1].TotalCostM {
			t.Errorf("timeline %d: pessimistic %f <= optimistic %f",
				rows[i].TimelineYears, rows[i+2].TotalCostM, rows[i+1].TotalCostM)
		}
	}
}

func TestEvaluateGridDefaultsWhenEmpty(t *testing.T) {
	calc := capex.New()
	rows, err := EvaluateGrid(calc, baseParams(), nil, nil)
	if err != nil {
		t.Fatalf("EvaluateGrid: %v", err)
	}
	if len(rows) != 9 {
		t.Errorf("got %d rows, want 9 from the default grid", len(rows))
	}
}

func TestEscalationSeries(t *testing.T) {
	calc := capex.New()
	p := baseParams()
	series, err := EscalationSeries(calc, p, 5)
	if err != nil {
		t.Fatalf("EscalationSeries: %v", err)
	}
	if len(series) != 5 {
		t.Fatalf("got %d entries, want 5", len(series))
	}

	baseCost, _ := calc.TotalCapex(p)
	if !almostEqual(series[0], baseCost/1e6, 1e-9) {
		t.Errorf("year 1 = %f, want the unescalated base %f", series[0], baseCost/1e6)
	}
	for i := 1; i < len(series); i++ {
		want := series[i-1] * (1 + p.InflationRate/100)
		if !almostEqual(series[i], want, 1e-6) {
			t.Errorf("year %d = %f, want %f", i+1, series[i], want)
		}
	}

	if _, err := EscalationSeries(calc, p, 0); err == nil {
		t.Error("expected error for zero years")
	}
}
