package sensitivity

import (
	"math"
	"sort"
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

func TestAnalyzeCoversTrackedParameters(t *testing.T) {
	a := New(nil)
	results, err := a.Analyze(baseParams(), 20)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(results) != len(TrackedParameters()) {
		t.Fatalf("got %d results, want %d", len(results), len(TrackedParameters()))
	}
	for param, r := range results {
		if r.Range < 0 {
			t.Errorf("%s: range %f < 0", param, r.Range)
		}
		if !almostEqual(r.Range, r.High-r.Low, 1e-9) {
			t.Errorf("%s: range %f != high-low %f", param, r.Range, r.High-r.Low)
		}
	}
}

func TestAnalyzeReportsMillions(t *testing.T) {
	calc := capex.New()
	a := New(calc)
	p := baseParams()

	baseCost, err := calc.TotalCapex(p)
	if err != nil {
		t.Fatalf("TotalCapex: %v", err)
	}
	results, err := a.Analyze(p, 20)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for param, r := range results {
		if !almostEqual(r.Base, baseCost/1e6, 1e-9) {
			t.Errorf("%s: base %f, want %f (millions)", param, r.Base, baseCost/1e6)
		}
	}
}

func TestAnalyzeClampsDelayLow(t *testing.T) {
	calc := capex.New()
	a := New(calc)
	p := baseParams()
	p.DelayMonths = 6

	// rangePct=200 would push delay to -6; the low case must evaluate at 0.
	results, err := a.Analyze(p, 200)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	zeroDelay := p
	zeroDelay.DelayMonths = 0
	wantLow, err := calc.TotalCapex(zeroDelay)
	if err != nil {
		t.Fatalf("TotalCapex: %v", err)
	}
	got := results[model.ParamDelayMonths].Low
	if !almostEqual(got, wantLow/1e6, 1e-9) {
		t.Errorf("delay low = %f, want %f (clamped to zero delay)", got, wantLow/1e6)
	}

	// Interest rate has no low-side clamp; a big range may go negative.
	negRate := p
	negRate.InterestRate = p.InterestRate * (1 - 200.0/100)
	wantRateLow, err := calc.TotalCapex(negRate)
	if err != nil {
		t.Fatalf("TotalCapex: %v", err)
	}
	gotRate := results[model.ParamInterestRate].Low
	if !almostEqual(gotRate, wantRateLow/1e6, 1e-9) {
		t.Errorf("interest low = %f, want %f (unclamped)", gotRate, wantRateLow/1e6)
	}
}

func TestParameterImpact(t *testing.T) {
	calc := capex.New()
	a := New(calc)
	p := baseParams()

	baseCost, err := calc.TotalCapex(p)
	if err != nil {
		t.Fatalf("TotalCapex: %v", err)
	}

	newCost, delta, err := a.ParameterImpact(p, model.ParamEquipmentCostPerMW, 10)
	if err != nil {
		t.Fatalf("ParameterImpact: %v", err)
	}
	if newCost <= baseCost {
		t.Errorf("raising equipment cost should raise total: %f <= %f", newCost, baseCost)
	}
	if !almostEqual(delta, newCost-baseCost, 1e-9) {
		t.Errorf("delta %f != newCost-baseCost %f", delta, newCost-baseCost)
	}

	// A negative change on delay cannot take it below zero.
	down, _, err := a.ParameterImpact(p, model.ParamDelayMonths, -300)
	if err != nil {
		t.Fatalf("ParameterImpact: %v", err)
	}
	zeroDelay := p
	zeroDelay.DelayMonths = 0
	wantDown, _ := calc.TotalCapex(zeroDelay)
	if !almostEqual(down, wantDown, 1e-9) {
		t.Errorf("delay impact = %f, want %f", down, wantDown)
	}
}

func TestParameterImpactUnknownParameter(t *testing.T) {
	a := New(nil)
	if _, _, err := a.ParameterImpact(baseParams(), "no_such_parameter", 10); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestTornadoDataSortedByRange(t *testing.T) {
	a := New(nil)
	entries, err := a.TornadoData(baseParams(), 20)
	if err != nil {
		t.Fatalf("TornadoData: %v", err)
	}
	if len(entries) != len(TrackedParameters()) {
		t.Fatalf("got %d entries, want %d", len(entries), len(TrackedParameters()))
	}
	if !sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Range > entries[j].Range
	}) {
		t.Error("tornado entries not sorted descending by range")
	}
	// Equipment cost dominates this parameter set.
	if entries[0].Parameter != model.ParamEquipmentCostPerMW {
		t.Errorf("largest swing = %s, want equipment_cost_per_mw", entries[0].Parameter)
	}
	for _, e := range entries {
		if e.Range < 0 {
			t.Errorf("%s: negative range %f", e.Parameter, e.Range)
		}
	}
}

func TestTornadoImpactsAreDeltas(t *testing.T) {
	calc := capex.New()
	a := New(calc)
	p := baseParams()

	entries, err := a.TornadoData(p, 20)
	if err != nil {
		t.Fatalf("TornadoData: %v", err)
	}
	baseCost, _ := calc.TotalCapex(p)
	for _, e := range entries {
		if !almostEqual(e.BaseCost, baseCost/1e6, 1e-9) {
			t.Errorf("%s: base cost %f, want %f", e.Parameter, e.BaseCost, baseCost/1e6)
		}
		// High impact is a delta, so it must be far smaller than the base cost.
		if math.Abs(e.HighImpact) >= e.BaseCost {
			t.Errorf("%s: high impact %f looks like an absolute cost", e.Parameter, e.HighImpact)
		}
	}
}
