package sensitivity

import (
	"math/rand"
	"testing"

	"capex-forecast/internal/capex"
	"capex-forecast/internal/model"
)

func TestMonteCarloDegenerateDistributions(t *testing.T) {
	calc := capex.New()
	a := New(calc)
	p := baseParams()

	// Zero-width distributions make every trial identical to the base case.
	dists := map[string]model.Distribution{
		model.ParamEquipmentCostPerMW: {Type: model.DistNormal, Mean: p.EquipmentCostPerMW, Std: 0},
		model.ParamInterestRate:       {Type: model.DistUniform, Min: p.InterestRate, Max: p.InterestRate},
	}
	summary, err := a.MonteCarlo(p, 500, dists, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}

	baseCost, _ := calc.TotalCapex(p)
	want := baseCost / 1e6
	if !almostEqual(summary.Mean, want, 1e-9) {
		t.Errorf("mean = %f, want %f", summary.Mean, want)
	}
	if !almostEqual(summary.Min, want, 1e-9) || !almostEqual(summary.Max, want, 1e-9) {
		t.Errorf("min/max = %f/%f, want both %f", summary.Min, summary.Max, want)
	}
	if !almostEqual(summary.Std, 0, 1e-9) {
		t.Errorf("std = %g, want ~0", summary.Std)
	}
	if !almostEqual(summary.Percentile50, want, 1e-9) {
		t.Errorf("p50 = %f, want %f", summary.Percentile50, want)
	}
	if len(summary.Results) != 500 {
		t.Errorf("got %d results, want 500", len(summary.Results))
	}
}

func TestMonteCarloSeedReproducibility(t *testing.T) {
	a := New(nil)
	p := baseParams()
	dists := map[string]model.Distribution{
		model.ParamEquipmentCostPerMW: {Type: model.DistNormal, Mean: p.EquipmentCostPerMW, Std: 120_000},
		model.ParamDelayMonths:        {Type: model.DistUniform, Min: 0, Max: 12},
		model.ParamInterestRate:       {Type: model.DistNormal, Mean: p.InterestRate, Std: 0.5},
	}

	first, err := a.MonteCarlo(p, 200, dists, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	second, err := a.MonteCarlo(p, 200, dists, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}

	if len(first.Results) != len(second.Results) {
		t.Fatalf("result lengths differ: %d vs %d", len(first.Results), len(second.Results))
	}
	for i := range first.Results {
		if first.Results[i] != second.Results[i] {
			t.Fatalf("trial %d differs: %f vs %f", i, first.Results[i], second.Results[i])
		}
	}
	if first.Mean != second.Mean || first.Std != second.Std {
		t.Error("summary statistics differ across identical seeds")
	}
}

func TestMonteCarloClampsNegativeSamplesExceptRate(t *testing.T) {
	calc := capex.New()
	a := New(calc)
	p := baseParams()

	// Delay forced hard negative; the clamp evaluates every trial at 0 delay.
	dists := map[string]model.Distribution{
		model.ParamDelayMonths: {Type: model.DistUniform, Min: -100, Max: -50},
	}
	summary, err := a.MonteCarlo(p, 50, dists, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	zeroDelay := p
	zeroDelay.DelayMonths = 0
	wantCost, _ := calc.TotalCapex(zeroDelay)
	if !almostEqual(summary.Mean, wantCost/1e6, 1e-9) {
		t.Errorf("mean = %f, want %f (all trials clamped to zero delay)", summary.Mean, wantCost/1e6)
	}

	// Interest rate is exempt: a fixed negative rate must flow through as-is.
	rateDists := map[string]model.Distribution{
		model.ParamInterestRate: {Type: model.DistUniform, Min: -2, Max: -2},
	}
	rateSummary, err := a.MonteCarlo(p, 10, rateDists, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("MonteCarlo: %v", err)
	}
	negRate := p
	negRate.InterestRate = -2
	wantNeg, _ := calc.TotalCapex(negRate)
	if !almostEqual(rateSummary.Mean, wantNeg/1e6, 1e-9) {
		t.Errorf("mean = %f, want %f (negative rate must not be clamped)", rateSummary.Mean, wantNeg/1e6)
	}
}

func TestMonteCarloRejectsBadInput(t *testing.T) {
	a := New(nil)
	p := baseParams()

	if _, err := a.MonteCarlo(p, 0, nil, nil); err == nil {
		t.Error("expected error for numSimulations <= 0")
	}
	if _, err := a.MonteCarlo(p, 10, map[string]model.Distribution{
		model.ParamDelayMonths: {Type: "triangular"},
	}, nil); err == nil {
		t.Error("expected error for unknown distribution type")
	}
	if _, err := a.MonteCarlo(p, 10, map[string]model.Distribution{
		"not_a_parameter": {Type: model.DistNormal},
	}, nil); err == nil {
		t.Error("expected error for unknown parameter name")
	}
}

func TestPercentileSorted(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.5, 30},
		{0.75, 40},
		{1, 50},
		{0.125, 15}, // interpolated halfway between 10 and 20
	}
	for _, tt := range tests {
		if got := percentileSorted(sorted, tt.q); !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("percentileSorted(q=%.3f) = %f, want %f", tt.q, got, tt.want)
		}
	}
	if got := percentileSorted(nil, 0.5); got != 0 {
		t.Errorf("empty input should yield 0, got %f", got)
	}
}
