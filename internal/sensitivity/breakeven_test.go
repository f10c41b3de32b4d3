package sensitivity

import (
	"testing"

	"capex-forecast/internal/capex"
	"capex-forecast/internal/model"
)

func TestBreakEvenHitsTarget(t *testing.T) {
	calc := capex.New()
	a := New(calc)
	p := baseParams()

	baseCost, err := calc.TotalCapex(p)
	if err != nil {
		t.Fatalf("TotalCapex: %v", err)
	}

	// Ask for a 15% higher total via the equipment cost alone.
	target := baseCost * 1.15
	result, err := a.BreakEven(p, target, model.ParamEquipmentCostPerMW)
	if err != nil {
		t.Fatalf("BreakEven: %v", err)
	}
	if !result.Converged {
		t.Fatal("expected convergence for a target well inside the bracket")
	}
	if result.Multiplier <= 1 {
		t.Errorf("multiplier = %f, want > 1 for a higher target", result.Multiplier)
	}

	solved, err := p.WithValue(model.ParamEquipmentCostPerMW, result.Value)
	if err != nil {
		t.Fatalf("WithValue: %v", err)
	}
	cost, err := calc.TotalCapex(solved)
	if err != nil {
		t.Fatalf("TotalCapex: %v", err)
	}
	if absF(cost-target) >= breakEvenToleranceUSD {
		t.Errorf("solved cost %f misses target %f by %f", cost, target, absF(cost-target))
	}
}

func TestBreakEvenTargetBelowBase(t *testing.T) {
	calc := capex.New()
	a := New(calc)
	p := baseParams()

	baseCost, _ := calc.TotalCapex(p)
	target := baseCost * 0.9

	result, err := a.BreakEven(p, target, model.ParamLaborCostPerMW)
	if err != nil {
		t.Fatalf("BreakEven: %v", err)
	}
	if !result.Converged {
		t.Fatal("expected convergence")
	}
	if result.Multiplier >= 1 {
		t.Errorf("multiplier = %f, want < 1 for a lower target", result.Multiplier)
	}
	if result.Value >= p.LaborCostPerMW {
		t.Errorf("solved value %f should sit below the base %f", result.Value, p.LaborCostPerMW)
	}
}

func TestBreakEvenIterationBudget(t *testing.T) {
	a := New(nil)
	p := baseParams()

	// A target far outside what a 5x equipment multiplier can reach: the
	// bracket collapses against its upper end without ever getting within
	// tolerance, so the result comes back unconverged.
	result, err := a.BreakEven(p, 1e12, model.ParamEquipmentCostPerMW)
	if err != nil {
		t.Fatalf("BreakEven: %v", err)
	}
	if result.Converged {
		t.Error("expected Converged=false for an unreachable target")
	}
	if result.Iterations != breakEvenMaxIterations {
		t.Errorf("iterations = %d, want %d", result.Iterations, breakEvenMaxIterations)
	}
	if result.Multiplier < breakEvenLowMultiplier || result.Multiplier > breakEvenHighMultiplier {
		t.Errorf("multiplier %f escaped the bracket", result.Multiplier)
	}
}

func TestBreakEvenUnknownParameter(t *testing.T) {
	a := New(nil)
	if _, err := a.BreakEven(baseParams(), 1e8, "warranty_cost"); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestBreakEvenInvalidBase(t *testing.T) {
	a := New(nil)
	p := baseParams()
	p.CapacityMW = 0
	if _, err := a.BreakEven(p, 1e8, model.ParamEquipmentCostPerMW); err == nil {
		t.Error("expected error for invalid base parameters")
	}
}
