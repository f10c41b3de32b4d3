package sensitivity

import (
	"sort"

	"capex-forecast/internal/capex"
	"capex-forecast/internal/model"
)

const millions = 1_000_000

// trackedParameters is the fixed sweep set, in display order. The order only
// matters for default presentation and tornado tie-breaking; each parameter is
// perturbed independently.
var trackedParameters = []string{
	model.ParamEquipmentCostPerMW,
	model.ParamLaborCostPerMW,
	model.ParamInterestRate,
	model.ParamDelayMonths,
	model.ParamInflationRate,
}

// parameterLabels are display names for tornado output.
var parameterLabels = map[string]string{
	model.ParamEquipmentCostPerMW: "Equipment Cost",
	model.ParamLaborCostPerMW:     "Labor Cost",
	model.ParamInterestRate:       "Interest Rate",
	model.ParamDelayMonths:        "Permitting Delay",
	model.ParamInflationRate:      "Inflation Rate",
}

// Analyzer runs perturb-and-diff sweeps over the cost model.
type Analyzer struct {
	calc *capex.Calculator
}

func New(calc *capex.Calculator) *Analyzer {
	if calc == nil {
		calc = capex.New()
	}
	return &Analyzer{calc: calc}
}

// TrackedParameters returns the sweep set in display order.
func TrackedParameters() []string {
	out := make([]string, len(trackedParameters))
	copy(out, trackedParameters)
	return out
}

// ParameterLabel returns the display name for a tracked parameter, or the
// parameter name itself when no label is registered.
func ParameterLabel(param string) string {
	if label, ok := parameterLabels[param]; ok {
		return label
	}
	return param
}

// Analyze perturbs each tracked parameter by ±rangePct (one parameter changed
// per evaluation, all others held at base) and records the resulting total
// costs. Outputs are in millions of dollars.
//
// The low case for delay_months is clamped to >= 0; no other parameter is
// clamped on the low side. That guard is intentionally narrow: a delay cannot
// go negative, while rates and costs are left to the caller's validation.
func (a *Analyzer) Analyze(base model.ProjectParameters, rangePct float64) (map[string]model.SensitivityResult, error) {
	baseCost, err := a.calc.TotalCapex(base)
	if err != nil {
		return nil, err
	}

	results := make(map[string]model.SensitivityResult, len(trackedParameters))
	for _, param := range trackedParameters {
		lowParams, err := perturb(base, param, -rangePct)
		if err != nil {
			return nil, err
		}
		lowCost, err := a.calc.TotalCapex(lowParams)
		if err != nil {
			return nil, err
		}

		highParams, err := perturb(base, param, rangePct)
		if err != nil {
			return nil, err
		}
		highCost, err := a.calc.TotalCapex(highParams)
		if err != nil {
			return nil, err
		}

		results[param] = model.SensitivityResult{
			Low:   lowCost / millions,
			High:  highCost / millions,
			Range: (highCost - lowCost) / millions,
			Base:  baseCost / millions,
		}
	}
	return results, nil
}

// ParameterImpact evaluates a single-sided perturbation of one parameter and
// returns the new total cost and the delta from base, in dollars.
func (a *Analyzer) ParameterImpact(base model.ProjectParameters, parameter string, changePct float64) (newCost, costDelta float64, err error) {
	baseCost, err := a.calc.TotalCapex(base)
	if err != nil {
		return 0, 0, err
	}
	modified, err := perturb(base, parameter, changePct)
	if err != nil {
		return 0, 0, err
	}
	newCost, err = a.calc.TotalCapex(modified)
	if err != nil {
		return 0, 0, err
	}
	return newCost, newCost - baseCost, nil
}

// TornadoData builds tornado chart entries: per tracked parameter, the cost
// deltas (in millions) of a ±rangePct perturbation, sorted descending by
// absolute swing. Equal swings keep tracked-parameter order.
func (a *Analyzer) TornadoData(base model.ProjectParameters, rangePct float64) ([]model.TornadoEntry, error) {
	baseCost, err := a.calc.TotalCapex(base)
	if err != nil {
		return nil, err
	}

	entries := make([]model.TornadoEntry, 0, len(trackedParameters))
	for _, param := range trackedParameters {
		_, lowChange, err := a.ParameterImpact(base, param, -rangePct)
		if err != nil {
			return nil, err
		}
		_, highChange, err := a.ParameterImpact(base, param, rangePct)
		if err != nil {
			return nil, err
		}

		entries = append(entries, model.TornadoEntry{
			Parameter:  param,
			Label:      parameterLabels[param],
			LowImpact:  lowChange / millions,
			HighImpact: highChange / millions,
			Range:      absF(highChange-lowChange) / millions,
			BaseCost:   baseCost / millions,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Range > entries[j].Range
	})
	return entries, nil
}

// perturb applies a percentage change to one parameter. A negative change on
// delay_months is floored at 0.
func perturb(base model.ProjectParameters, parameter string, changePct float64) (model.ProjectParameters, error) {
	v, err := base.Value(parameter)
	if err != nil {
		return base, err
	}
	nv := v * (1 + changePct/100)
	if parameter == model.ParamDelayMonths && nv < 0 {
		nv = 0
	}
	return base.WithValue(parameter, nv)
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
