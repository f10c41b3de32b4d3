package sensitivity

import (
	"capex-forecast/internal/model"
)

const (
	breakEvenLowMultiplier  = 0.1
	breakEvenHighMultiplier = 5.0
	breakEvenToleranceUSD   = 1000
	breakEvenMaxIterations  = 100
)

// BreakEven bisects a multiplier in [0.1, 5.0] applied to one parameter until
// the evaluated total cost is within $1,000 of targetCost. Total cost is
// monotone increasing in every tracked parameter, which is what makes the
// bracket-narrowing direction valid.
//
// If the iteration budget runs out, the last midpoint is returned with
// Converged=false; treat that value as approximate.
func (a *Analyzer) BreakEven(base model.ProjectParameters, targetCost float64, parameter string) (model.BreakEvenResult, error) {
	baseValue, err := base.Value(parameter)
	if err != nil {
		return model.BreakEvenResult{}, err
	}
	if err := base.Validate(); err != nil {
		return model.BreakEvenResult{}, err
	}

	low := breakEvenLowMultiplier
	high := breakEvenHighMultiplier
	mid := (low + high) / 2

	for i := 1; i <= breakEvenMaxIterations; i++ {
		mid = (low + high) / 2

		test, err := base.WithValue(parameter, baseValue*mid)
		if err != nil {
			return model.BreakEvenResult{}, err
		}
		cost, err := a.calc.TotalCapex(test)
		if err != nil {
			return model.BreakEvenResult{}, err
		}

		if absF(cost-targetCost) < breakEvenToleranceUSD {
			return model.BreakEvenResult{
				Parameter:  parameter,
				Value:      baseValue * mid,
				Multiplier: mid,
				Iterations: i,
				Converged:  true,
			}, nil
		}

		if cost < targetCost {
			low = mid
		} else {
			high = mid
		}
	}

	return model.BreakEvenResult{
		Parameter:  parameter,
		Value:      baseValue * mid,
		Multiplier: mid,
		Iterations: breakEvenMaxIterations,
		Converged:  false,
	}, nil
}
