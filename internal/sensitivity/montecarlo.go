package sensitivity

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"capex-forecast/internal/model"
)

// MonteCarlo runs numSimulations independent trials. Each trial draws a value
// for every parameter named in distributions (normal or uniform), substitutes
// it into a copy of base, and evaluates the total CapEx. Parameters not in
// distributions keep their base value. Sampled values are floored at 0 for
// every parameter except interest_rate (negative rates are permitted).
//
// rng is the explicit randomness source so callers can seed reproducible runs;
// if nil, an unseeded source is used.
func (a *Analyzer) MonteCarlo(base model.ProjectParameters, numSimulations int, distributions map[string]model.Distribution, rng *rand.Rand) (model.MonteCarloSummary, error) {
	if numSimulations <= 0 {
		return model.MonteCarloSummary{}, fmt.Errorf("numSimulations must be > 0, got %d", numSimulations)
	}
	for param, dist := range distributions {
		if dist.Type != model.DistNormal && dist.Type != model.DistUniform {
			return model.MonteCarloSummary{}, fmt.Errorf("parameter %s: unknown distribution type %q", param, dist.Type)
		}
		if _, err := base.Value(param); err != nil {
			return model.MonteCarloSummary{}, err
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	// Iterate distributions in a fixed order so a seeded rng replays exactly.
	params := make([]string, 0, len(distributions))
	for p := range distributions {
		params = append(params, p)
	}
	sort.Strings(params)

	results := make([]float64, 0, numSimulations)
	for i := 0; i < numSimulations; i++ {
		sim := base
		for _, param := range params {
			dist := distributions[param]
			var v float64
			switch dist.Type {
			case model.DistNormal:
				v = rng.NormFloat64()*dist.Std + dist.Mean
			case model.DistUniform:
				v = dist.Min + rng.Float64()*(dist.Max-dist.Min)
			}
			if param != model.ParamInterestRate && v < 0 {
				v = 0
			}
			var err error
			sim, err = sim.WithValue(param, v)
			if err != nil {
				return model.MonteCarloSummary{}, err
			}
		}

		cost, err := a.calc.TotalCapex(sim)
		if err != nil {
			return model.MonteCarloSummary{}, err
		}
		results = append(results, cost/millions)
	}

	return summarize(results), nil
}

func summarize(results []float64) model.MonteCarloSummary {
	n := float64(len(results))
	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	for _, v := range results {
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	mean := sum / n

	varSum := 0.0
	for _, v := range results {
		d := v - mean
		varSum += d * d
	}
	std := math.Sqrt(varSum / n)

	sorted := make([]float64, len(results))
	copy(sorted, results)
	sort.Float64s(sorted)

	return model.MonteCarloSummary{
		Mean:         mean,
		Std:          std,
		Min:          minv,
		Max:          maxv,
		Percentile5:  percentileSorted(sorted, 0.05),
		Percentile25: percentileSorted(sorted, 0.25),
		Percentile50: percentileSorted(sorted, 0.50),
		Percentile75: percentileSorted(sorted, 0.75),
		Percentile95: percentileSorted(sorted, 0.95),
		Results:      results,
	}
}

// percentileSorted interpolates linearly between order statistics.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
