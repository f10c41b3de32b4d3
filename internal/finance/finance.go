package finance

import (
	"fmt"
	"math"

	"capex-forecast/internal/model"
)

// NPV discounts cash flows at discountRate (percent). Index 0 is undiscounted.
func NPV(cashFlows []float64, discountRate float64) float64 {
	rate := discountRate / 100
	npv := 0.0
	for i, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(i))
	}
	return npv
}

const (
	irrMaxIterations  = 100
	irrRateTolerance  = 1e-8
	irrDerivTolerance = 1e-12
)

// IRR finds the rate (decimal) where NPV is zero via Newton-Raphson. The
// returned result always carries a rate: when the derivative goes flat or the
// iteration budget runs out, Converged is false and Rate is the last iterate.
func IRR(cashFlows []float64, initialGuess float64) model.IRRResult {
	npvAt := func(rate float64) float64 {
		s := 0.0
		for i, cf := range cashFlows {
			s += cf / math.Pow(1+rate, float64(i))
		}
		return s
	}
	derivAt := func(rate float64) float64 {
		s := 0.0
		for i, cf := range cashFlows {
			s += -float64(i) * cf / math.Pow(1+rate, float64(i+1))
		}
		return s
	}

	rate := initialGuess
	for i := 1; i <= irrMaxIterations; i++ {
		deriv := derivAt(rate)
		if math.Abs(deriv) < irrDerivTolerance {
			return model.IRRResult{Rate: rate, Iterations: i, Converged: false}
		}
		newRate := rate - npvAt(rate)/deriv
		if math.Abs(newRate-rate) < irrRateTolerance {
			return model.IRRResult{Rate: newRate, Iterations: i, Converged: true}
		}
		rate = newRate
	}
	return model.IRRResult{Rate: rate, Iterations: irrMaxIterations, Converged: false}
}

// PaybackPeriod returns the fractional year where the cumulative sum first
// reaches zero, or +Inf when it never does. The fractional part interpolates
// within the recovery year; when the recovery happens at index 0 or the
// recovery year's flow is zero, the integer year is returned as-is.
func PaybackPeriod(cashFlows []float64) float64 {
	cumulative := 0.0
	for i, cf := range cashFlows {
		cumulative += cf
		if cumulative >= 0 {
			if i > 0 && cf != 0 {
				fraction := (cumulative - cf) / cf
				return float64(i) - fraction
			}
			return float64(i)
		}
	}
	return math.Inf(1)
}

// EscalateCost compounds base at rate (percent) over years.
// Zero years is the identity.
func EscalateCost(base, rate float64, years int) float64 {
	return base * math.Pow(1+rate/100, float64(years))
}

// RealDiscountRate applies the Fisher equation to a nominal rate and an
// inflation rate, both in percent; the result is in percent.
func RealDiscountRate(nominalRate, inflationRate float64) float64 {
	return ((1+nominalRate/100)/(1+inflationRate/100) - 1) * 100
}

// FormatCurrency renders an amount with K/M/B suffixes for report output.
func FormatCurrency(amount float64, decimals int) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("$%.*fB", decimals, amount/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.*fM", decimals, amount/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.*fK", decimals, amount/1e3)
	default:
		return fmt.Sprintf("$%.*f", decimals, amount)
	}
}
