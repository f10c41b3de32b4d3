package finance

import (
	"fmt"
	"math"

	"capex-forecast/internal/model"
)

// Debt payment types.
const (
	PaymentEqual        = "equal"
	PaymentInterestOnly = "interest_only"
)

// Depreciation methods.
const (
	DepreciationStraightLine = "straight_line"
	DepreciationMACRS        = "macrs"
)

// CashFlowSchedule spreads capex evenly as negative flows across years
// 1..constructionYears, then applies flat revenue/opex over the operating
// years. Year 0 is all-zero.
func CashFlowSchedule(capex, annualRevenue, annualOpex float64, projectLife, constructionYears int) (model.CashFlowSchedule, error) {
	if constructionYears <= 0 {
		return model.CashFlowSchedule{}, fmt.Errorf("constructionYears must be > 0, got %d", constructionYears)
	}
	if projectLife < 0 {
		return model.CashFlowSchedule{}, fmt.Errorf("projectLife must be >= 0, got %d", projectLife)
	}

	totalYears := constructionYears + projectLife
	s := model.CashFlowSchedule{
		Years:   make([]int, totalYears+1),
		Capex:   make([]float64, totalYears+1),
		Revenue: make([]float64, totalYears+1),
		Opex:    make([]float64, totalYears+1),
		Net:     make([]float64, totalYears+1),
	}
	for y := 0; y <= totalYears; y++ {
		s.Years[y] = y
	}

	annualCapex := capex / float64(constructionYears)
	for y := 1; y <= constructionYears; y++ {
		s.Capex[y] = -annualCapex
	}
	for y := constructionYears + 1; y <= totalYears; y++ {
		s.Revenue[y] = annualRevenue
		s.Opex[y] = -annualOpex
	}
	for y := 0; y <= totalYears; y++ {
		s.Net[y] = s.Capex[y] + s.Revenue[y] + s.Opex[y]
	}
	return s, nil
}

// DebtService builds a per-year amortization table.
//
// "equal": standard level-payment amortization; the balance reaches zero at
// the final year within numerical tolerance.
// "interest_only": interest every year, full principal repaid in the final
// year.
func DebtService(principal, interestRate float64, termYears int, paymentType string) (model.DebtServiceSchedule, error) {
	if termYears <= 0 {
		return model.DebtServiceSchedule{}, fmt.Errorf("termYears must be > 0, got %d", termYears)
	}
	rate := interestRate / 100

	s := model.DebtServiceSchedule{
		Years:     make([]int, termYears+1),
		Balance:   make([]float64, termYears+1),
		Interest:  make([]float64, termYears+1),
		Principal: make([]float64, termYears+1),
		Payment:   make([]float64, termYears+1),
	}
	for y := 0; y <= termYears; y++ {
		s.Years[y] = y
	}
	s.Balance[0] = principal

	switch paymentType {
	case PaymentEqual:
		n := float64(termYears)
		var payment float64
		if rate == 0 {
			payment = principal / n
		} else {
			payment = principal * (rate * math.Pow(1+rate, n)) / (math.Pow(1+rate, n) - 1)
		}
		for y := 1; y <= termYears; y++ {
			interest := s.Balance[y-1] * rate
			principalPayment := payment - interest
			s.Balance[y] = math.Max(0, s.Balance[y-1]-principalPayment)
			s.Interest[y] = interest
			s.Principal[y] = principalPayment
			s.Payment[y] = payment
		}

	case PaymentInterestOnly:
		annualInterest := principal * rate
		for y := 1; y <= termYears; y++ {
			s.Balance[y] = principal
			s.Interest[y] = annualInterest
			s.Payment[y] = annualInterest
		}
		s.Balance[termYears] = 0
		s.Principal[termYears] = principal
		s.Payment[termYears] = annualInterest + principal

	default:
		return model.DebtServiceSchedule{}, &model.UnsupportedPaymentTypeError{PaymentType: paymentType}
	}

	return s, nil
}

// macrsSchedules holds fixed-percentage MACRS tables by asset life.
var macrsSchedules = map[int][]float64{
	5:  {0.2, 0.32, 0.192, 0.1152, 0.1152, 0.0576},
	7:  {0.1429, 0.2449, 0.1749, 0.1249, 0.0893, 0.0892, 0.0893, 0.0446},
	10: {0.1, 0.18, 0.144, 0.1152, 0.0922, 0.0737, 0.0655, 0.0655, 0.0656, 0.0655, 0.0328},
}

// DepreciationSchedule returns annual depreciation amounts.
//
// "straight_line" divides evenly over assetLife. "macrs" uses the fixed tables
// for asset lives 5, 7 and 10; other lives fall back to straight-line, keeping
// the behavior the dashboard has always shown. Unknown methods are an error.
func DepreciationSchedule(assetCost float64, method string, assetLife int) ([]float64, error) {
	if assetLife <= 0 {
		return nil, fmt.Errorf("assetLife must be > 0, got %d", assetLife)
	}

	switch method {
	case DepreciationStraightLine:
		return straightLine(assetCost, assetLife), nil
	case DepreciationMACRS:
		pcts, ok := macrsSchedules[assetLife]
		if !ok {
			return straightLine(assetCost, assetLife), nil
		}
		out := make([]float64, len(pcts))
		for i, pct := range pcts {
			out[i] = assetCost * pct
		}
		return out, nil
	default:
		return nil, &model.UnsupportedMethodError{Method: method}
	}
}

func straightLine(assetCost float64, assetLife int) []float64 {
	annual := assetCost / float64(assetLife)
	out := make([]float64, assetLife)
	for i := range out {
		out[i] = annual
	}
	return out
}
