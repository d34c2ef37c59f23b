package calculation

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// solveTolerance is the bisection convergence width, one cent.
var solveTolerance = decimal.NewFromFloat(0.01)

// SolveExtraPayment finds the smallest recurring monthly extra payment that
// retires the loan within targetMonths. Returns zero when the scheduled term
// already meets the target.
func SolveExtraPayment(in domain.LoanInputs, targetMonths int) (decimal.Decimal, error) {
	if targetMonths < 1 {
		return decimal.Zero, fmt.Errorf("target months must be at least 1, got %d", targetMonths)
	}

	baseMonths, err := scheduleLength(in, decimal.Zero)
	if err != nil {
		return decimal.Zero, err
	}
	if baseMonths <= targetMonths {
		return decimal.Zero, nil
	}

	// Bisect on the extra amount. The full principal as a monthly extra
	// pays any loan off in month one, so it bounds the search from above.
	low := decimal.Zero
	high := in.BaseLoanAmount()
	for high.Sub(low).GreaterThan(solveTolerance) {
		mid := low.Add(high).Div(decimal.NewFromInt(2))
		months, err := scheduleLength(in, mid)
		if err != nil {
			return decimal.Zero, err
		}
		if months <= targetMonths {
			high = mid
		} else {
			low = mid
		}
	}
	// Round up to the cent so the returned amount still meets the target.
	return high.Mul(hundred).Ceil().Div(hundred), nil
}

func scheduleLength(in domain.LoanInputs, extraMonthly decimal.Decimal) (int, error) {
	var plan *domain.ExtraPaymentPlan
	if extraMonthly.IsPositive() {
		plan = &domain.ExtraPaymentPlan{MonthlyAmount: extraMonthly, MonthlyStart: 1}
	}
	rows, err := BuildSchedule(in, plan)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
