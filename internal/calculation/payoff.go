package calculation

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// PayoffMonthCap bounds the payoff simulation at 50 years. A plan that has
// not cleared by then is reported as capped rather than looping forever.
const PayoffMonthCap = 600

// SimulatePayoff runs a greedy month-by-month paydown of the debts.
//
// Each month interest accrues on every open balance, every open debt
// receives its minimum payment, and the extra budget plus any minimums
// freed by paid-off debts all go to the current target: the highest-APR
// open debt under avalanche, the lowest-balance open debt under snowball.
// Ties keep input order.
func SimulatePayoff(debts []domain.Debt, extraMonthly decimal.Decimal, strategy domain.PayoffStrategy) (*domain.PayoffResult, error) {
	if len(debts) == 0 {
		return nil, fmt.Errorf("at least one debt is required")
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("unknown payoff strategy %q", strategy)
	}
	if extraMonthly.IsNegative() {
		return nil, fmt.Errorf("extra monthly amount cannot be negative")
	}
	for _, d := range debts {
		if !d.Balance.IsPositive() {
			return nil, fmt.Errorf("debt %q: balance must be positive", d.Name)
		}
	}

	balances := make([]decimal.Decimal, len(debts))
	interestPaid := make([]decimal.Decimal, len(debts))
	totalPaid := make([]decimal.Decimal, len(debts))
	payoffMonth := make([]int, len(debts))
	for i, d := range debts {
		balances[i] = d.Balance
	}

	// The monthly budget stays constant: every minimum plus the extra.
	// Minimums freed by payoff are re-routed, not pocketed.
	budget := extraMonthly
	for _, d := range debts {
		budget = budget.Add(d.MinimumPayment)
	}

	result := &domain.PayoffResult{
		Strategy:     strategy,
		ExtraMonthly: extraMonthly,
	}

	for month := 1; month <= PayoffMonthCap; month++ {
		if allZero(balances) {
			break
		}

		monthInterest := decimal.Zero
		for i := range debts {
			if !balances[i].IsPositive() {
				continue
			}
			interest := balances[i].Mul(debts[i].MonthlyRate()).Round(2)
			balances[i] = balances[i].Add(interest)
			interestPaid[i] = interestPaid[i].Add(interest)
			monthInterest = monthInterest.Add(interest)
		}

		remaining := budget
		monthPaid := decimal.Zero

		// Minimums first, clamped to the balance.
		for i := range debts {
			if !balances[i].IsPositive() {
				continue
			}
			payment := decimal.Min(debts[i].MinimumPayment, balances[i])
			payment = decimal.Min(payment, remaining)
			balances[i] = balances[i].Sub(payment)
			totalPaid[i] = totalPaid[i].Add(payment)
			remaining = remaining.Sub(payment)
			monthPaid = monthPaid.Add(payment)
			if balances[i].IsZero() && payoffMonth[i] == 0 {
				payoffMonth[i] = month
			}
		}

		// Everything left goes to targets, rolling over as they clear.
		for remaining.IsPositive() {
			target := pickTarget(debts, balances, strategy)
			if target < 0 {
				break
			}
			payment := decimal.Min(remaining, balances[target])
			balances[target] = balances[target].Sub(payment)
			totalPaid[target] = totalPaid[target].Add(payment)
			remaining = remaining.Sub(payment)
			monthPaid = monthPaid.Add(payment)
			if balances[target].IsZero() && payoffMonth[target] == 0 {
				payoffMonth[target] = month
			}
		}

		result.Months = month
		result.TotalInterest = result.TotalInterest.Add(monthInterest)
		result.Timeline = append(result.Timeline, domain.PayoffMonth{
			Month:            month,
			InterestAccrued:  monthInterest,
			TotalPaid:        monthPaid,
			RemainingBalance: sum(balances),
		})
	}

	result.CapReached = !allZero(balances)
	for i, d := range debts {
		result.TotalPaid = result.TotalPaid.Add(totalPaid[i])
		result.Debts = append(result.Debts, domain.DebtPayoff{
			Name:          d.Name,
			PayoffMonth:   payoffMonth[i],
			InterestPaid:  interestPaid[i],
			TotalPaid:     totalPaid[i],
			StartingOrder: i + 1,
		})
	}
	return result, nil
}

// pickTarget returns the index of the next debt to attack, or -1 when every
// balance is zero. Equal APRs or balances fall back to input order.
func pickTarget(debts []domain.Debt, balances []decimal.Decimal, strategy domain.PayoffStrategy) int {
	target := -1
	for i := range debts {
		if !balances[i].IsPositive() {
			continue
		}
		if target < 0 {
			target = i
			continue
		}
		switch strategy {
		case domain.StrategySnowball:
			if balances[i].LessThan(balances[target]) {
				target = i
			}
		default: // avalanche
			if debts[i].APRPercent.GreaterThan(debts[target].APRPercent) {
				target = i
			}
		}
	}
	return target
}

func allZero(balances []decimal.Decimal) bool {
	for _, b := range balances {
		if b.IsPositive() {
			return false
		}
	}
	return true
}

func sum(balances []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b)
	}
	return total
}
