package calculation

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Consolidate compares keeping a set of debts on minimum payments against
// replacing them with a single consolidation loan.
func Consolidate(debts []domain.Debt, offer domain.ConsolidationOffer) (*domain.ConsolidationResult, error) {
	if offer.TermYears <= 0 {
		return nil, fmt.Errorf("consolidation term must be at least one year, got %d", offer.TermYears)
	}
	if offer.APRPercent.IsNegative() {
		return nil, fmt.Errorf("consolidation rate cannot be negative")
	}

	// Current path: minimum payments only, no extra budget.
	current, err := SimulatePayoff(debts, decimal.Zero, domain.StrategyAvalanche)
	if err != nil {
		return nil, fmt.Errorf("simulating current debts: %w", err)
	}

	balance := decimal.Zero
	currentMonthly := decimal.Zero
	for _, d := range debts {
		balance = balance.Add(d.Balance)
		currentMonthly = currentMonthly.Add(d.MinimumPayment)
	}

	fee := offer.FeeFor(balance)
	newPrincipal := balance
	if offer.FinanceFee {
		newPrincipal = newPrincipal.Add(fee)
	}

	termMonths := offer.TermYears * 12
	payment := MonthlyPayment(newPrincipal, offer.APRPercent, offer.TermYears)
	totalPaid := payment.Mul(decimal.NewFromInt(int64(termMonths)))
	if !offer.FinanceFee {
		totalPaid = totalPaid.Add(fee)
	}
	consolidatedInterest := payment.Mul(decimal.NewFromInt(int64(termMonths))).Sub(newPrincipal)

	result := &domain.ConsolidationResult{
		CurrentBalance: balance,
		Fee:            fee,
		NewPrincipal:   newPrincipal,
		Current: domain.ConsolidationPath{
			MonthlyPayment: currentMonthly,
			Months:         current.Months,
			TotalInterest:  current.TotalInterest,
			TotalPaid:      current.TotalPaid,
		},
		Consolidated: domain.ConsolidationPath{
			MonthlyPayment: payment,
			Months:         termMonths,
			TotalInterest:  consolidatedInterest,
			TotalPaid:      totalPaid,
		},
	}
	result.InterestSavings = result.Current.TotalInterest.Sub(result.Consolidated.TotalInterest)
	result.MonthsSaved = result.Current.Months - result.Consolidated.Months
	result.PaymentChange = result.Consolidated.MonthlyPayment.Sub(result.Current.MonthlyPayment)
	return result, nil
}
