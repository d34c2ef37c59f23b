package calculation

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// downPaymentTiers are the standard down payment targets: the FHA floor and
// the common conventional levels.
var downPaymentTiers = []struct {
	label   string
	percent decimal.Decimal
	fha     bool
}{
	{"FHA minimum", decimal.NewFromFloat(3.5), true},
	{"Conventional low", decimal.NewFromInt(5), false},
	{"Conventional", decimal.NewFromInt(10), false},
	{"No PMI", decimal.NewFromInt(20), false},
}

// PlanDownPayment lays out what each standard down payment tier requires for
// a home price, how long reaching it takes at the given savings rate, and
// whether mortgage insurance would still apply.
func PlanDownPayment(in domain.DownPaymentInputs) (*domain.DownPaymentPlan, error) {
	if !in.HomePrice.IsPositive() {
		return nil, fmt.Errorf("home price must be positive")
	}
	if in.SavedAmount.IsNegative() || in.MonthlySavings.IsNegative() {
		return nil, fmt.Errorf("savings amounts cannot be negative")
	}

	plan := &domain.DownPaymentPlan{HomePrice: in.HomePrice}
	for _, tier := range downPaymentTiers {
		amount := in.HomePrice.Mul(tier.percent).Div(hundred).Round(2)
		needed := amount.Sub(in.SavedAmount)
		if needed.IsNegative() {
			needed = decimal.Zero
		}

		months := 0
		if needed.IsPositive() && in.MonthlySavings.IsPositive() {
			months = int(needed.Div(in.MonthlySavings).Ceil().IntPart())
		}

		loan := in.HomePrice.Sub(amount)
		t := domain.DownPaymentTier{
			Label:             tier.label,
			Percent:           tier.percent,
			Amount:            amount,
			StillNeeded:       needed,
			MonthsToSave:      months,
			LoanAmount:        loan,
			RequiresInsurance: PMIRequired(in.HomePrice, amount),
		}
		if tier.fha {
			t.UpfrontPremium = UpfrontMIP(loan)
		}
		plan.Tiers = append(plan.Tiers, t)
	}
	return plan, nil
}
