package config

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Advisory validators. Each returns human-readable messages; an empty slice
// means the inputs are usable. Calculation functions assume inputs passed
// these checks and clamp instead of erroring.

// ValidateLoan checks mortgage inputs.
func ValidateLoan(in domain.LoanInputs) []string {
	var problems []string

	if !in.BaseLoanAmount().IsPositive() {
		problems = append(problems, "loan amount must be positive (set home_price and down_payment, or principal)")
	}
	if in.HomePrice.IsNegative() {
		problems = append(problems, "home price cannot be negative")
	}
	if in.DownPayment.IsNegative() {
		problems = append(problems, "down payment cannot be negative")
	}
	if in.HomePrice.IsPositive() && in.DownPayment.GreaterThan(in.HomePrice) {
		problems = append(problems, "down payment cannot exceed home price")
	}
	if in.AnnualRatePercent.IsNegative() || in.AnnualRatePercent.GreaterThan(decimal.NewFromInt(30)) {
		problems = append(problems, "interest rate must be between 0% and 30%")
	}
	if in.TermYears <= 0 || in.TermYears > 50 {
		problems = append(problems, "term must be between 1 and 50 years")
	}
	for _, pair := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"property tax", in.PropertyTaxAnnual},
		{"home insurance", in.HomeInsuranceAnnual},
		{"HOA", in.HOAMonthly},
		{"other monthly cost", in.OtherMonthly},
		{"PMI", in.PMIAnnual},
	} {
		if pair.value.IsNegative() {
			problems = append(problems, pair.name+" cannot be negative")
		}
	}
	if in.FHA != nil {
		ltv := in.LoanToValuePercent()
		if ltv.GreaterThan(decimal.NewFromFloat(96.5)) {
			problems = append(problems, fmt.Sprintf("FHA loans require at least 3.5%% down (LTV is %s%%)", ltv.StringFixed(1)))
		}
	}
	return problems
}

// ValidateExtraPayments checks an extra payment plan.
func ValidateExtraPayments(plan domain.ExtraPaymentPlan) []string {
	var problems []string
	if plan.MonthlyAmount.IsNegative() {
		problems = append(problems, "monthly amount cannot be negative")
	}
	if plan.YearlyAmount.IsNegative() {
		problems = append(problems, "yearly amount cannot be negative")
	}
	if plan.MonthlyStart < 0 || plan.YearlyStart < 0 {
		problems = append(problems, "start months cannot be negative")
	}
	for i, one := range plan.OneTime {
		if one.Amount.IsNegative() {
			problems = append(problems, fmt.Sprintf("one-time payment %d: amount cannot be negative", i+1))
		}
		if one.Month < 1 {
			problems = append(problems, fmt.Sprintf("one-time payment %d: month must be at least 1", i+1))
		}
	}
	return problems
}

// ValidateDebts checks a debt list for the payoff and consolidation
// calculators, including the guaranteed-non-payoff condition where a minimum
// payment does not cover the monthly interest.
func ValidateDebts(debts []domain.Debt) []string {
	var problems []string
	if len(debts) == 0 {
		problems = append(problems, "at least one debt is required")
	}
	for i, d := range debts {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("debt %d", i+1)
			problems = append(problems, fmt.Sprintf("%s: name is required", name))
		}
		if !d.Balance.IsPositive() {
			problems = append(problems, fmt.Sprintf("%s: balance must be positive", name))
		}
		if d.APRPercent.IsNegative() || d.APRPercent.GreaterThan(decimal.NewFromInt(100)) {
			problems = append(problems, fmt.Sprintf("%s: APR must be between 0%% and 100%%", name))
		}
		if !d.MinimumPayment.IsPositive() {
			problems = append(problems, fmt.Sprintf("%s: minimum payment must be positive", name))
			continue
		}
		monthlyInterest := d.Balance.Mul(d.MonthlyRate()).Round(2)
		if d.MinimumPayment.LessThanOrEqual(monthlyInterest) {
			problems = append(problems, fmt.Sprintf("%s: minimum payment %s does not cover monthly interest %s; the balance will never pay off",
				name, d.MinimumPayment.StringFixed(2), monthlyInterest.StringFixed(2)))
		}
	}
	return problems
}

// ValidateOffer checks a consolidation offer.
func ValidateOffer(offer domain.ConsolidationOffer) []string {
	var problems []string
	if offer.APRPercent.IsNegative() || offer.APRPercent.GreaterThan(decimal.NewFromInt(100)) {
		problems = append(problems, "APR must be between 0% and 100%")
	}
	if offer.TermYears <= 0 || offer.TermYears > 30 {
		problems = append(problems, "term must be between 1 and 30 years")
	}
	if offer.FeeFlat.IsNegative() || offer.FeePercent.IsNegative() {
		problems = append(problems, "fees cannot be negative")
	}
	return problems
}

// ValidateDownPayment checks down payment planner inputs.
func ValidateDownPayment(in domain.DownPaymentInputs) []string {
	var problems []string
	if !in.HomePrice.IsPositive() {
		problems = append(problems, "home price must be positive")
	}
	if in.SavedAmount.IsNegative() {
		problems = append(problems, "saved amount cannot be negative")
	}
	if in.MonthlySavings.IsNegative() {
		problems = append(problems, "monthly savings cannot be negative")
	}
	return problems
}

// ValidateMarriageTax checks the marriage tax inputs.
func ValidateMarriageTax(in domain.MarriageTaxInputs) []string {
	var problems []string
	if in.IncomeA.IsNegative() || in.IncomeB.IsNegative() {
		problems = append(problems, "incomes cannot be negative")
	}
	return problems
}
