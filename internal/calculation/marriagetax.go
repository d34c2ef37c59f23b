package calculation

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// taxBracket taxes income up to Ceiling at Rate. A zero Ceiling means the
// bracket is unbounded.
type taxBracket struct {
	Ceiling decimal.Decimal
	Rate    decimal.Decimal
}

// 2023 federal income tax schedule.
var (
	standardDeductionSingle = decimal.NewFromInt(13850)
	standardDeductionJoint  = decimal.NewFromInt(27700)

	bracketsSingle = []taxBracket{
		{decimal.NewFromInt(11000), decimal.NewFromFloat(0.10)},
		{decimal.NewFromInt(44725), decimal.NewFromFloat(0.12)},
		{decimal.NewFromInt(95375), decimal.NewFromFloat(0.22)},
		{decimal.NewFromInt(182100), decimal.NewFromFloat(0.24)},
		{decimal.NewFromInt(231250), decimal.NewFromFloat(0.32)},
		{decimal.NewFromInt(578125), decimal.NewFromFloat(0.35)},
		{decimal.Zero, decimal.NewFromFloat(0.37)},
	}

	bracketsJoint = []taxBracket{
		{decimal.NewFromInt(22000), decimal.NewFromFloat(0.10)},
		{decimal.NewFromInt(89450), decimal.NewFromFloat(0.12)},
		{decimal.NewFromInt(190750), decimal.NewFromFloat(0.22)},
		{decimal.NewFromInt(364200), decimal.NewFromFloat(0.24)},
		{decimal.NewFromInt(462500), decimal.NewFromFloat(0.32)},
		{decimal.NewFromInt(693750), decimal.NewFromFloat(0.35)},
		{decimal.Zero, decimal.NewFromFloat(0.37)},
	}
)

// progressiveTax applies a bracket schedule to taxable income.
func progressiveTax(taxable decimal.Decimal, brackets []taxBracket) decimal.Decimal {
	if !taxable.IsPositive() {
		return decimal.Zero
	}
	tax := decimal.Zero
	floor := decimal.Zero
	for _, b := range brackets {
		if b.Ceiling.IsZero() || taxable.LessThanOrEqual(b.Ceiling) {
			tax = tax.Add(taxable.Sub(floor).Mul(b.Rate))
			break
		}
		tax = tax.Add(b.Ceiling.Sub(floor).Mul(b.Rate))
		floor = b.Ceiling
	}
	return tax.Round(2)
}

// filingOutcome computes tax for one gross income under one filing status.
func filingOutcome(gross, deduction decimal.Decimal, brackets []taxBracket) domain.FilingOutcome {
	taxable := gross.Sub(deduction)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	tax := progressiveTax(taxable, brackets)
	rate := decimal.Zero
	if gross.IsPositive() {
		rate = tax.Div(gross).Mul(hundred).Round(2)
	}
	return domain.FilingOutcome{TaxableIncome: taxable, Tax: tax, EffectiveRate: rate}
}

// MarriageTax compares filing the two incomes jointly against filing each as
// single. A positive penalty means marriage costs more at these incomes.
func MarriageTax(in domain.MarriageTaxInputs) (*domain.MarriageTaxResult, error) {
	if in.IncomeA.IsNegative() || in.IncomeB.IsNegative() {
		return nil, fmt.Errorf("incomes cannot be negative")
	}

	result := &domain.MarriageTaxResult{
		SingleA: filingOutcome(in.IncomeA, standardDeductionSingle, bracketsSingle),
		SingleB: filingOutcome(in.IncomeB, standardDeductionSingle, bracketsSingle),
		Joint:   filingOutcome(in.IncomeA.Add(in.IncomeB), standardDeductionJoint, bracketsJoint),
	}
	result.CombinedSingleTax = result.SingleA.Tax.Add(result.SingleB.Tax)
	result.Penalty = result.Joint.Tax.Sub(result.CombinedSingleTax)
	return result, nil
}
