package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanInputs describes a single mortgage to amortize. Amounts are dollars,
// rates are percentages (6.5 means 6.5%). Inputs are treated as immutable
// once handed to the calculation engine.
type LoanInputs struct {
	HomePrice   decimal.Decimal `yaml:"home_price" json:"home_price"`
	DownPayment decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	// Principal overrides HomePrice - DownPayment when set explicitly.
	Principal         decimal.Decimal `yaml:"principal,omitempty" json:"principal,omitempty"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TermYears         int             `yaml:"term_years" json:"term_years"`
	StartDate         time.Time       `yaml:"start_date,omitempty" json:"start_date,omitempty"`

	// Recurring escrow costs. Taxes and insurance are annual amounts,
	// HOA and Other are monthly.
	PropertyTaxAnnual   decimal.Decimal `yaml:"property_tax_annual,omitempty" json:"property_tax_annual,omitempty"`
	HomeInsuranceAnnual decimal.Decimal `yaml:"home_insurance_annual,omitempty" json:"home_insurance_annual,omitempty"`
	HOAMonthly          decimal.Decimal `yaml:"hoa_monthly,omitempty" json:"hoa_monthly,omitempty"`
	OtherMonthly        decimal.Decimal `yaml:"other_monthly,omitempty" json:"other_monthly,omitempty"`

	// PMIAnnual is the flat annual private mortgage insurance amount for
	// conventional loans. Charged only while the balance remains above 78%
	// of the original home price.
	PMIAnnual decimal.Decimal `yaml:"pmi_annual,omitempty" json:"pmi_annual,omitempty"`

	// FHA enables FHA mortgage insurance premium handling.
	FHA *FHAOptions `yaml:"fha,omitempty" json:"fha,omitempty"`
}

// FHAOptions controls FHA mortgage insurance premium behavior.
type FHAOptions struct {
	// FinanceUpfront rolls the 1.75% upfront premium into the loan balance.
	FinanceUpfront bool `yaml:"finance_upfront" json:"finance_upfront"`
}

// BaseLoanAmount returns the borrowed amount before any financed premiums.
func (li *LoanInputs) BaseLoanAmount() decimal.Decimal {
	if li.Principal.IsPositive() {
		return li.Principal
	}
	return li.HomePrice.Sub(li.DownPayment)
}

// LoanToValuePercent returns the origination loan-to-value ratio as a
// percentage of home price. Returns zero when no home price was given.
func (li *LoanInputs) LoanToValuePercent() decimal.Decimal {
	if !li.HomePrice.IsPositive() {
		return decimal.Zero
	}
	return li.BaseLoanAmount().Div(li.HomePrice).Mul(decimal.NewFromInt(100))
}

// TermMonths returns the scheduled number of payments.
func (li *LoanInputs) TermMonths() int {
	return li.TermYears * 12
}

// MonthlyEscrow returns the recurring non-loan monthly cost (taxes,
// homeowner insurance, HOA, other).
func (li *LoanInputs) MonthlyEscrow() decimal.Decimal {
	twelve := decimal.NewFromInt(12)
	return li.PropertyTaxAnnual.Div(twelve).
		Add(li.HomeInsuranceAnnual.Div(twelve)).
		Add(li.HOAMonthly).
		Add(li.OtherMonthly)
}

// ExtraPaymentPlan describes optional extra principal payments. All amounts
// are additive on top of the scheduled payment; month indexes are 1-based.
type ExtraPaymentPlan struct {
	MonthlyAmount decimal.Decimal `yaml:"monthly_amount,omitempty" json:"monthly_amount,omitempty"`
	MonthlyStart  int             `yaml:"monthly_start,omitempty" json:"monthly_start,omitempty"`
	YearlyAmount  decimal.Decimal `yaml:"yearly_amount,omitempty" json:"yearly_amount,omitempty"`
	YearlyStart   int             `yaml:"yearly_start,omitempty" json:"yearly_start,omitempty"`
	OneTime       []OneTimePayment `yaml:"one_time,omitempty" json:"one_time,omitempty"`
}

// OneTimePayment is a single extra principal payment applied at one month.
type OneTimePayment struct {
	Month  int             `yaml:"month" json:"month"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// AmountForMonth sums every extra payment that lands on the given 1-based
// month. A nil plan contributes nothing.
func (p *ExtraPaymentPlan) AmountForMonth(month int) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	extra := decimal.Zero
	if p.MonthlyAmount.IsPositive() {
		start := p.MonthlyStart
		if start < 1 {
			start = 1
		}
		if month >= start {
			extra = extra.Add(p.MonthlyAmount)
		}
	}
	if p.YearlyAmount.IsPositive() {
		start := p.YearlyStart
		if start < 1 {
			start = 1
		}
		if month >= start && (month-start)%12 == 0 {
			extra = extra.Add(p.YearlyAmount)
		}
	}
	for _, one := range p.OneTime {
		if one.Month == month {
			extra = extra.Add(one.Amount)
		}
	}
	return extra
}

// IsZero reports whether the plan contributes no payments at all.
func (p *ExtraPaymentPlan) IsZero() bool {
	if p == nil {
		return true
	}
	if p.MonthlyAmount.IsPositive() || p.YearlyAmount.IsPositive() {
		return false
	}
	for _, one := range p.OneTime {
		if one.Amount.IsPositive() {
			return false
		}
	}
	return true
}

// ScheduleRow is one month of an amortization schedule. Rows are produced in
// strictly increasing month order; Balance is monotonically non-increasing
// and is exactly zero on the final row.
type ScheduleRow struct {
	Month               int             `json:"month"`
	Date                time.Time       `json:"date"`
	Payment             decimal.Decimal `json:"payment"`
	Principal           decimal.Decimal `json:"principal"`
	Interest            decimal.Decimal `json:"interest"`
	ExtraPayment        decimal.Decimal `json:"extra_payment"`
	Insurance           decimal.Decimal `json:"insurance"`
	Balance             decimal.Decimal `json:"balance"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
	CumulativeInsurance decimal.Decimal `json:"cumulative_insurance"`
}

// MonthlyBreakdown itemizes the recurring monthly cost of a loan.
type MonthlyBreakdown struct {
	PrincipalAndInterest decimal.Decimal `json:"principal_and_interest"`
	PropertyTax          decimal.Decimal `json:"property_tax"`
	HomeInsurance        decimal.Decimal `json:"home_insurance"`
	MortgageInsurance    decimal.Decimal `json:"mortgage_insurance"`
	HOA                  decimal.Decimal `json:"hoa"`
	Other                decimal.Decimal `json:"other"`
	Total                decimal.Decimal `json:"total"`
}

// LoanResults aggregates a completed schedule. Derived data only; recomputed
// whenever any input changes.
type LoanResults struct {
	Inputs          LoanInputs       `json:"inputs"`
	LoanAmount      decimal.Decimal  `json:"loan_amount"`
	UpfrontPremium  decimal.Decimal  `json:"upfront_premium"`
	MonthlyPayment  decimal.Decimal  `json:"monthly_payment"`
	Breakdown       MonthlyBreakdown `json:"breakdown"`
	TotalInterest   decimal.Decimal  `json:"total_interest"`
	TotalInsurance  decimal.Decimal  `json:"total_insurance"`
	TotalOfPayments decimal.Decimal  `json:"total_of_payments"`
	PayoffDate      time.Time        `json:"payoff_date"`
	Months          int              `json:"months"`
	Schedule        []ScheduleRow    `json:"schedule"`
}
