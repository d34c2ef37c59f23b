package domain

import "github.com/shopspring/decimal"

// PresentValueInputs discounts a future amount (and optionally a recurring
// payment stream) back to today.
type PresentValueInputs struct {
	FutureValue       decimal.Decimal `yaml:"future_value,omitempty" json:"future_value,omitempty"`
	PeriodicPayment   decimal.Decimal `yaml:"periodic_payment,omitempty" json:"periodic_payment,omitempty"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Years             int             `yaml:"years" json:"years"`
	CompoundsPerYear  int             `yaml:"compounds_per_year,omitempty" json:"compounds_per_year,omitempty"`
}

// PresentValueResult is the discounted value breakdown.
type PresentValueResult struct {
	OfFutureValue decimal.Decimal `json:"of_future_value"`
	OfPayments    decimal.Decimal `json:"of_payments"`
	Total         decimal.Decimal `json:"total"`
}

// FutureValueInputs grows a starting balance plus monthly contributions.
type FutureValueInputs struct {
	Principal           decimal.Decimal `yaml:"principal,omitempty" json:"principal,omitempty"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty"`
	AnnualRatePercent   decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Years               int             `yaml:"years" json:"years"`
}

// FutureValueResult breaks the ending balance into contributions and growth.
type FutureValueResult struct {
	EndingBalance      decimal.Decimal `json:"ending_balance"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalGrowth        decimal.Decimal `json:"total_growth"`
}

// ROIInputs measures the return on a single investment.
type ROIInputs struct {
	AmountInvested decimal.Decimal `yaml:"amount_invested" json:"amount_invested"`
	AmountReturned decimal.Decimal `yaml:"amount_returned" json:"amount_returned"`
	Years          decimal.Decimal `yaml:"years,omitempty" json:"years,omitempty"`
}

// ROIResult holds simple and annualized returns as percentages.
type ROIResult struct {
	Gain              decimal.Decimal `json:"gain"`
	ROIPercent        decimal.Decimal `json:"roi_percent"`
	AnnualizedPercent decimal.Decimal `json:"annualized_percent,omitempty"`
}

// MarriageTaxInputs holds the two incomes to compare filing statuses for.
type MarriageTaxInputs struct {
	IncomeA decimal.Decimal `yaml:"income_a" json:"income_a"`
	IncomeB decimal.Decimal `yaml:"income_b" json:"income_b"`
}

// FilingOutcome is the federal tax outcome for one filing arrangement.
type FilingOutcome struct {
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	Tax           decimal.Decimal `json:"tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

// MarriageTaxResult compares married-filing-jointly against two single
// filings of the same incomes. Penalty is positive when marriage costs more.
type MarriageTaxResult struct {
	SingleA           FilingOutcome   `json:"single_a"`
	SingleB           FilingOutcome   `json:"single_b"`
	Joint             FilingOutcome   `json:"joint"`
	CombinedSingleTax decimal.Decimal `json:"combined_single_tax"`
	Penalty           decimal.Decimal `json:"penalty"`
}
