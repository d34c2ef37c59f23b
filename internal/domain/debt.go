package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoffStrategy selects the ordering a payoff simulation targets debts in.
type PayoffStrategy string

const (
	// StrategyAvalanche targets the highest-APR unpaid debt first.
	StrategyAvalanche PayoffStrategy = "avalanche"
	// StrategySnowball targets the lowest-balance unpaid debt first.
	StrategySnowball PayoffStrategy = "snowball"
)

// Valid reports whether the strategy is one of the known orderings.
func (s PayoffStrategy) Valid() bool {
	return s == StrategyAvalanche || s == StrategySnowball
}

// Debt is one revolving or installment balance in a payoff plan.
type Debt struct {
	Name           string          `yaml:"name" json:"name"`
	Balance        decimal.Decimal `yaml:"balance" json:"balance"`
	APRPercent     decimal.Decimal `yaml:"apr_percent" json:"apr_percent"`
	MinimumPayment decimal.Decimal `yaml:"minimum_payment" json:"minimum_payment"`
}

// MonthlyRate returns the periodic rate as a decimal fraction.
func (d *Debt) MonthlyRate() decimal.Decimal {
	return d.APRPercent.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
}

// DebtPayoff is a single debt's outcome within a payoff simulation.
type DebtPayoff struct {
	Name          string          `json:"name"`
	PayoffMonth   int             `json:"payoff_month"`
	InterestPaid  decimal.Decimal `json:"interest_paid"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	StartingOrder int             `json:"starting_order"`
}

// PayoffMonth is one month of the combined simulation, kept for charting
// and strategy comparison.
type PayoffMonth struct {
	Month            int             `json:"month"`
	InterestAccrued  decimal.Decimal `json:"interest_accrued"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// PayoffResult aggregates a completed debt payoff simulation.
type PayoffResult struct {
	Strategy      PayoffStrategy  `json:"strategy"`
	ExtraMonthly  decimal.Decimal `json:"extra_monthly"`
	Months        int             `json:"months"`
	CapReached    bool            `json:"cap_reached"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Debts         []DebtPayoff    `json:"debts"`
	Timeline      []PayoffMonth   `json:"timeline"`
}

// PayoffOrder returns debt names in the order they reached zero.
func (r *PayoffResult) PayoffOrder() []string {
	order := make([]DebtPayoff, len(r.Debts))
	copy(order, r.Debts)
	// Insertion sort keeps input order for equal payoff months.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && order[j].PayoffMonth < order[j-1].PayoffMonth; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	names := make([]string, len(order))
	for i, d := range order {
		names[i] = d.Name
	}
	return names
}

// ConsolidationOffer describes a consolidation loan that would replace a set
// of existing debts.
type ConsolidationOffer struct {
	APRPercent decimal.Decimal `yaml:"apr_percent" json:"apr_percent"`
	TermYears  int             `yaml:"term_years" json:"term_years"`
	// Origination fee, either a flat dollar amount or a percentage of the
	// consolidated balance. When FinanceFee is set the fee is rolled into
	// the new principal instead of being paid at closing.
	FeeFlat    decimal.Decimal `yaml:"fee_flat,omitempty" json:"fee_flat,omitempty"`
	FeePercent decimal.Decimal `yaml:"fee_percent,omitempty" json:"fee_percent,omitempty"`
	FinanceFee bool            `yaml:"finance_fee,omitempty" json:"finance_fee,omitempty"`
}

// FeeFor returns the origination fee for a given consolidated balance.
func (o *ConsolidationOffer) FeeFor(balance decimal.Decimal) decimal.Decimal {
	fee := o.FeeFlat
	if o.FeePercent.IsPositive() {
		fee = fee.Add(balance.Mul(o.FeePercent).Div(decimal.NewFromInt(100)))
	}
	return fee.Round(2)
}

// ConsolidationPath is one side of a consolidation comparison.
type ConsolidationPath struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	Months         int             `json:"months"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
}

// ConsolidationResult compares keeping the current debts against taking the
// consolidation offer.
type ConsolidationResult struct {
	CurrentBalance  decimal.Decimal   `json:"current_balance"`
	Fee             decimal.Decimal   `json:"fee"`
	NewPrincipal    decimal.Decimal   `json:"new_principal"`
	Current         ConsolidationPath `json:"current"`
	Consolidated    ConsolidationPath `json:"consolidated"`
	InterestSavings decimal.Decimal   `json:"interest_savings"`
	MonthsSaved     int               `json:"months_saved"`
	PaymentChange   decimal.Decimal   `json:"payment_change"`
}

// DownPaymentInputs drives the down payment planner.
type DownPaymentInputs struct {
	HomePrice      decimal.Decimal `yaml:"home_price" json:"home_price"`
	SavedAmount    decimal.Decimal `yaml:"saved_amount,omitempty" json:"saved_amount,omitempty"`
	MonthlySavings decimal.Decimal `yaml:"monthly_savings,omitempty" json:"monthly_savings,omitempty"`
}

// DownPaymentTier is one target down payment level for a home price.
type DownPaymentTier struct {
	Label             string          `json:"label"`
	Percent           decimal.Decimal `json:"percent"`
	Amount            decimal.Decimal `json:"amount"`
	StillNeeded       decimal.Decimal `json:"still_needed"`
	MonthsToSave      int             `json:"months_to_save"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	RequiresInsurance bool            `json:"requires_insurance"`
	UpfrontPremium    decimal.Decimal `json:"upfront_premium,omitempty"`
}

// DownPaymentPlan is the planner output across the standard tiers.
type DownPaymentPlan struct {
	HomePrice decimal.Decimal   `json:"home_price"`
	Tiers     []DownPaymentTier `json:"tiers"`
	AsOf      time.Time         `json:"as_of,omitempty"`
}
