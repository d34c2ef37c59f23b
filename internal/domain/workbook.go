package domain

import "github.com/shopspring/decimal"

// Workbook is the complete yaml input file. Each calculator reads its own
// section; sections it does not need may be omitted.
type Workbook struct {
	Loan          *LoanInputs       `yaml:"loan,omitempty" json:"loan,omitempty"`
	ExtraPayments *ExtraPaymentPlan `yaml:"extra_payments,omitempty" json:"extra_payments,omitempty"`

	Debts          []Debt          `yaml:"debts,omitempty" json:"debts,omitempty"`
	PayoffStrategy PayoffStrategy  `yaml:"payoff_strategy,omitempty" json:"payoff_strategy,omitempty"`
	ExtraMonthly   decimal.Decimal `yaml:"extra_monthly,omitempty" json:"extra_monthly,omitempty"`

	Consolidation *ConsolidationOffer `yaml:"consolidation,omitempty" json:"consolidation,omitempty"`
	DownPayment   *DownPaymentInputs  `yaml:"down_payment,omitempty" json:"down_payment,omitempty"`
	MarriageTax   *MarriageTaxInputs  `yaml:"marriage_tax,omitempty" json:"marriage_tax,omitempty"`
	PresentValue  *PresentValueInputs `yaml:"present_value,omitempty" json:"present_value,omitempty"`
	FutureValue   *FutureValueInputs  `yaml:"future_value,omitempty" json:"future_value,omitempty"`
	ROI           *ROIInputs          `yaml:"roi,omitempty" json:"roi,omitempty"`
}
