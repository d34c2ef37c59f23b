package compare

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComparisonResult is one extra-payment strategy with its payoff metrics and
// deltas against the base schedule.
type ComparisonResult struct {
	StrategyName string `json:"strategyName"`
	Description  string `json:"description"`

	// Key metrics
	MonthlyOutlay decimal.Decimal `json:"monthlyOutlay"`
	Months        int             `json:"months"`
	PayoffDate    time.Time       `json:"payoffDate"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`

	// Comparison to base
	MonthsSaved       int             `json:"monthsSaved"`
	InterestSaved     decimal.Decimal `json:"interestSaved"`
	InterestSavedPct  decimal.Decimal `json:"interestSavedPct"`
	ExtraPaidPerMonth decimal.Decimal `json:"extraPaidPerMonth"`
}

// ComparisonSet is a base schedule and the strategies compared against it.
type ComparisonSet struct {
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}
