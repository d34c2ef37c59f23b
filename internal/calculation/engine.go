package calculation

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine orchestrates the calculators. Every run is a pure function of its
// inputs; the engine only carries the logger and debug flag across calls.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// CalculateLoan builds the amortization schedule for the inputs and reduces
// it to totals.
func (e *Engine) CalculateLoan(in domain.LoanInputs, plan *domain.ExtraPaymentPlan) (*domain.LoanResults, error) {
	rows, err := BuildSchedule(in, plan)
	if err != nil {
		return nil, err
	}
	results := Aggregate(in, rows)
	if e.Debug {
		e.Logger.Debugf("amortized %s over %d months, total interest %s",
			results.LoanAmount.StringFixed(2), results.Months, results.TotalInterest.StringFixed(2))
	}
	return results, nil
}

// RunPayoff simulates paying down the debts under the given strategy.
func (e *Engine) RunPayoff(debts []domain.Debt, extraMonthly decimal.Decimal, strategy domain.PayoffStrategy) (*domain.PayoffResult, error) {
	result, err := SimulatePayoff(debts, extraMonthly, strategy)
	if err != nil {
		return nil, err
	}
	if e.Debug && result.CapReached {
		e.Logger.Warnf("payoff simulation hit the %d-month cap with %s still owed",
			PayoffMonthCap, result.Timeline[len(result.Timeline)-1].RemainingBalance.StringFixed(2))
	}
	return result, nil
}
