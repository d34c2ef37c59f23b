package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayoffStrategyValid(t *testing.T) {
	assert.True(t, StrategyAvalanche.Valid())
	assert.True(t, StrategySnowball.Valid())
	assert.False(t, PayoffStrategy("").Valid())
	assert.False(t, PayoffStrategy("blizzard").Valid())
}

func TestDebtMonthlyRate(t *testing.T) {
	d := Debt{APRPercent: decimal.NewFromInt(12)}
	assert.Equal(t, "0.0100", d.MonthlyRate().StringFixed(4))
}

func TestPayoffOrder(t *testing.T) {
	result := PayoffResult{
		Debts: []DebtPayoff{
			{Name: "Slow", PayoffMonth: 30},
			{Name: "Fast", PayoffMonth: 5},
			{Name: "Middle", PayoffMonth: 12},
		},
	}
	assert.Equal(t, []string{"Fast", "Middle", "Slow"}, result.PayoffOrder())
}

func TestPayoffOrderStableOnTies(t *testing.T) {
	result := PayoffResult{
		Debts: []DebtPayoff{
			{Name: "A", PayoffMonth: 10},
			{Name: "B", PayoffMonth: 10},
			{Name: "C", PayoffMonth: 4},
		},
	}
	assert.Equal(t, []string{"C", "A", "B"}, result.PayoffOrder())
}

func TestConsolidationOfferFeeFor(t *testing.T) {
	balance := decimal.NewFromInt(8000)

	flat := ConsolidationOffer{FeeFlat: decimal.NewFromInt(500)}
	assert.True(t, flat.FeeFor(balance).Equal(decimal.NewFromInt(500)))

	pct := ConsolidationOffer{FeePercent: decimal.NewFromInt(3)}
	assert.True(t, pct.FeeFor(balance).Equal(decimal.NewFromInt(240)))

	both := ConsolidationOffer{FeeFlat: decimal.NewFromInt(100), FeePercent: decimal.NewFromInt(3)}
	assert.True(t, both.FeeFor(balance).Equal(decimal.NewFromInt(340)))

	assert.True(t, (&ConsolidationOffer{}).FeeFor(balance).IsZero())
}
