package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/domain"
)

func TestConsolidate(t *testing.T) {
	offer := domain.ConsolidationOffer{
		APRPercent: decimal.NewFromInt(8),
		TermYears:  3,
		FeePercent: decimal.NewFromInt(3),
		FinanceFee: true,
	}

	result, err := Consolidate(testDebts(), offer)
	require.NoError(t, err)

	assert.True(t, result.CurrentBalance.Equal(decimal.NewFromInt(8000)))
	assert.True(t, result.Fee.Equal(decimal.NewFromInt(240)), "3%% of 8000, got %s", result.Fee)
	assert.True(t, result.NewPrincipal.Equal(decimal.NewFromInt(8240)), "financed fee joins the principal")

	assert.Equal(t, 36, result.Consolidated.Months)
	assert.True(t, result.Consolidated.MonthlyPayment.IsPositive())
	assert.True(t, result.Consolidated.TotalInterest.IsPositive())

	// Current path runs on minimums only.
	assert.True(t, result.Current.MonthlyPayment.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, result.Current.Months-result.Consolidated.Months, result.MonthsSaved)
	assert.True(t, result.InterestSavings.Equal(result.Current.TotalInterest.Sub(result.Consolidated.TotalInterest)))
	assert.True(t, result.PaymentChange.Equal(result.Consolidated.MonthlyPayment.Sub(result.Current.MonthlyPayment)))
}

func TestConsolidateUnfinancedFee(t *testing.T) {
	offer := domain.ConsolidationOffer{
		APRPercent: decimal.NewFromInt(8),
		TermYears:  3,
		FeeFlat:    decimal.NewFromInt(500),
	}

	result, err := Consolidate(testDebts(), offer)
	require.NoError(t, err)

	assert.True(t, result.NewPrincipal.Equal(decimal.NewFromInt(8000)), "unfinanced fee stays out of the principal")
	assert.True(t, result.Fee.Equal(decimal.NewFromInt(500)))

	// The closing fee still counts toward total paid.
	expectedTotal := result.Consolidated.MonthlyPayment.
		Mul(decimal.NewFromInt(36)).
		Add(decimal.NewFromInt(500))
	assert.True(t, result.Consolidated.TotalPaid.Equal(expectedTotal))
}

func TestConsolidateInvalidOffer(t *testing.T) {
	_, err := Consolidate(testDebts(), domain.ConsolidationOffer{APRPercent: decimal.NewFromInt(8)})
	assert.Error(t, err, "zero term")

	_, err = Consolidate(testDebts(), domain.ConsolidationOffer{APRPercent: decimal.NewFromInt(-1), TermYears: 3})
	assert.Error(t, err, "negative rate")

	_, err = Consolidate(nil, domain.ConsolidationOffer{APRPercent: decimal.NewFromInt(8), TermYears: 3})
	assert.Error(t, err, "no debts to consolidate")
}
