package compare

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/domain"
)

func compareLoan() domain.LoanInputs {
	return domain.LoanInputs{
		HomePrice:         decimal.NewFromInt(400000),
		DownPayment:       decimal.NewFromInt(80000),
		AnnualRatePercent: decimal.NewFromFloat(6.5),
		TermYears:         30,
		StartDate:         time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCompare(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set, err := engine.Compare(compareLoan(), CompareOptions{
		Templates: []string{"extra_100", "extra_500"},
	})
	require.NoError(t, err)

	require.NotNil(t, set.BaseResult)
	assert.Equal(t, 360, set.BaseResult.Months)
	assert.Equal(t, "2022.62", set.BaseResult.MonthlyOutlay.StringFixed(2))

	require.Len(t, set.AlternativeResults, 2)
	for _, alt := range set.AlternativeResults {
		assert.Less(t, alt.Months, set.BaseResult.Months, "%s should shorten the loan", alt.StrategyName)
		assert.True(t, alt.InterestSaved.IsPositive(), "%s should save interest", alt.StrategyName)
		assert.Equal(t, set.BaseResult.Months-alt.Months, alt.MonthsSaved)
		assert.True(t, alt.InterestSavedPct.IsPositive())
	}

	// A bigger extra payment saves strictly more.
	assert.True(t, set.AlternativeResults[1].InterestSaved.GreaterThan(set.AlternativeResults[0].InterestSaved))

	require.NotEmpty(t, set.Recommendations)
	assert.Contains(t, set.Recommendations[0], "extra_500")
}

func TestCompareUnknownTemplate(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	_, err := engine.Compare(compareLoan(), CompareOptions{Templates: []string{"mystery"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestCompareInvalidLoan(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	_, err := engine.Compare(domain.LoanInputs{}, CompareOptions{Templates: []string{"extra_100"}})
	assert.Error(t, err)
}

func TestCompareBiweeklyUsesPayment(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set, err := engine.Compare(compareLoan(), CompareOptions{Templates: []string{"biweekly"}})
	require.NoError(t, err)
	require.Len(t, set.AlternativeResults, 1)

	// One extra payment a year spread monthly: 2022.62 / 12.
	alt := set.AlternativeResults[0]
	assert.Equal(t, "168.55", alt.ExtraPaidPerMonth.StringFixed(2))
	assert.True(t, alt.MonthsSaved > 0)
}
