package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/domain"
)

func TestPresentValueOfLumpSum(t *testing.T) {
	// 1,100 a year out at 10% discounts to 1,000.
	result, err := PresentValue(domain.PresentValueInputs{
		FutureValue:       decimal.NewFromInt(1100),
		AnnualRatePercent: decimal.NewFromInt(10),
		Years:             1,
	})
	require.NoError(t, err)
	assert.Equal(t, "1000.00", result.OfFutureValue.StringFixed(2))
	assert.Equal(t, "1000.00", result.Total.StringFixed(2))
	assert.True(t, result.OfPayments.IsZero())
}

func TestPresentValueOfAnnuity(t *testing.T) {
	// 100 a year for two years at 10%: 90.91 + 82.64.
	result, err := PresentValue(domain.PresentValueInputs{
		PeriodicPayment:   decimal.NewFromInt(100),
		AnnualRatePercent: decimal.NewFromInt(10),
		Years:             2,
	})
	require.NoError(t, err)
	assert.Equal(t, "173.55", result.OfPayments.StringFixed(2))
}

func TestPresentValueZeroRate(t *testing.T) {
	result, err := PresentValue(domain.PresentValueInputs{
		FutureValue:       decimal.NewFromInt(5000),
		PeriodicPayment:   decimal.NewFromInt(100),
		AnnualRatePercent: decimal.Zero,
		Years:             3,
	})
	require.NoError(t, err)

	// Nothing discounts at 0%.
	assert.Equal(t, "5000.00", result.OfFutureValue.StringFixed(2))
	assert.Equal(t, "300.00", result.OfPayments.StringFixed(2))
}

func TestPresentValueInvalid(t *testing.T) {
	_, err := PresentValue(domain.PresentValueInputs{FutureValue: decimal.NewFromInt(1000)})
	assert.Error(t, err, "years required")

	_, err = PresentValue(domain.PresentValueInputs{
		FutureValue:       decimal.NewFromInt(1000),
		AnnualRatePercent: decimal.NewFromInt(-5),
		Years:             2,
	})
	assert.Error(t, err, "negative rate")
}

func TestFutureValueContributionsOnly(t *testing.T) {
	// 100 a month for a year at 12% (1% monthly) grows to 1,268.25.
	result, err := FutureValue(domain.FutureValueInputs{
		MonthlyContribution: decimal.NewFromInt(100),
		AnnualRatePercent:   decimal.NewFromInt(12),
		Years:               1,
	})
	require.NoError(t, err)
	assert.Equal(t, "1268.25", result.EndingBalance.StringFixed(2))
	assert.True(t, result.TotalContributions.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, "68.25", result.TotalGrowth.StringFixed(2))
}

func TestFutureValueZeroRate(t *testing.T) {
	result, err := FutureValue(domain.FutureValueInputs{
		Principal:           decimal.NewFromInt(1000),
		MonthlyContribution: decimal.NewFromInt(100),
		AnnualRatePercent:   decimal.Zero,
		Years:               1,
	})
	require.NoError(t, err)
	assert.Equal(t, "2200.00", result.EndingBalance.StringFixed(2))
	assert.True(t, result.TotalGrowth.IsZero())
}

func TestFutureValuePrincipalGrowth(t *testing.T) {
	result, err := FutureValue(domain.FutureValueInputs{
		Principal:         decimal.NewFromInt(10000),
		AnnualRatePercent: decimal.NewFromInt(6),
		Years:             10,
	})
	require.NoError(t, err)
	assert.True(t, result.EndingBalance.GreaterThan(decimal.NewFromInt(10000)))
	assert.True(t, result.TotalGrowth.Equal(result.EndingBalance.Sub(decimal.NewFromInt(10000))))
}

func TestFutureValueInvalid(t *testing.T) {
	_, err := FutureValue(domain.FutureValueInputs{Principal: decimal.NewFromInt(1000)})
	assert.Error(t, err, "years required")
}

func TestReturnOnInvestment(t *testing.T) {
	result, err := ReturnOnInvestment(domain.ROIInputs{
		AmountInvested: decimal.NewFromInt(1000),
		AmountReturned: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)
	assert.Equal(t, "500.00", result.Gain.StringFixed(2))
	assert.Equal(t, "50.00", result.ROIPercent.StringFixed(2))
	assert.True(t, result.AnnualizedPercent.IsZero(), "no holding period means no annualized rate")
}

func TestReturnOnInvestmentAnnualized(t *testing.T) {
	result, err := ReturnOnInvestment(domain.ROIInputs{
		AmountInvested: decimal.NewFromInt(1000),
		AmountReturned: decimal.NewFromInt(1500),
		Years:          decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	// sqrt(1.5) - 1 = 22.47%.
	assert.Equal(t, "22.47", result.AnnualizedPercent.StringFixed(2))
}

func TestReturnOnInvestmentLoss(t *testing.T) {
	result, err := ReturnOnInvestment(domain.ROIInputs{
		AmountInvested: decimal.NewFromInt(1000),
		AmountReturned: decimal.NewFromInt(800),
	})
	require.NoError(t, err)
	assert.Equal(t, "-200.00", result.Gain.StringFixed(2))
	assert.Equal(t, "-20.00", result.ROIPercent.StringFixed(2))
}

func TestReturnOnInvestmentInvalid(t *testing.T) {
	_, err := ReturnOnInvestment(domain.ROIInputs{AmountReturned: decimal.NewFromInt(100)})
	assert.Error(t, err, "nothing invested")

	_, err = ReturnOnInvestment(domain.ROIInputs{
		AmountInvested: decimal.NewFromInt(100),
		AmountReturned: decimal.NewFromInt(150),
		Years:          decimal.NewFromInt(-1),
	})
	assert.Error(t, err, "negative holding period")
}
