package calculation

import (
	"fmt"
	"math"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// PresentValue discounts the inputs back to today: a lump future value at
// compound interest, plus an ordinary annuity for any recurring payment.
func PresentValue(in domain.PresentValueInputs) (*domain.PresentValueResult, error) {
	if in.Years <= 0 {
		return nil, fmt.Errorf("years must be positive, got %d", in.Years)
	}
	if in.AnnualRatePercent.IsNegative() {
		return nil, fmt.Errorf("discount rate cannot be negative")
	}
	compounds := in.CompoundsPerYear
	if compounds <= 0 {
		compounds = 1
	}

	periods := decimal.NewFromInt(int64(in.Years * compounds))
	rate := in.AnnualRatePercent.Div(hundred).Div(decimal.NewFromInt(int64(compounds)))
	growth := one.Add(rate).Pow(periods)

	result := &domain.PresentValueResult{}
	if in.FutureValue.IsPositive() {
		result.OfFutureValue = in.FutureValue.Div(growth).Round(2)
	}
	if in.PeriodicPayment.IsPositive() {
		if rate.IsZero() {
			result.OfPayments = in.PeriodicPayment.Mul(periods).Round(2)
		} else {
			// PV = pmt * (1 - (1+r)^-n) / r
			result.OfPayments = in.PeriodicPayment.Mul(one.Sub(one.Div(growth))).Div(rate).Round(2)
		}
	}
	result.Total = result.OfFutureValue.Add(result.OfPayments)
	return result, nil
}

// FutureValue grows a starting balance with monthly compounding and
// end-of-month contributions.
func FutureValue(in domain.FutureValueInputs) (*domain.FutureValueResult, error) {
	if in.Years <= 0 {
		return nil, fmt.Errorf("years must be positive, got %d", in.Years)
	}
	if in.AnnualRatePercent.IsNegative() {
		return nil, fmt.Errorf("growth rate cannot be negative")
	}

	months := decimal.NewFromInt(int64(in.Years * 12))
	rate := monthlyRate(in.AnnualRatePercent)
	growth := one.Add(rate).Pow(months)

	ending := in.Principal.Mul(growth)
	if in.MonthlyContribution.IsPositive() {
		if rate.IsZero() {
			ending = ending.Add(in.MonthlyContribution.Mul(months))
		} else {
			// FV = pmt * ((1+r)^n - 1) / r
			ending = ending.Add(in.MonthlyContribution.Mul(growth.Sub(one)).Div(rate))
		}
	}

	contributions := in.Principal.Add(in.MonthlyContribution.Mul(months))
	return &domain.FutureValueResult{
		EndingBalance:      ending.Round(2),
		TotalContributions: contributions,
		TotalGrowth:        ending.Round(2).Sub(contributions),
	}, nil
}

// ReturnOnInvestment computes the simple and, when a holding period is
// given, annualized return percentages.
func ReturnOnInvestment(in domain.ROIInputs) (*domain.ROIResult, error) {
	if !in.AmountInvested.IsPositive() {
		return nil, fmt.Errorf("amount invested must be positive")
	}
	if in.Years.IsNegative() {
		return nil, fmt.Errorf("holding period cannot be negative")
	}

	gain := in.AmountReturned.Sub(in.AmountInvested)
	result := &domain.ROIResult{
		Gain:       gain,
		ROIPercent: gain.Div(in.AmountInvested).Mul(hundred).Round(2),
	}

	if in.Years.IsPositive() && in.AmountReturned.IsPositive() {
		// (end/begin)^(1/years) needs a fractional exponent, which decimal
		// does not support; float64 is accurate enough for a display rate.
		ratio, _ := in.AmountReturned.Div(in.AmountInvested).Float64()
		years, _ := in.Years.Float64()
		annualized := math.Pow(ratio, 1/years) - 1
		result.AnnualizedPercent = decimal.NewFromFloat(annualized).Mul(hundred).Round(2)
	}
	return result, nil
}
