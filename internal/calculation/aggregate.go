package calculation

import (
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Aggregate reduces a completed schedule into loan totals and the monthly
// cost breakdown. It is a pure reduction over the rows; the rows themselves
// are left untouched.
func Aggregate(in domain.LoanInputs, rows []domain.ScheduleRow) *domain.LoanResults {
	base := in.BaseLoanAmount()
	principal := base
	upfront := decimal.Zero
	if in.FHA != nil {
		upfront = UpfrontMIP(base)
		if in.FHA.FinanceUpfront {
			principal = principal.Add(upfront)
		}
	}

	totalInterest := decimal.Zero
	totalInsurance := decimal.Zero
	totalPaidToLoan := decimal.Zero
	for _, row := range rows {
		totalInterest = totalInterest.Add(row.Interest)
		totalInsurance = totalInsurance.Add(row.Insurance)
		totalPaidToLoan = totalPaidToLoan.Add(row.Payment).Add(row.ExtraPayment)
	}

	// An unfinanced upfront premium is paid at closing and counts toward
	// the insurance total.
	if in.FHA != nil && !in.FHA.FinanceUpfront {
		totalInsurance = totalInsurance.Add(upfront)
	}

	months := len(rows)
	escrowMonthly := in.MonthlyEscrow()
	totalEscrow := escrowMonthly.Mul(decimal.NewFromInt(int64(months)))
	totalOfPayments := totalPaidToLoan.Add(totalInsurance).Add(totalEscrow)

	results := &domain.LoanResults{
		Inputs:          in,
		LoanAmount:      principal,
		UpfrontPremium:  upfront,
		MonthlyPayment:  MonthlyPayment(principal, in.AnnualRatePercent, in.TermYears),
		TotalInterest:   totalInterest,
		TotalInsurance:  totalInsurance,
		TotalOfPayments: totalOfPayments,
		Months:          months,
		Schedule:        rows,
	}
	if months > 0 {
		results.PayoffDate = rows[months-1].Date
	}

	firstInsurance := decimal.Zero
	if months > 0 {
		firstInsurance = rows[0].Insurance
	}
	results.Breakdown = domain.MonthlyBreakdown{
		PrincipalAndInterest: results.MonthlyPayment,
		PropertyTax:          in.PropertyTaxAnnual.Div(twelve).Round(2),
		HomeInsurance:        in.HomeInsuranceAnnual.Div(twelve).Round(2),
		MortgageInsurance:    firstInsurance,
		HOA:                  in.HOAMonthly,
		Other:                in.OtherMonthly,
	}
	results.Breakdown.Total = results.Breakdown.PrincipalAndInterest.
		Add(results.Breakdown.PropertyTax).
		Add(results.Breakdown.HomeInsurance).
		Add(results.Breakdown.MortgageInsurance).
		Add(results.Breakdown.HOA).
		Add(results.Breakdown.Other)

	return results
}
