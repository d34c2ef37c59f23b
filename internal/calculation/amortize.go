package calculation

import (
	"fmt"
	"time"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// monthlyRate converts an annual percentage rate to a monthly fraction.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(twelve)
}

// MonthlyPayment computes the level payment for a fully amortizing loan
// using M = P*r*(1+r)^n / ((1+r)^n - 1). A zero rate degenerates to P/n.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termYears int) decimal.Decimal {
	n := termYears * 12
	if n <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}
	if annualRatePercent.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	r := monthlyRate(annualRatePercent)
	pow := one.Add(r).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(r).Mul(pow).Div(pow.Sub(one)).Round(2)
}

// scheduleInsurance is the resolved per-month mortgage insurance charge for
// one schedule run.
type scheduleInsurance struct {
	monthly decimal.Decimal
	// durationMonths caps FHA premiums; nil means life of loan.
	durationMonths *int
	// cancelBalance stops conventional PMI once the balance falls to it.
	cancelBalance decimal.Decimal
}

func (si *scheduleInsurance) forMonth(month int, startingBalance decimal.Decimal) decimal.Decimal {
	if !si.monthly.IsPositive() {
		return decimal.Zero
	}
	if si.durationMonths != nil && month > *si.durationMonths {
		return decimal.Zero
	}
	if si.cancelBalance.IsPositive() && startingBalance.LessThanOrEqual(si.cancelBalance) {
		return decimal.Zero
	}
	return si.monthly
}

// resolveInsurance maps the loan inputs onto the per-month insurance rule:
// the FHA premium rate table for FHA loans, the flat PMI amount with the 78%
// cancellation rule for conventional loans with under 20% down.
func resolveInsurance(in *domain.LoanInputs) scheduleInsurance {
	base := in.BaseLoanAmount()
	if in.FHA != nil {
		ltv := in.LoanToValuePercent()
		rate := AnnualMIPRate(base, ltv, in.TermYears)
		return scheduleInsurance{
			monthly:        MonthlyMIP(base, rate),
			durationMonths: MIPDurationMonths(ltv),
		}
	}
	if in.PMIAnnual.IsPositive() && PMIRequired(in.HomePrice, in.DownPayment) {
		return scheduleInsurance{
			monthly:       in.PMIAnnual.Div(twelve).Round(2),
			cancelBalance: pmiCancelBalance(in.HomePrice),
		}
	}
	return scheduleInsurance{}
}

// BuildSchedule produces the month-by-month amortization schedule for a loan,
// applying any extra payment plan. Rows start at month 1 and stop when the
// balance reaches zero or the term is exhausted, whichever comes first.
func BuildSchedule(in domain.LoanInputs, plan *domain.ExtraPaymentPlan) ([]domain.ScheduleRow, error) {
	base := in.BaseLoanAmount()
	if !base.IsPositive() {
		return nil, fmt.Errorf("loan amount must be positive, got %s", base.StringFixed(2))
	}
	if in.TermYears <= 0 {
		return nil, fmt.Errorf("term must be at least one year, got %d", in.TermYears)
	}
	if in.AnnualRatePercent.IsNegative() {
		return nil, fmt.Errorf("interest rate cannot be negative, got %s", in.AnnualRatePercent.StringFixed(3))
	}

	principal := base
	if in.FHA != nil && in.FHA.FinanceUpfront {
		principal = principal.Add(UpfrontMIP(base))
	}

	n := in.TermMonths()
	payment := MonthlyPayment(principal, in.AnnualRatePercent, in.TermYears)
	r := monthlyRate(in.AnnualRatePercent)
	insurance := resolveInsurance(&in)
	start := startOfMonth(in.StartDate)

	rows := make([]domain.ScheduleRow, 0, n)
	balance := principal
	cumPrincipal := decimal.Zero
	cumInterest := decimal.Zero
	cumInsurance := decimal.Zero

	for m := 1; m <= n && balance.IsPositive(); m++ {
		interest := balance.Mul(r).Round(2)
		principalPart := payment.Sub(interest)
		extra := plan.AmountForMonth(m)

		// The final scheduled month absorbs rounding drift; no payment may
		// drive the balance negative.
		if m == n || principalPart.GreaterThanOrEqual(balance) {
			principalPart = balance
			extra = decimal.Zero
		} else if principalPart.Add(extra).GreaterThan(balance) {
			extra = balance.Sub(principalPart)
		}
		if extra.IsNegative() {
			extra = decimal.Zero
		}

		ins := insurance.forMonth(m, balance)
		balance = balance.Sub(principalPart).Sub(extra)
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		cumPrincipal = cumPrincipal.Add(principalPart).Add(extra)
		cumInterest = cumInterest.Add(interest)
		cumInsurance = cumInsurance.Add(ins)

		rows = append(rows, domain.ScheduleRow{
			Month:               m,
			Date:                start.AddDate(0, m-1, 0),
			Payment:             principalPart.Add(interest),
			Principal:           principalPart,
			Interest:            interest,
			ExtraPayment:        extra,
			Insurance:           ins,
			Balance:             balance,
			CumulativePrincipal: cumPrincipal,
			CumulativeInterest:  cumInterest,
			CumulativeInsurance: cumInsurance,
		})
	}

	return rows, nil
}

// startOfMonth normalizes a start date to the first of its month, defaulting
// to the current month when unset.
func startOfMonth(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
