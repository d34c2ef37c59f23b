package calculation

import (
	"github.com/shopspring/decimal"
)

// FHA mortgage insurance constants (2023 HUD schedule).
var (
	// FHAConformingLimit separates the standard and high-balance MIP bands.
	FHAConformingLimit = decimal.NewFromInt(726200)

	// FHAUpfrontRatePercent is the upfront premium charged on the base loan.
	FHAUpfrontRatePercent = decimal.NewFromFloat(1.75)
)

// Conventional PMI thresholds.
var (
	// PMIRequiredBelowDownPercent: PMI applies when the down payment is
	// under 20% of the home price.
	PMIRequiredBelowDownPercent = decimal.NewFromInt(20)

	// PMICancelBalancePercent: PMI stops once the balance falls to 78% of
	// the original home price.
	PMICancelBalancePercent = decimal.NewFromInt(78)
)

// mipDurationCutoff is the premium duration when origination LTV <= 90%.
const mipDurationCutoff = 132

var (
	ltv78 = decimal.NewFromInt(78)
	ltv90 = decimal.NewFromInt(90)
	ltv95 = decimal.NewFromInt(95)
)

// AnnualMIPRate returns the FHA annual mortgage insurance premium rate, as a
// percentage of the original base loan amount, for the given loan size,
// origination loan-to-value percentage, and term.
//
// The breakpoints reproduce the HUD table exactly: the conforming limit,
// the 95% LTV split for terms over 15 years, and the 78/90% splits for
// 15-year-and-under terms.
func AnnualMIPRate(baseLoan, ltvPercent decimal.Decimal, termYears int) decimal.Decimal {
	highBalance := baseLoan.GreaterThan(FHAConformingLimit)

	if termYears > 15 {
		if highBalance {
			if ltvPercent.GreaterThan(ltv95) {
				return decimal.NewFromFloat(0.75)
			}
			return decimal.NewFromFloat(0.70)
		}
		if ltvPercent.GreaterThan(ltv95) {
			return decimal.NewFromFloat(0.55)
		}
		return decimal.NewFromFloat(0.50)
	}

	if highBalance {
		switch {
		case ltvPercent.GreaterThan(ltv90):
			return decimal.NewFromFloat(0.65)
		case ltvPercent.GreaterThan(ltv78):
			return decimal.NewFromFloat(0.40)
		default:
			return decimal.NewFromFloat(0.15)
		}
	}
	if ltvPercent.GreaterThan(ltv90) {
		return decimal.NewFromFloat(0.40)
	}
	return decimal.NewFromFloat(0.15)
}

// MIPDurationMonths returns how long the annual premium is charged: 132
// months when origination LTV is at or under 90%, nil for life of loan
// otherwise. The rule is applied uniformly regardless of term length, even
// though the rate table has separate breakpoints for short terms; that
// asymmetry is intentional and matches the published schedule.
func MIPDurationMonths(ltvPercent decimal.Decimal) *int {
	if ltvPercent.GreaterThan(ltv90) {
		return nil
	}
	d := mipDurationCutoff
	return &d
}

// UpfrontMIP returns the one-time upfront premium (1.75% of the base loan).
func UpfrontMIP(baseLoan decimal.Decimal) decimal.Decimal {
	return baseLoan.Mul(FHAUpfrontRatePercent).Div(decimal.NewFromInt(100)).Round(2)
}

// MonthlyMIP returns the level monthly premium for a base loan amount. The
// rate applies to the original loan amount, not the declining balance.
func MonthlyMIP(baseLoan, annualRatePercent decimal.Decimal) decimal.Decimal {
	return baseLoan.Mul(annualRatePercent).
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(12)).
		Round(2)
}

// PMIRequired reports whether a conventional loan needs private mortgage
// insurance for the given price and down payment.
func PMIRequired(homePrice, downPayment decimal.Decimal) bool {
	if !homePrice.IsPositive() {
		return false
	}
	downPct := downPayment.Div(homePrice).Mul(decimal.NewFromInt(100))
	return downPct.LessThan(PMIRequiredBelowDownPercent)
}

// pmiCancelBalance returns the balance at which PMI disappears.
func pmiCancelBalance(homePrice decimal.Decimal) decimal.Decimal {
	return homePrice.Mul(PMICancelBalancePercent).Div(decimal.NewFromInt(100))
}
