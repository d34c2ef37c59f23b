package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/domain"
)

func validLoan() domain.LoanInputs {
	return domain.LoanInputs{
		HomePrice:         decimal.NewFromInt(400000),
		DownPayment:       decimal.NewFromInt(80000),
		AnnualRatePercent: decimal.NewFromFloat(6.5),
		TermYears:         30,
	}
}

func TestValidateLoan(t *testing.T) {
	assert.Empty(t, ValidateLoan(validLoan()))

	tests := []struct {
		name    string
		mutate  func(*domain.LoanInputs)
		message string
	}{
		{
			name:    "No loan amount",
			mutate:  func(in *domain.LoanInputs) { in.HomePrice = decimal.Zero; in.DownPayment = decimal.Zero },
			message: "loan amount must be positive",
		},
		{
			name:    "Down payment exceeds price",
			mutate:  func(in *domain.LoanInputs) { in.DownPayment = decimal.NewFromInt(500000) },
			message: "down payment cannot exceed home price",
		},
		{
			name:    "Rate too high",
			mutate:  func(in *domain.LoanInputs) { in.AnnualRatePercent = decimal.NewFromInt(31) },
			message: "interest rate must be between 0% and 30%",
		},
		{
			name:    "Term too long",
			mutate:  func(in *domain.LoanInputs) { in.TermYears = 51 },
			message: "term must be between 1 and 50 years",
		},
		{
			name:    "Negative escrow",
			mutate:  func(in *domain.LoanInputs) { in.PropertyTaxAnnual = decimal.NewFromInt(-1) },
			message: "property tax cannot be negative",
		},
		{
			name: "FHA with too little down",
			mutate: func(in *domain.LoanInputs) {
				in.DownPayment = decimal.NewFromInt(10000)
				in.FHA = &domain.FHAOptions{}
			},
			message: "FHA loans require at least 3.5% down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validLoan()
			tt.mutate(&in)
			problems := ValidateLoan(in)
			require.NotEmpty(t, problems)
			found := false
			for _, p := range problems {
				if strings.Contains(p, tt.message) {
					found = true
				}
			}
			assert.True(t, found, "expected %q in %v", tt.message, problems)
		})
	}
}

func TestValidateExtraPayments(t *testing.T) {
	assert.Empty(t, ValidateExtraPayments(domain.ExtraPaymentPlan{
		MonthlyAmount: decimal.NewFromInt(200),
		MonthlyStart:  1,
	}))

	problems := ValidateExtraPayments(domain.ExtraPaymentPlan{
		MonthlyAmount: decimal.NewFromInt(-5),
		OneTime:       []domain.OneTimePayment{{Month: 0, Amount: decimal.NewFromInt(-1)}},
	})
	assert.Len(t, problems, 3)
}

func TestValidateDebts(t *testing.T) {
	good := []domain.Debt{{
		Name:           "Card",
		Balance:        decimal.NewFromInt(5000),
		APRPercent:     decimal.NewFromInt(20),
		MinimumPayment: decimal.NewFromInt(150),
	}}
	assert.Empty(t, ValidateDebts(good))

	assert.NotEmpty(t, ValidateDebts(nil))

	// A minimum payment at or under the monthly interest can never pay off.
	never := []domain.Debt{{
		Name:           "Underwater",
		Balance:        decimal.NewFromInt(10000),
		APRPercent:     decimal.NewFromInt(30),
		MinimumPayment: decimal.NewFromInt(100),
	}}
	problems := ValidateDebts(never)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "will never pay off")
}

func TestValidateOffer(t *testing.T) {
	assert.Empty(t, ValidateOffer(domain.ConsolidationOffer{
		APRPercent: decimal.NewFromInt(8),
		TermYears:  5,
	}))

	problems := ValidateOffer(domain.ConsolidationOffer{
		APRPercent: decimal.NewFromInt(120),
		TermYears:  40,
		FeeFlat:    decimal.NewFromInt(-1),
	})
	assert.Len(t, problems, 3)
}

func TestValidateDownPayment(t *testing.T) {
	assert.Empty(t, ValidateDownPayment(domain.DownPaymentInputs{
		HomePrice: decimal.NewFromInt(400000),
	}))
	assert.NotEmpty(t, ValidateDownPayment(domain.DownPaymentInputs{}))
}

func TestValidateMarriageTax(t *testing.T) {
	assert.Empty(t, ValidateMarriageTax(domain.MarriageTaxInputs{
		IncomeA: decimal.NewFromInt(90000),
		IncomeB: decimal.NewFromInt(60000),
	}))
	assert.NotEmpty(t, ValidateMarriageTax(domain.MarriageTaxInputs{
		IncomeA: decimal.NewFromInt(-1),
	}))
}
