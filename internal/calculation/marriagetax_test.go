package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincalc/fincalc/internal/domain"
)

func TestProgressiveTax(t *testing.T) {
	tests := []struct {
		name     string
		taxable  decimal.Decimal
		brackets []taxBracket
		expected string
	}{
		{
			name:     "Zero income",
			taxable:  decimal.Zero,
			brackets: bracketsSingle,
			expected: "0.00",
		},
		{
			name:     "Entirely in the first bracket",
			taxable:  decimal.NewFromInt(10000),
			brackets: bracketsSingle,
			expected: "1000.00",
		},
		{
			name:     "Spans three brackets",
			taxable:  decimal.NewFromInt(86150),
			brackets: bracketsSingle,
			expected: "14260.50",
		},
		{
			name:     "Top unbounded bracket",
			taxable:  decimal.NewFromInt(700000),
			brackets: bracketsJoint,
			expected: "188914.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := progressiveTax(tt.taxable, tt.brackets)
			assert.Equal(t, tt.expected, tax.StringFixed(2))
		})
	}
}

func TestMarriageTaxEqualIncomes(t *testing.T) {
	result, err := MarriageTax(domain.MarriageTaxInputs{
		IncomeA: decimal.NewFromInt(100000),
		IncomeB: decimal.NewFromInt(100000),
	})
	require.NoError(t, err)

	// The joint brackets are exactly twice the single brackets through this
	// range, so equal earners see no penalty.
	assert.Equal(t, "14260.50", result.SingleA.Tax.StringFixed(2))
	assert.Equal(t, "14260.50", result.SingleB.Tax.StringFixed(2))
	assert.Equal(t, "28521.00", result.Joint.Tax.StringFixed(2))
	assert.Equal(t, "28521.00", result.CombinedSingleTax.StringFixed(2))
	assert.True(t, result.Penalty.IsZero(), "expected no penalty, got %s", result.Penalty)
}

func TestMarriageTaxSingleEarnerBonus(t *testing.T) {
	result, err := MarriageTax(domain.MarriageTaxInputs{
		IncomeA: decimal.NewFromInt(200000),
		IncomeB: decimal.Zero,
	})
	require.NoError(t, err)

	assert.True(t, result.SingleB.Tax.IsZero())
	assert.True(t, result.Penalty.IsNegative(),
		"a single-earner couple gets a marriage bonus, got penalty %s", result.Penalty)
	assert.True(t, result.Joint.Tax.LessThan(result.SingleA.Tax))
}

func TestMarriageTaxDeductionFloorsTaxableIncome(t *testing.T) {
	result, err := MarriageTax(domain.MarriageTaxInputs{
		IncomeA: decimal.NewFromInt(10000),
		IncomeB: decimal.Zero,
	})
	require.NoError(t, err)

	assert.True(t, result.SingleA.TaxableIncome.IsZero(), "income under the deduction owes nothing")
	assert.True(t, result.SingleA.Tax.IsZero())
	assert.True(t, result.Joint.Tax.IsZero())
}

func TestMarriageTaxNegativeIncome(t *testing.T) {
	_, err := MarriageTax(domain.MarriageTaxInputs{IncomeA: decimal.NewFromInt(-1)})
	assert.Error(t, err)
}
