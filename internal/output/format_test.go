package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"Zero", decimal.Zero, "$0.00"},
		{"Cents only", decimal.NewFromFloat(0.5), "$0.50"},
		{"No grouping under a thousand", decimal.NewFromFloat(999.99), "$999.99"},
		{"Thousands", decimal.NewFromFloat(1234.56), "$1,234.56"},
		{"Millions", decimal.NewFromFloat(1234567.89), "$1,234,567.89"},
		{"Negative", decimal.NewFromFloat(-1234.5), "-$1,234.50"},
		{"Rounds to cents", decimal.NewFromFloat(10.005), "$10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "6.50%", FormatPercentage(decimal.NewFromFloat(6.5)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "96.50%", FormatPercentage(decimal.NewFromFloat(96.5)))
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		months   int
		expected string
	}{
		{0, "0 months"},
		{-3, "0 months"},
		{1, "1 month"},
		{11, "11 months"},
		{12, "1 year"},
		{13, "1 year, 1 month"},
		{24, "2 years"},
		{26, "2 years, 2 months"},
		{360, "30 years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMonths(tt.months), "FormatMonths(%d)", tt.months)
	}
}
