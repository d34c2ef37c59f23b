package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkbook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeWorkbook(t, `
loan:
  home_price: 400000
  down_payment: 80000
  annual_rate_percent: 6.5
  term_years: 30
  property_tax_annual: 4800
  hoa_monthly: 50
extra_payments:
  monthly_amount: 200
  monthly_start: 1
debts:
  - name: Credit Card
    balance: 5000
    apr_percent: 20
    minimum_payment: 150
payoff_strategy: avalanche
extra_monthly: 250
marriage_tax:
  income_a: 90000
  income_b: 60000
`)

	parser := NewInputParser()
	wb, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, wb.Loan)
	assert.True(t, wb.Loan.HomePrice.Equal(decimal.NewFromInt(400000)))
	assert.True(t, wb.Loan.AnnualRatePercent.Equal(decimal.NewFromFloat(6.5)))
	assert.Equal(t, 30, wb.Loan.TermYears)
	assert.True(t, wb.Loan.HOAMonthly.Equal(decimal.NewFromInt(50)))

	require.NotNil(t, wb.ExtraPayments)
	assert.True(t, wb.ExtraPayments.MonthlyAmount.Equal(decimal.NewFromInt(200)))

	require.Len(t, wb.Debts, 1)
	assert.Equal(t, "Credit Card", wb.Debts[0].Name)
	assert.Equal(t, "avalanche", string(wb.PayoffStrategy))
	assert.True(t, wb.ExtraMonthly.Equal(decimal.NewFromInt(250)))

	require.NotNil(t, wb.MarriageTax)
	assert.True(t, wb.MarriageTax.IncomeA.Equal(decimal.NewFromInt(90000)))
}

func TestLoadFromFileFHA(t *testing.T) {
	path := writeWorkbook(t, `
loan:
  home_price: 500000
  down_payment: 17500
  annual_rate_percent: 6.75
  term_years: 30
  fha:
    finance_upfront: true
`)

	wb, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, wb.Loan.FHA)
	assert.True(t, wb.Loan.FHA.FinanceUpfront)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileBadYAML(t *testing.T) {
	path := writeWorkbook(t, "loan: [not a map")
	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFileValidationFailure(t *testing.T) {
	path := writeWorkbook(t, `
loan:
  home_price: 400000
  down_payment: 80000
  annual_rate_percent: 45
  term_years: 30
`)

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workbook validation failed")
	assert.Contains(t, err.Error(), "loan: interest rate must be between 0% and 30%")
}

func TestValidateWorkbookCollectsAllProblems(t *testing.T) {
	path := writeWorkbook(t, `
loan:
  home_price: 400000
  down_payment: 80000
  annual_rate_percent: 45
  term_years: 0
payoff_strategy: blizzard
extra_monthly: -10
`)

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interest rate must be between")
	assert.Contains(t, err.Error(), "term must be between")
	assert.Contains(t, err.Error(), `unknown strategy "blizzard"`)
	assert.Contains(t, err.Error(), "extra_monthly: cannot be negative")
}
