package compare

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparisonSet() *ComparisonSet {
	d := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
	payoff := time.Date(2056, time.January, 1, 0, 0, 0, 0, time.UTC)

	return &ComparisonSet{
		ConfigPath: "loan.yaml",
		BaseResult: &ComparisonResult{
			StrategyName:  "Scheduled payments",
			MonthlyOutlay: d(2022.62),
			Months:        360,
			PayoffDate:    payoff,
			TotalInterest: d(408142.31),
			TotalPaid:     d(728142.31),
		},
		AlternativeResults: []ComparisonResult{
			{
				StrategyName:      "extra_250",
				Description:       "Pay an extra $250 toward principal every month",
				MonthlyOutlay:     d(2272.62),
				Months:            282,
				PayoffDate:        payoff.AddDate(-7, 0, 0),
				TotalInterest:     d(298000.00),
				TotalPaid:         d(618000.00),
				MonthsSaved:       78,
				InterestSaved:     d(110142.31),
				InterestSavedPct:  d(27.0),
				ExtraPaidPerMonth: d(250),
			},
		},
		Recommendations: []string{"extra_250 saves the most interest"},
	}
}

func TestTableFormatter(t *testing.T) {
	out := (&TableFormatter{}).Format(sampleComparisonSet())

	assert.Contains(t, out, "EXTRA-PAYMENT STRATEGY COMPARISON")
	assert.Contains(t, out, "Configuration: loan.yaml")
	assert.Contains(t, out, "Scheduled payments (base)")
	assert.Contains(t, out, "extra_250")
	assert.Contains(t, out, "COMPARISON TO BASE")
	assert.Contains(t, out, "Interest Saved:")
	assert.Contains(t, out, "$110,142.31")
	assert.Contains(t, out, "6 years, 6 months")
	assert.Contains(t, out, "RECOMMENDATIONS")
}

func TestCSVComparisonFormatter(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleComparisonSet())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header, base, one alternative")
	assert.Equal(t, "strategy,monthly_outlay,months,payoff_date,total_interest,total_paid,months_saved,interest_saved", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Scheduled payments,2022.62,360,2056-01"))
	assert.True(t, strings.HasPrefix(lines[2], "extra_250,2272.62,282,2049-01"))
}

func TestJSONComparisonFormatter(t *testing.T) {
	out, err := (&JSONFormatter{Pretty: true}).Format(sampleComparisonSet())
	require.NoError(t, err)

	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.NotNil(t, decoded.BaseResult)
	assert.Equal(t, 360, decoded.BaseResult.Months)
	require.Len(t, decoded.AlternativeResults, 1)
	assert.Equal(t, 78, decoded.AlternativeResults[0].MonthsSaved)
}
