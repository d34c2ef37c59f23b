package compare

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter formats comparison results as CSV.
type CSVFormatter struct{}

// Format generates CSV output, one row per strategy including the base.
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"strategy", "monthly_outlay", "months", "payoff_date",
		"total_interest", "total_paid", "months_saved", "interest_saved",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	rows := append([]ComparisonResult{*compSet.BaseResult}, compSet.AlternativeResults...)
	for _, r := range rows {
		record := []string{
			r.StrategyName,
			r.MonthlyOutlay.StringFixed(2),
			strconv.Itoa(r.Months),
			r.PayoffDate.Format("2006-01"),
			r.TotalInterest.StringFixed(2),
			r.TotalPaid.StringFixed(2),
			strconv.Itoa(r.MonthsSaved),
			r.InterestSaved.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
