package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/fincalc/fincalc/internal/domain"
)

// CSVFormatter writes the full monthly schedule as CSV, one row per month.
type CSVFormatter struct{}

// Name implements Formatter.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format implements Formatter.
func (cf *CSVFormatter) Format(results *domain.LoanResults) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"month", "date", "payment", "principal", "interest", "extra",
		"insurance", "balance", "cumulative_principal", "cumulative_interest",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, row := range results.Schedule {
		record := []string{
			strconv.Itoa(row.Month),
			row.Date.Format("2006-01"),
			row.Payment.StringFixed(2),
			row.Principal.StringFixed(2),
			row.Interest.StringFixed(2),
			row.ExtraPayment.StringFixed(2),
			row.Insurance.StringFixed(2),
			row.Balance.StringFixed(2),
			row.CumulativePrincipal.StringFixed(2),
			row.CumulativeInterest.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
