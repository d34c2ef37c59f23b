package output

import (
	"bytes"
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXFormatter renders a two-sheet workbook: a summary sheet and the full
// monthly schedule.
type XLSXFormatter struct{}

// Name implements Formatter.
func (xf *XLSXFormatter) Name() string { return "xlsx" }

// Format implements Formatter.
func (xf *XLSXFormatter) Format(results *domain.LoanResults) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "Summary"
	scheduleSheet := "Schedule"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return nil, err
	}

	summary := [][]any{
		{"Loan Summary", ""},
		{"", ""},
		{"Loan Amount", toFloat(results.LoanAmount)},
		{"Interest Rate (%)", toFloat(results.Inputs.AnnualRatePercent)},
		{"Term (months)", results.Inputs.TermMonths()},
		{"Monthly P&I", toFloat(results.MonthlyPayment)},
		{"Total Interest", toFloat(results.TotalInterest)},
		{"Total Insurance", toFloat(results.TotalInsurance)},
		{"Total of Payments", toFloat(results.TotalOfPayments)},
		{"Payoff Date", results.PayoffDate.Format("2006-01")},
		{"Payoff After", FormatMonths(results.Months)},
	}
	if results.UpfrontPremium.IsPositive() {
		summary = append(summary, []any{"Upfront MIP", toFloat(results.UpfrontPremium)})
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	header := []any{
		"Month", "Date", "Payment", "Principal", "Interest", "Extra",
		"Insurance", "Balance",
	}
	if err := f.SetSheetRow(scheduleSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range results.Schedule {
		record := []any{
			row.Month,
			row.Date.Format("2006-01"),
			toFloat(row.Payment),
			toFloat(row.Principal),
			toFloat(row.Interest),
			toFloat(row.ExtraPayment),
			toFloat(row.Insurance),
			toFloat(row.Balance),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(scheduleSheet, cell, &record); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
