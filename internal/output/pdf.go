package output

import (
	"bytes"
	"fmt"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PDFFormatter renders a one-page loan summary with a yearly amortization
// table.
type PDFFormatter struct{}

// Name implements Formatter.
func (pf *PDFFormatter) Name() string { return "pdf" }

// Format implements Formatter.
func (pf *PDFFormatter) Format(results *domain.LoanResults) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Loan Summary")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	lines := []string{
		fmt.Sprintf("Loan Amount: %s", FormatCurrency(results.LoanAmount)),
		fmt.Sprintf("Interest Rate: %s", FormatPercentage(results.Inputs.AnnualRatePercent)),
		fmt.Sprintf("Term: %s", FormatMonths(results.Inputs.TermMonths())),
		fmt.Sprintf("Monthly P&I: %s", FormatCurrency(results.MonthlyPayment)),
		fmt.Sprintf("Total Interest: %s", FormatCurrency(results.TotalInterest)),
		fmt.Sprintf("Total of Payments: %s", FormatCurrency(results.TotalOfPayments)),
		fmt.Sprintf("Payoff: %s (%s)", results.PayoffDate.Format("January 2006"), FormatMonths(results.Months)),
	}
	if results.UpfrontPremium.IsPositive() {
		lines = append(lines, fmt.Sprintf("Upfront MIP: %s", FormatCurrency(results.UpfrontPremium)))
	}
	if results.TotalInsurance.IsPositive() {
		lines = append(lines, fmt.Sprintf("Total Insurance: %s", FormatCurrency(results.TotalInsurance)))
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	pdf.Ln(6)

	// Yearly amortization table.
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 6, "Year", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Principal", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Interest", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Extra", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, "End Balance", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)

	year := 0
	principal, interest, extra := decimal.Zero, decimal.Zero, decimal.Zero
	var balance decimal.Decimal
	writeYear := func() {
		if year == 0 {
			return
		}
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, FormatCurrency(principal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, FormatCurrency(interest), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, FormatCurrency(extra), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, FormatCurrency(balance), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	for _, row := range results.Schedule {
		y := (row.Month-1)/12 + 1
		if y != year {
			writeYear()
			year = y
			principal, interest, extra = decimal.Zero, decimal.Zero, decimal.Zero
		}
		principal = principal.Add(row.Principal)
		interest = interest.Add(row.Interest)
		extra = extra.Add(row.ExtraPayment)
		balance = row.Balance
	}
	writeYear()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
