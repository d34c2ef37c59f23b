package output

import (
	"fmt"
	"strings"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a loan summary and a yearly schedule digest for
// the terminal.
type ConsoleFormatter struct {
	// FullSchedule switches the schedule section from yearly rollups to
	// every monthly row.
	FullSchedule bool
}

// Name implements Formatter.
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format implements Formatter.
func (cf *ConsoleFormatter) Format(results *domain.LoanResults) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("LOAN SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")
	sb.WriteString(fmt.Sprintf("Loan Amount:        %s\n", FormatCurrency(results.LoanAmount)))
	if results.UpfrontPremium.IsPositive() {
		financed := "paid at closing"
		if results.Inputs.FHA != nil && results.Inputs.FHA.FinanceUpfront {
			financed = "financed"
		}
		sb.WriteString(fmt.Sprintf("Upfront MIP:        %s (%s)\n", FormatCurrency(results.UpfrontPremium), financed))
	}
	sb.WriteString(fmt.Sprintf("Interest Rate:      %s\n", FormatPercentage(results.Inputs.AnnualRatePercent)))
	sb.WriteString(fmt.Sprintf("Term:               %s\n", FormatMonths(results.Inputs.TermMonths())))
	sb.WriteString(fmt.Sprintf("Monthly P&I:        %s\n", FormatCurrency(results.MonthlyPayment)))
	sb.WriteString("\n")

	sb.WriteString("MONTHLY COST BREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	b := results.Breakdown
	writeBreakdownLine(&sb, "Principal & Interest", b.PrincipalAndInterest)
	writeBreakdownLine(&sb, "Property Tax", b.PropertyTax)
	writeBreakdownLine(&sb, "Home Insurance", b.HomeInsurance)
	writeBreakdownLine(&sb, "Mortgage Insurance", b.MortgageInsurance)
	writeBreakdownLine(&sb, "HOA", b.HOA)
	writeBreakdownLine(&sb, "Other", b.Other)
	sb.WriteString(fmt.Sprintf("  %-22s %14s\n", "TOTAL", FormatCurrency(b.Total)))
	sb.WriteString("\n")

	sb.WriteString("TOTALS\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	sb.WriteString(fmt.Sprintf("Payoff:             %s (%s)\n",
		results.PayoffDate.Format("January 2006"), FormatMonths(results.Months)))
	sb.WriteString(fmt.Sprintf("Total Interest:     %s\n", FormatCurrency(results.TotalInterest)))
	if results.TotalInsurance.IsPositive() {
		sb.WriteString(fmt.Sprintf("Total Insurance:    %s\n", FormatCurrency(results.TotalInsurance)))
	}
	sb.WriteString(fmt.Sprintf("Total of Payments:  %s\n", FormatCurrency(results.TotalOfPayments)))
	sb.WriteString("\n")

	if cf.FullSchedule {
		cf.writeMonthlySchedule(&sb, results)
	} else {
		cf.writeYearlySchedule(&sb, results)
	}

	return []byte(sb.String()), nil
}

func writeBreakdownLine(sb *strings.Builder, label string, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	sb.WriteString(fmt.Sprintf("  %-22s %14s\n", label, FormatCurrency(amount)))
}

func (cf *ConsoleFormatter) writeYearlySchedule(sb *strings.Builder, results *domain.LoanResults) {
	sb.WriteString("AMORTIZATION BY YEAR\n")
	sb.WriteString(fmt.Sprintf("%-6s %14s %14s %14s %14s\n",
		"Year", "Principal", "Interest", "Extra", "End Balance"))
	sb.WriteString(strings.Repeat("-", 78) + "\n")

	year := 0
	principal, interest, extra := decimal.Zero, decimal.Zero, decimal.Zero
	var balance decimal.Decimal
	flush := func() {
		if year == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%-6d %14s %14s %14s %14s\n",
			year, FormatCurrency(principal), FormatCurrency(interest),
			FormatCurrency(extra), FormatCurrency(balance)))
	}
	for _, row := range results.Schedule {
		y := (row.Month-1)/12 + 1
		if y != year {
			flush()
			year = y
			principal, interest, extra = decimal.Zero, decimal.Zero, decimal.Zero
		}
		principal = principal.Add(row.Principal)
		interest = interest.Add(row.Interest)
		extra = extra.Add(row.ExtraPayment)
		balance = row.Balance
	}
	flush()
}

func (cf *ConsoleFormatter) writeMonthlySchedule(sb *strings.Builder, results *domain.LoanResults) {
	sb.WriteString("AMORTIZATION SCHEDULE\n")
	sb.WriteString(fmt.Sprintf("%-6s %-9s %12s %12s %12s %12s %14s\n",
		"Month", "Date", "Payment", "Principal", "Interest", "Extra", "Balance"))
	sb.WriteString(strings.Repeat("-", 92) + "\n")
	for _, row := range results.Schedule {
		sb.WriteString(fmt.Sprintf("%-6d %-9s %12s %12s %12s %12s %14s\n",
			row.Month,
			row.Date.Format("Jan 2006"),
			FormatCurrency(row.Payment),
			FormatCurrency(row.Principal),
			FormatCurrency(row.Interest),
			FormatCurrency(row.ExtraPayment),
			FormatCurrency(row.Balance)))
	}
}
