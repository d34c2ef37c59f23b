package compare

import (
	"fmt"
	"strings"

	"github.com/fincalc/fincalc/internal/output"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing extra-payment strategies.
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("EXTRA-PAYMENT STRATEGY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 92) + "\n")
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 22
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Strategy",
		numWidth, "Monthly Outlay",
		numWidth, "Payoff",
		numWidth, "Total Interest",
		numWidth, "Total Paid"))
	sb.WriteString(strings.Repeat("-", 92) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 92) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 92) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 92) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.StrategyName))
			sb.WriteString(fmt.Sprintf("  Interest Saved:  %s (%s%%)\n",
				output.FormatCurrency(alt.InterestSaved),
				alt.InterestSavedPct.StringFixed(1)))
			if alt.MonthsSaved != 0 {
				sb.WriteString(fmt.Sprintf("  Time Saved:      %s\n", output.FormatMonths(alt.MonthsSaved)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 92) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.StrategyName
	if isBase {
		name += " (base)"
	}
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, output.FormatCurrency(result.MonthlyOutlay),
		numWidth, output.FormatMonths(result.Months),
		numWidth, output.FormatCurrency(result.TotalInterest),
		numWidth, output.FormatCurrency(result.TotalPaid))
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
