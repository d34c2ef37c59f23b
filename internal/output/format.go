package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as a dollar amount with comma grouping.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(s, ".")
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$" + groupThousands(whole) + "." + cents
}

// FormatPercentage formats a decimal rate as a percentage string.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatMonths renders a month count as "X years, Y months".
// FormatMonths(13) == "1 year, 1 month".
func FormatMonths(months int) string {
	if months <= 0 {
		return "0 months"
	}
	years := months / 12
	rem := months % 12

	var parts []string
	if years > 0 {
		parts = append(parts, pluralize(years, "year"))
	}
	if rem > 0 {
		parts = append(parts, pluralize(rem, "month"))
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
