package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fincalc/fincalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of workbook input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a workbook from a YAML file and validates every section
// that is present.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Workbook, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var wb domain.Workbook
	if err := yaml.Unmarshal(data, &wb); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateWorkbook(&wb); err != nil {
		return nil, fmt.Errorf("workbook validation failed: %w", err)
	}
	return &wb, nil
}

// ValidateWorkbook runs the advisory validators over every populated section
// and turns any findings into an error.
func (ip *InputParser) ValidateWorkbook(wb *domain.Workbook) error {
	var problems []string

	if wb.Loan != nil {
		problems = append(problems, prefix("loan", ValidateLoan(*wb.Loan))...)
	}
	if wb.ExtraPayments != nil {
		problems = append(problems, prefix("extra_payments", ValidateExtraPayments(*wb.ExtraPayments))...)
	}
	if len(wb.Debts) > 0 {
		problems = append(problems, prefix("debts", ValidateDebts(wb.Debts))...)
	}
	if wb.PayoffStrategy != "" && !wb.PayoffStrategy.Valid() {
		problems = append(problems, fmt.Sprintf("payoff_strategy: unknown strategy %q (valid: avalanche, snowball)", wb.PayoffStrategy))
	}
	if wb.ExtraMonthly.IsNegative() {
		problems = append(problems, "extra_monthly: cannot be negative")
	}
	if wb.Consolidation != nil {
		problems = append(problems, prefix("consolidation", ValidateOffer(*wb.Consolidation))...)
	}
	if wb.DownPayment != nil {
		problems = append(problems, prefix("down_payment", ValidateDownPayment(*wb.DownPayment))...)
	}
	if wb.MarriageTax != nil {
		problems = append(problems, prefix("marriage_tax", ValidateMarriageTax(*wb.MarriageTax))...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s):\n  - %s", len(problems), strings.Join(problems, "\n  - "))
	}
	return nil
}

func prefix(section string, problems []string) []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		out[i] = section + ": " + p
	}
	return out
}
