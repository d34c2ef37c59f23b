package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Template is a named rule that builds an extra payment plan for a loan.
// Templates that depend on the loan (like biweekly) receive the scheduled
// monthly payment.
type Template struct {
	Name        string
	Description string
	Plan        func(monthlyPayment decimal.Decimal) domain.ExtraPaymentPlan
}

// TemplateRegistry holds the built-in extra-payment strategy templates.
type TemplateRegistry struct {
	templates map[string]Template
}

// NewTemplateRegistry creates an empty registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]Template)}
}

// Register adds a template to the registry.
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive).
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted.
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates registers the common extra-payment strategies.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	for _, amount := range []int64{100, 250, 500} {
		amount := amount
		registry.Register(Template{
			Name:        fmt.Sprintf("extra_%d", amount),
			Description: fmt.Sprintf("Pay an extra $%d toward principal every month", amount),
			Plan: func(decimal.Decimal) domain.ExtraPaymentPlan {
				return domain.ExtraPaymentPlan{
					MonthlyAmount: decimal.NewFromInt(amount),
					MonthlyStart:  1,
				}
			},
		})
	}

	registry.Register(Template{
		Name:        "annual_bonus",
		Description: "Apply one full scheduled payment as extra principal once a year",
		Plan: func(monthlyPayment decimal.Decimal) domain.ExtraPaymentPlan {
			return domain.ExtraPaymentPlan{
				YearlyAmount: monthlyPayment,
				YearlyStart:  12,
			}
		},
	})

	registry.Register(Template{
		Name:        "biweekly",
		Description: "Biweekly payments: 26 half-payments a year, equal to one extra payment spread monthly",
		Plan: func(monthlyPayment decimal.Decimal) domain.ExtraPaymentPlan {
			return domain.ExtraPaymentPlan{
				MonthlyAmount: monthlyPayment.Div(decimal.NewFromInt(12)).Round(2),
				MonthlyStart:  1,
			}
		},
	})

	return registry
}

// ParseTemplateList splits a comma-separated template list from the CLI.
func ParseTemplateList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// GetTemplateHelp renders the registry as help text for --list-templates.
func GetTemplateHelp(registry *TemplateRegistry) string {
	var sb strings.Builder
	sb.WriteString("Available extra-payment templates:\n\n")
	for _, name := range registry.List() {
		t, _ := registry.Get(name)
		sb.WriteString(fmt.Sprintf("  %-14s %s\n", t.Name, t.Description))
	}
	return sb.String()
}
