package compare

import (
	"fmt"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/output"
	"github.com/shopspring/decimal"
)

// CompareOptions selects which strategies to run against the base schedule.
type CompareOptions struct {
	Templates []string
}

// Engine runs extra-payment strategy comparisons on top of the calculation
// engine.
type Engine struct {
	calc     *calculation.Engine
	registry *TemplateRegistry
}

// NewCompareEngine creates a comparison engine with the built-in templates.
func NewCompareEngine(calc *calculation.Engine) *Engine {
	return &Engine{calc: calc, registry: CreateBuiltInTemplates()}
}

// Compare amortizes the loan with no extra payments, then once per template,
// and reports each alternative's savings against the base.
func (e *Engine) Compare(in domain.LoanInputs, opts CompareOptions) (*ComparisonSet, error) {
	base, err := e.calc.CalculateLoan(in, nil)
	if err != nil {
		return nil, fmt.Errorf("base schedule: %w", err)
	}

	set := &ComparisonSet{
		BaseResult: &ComparisonResult{
			StrategyName:  "Scheduled payments",
			Description:   "No extra payments",
			MonthlyOutlay: base.MonthlyPayment,
			Months:        base.Months,
			PayoffDate:    base.PayoffDate,
			TotalInterest: base.TotalInterest,
			TotalPaid:     base.TotalOfPayments,
		},
	}

	for _, name := range opts.Templates {
		tmpl, ok := e.registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown template %q (use --list-templates to see available templates)", name)
		}
		plan := tmpl.Plan(base.MonthlyPayment)
		alt, err := e.calc.CalculateLoan(in, &plan)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", tmpl.Name, err)
		}

		result := ComparisonResult{
			StrategyName:      tmpl.Name,
			Description:       tmpl.Description,
			MonthlyOutlay:     base.MonthlyPayment.Add(plan.MonthlyAmount),
			Months:            alt.Months,
			PayoffDate:        alt.PayoffDate,
			TotalInterest:     alt.TotalInterest,
			TotalPaid:         alt.TotalOfPayments,
			MonthsSaved:       base.Months - alt.Months,
			InterestSaved:     base.TotalInterest.Sub(alt.TotalInterest),
			ExtraPaidPerMonth: plan.MonthlyAmount,
		}
		if base.TotalInterest.IsPositive() {
			result.InterestSavedPct = result.InterestSaved.
				Div(base.TotalInterest).
				Mul(decimal.NewFromInt(100)).
				Round(1)
		}
		set.AlternativeResults = append(set.AlternativeResults, result)
	}

	set.Recommendations = buildRecommendations(set)
	return set, nil
}

// buildRecommendations summarizes the standout alternatives.
func buildRecommendations(set *ComparisonSet) []string {
	var recs []string
	var best *ComparisonResult
	for i := range set.AlternativeResults {
		alt := &set.AlternativeResults[i]
		if best == nil || alt.InterestSaved.GreaterThan(best.InterestSaved) {
			best = alt
		}
	}
	if best != nil && best.InterestSaved.IsPositive() {
		recs = append(recs, fmt.Sprintf("%s saves the most interest: %s over the life of the loan (%s sooner)",
			best.StrategyName,
			output.FormatCurrency(best.InterestSaved),
			output.FormatMonths(best.MonthsSaved)))
	}
	return recs
}
