package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/output"
)

var payoffCmd = &cobra.Command{
	Use:   "payoff [input-file]",
	Short: "Simulate paying off debts with the avalanche or snowball strategy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		if len(wb.Debts) == 0 {
			log.Fatalf("%s has no debts section", inputFile)
		}

		strategy := wb.PayoffStrategy
		if s, _ := cmd.Flags().GetString("strategy"); s != "" {
			strategy = domain.PayoffStrategy(s)
		}
		if strategy == "" {
			strategy = domain.StrategyAvalanche
		}

		extra := wb.ExtraMonthly
		if cmd.Flags().Changed("extra") {
			extraFloat, _ := cmd.Flags().GetFloat64("extra")
			extra = decimal.NewFromFloat(extraFloat)
		}

		engine := newEngine(cmd)
		result, err := engine.RunPayoff(wb.Debts, extra, strategy)
		if err != nil {
			log.Fatal(err)
		}

		if format, _ := cmd.Flags().GetString("format"); strings.ToLower(format) == "json" {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(data))
			return
		}

		printPayoffResult(result)
	},
}

func printPayoffResult(result *domain.PayoffResult) {
	fmt.Println("DEBT PAYOFF PLAN")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Strategy:         %s\n", result.Strategy)
	if result.ExtraMonthly.IsPositive() {
		fmt.Printf("Extra Per Month:  %s\n", output.FormatCurrency(result.ExtraMonthly))
	}
	fmt.Printf("Debt-Free In:     %s\n", output.FormatMonths(result.Months))
	fmt.Printf("Total Interest:   %s\n", output.FormatCurrency(result.TotalInterest))
	fmt.Printf("Total Paid:       %s\n", output.FormatCurrency(result.TotalPaid))
	if result.CapReached {
		fmt.Printf("\nWARNING: simulation stopped at %d months with a balance remaining.\n", calculation.PayoffMonthCap)
		fmt.Println("The minimum payments are too low to retire these debts; raise the extra budget.")
	}
	fmt.Println()

	fmt.Printf("%-20s %10s %14s %14s\n", "Debt", "Paid Off", "Interest", "Total Paid")
	fmt.Println(strings.Repeat("-", 60))
	byName := make(map[string]domain.DebtPayoff, len(result.Debts))
	for _, d := range result.Debts {
		byName[d.Name] = d
	}
	for _, name := range result.PayoffOrder() {
		d := byName[name]
		paidOff := fmt.Sprintf("month %d", d.PayoffMonth)
		if d.PayoffMonth == 0 {
			paidOff = "never"
		}
		fmt.Printf("%-20s %10s %14s %14s\n", d.Name, paidOff,
			output.FormatCurrency(d.InterestPaid), output.FormatCurrency(d.TotalPaid))
	}
}

var consolidateCmd = &cobra.Command{
	Use:   "consolidate [input-file]",
	Short: "Compare keeping current debts against a consolidation loan offer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		if len(wb.Debts) == 0 {
			log.Fatalf("%s has no debts section", inputFile)
		}
		if wb.Consolidation == nil {
			log.Fatalf("%s has no consolidation section", inputFile)
		}

		result, err := calculation.Consolidate(wb.Debts, *wb.Consolidation)
		if err != nil {
			log.Fatal(err)
		}

		if format, _ := cmd.Flags().GetString("format"); strings.ToLower(format) == "json" {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(data))
			return
		}

		fmt.Println("DEBT CONSOLIDATION COMPARISON")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("Current Balance:  %s\n", output.FormatCurrency(result.CurrentBalance))
		if result.Fee.IsPositive() {
			fmt.Printf("Origination Fee:  %s\n", output.FormatCurrency(result.Fee))
		}
		fmt.Printf("New Principal:    %s\n", output.FormatCurrency(result.NewPrincipal))
		fmt.Println()

		fmt.Printf("%-20s %14s %14s\n", "", "Keep Debts", "Consolidate")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("%-20s %14s %14s\n", "Monthly Payment",
			output.FormatCurrency(result.Current.MonthlyPayment),
			output.FormatCurrency(result.Consolidated.MonthlyPayment))
		fmt.Printf("%-20s %14s %14s\n", "Months",
			fmt.Sprintf("%d", result.Current.Months),
			fmt.Sprintf("%d", result.Consolidated.Months))
		fmt.Printf("%-20s %14s %14s\n", "Total Interest",
			output.FormatCurrency(result.Current.TotalInterest),
			output.FormatCurrency(result.Consolidated.TotalInterest))
		fmt.Printf("%-20s %14s %14s\n", "Total Paid",
			output.FormatCurrency(result.Current.TotalPaid),
			output.FormatCurrency(result.Consolidated.TotalPaid))
		fmt.Println()

		if result.InterestSavings.IsPositive() {
			fmt.Printf("Consolidating saves %s in interest", output.FormatCurrency(result.InterestSavings))
		} else {
			fmt.Printf("Consolidating costs %s more in interest", output.FormatCurrency(result.InterestSavings.Neg()))
		}
		if result.MonthsSaved > 0 {
			fmt.Printf(" and pays off %s sooner", output.FormatMonths(result.MonthsSaved))
		} else if result.MonthsSaved < 0 {
			fmt.Printf(" and takes %s longer", output.FormatMonths(-result.MonthsSaved))
		}
		fmt.Println(".")
		if result.PaymentChange.IsNegative() {
			fmt.Printf("The monthly payment drops by %s.\n", output.FormatCurrency(result.PaymentChange.Neg()))
		} else if result.PaymentChange.IsPositive() {
			fmt.Printf("The monthly payment rises by %s.\n", output.FormatCurrency(result.PaymentChange))
		}
	},
}

func init() {
	payoffCmd.Flags().String("strategy", "", "Payoff strategy (avalanche, snowball); overrides the workbook")
	payoffCmd.Flags().Float64("extra", 0, "Extra monthly budget beyond the minimums; overrides the workbook")
	payoffCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")
	payoffCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	consolidateCmd.Flags().StringP("format", "f", "console", "Output format (console, json)")

	rootCmd.AddCommand(payoffCmd)
	rootCmd.AddCommand(consolidateCmd)
}
