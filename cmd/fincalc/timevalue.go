package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/output"
)

var pvCmd = &cobra.Command{
	Use:   "pv [input-file]",
	Short: "Discount a future amount or payment stream to present value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		if wb.PresentValue == nil {
			log.Fatalf("%s has no present_value section", inputFile)
		}

		result, err := calculation.PresentValue(*wb.PresentValue)
		if err != nil {
			log.Fatal(err)
		}

		in := wb.PresentValue
		fmt.Println("PRESENT VALUE")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("Discount Rate:      %s over %d years\n",
			output.FormatPercentage(in.AnnualRatePercent), in.Years)
		if in.FutureValue.IsPositive() {
			fmt.Printf("Future Amount:      %s -> %s today\n",
				output.FormatCurrency(in.FutureValue), output.FormatCurrency(result.OfFutureValue))
		}
		if in.PeriodicPayment.IsPositive() {
			fmt.Printf("Payment Stream:     %s per period -> %s today\n",
				output.FormatCurrency(in.PeriodicPayment), output.FormatCurrency(result.OfPayments))
		}
		fmt.Printf("Total:              %s\n", output.FormatCurrency(result.Total))
	},
}

var fvCmd = &cobra.Command{
	Use:   "fv [input-file]",
	Short: "Project a balance forward with monthly compounding and contributions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		if wb.FutureValue == nil {
			log.Fatalf("%s has no future_value section", inputFile)
		}

		result, err := calculation.FutureValue(*wb.FutureValue)
		if err != nil {
			log.Fatal(err)
		}

		in := wb.FutureValue
		fmt.Println("FUTURE VALUE")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("Growth Rate:        %s over %d years\n",
			output.FormatPercentage(in.AnnualRatePercent), in.Years)
		fmt.Printf("Ending Balance:     %s\n", output.FormatCurrency(result.EndingBalance))
		fmt.Printf("Contributions:      %s\n", output.FormatCurrency(result.TotalContributions))
		fmt.Printf("Growth:             %s\n", output.FormatCurrency(result.TotalGrowth))
	},
}

var roiCmd = &cobra.Command{
	Use:   "roi [input-file]",
	Short: "Compute the simple and annualized return on an investment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		if wb.ROI == nil {
			log.Fatalf("%s has no roi section", inputFile)
		}

		result, err := calculation.ReturnOnInvestment(*wb.ROI)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("RETURN ON INVESTMENT")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("Invested:           %s\n", output.FormatCurrency(wb.ROI.AmountInvested))
		fmt.Printf("Returned:           %s\n", output.FormatCurrency(wb.ROI.AmountReturned))
		fmt.Printf("Gain:               %s\n", output.FormatCurrency(result.Gain))
		fmt.Printf("ROI:                %s\n", output.FormatPercentage(result.ROIPercent))
		if wb.ROI.Years.IsPositive() {
			fmt.Printf("Annualized:         %s over %s years\n",
				output.FormatPercentage(result.AnnualizedPercent), wb.ROI.Years.String())
		}
	},
}

var marriageTaxCmd = &cobra.Command{
	Use:   "marriage-tax [input-file]",
	Short: "Compare filing jointly against filing single for two incomes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		if wb.MarriageTax == nil {
			log.Fatalf("%s has no marriage_tax section", inputFile)
		}

		result, err := calculation.MarriageTax(*wb.MarriageTax)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("MARRIAGE TAX COMPARISON (2023 federal brackets)")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("%-20s %12s %12s %10s\n", "Filing", "Taxable", "Tax", "Eff. Rate")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("%-20s %12s %12s %10s\n", "Single (income A)",
			output.FormatCurrency(result.SingleA.TaxableIncome),
			output.FormatCurrency(result.SingleA.Tax),
			output.FormatPercentage(result.SingleA.EffectiveRate))
		fmt.Printf("%-20s %12s %12s %10s\n", "Single (income B)",
			output.FormatCurrency(result.SingleB.TaxableIncome),
			output.FormatCurrency(result.SingleB.Tax),
			output.FormatPercentage(result.SingleB.EffectiveRate))
		fmt.Printf("%-20s %12s %12s %10s\n", "Married jointly",
			output.FormatCurrency(result.Joint.TaxableIncome),
			output.FormatCurrency(result.Joint.Tax),
			output.FormatPercentage(result.Joint.EffectiveRate))
		fmt.Println()

		fmt.Printf("Combined Single Tax: %s\n", output.FormatCurrency(result.CombinedSingleTax))
		if result.Penalty.IsPositive() {
			fmt.Printf("Marriage Penalty:    %s more when filing jointly\n", output.FormatCurrency(result.Penalty))
		} else if result.Penalty.IsNegative() {
			fmt.Printf("Marriage Bonus:      %s less when filing jointly\n", output.FormatCurrency(result.Penalty.Neg()))
		} else {
			fmt.Println("No penalty or bonus at these incomes.")
		}
	},
}

var downPaymentCmd = &cobra.Command{
	Use:   "downpayment [input-file]",
	Short: "Plan savings toward the standard down payment tiers",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		if wb.DownPayment == nil {
			log.Fatalf("%s has no down_payment section", inputFile)
		}

		plan, err := calculation.PlanDownPayment(*wb.DownPayment)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("DOWN PAYMENT PLANNER")
		fmt.Println(strings.Repeat("=", 86))
		fmt.Printf("Home Price: %s\n\n", output.FormatCurrency(plan.HomePrice))
		fmt.Printf("%-18s %8s %13s %13s %14s %16s\n",
			"Tier", "Percent", "Amount", "Still Needed", "Time to Save", "Insurance")
		fmt.Println(strings.Repeat("-", 86))
		for _, tier := range plan.Tiers {
			timeToSave := "saved"
			if tier.StillNeeded.IsPositive() {
				if tier.MonthsToSave > 0 {
					timeToSave = output.FormatMonths(tier.MonthsToSave)
				} else {
					timeToSave = "n/a"
				}
			}
			insurance := "none"
			if tier.UpfrontPremium.IsPositive() {
				insurance = "MIP " + output.FormatCurrency(tier.UpfrontPremium)
			} else if tier.RequiresInsurance {
				insurance = "PMI"
			}
			fmt.Printf("%-18s %7s%% %13s %13s %14s %16s\n",
				tier.Label,
				tier.Percent.StringFixed(1),
				output.FormatCurrency(tier.Amount),
				output.FormatCurrency(tier.StillNeeded),
				timeToSave,
				insurance)
		}
	},
}

func init() {
	rootCmd.AddCommand(pvCmd)
	rootCmd.AddCommand(fvCmd)
	rootCmd.AddCommand(roiCmd)
	rootCmd.AddCommand(marriageTaxCmd)
	rootCmd.AddCommand(downPaymentCmd)
}
