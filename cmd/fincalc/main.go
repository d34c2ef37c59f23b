package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/compare"
	"github.com/fincalc/fincalc/internal/config"
	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/output"
)

// zapCLILogger implements calculation.Logger on a zap sugared logger.
type zapCLILogger struct {
	s *zap.SugaredLogger
}

func (l zapCLILogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapCLILogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapCLILogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapCLILogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

func newDebugLogger() calculation.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	return zapCLILogger{s: logger.Sugar()}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "fincalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Personal finance calculator CLI",
	Long:  "Mortgage amortization, FHA insurance, debt payoff, and savings calculators",
}

// loadWorkbook parses and validates an input file, exiting on failure.
func loadWorkbook(filename string) *domain.Workbook {
	parser := config.NewInputParser()
	wb, err := parser.LoadFromFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	return wb
}

// newEngine builds the calculation engine, wiring the zap logger when the
// command was run with --debug.
func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(newDebugLogger())
		engine.Debug = true
	}
	return engine
}

// requireLoan returns the workbook's loan section or exits.
func requireLoan(wb *domain.Workbook, inputFile string) domain.LoanInputs {
	if wb.Loan == nil {
		log.Fatalf("%s has no loan section", inputFile)
	}
	return *wb.Loan
}

var mortgageCmd = &cobra.Command{
	Use:   "mortgage [input-file]",
	Short: "Amortize a mortgage and report monthly cost and lifetime totals",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		loan := requireLoan(wb, inputFile)

		engine := newEngine(cmd)
		results, err := engine.CalculateLoan(loan, wb.ExtraPayments)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unknown output format: %s (valid: %s)",
				outputFormat, strings.Join(output.FormatterNames(), ", "))
		}
		if cf, ok := f.(*output.ConsoleFormatter); ok {
			cf.FullSchedule, _ = cmd.Flags().GetBool("full-schedule")
		}

		data, err := f.Format(results)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var fhaCmd = &cobra.Command{
	Use:   "fha [input-file]",
	Short: "Show the FHA mortgage insurance premiums for a loan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		loan := requireLoan(wb, inputFile)

		base := loan.BaseLoanAmount()
		ltv := loan.LoanToValuePercent()
		rate := calculation.AnnualMIPRate(base, ltv, loan.TermYears)
		monthly := calculation.MonthlyMIP(base, rate)
		duration := calculation.MIPDurationMonths(ltv)

		fmt.Println("FHA MORTGAGE INSURANCE")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("Base Loan Amount:   %s\n", output.FormatCurrency(base))
		fmt.Printf("Loan-to-Value:      %s\n", output.FormatPercentage(ltv))
		fmt.Printf("Upfront MIP (1.75%%): %s\n", output.FormatCurrency(calculation.UpfrontMIP(base)))
		fmt.Printf("Annual MIP Rate:    %s\n", output.FormatPercentage(rate))
		fmt.Printf("Monthly MIP:        %s\n", output.FormatCurrency(monthly))
		if duration != nil {
			fmt.Printf("MIP Duration:       %s\n", output.FormatMonths(*duration))
		} else {
			fmt.Println("MIP Duration:       life of loan")
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a workbook file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		_, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Workbook %s is valid\n", inputFile)
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve [input-file]",
	Short: "Find the extra monthly payment that retires the loan by a target",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]
		wb := loadWorkbook(inputFile)
		loan := requireLoan(wb, inputFile)

		targetYears, _ := cmd.Flags().GetInt("years")
		targetMonths, _ := cmd.Flags().GetInt("months")
		target := targetYears*12 + targetMonths
		if target < 1 {
			log.Fatal("a payoff target is required (--years and/or --months)")
		}

		extra, err := calculation.SolveExtraPayment(loan, target)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		base, err := engine.CalculateLoan(loan, nil)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("PAYOFF TARGET SOLVER")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Printf("Scheduled Payoff:   %s\n", output.FormatMonths(base.Months))
		fmt.Printf("Target Payoff:      %s\n", output.FormatMonths(target))

		if !extra.IsPositive() {
			fmt.Println("\nThe scheduled payments already meet the target; no extra payment needed.")
			return
		}

		plan := domain.ExtraPaymentPlan{MonthlyAmount: extra, MonthlyStart: 1}
		accelerated, err := engine.CalculateLoan(loan, &plan)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Extra Per Month:    %s\n", output.FormatCurrency(extra))
		fmt.Printf("New Payoff:         %s (%s)\n",
			accelerated.PayoffDate.Format("January 2006"), output.FormatMonths(accelerated.Months))
		fmt.Printf("Interest Saved:     %s\n",
			output.FormatCurrency(base.TotalInterest.Sub(accelerated.TotalInterest)))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare extra-payment strategies against the scheduled payments",
	Long: `Compare the scheduled mortgage payments against built-in extra-payment
strategy templates.

Examples:
  fincalc compare loan.yaml --with extra_100,extra_250
  fincalc compare loan.yaml --with biweekly,annual_bonus --format csv
  fincalc compare --list-templates
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		listTemplates, _ := cmd.Flags().GetBool("list-templates")
		if listTemplates {
			registry := compare.CreateBuiltInTemplates()
			fmt.Print(compare.GetTemplateHelp(registry))
			return
		}

		if len(args) == 0 {
			log.Fatal("input file required for comparison (use --list-templates to see available templates)")
		}
		inputFile := args[0]

		templatesStr, _ := cmd.Flags().GetString("with")
		if templatesStr == "" {
			log.Fatal("--with flag is required to specify templates to compare (or use --list-templates)")
		}
		templateNames := compare.ParseTemplateList(templatesStr)
		if len(templateNames) == 0 {
			log.Fatal("no valid templates specified in --with flag")
		}

		wb := loadWorkbook(inputFile)
		loan := requireLoan(wb, inputFile)

		engine := newEngine(cmd)
		compareEngine := compare.NewCompareEngine(engine)
		comparisonSet, err := compareEngine.Compare(loan, compare.CompareOptions{Templates: templateNames})
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}
		comparisonSet.ConfigPath = inputFile

		outputFormat, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(out)

		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Print(out)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(comparisonSet))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

func init() {
	mortgageCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json, xlsx, pdf)")
	mortgageCmd.Flags().Bool("full-schedule", false, "Print every monthly row instead of yearly rollups (console format)")
	mortgageCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	solveCmd.Flags().IntP("years", "y", 0, "Target payoff in years (combined with --months)")
	solveCmd.Flags().IntP("months", "m", 0, "Target payoff in months (combined with --years)")
	solveCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	compareCmd.Flags().String("with", "", "Comma-separated list of templates to compare (required)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("list-templates", false, "List all available extra-payment templates")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(mortgageCmd)
	rootCmd.AddCommand(fhaCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
