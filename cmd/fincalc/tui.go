package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fincalc/fincalc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Browse the amortization schedule interactively",
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

		p := tea.NewProgram(tui.NewModel(results), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	tuiCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	rootCmd.AddCommand(tuiCmd)
}
