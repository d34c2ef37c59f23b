// Package tui provides the interactive Bubble Tea amortization browser.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/output"
)

type keyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "toggle yearly/monthly"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the root Bubble Tea model: summary cards over a scrollable
// schedule table.
type Model struct {
	results *domain.LoanResults
	table   table.Model
	yearly  bool
	width   int
	height  int
}

// NewModel creates the browser for a calculated loan.
func NewModel(results *domain.LoanResults) Model {
	m := Model{results: results, yearly: true}
	m.table = m.buildTable()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-12, 5))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Toggle):
			m.yearly = !m.yearly
			m.table = m.buildTable()
			if m.height > 0 {
				m.table.SetHeight(max(m.height-12, 5))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	r := m.results

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Monthly P&I", output.FormatCurrency(r.MonthlyPayment)),
		card("Total Interest", output.FormatCurrency(r.TotalInterest)),
		card("Payoff", fmt.Sprintf("%s (%s)", r.PayoffDate.Format("Jan 2006"), output.FormatMonths(r.Months))),
	)

	mode := "yearly"
	if !m.yearly {
		mode = "monthly"
	}
	help := helpStyle.Render(fmt.Sprintf("view: %s | y toggle yearly/monthly | q quit", mode))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Amortization Schedule"),
		cards,
		m.table.View(),
		help,
	)
}

func card(label, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardLabelStyle.Render(label),
		cardValueStyle.Render(value),
	))
}

func (m Model) buildTable() table.Model {
	var (
		columns []table.Column
		rows    []table.Row
	)
	if m.yearly {
		columns = []table.Column{
			{Title: "Year", Width: 6},
			{Title: "Principal", Width: 14},
			{Title: "Interest", Width: 14},
			{Title: "Extra", Width: 12},
			{Title: "End Balance", Width: 15},
		}
		rows = yearlyRows(m.results.Schedule)
	} else {
		columns = []table.Column{
			{Title: "Month", Width: 6},
			{Title: "Date", Width: 9},
			{Title: "Payment", Width: 12},
			{Title: "Principal", Width: 12},
			{Title: "Interest", Width: 12},
			{Title: "Extra", Width: 10},
			{Title: "Balance", Width: 15},
		}
		rows = monthlyRows(m.results.Schedule)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorPrimary).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(colorAccent).Bold(true)
	t.SetStyles(styles)
	return t
}

func monthlyRows(schedule []domain.ScheduleRow) []table.Row {
	rows := make([]table.Row, 0, len(schedule))
	for _, row := range schedule {
		rows = append(rows, table.Row{
			strconv.Itoa(row.Month),
			row.Date.Format("Jan 2006"),
			output.FormatCurrency(row.Payment),
			output.FormatCurrency(row.Principal),
			output.FormatCurrency(row.Interest),
			output.FormatCurrency(row.ExtraPayment),
			output.FormatCurrency(row.Balance),
		})
	}
	return rows
}

func yearlyRows(schedule []domain.ScheduleRow) []table.Row {
	var rows []table.Row
	year := 0
	principal, interest, extra := decimal.Zero, decimal.Zero, decimal.Zero
	var balance decimal.Decimal
	flush := func() {
		if year == 0 {
			return
		}
		rows = append(rows, table.Row{
			strconv.Itoa(year),
			output.FormatCurrency(principal),
			output.FormatCurrency(interest),
			output.FormatCurrency(extra),
			output.FormatCurrency(balance),
		})
	}
	for _, row := range schedule {
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
	return rows
}
