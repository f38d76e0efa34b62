// Package tui provides the interactive Bubble Tea schedule browser.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/model"
	"github.com/theirongolddev/nestegg/internal/tui/components"
	"github.com/theirongolddev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	minTableRows  = 3

	// cards (5) + blank + total line + status bar
	chromeHeight = 8
)

// App is the root Bubble Tea model.
type App struct {
	plan     model.Plan
	currency string

	table    table.Model
	width    int
	height   int
	showHelp bool
}

// NewApp builds the browser for a computed plan.
func NewApp(p model.Plan, currency string) App {
	t := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithRows(tableRows(p.Schedule, currency)),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())
	t.SetHeight(tableHeight(defaultHeight))

	return App{
		plan:     p,
		currency: currency,
		table:    t,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Run starts the browser in the alternate screen and blocks until it exits.
func Run(p model.Plan, currency string) error {
	prog := tea.NewProgram(NewApp(p, currency), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func columns(width int) []table.Column {
	// year and remaining are narrow; money columns share the rest
	yearW, remW := 6, 10
	money := (width - yearW - remW - 8) / 2
	if money < 16 {
		money = 16
	}
	return []table.Column{
		{Title: "Year", Width: yearW},
		{Title: "Remaining", Width: remW},
		{Title: "Contribution", Width: money},
		{Title: "Value at Retirement", Width: money},
	}
}

func tableRows(s model.Schedule, currency string) []table.Row {
	rows := make([]table.Row, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, table.Row{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.PeriodsRemaining),
			cli.FormatMoney(r.Contribution, currency),
			cli.FormatMoney(r.FutureValue, currency),
		})
	}
	return rows
}

func tableStyles() table.Styles {
	t := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.BorderAccent).
		BorderBottom(true).
		Bold(true).
		Foreground(t.Accent)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	s.Selected = s.Selected.
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(false)
	return s
}

// tableHeight returns the table height, header included, that fills a window
// of the given height while keeping at least minTableRows rows visible.
func tableHeight(windowHeight int) int {
	rows := windowHeight - chromeHeight - headerHeight()
	if rows < minTableRows {
		rows = minTableRows
	}
	return rows + headerHeight()
}

func headerHeight() int {
	return lipgloss.Height(tableStyles().Header.Render("Year"))
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.table.SetColumns(columns(a.width))
		a.table.SetHeight(tableHeight(a.height))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "?":
			a.showHelp = !a.showHelp
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.showHelp {
		return a.renderHelp()
	}

	t := theme.Active
	p := a.plan
	total := p.Schedule.Total

	cards := components.MetricCardRow([]components.Metric{
		{
			Label: "Future value needed",
			Value: cli.FormatMoney(p.FutureGoal, a.currency),
			Note:  "goal " + cli.FormatMoney(p.Input.PresentValue, a.currency),
		},
		{
			Label: "Annual contribution",
			Value: cli.FormatMoney(p.Contribution, a.currency),
			Note:  fmt.Sprintf("%d-%d", p.Input.StartYear, p.EndYear()),
		},
		{
			Label: "Total contributed",
			Value: cli.FormatMoney(total.Contribution, a.currency),
		},
		{
			Label: "Growth",
			Value: cli.FormatMoney(total.FutureValue-total.Contribution, a.currency),
			Note:  "at " + cli.FormatRate(p.Input.InvestmentRate),
		},
	}, a.width)

	totalStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	totalLine := totalStyle.Render(fmt.Sprintf(" %s  %s contributed  %s at retirement",
		cli.TotalLabel,
		cli.FormatMoney(total.Contribution, a.currency),
		cli.FormatMoney(total.FutureValue, a.currency),
	))

	pos := ""
	if n := len(p.Schedule.Rows); n > 0 {
		pos = fmt.Sprintf("row %d/%d", a.table.Cursor()+1, n)
	}

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(a.table.View())
	b.WriteString("\n")
	b.WriteString(totalLine)
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(a.width, pos))
	return b.String()
}

func (a App) renderHelp() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	keys := []struct{ key, desc string }{
		{"j / down", "next year"},
		{"k / up", "previous year"},
		{"g / home", "first year"},
		{"G / end", "last year"},
		{"?", "close help"},
		{"q / esc", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Keys"))
	b.WriteString("\n\n")
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-10s", k.key)))
		b.WriteString(descStyle.Render(k.desc))
		b.WriteString("\n")
	}
	return b.String()
}
