package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var tableHeaderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("212")).
	Bold(true).
	Padding(0, 1)

var tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

// ResultsTable renders a bordered table of per-file compression results.
// Rows are (file, original size, new size, reduction, time taken).
func ResultsTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.Render()
}
