package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn represents a column in the table
type TableColumn struct {
	Header string
	Width  int // minimum width
}

// Table renders rows of plain cells under a styled header
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates a new table with specified columns
func NewTable(columns ...TableColumn) *Table {
	return &Table{
		Columns: columns,
		Rows:    [][]string{},
	}
}

// AddRow adds a row to the table. Extra cells are ignored.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table as a string
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Header))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var builder strings.Builder

	header := make([]string, len(t.Columns))
	rule := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = pad(col.Header, widths[i])
		rule[i] = strings.Repeat("─", widths[i])
	}
	builder.WriteString(styleTableHeader.Render(strings.Join(header, "  ")) + "\n")
	builder.WriteString(styleTableRule.Render(strings.Join(rule, "  ")) + "\n")

	for idx, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				cells[i] = pad(row[i], widths[i])
			} else {
				cells[i] = pad("", widths[i])
			}
		}

		line := strings.Join(cells, "  ")
		if idx%2 == 1 {
			line = styleTableRowAlt.Render(line)
		}
		builder.WriteString(line + "\n")
	}

	return builder.String()
}

// pad left-aligns s in a cell of the given display width
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// RenderNumberedList renders items as "1. item" lines
func RenderNumberedList(items []string) string {
	var builder strings.Builder
	for i, item := range items {
		builder.WriteString(styleAccent.Render(fmt.Sprintf("%d.", i+1)))
		builder.WriteString(" ")
		builder.WriteString(item)
		builder.WriteString("\n")
	}
	return builder.String()
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s",
		styleAccent.Render(key),
		value,
	)
}
