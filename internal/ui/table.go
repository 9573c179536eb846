package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a non-focused Bubbles table with the CLI styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is selectable; keep the first row looking like the others.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string. Columns with a
// zero width are sized to fit their widest cell.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	sized := FitColumns(columns, rows)

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(sized, tableRows).View()
}

// FitColumns returns a copy of columns where every zero width is replaced by
// the widest of the title and the column's cells.
func FitColumns(columns []TableColumn, rows [][]string) []TableColumn {
	out := make([]TableColumn, len(columns))
	copy(out, columns)

	for i := range out {
		if out[i].Width > 0 {
			continue
		}
		width := lipgloss.Width(out[i].Title)
		for _, row := range rows {
			if i < len(row) {
				if w := lipgloss.Width(row[i]); w > width {
					width = w
				}
			}
		}
		out[i].Width = width + 1
	}
	return out
}

// padRight pads a string to the specified visible width.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

// KeyValue is one line of a RenderKeyValues block.
type KeyValue struct {
	Key   string
	Value string
}

// RenderKeyValues renders aligned "key  value" lines with muted keys.
func RenderKeyValues(pairs []KeyValue) string {
	width := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p.Key); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString("  ")
		b.WriteString(MutedStyle().Render(padRight(p.Key, width+2)))
		b.WriteString(p.Value)
		b.WriteString("\n")
	}
	return b.String()
}
