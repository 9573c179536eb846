package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Plugin", Width: 12},
		{Title: "Items", Width: 30},
	}
	rows := []table.Row{
		{"cpu", "user, system, iowait"},
		{"network", "rx, tx"},
	}

	view := NewTable(columns, rows).View()

	assert.Contains(t, view, "Plugin")
	assert.Contains(t, view, "Items")
	assert.Contains(t, view, "cpu")
	assert.Contains(t, view, "rx, tx")
}

func TestNewTable_EmptyRows(t *testing.T) {
	view := NewTable([]TableColumn{{Title: "Plugin", Width: 12}}, []table.Row{}).View()
	assert.Contains(t, view, "Plugin")
}

func TestRenderSimpleTable(t *testing.T) {
	output := RenderSimpleTable(
		[]TableColumn{{Title: "Plugin"}, {Title: "History", Width: 8}},
		[][]string{
			{"memswap", "yes"},
			{"uptime", "no"},
		})

	assert.Contains(t, output, "Plugin")
	assert.Contains(t, output, "memswap")
	assert.Contains(t, output, "uptime")
	assert.Contains(t, output, "no")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "Plugin", Width: 12}}, nil))
}

func TestFitColumns(t *testing.T) {
	columns := []TableColumn{{Title: "Plugin"}, {Title: "Fixed", Width: 4}, {Title: "Unit"}}
	rows := [][]string{
		{"network", "x", "bit/s"},
		{"cpu", "y"},
	}

	got := FitColumns(columns, rows)

	assert.Equal(t, 8, got[0].Width, "widest cell plus one")
	assert.Equal(t, 4, got[1].Width, "fixed width kept")
	assert.Equal(t, 6, got[2].Width, "short rows tolerated")
	assert.Equal(t, 0, columns[0].Width, "input not modified")
}

func TestRenderKeyValues(t *testing.T) {
	out := ansi.Strip(RenderKeyValues([]KeyValue{
		{Key: "Backend", Value: "gonum"},
		{Key: "Output", Value: "./graphs"},
	}))

	assert.Equal(t, "  Backend  gonum\n  Output   ./graphs\n", out)
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcde", 5, "abcde"},
		{"abcdef", 3, "abcdef"},
		{"", 2, "  "},
		{"✓", 3, "✓  "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, padRight(tt.input, tt.width), "input %q", tt.input)
	}
}
