// Package table renders inference results as terminal tables with lipgloss.
package table

import (
	"fmt"
	"os"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is implemented by results which can be rendered as a table
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i, or nil to skip the row.
	Row(i int) []any
}

// Bold wraps a cell value so that FormatCell highlights it
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the table as a string for terminal output, constrained to
// the terminal width when stdout is a terminal
func Render(data TableData) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, cells := range Cells(data) {
		t.Row(cells...)
	}

	result := t.Render()
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		if widest(result) > w {
			t.Width(w)
			result = t.Render()
		}
	}
	return result
}

// Cells returns the formatted cells of each row, skipping nil rows
func Cells(data TableData) [][]string {
	result := make([][]string, 0, data.Len())
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v)
		}
		result = append(result, cells)
	}
	return result
}

// FormatCell converts a value to a display string. Empty values are
// rendered as "-".
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case Bold:
		return boldStyle.Render(FormatCell(val.Value))
	case string:
		if val == "" {
			return "-"
		}
		return val
	case float64:
		return fmt.Sprintf("%.4f", val)
	default:
		if s := fmt.Sprint(val); s != "" {
			return s
		}
		return "-"
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func widest(s string) int {
	var n int
	for _, line := range strings.Split(s, "\n") {
		n = max(n, len([]rune(line)))
	}
	return n
}
