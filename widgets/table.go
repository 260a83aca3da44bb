package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Table renders fixed-ratio columns with an optional highlighted row.
type Table struct {
	Headers  []string
	Rows     [][]string
	Selected int
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	colWidth := max(4, width/len(t.Headers))
	headStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7fd5")).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0ff"))
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0ff")).Background(lipgloss.Color("#1e1e3f")).Bold(true)

	lines := []string{headStyle.Render(joinColumns(t.Headers, colWidth))}
	for i, row := range t.Rows {
		style := rowStyle
		if i == t.Selected {
			style = selStyle
		}
		lines = append(lines, style.Render(joinColumns(row, colWidth)))
		if len(lines) >= height {
			break
		}
	}
	return strings.Join(lines, "\n")
}

func joinColumns(cells []string, colWidth int) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = padRight(ansi.Truncate(c, colWidth-1, "…"), colWidth)
	}
	return strings.TrimRight(strings.Join(out, ""), " ")
}
