package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7f7fd5")).
	Padding(1, 2)

// RenderPopup draws popup as a centered card over base. Modal routes and
// transient overlays both composite through here; the base keeps showing
// around the card.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popupCardStyle.Render(popup))
	back := canvasLines(base, width, height)
	front := canvasLines(placed, width, height)
	out := make([]string, height)
	for i := range out {
		out[i] = compositeLine(back[i], front[i], width)
	}
	return strings.Join(out, "\n")
}

// compositeLine lays the painted span of front over back, keeping the base
// visible and styled outside that span.
func compositeLine(back, front string, width int) string {
	start, end, ok := paintedSpan(front, width)
	if !ok {
		return back
	}
	left := ansi.Truncate(back, start, "")
	span := ansi.Truncate(cutColumns(front, start), end-start, "")
	right := cutColumns(back, end)
	return padCell(left+span+right, width)
}

// paintedSpan finds the first and last non-blank column of a canvas line.
func paintedSpan(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(plain) && plain[start] == ' ' {
		start++
	}
	end = len(trimmed)
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// canvasLines normalizes s into exactly height lines of exactly width cells.
func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = padCell(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return out
}

// cutColumns drops the first cols display columns of s, ANSI-aware.
func cutColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	head := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, head)
}

func padCell(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
