package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gatehouse/nav"
	"gatehouse/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	top, hasTop := m.routes.Top()
	header := ""
	if hasTop && top.entry.Options.HeaderShown {
		header = renderHeader(m, top.entry)
	}
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	available := m.height - lipgloss.Height(status) - lipgloss.Height(footer)
	if header != "" {
		available -= lipgloss.Height(header)
	}
	if available < 0 {
		available = 0
	}
	bodyHeight := available

	var body string
	if base, ok := m.routes.Base(); ok && bodyHeight > 0 {
		body = base.screen.View(max(1, m.width-2), bodyHeight)
	}
	if bodyHeight > 0 {
		for _, modal := range m.routes.Modals() {
			body = widgets.RenderPopup(body, modal.screen.View(max(20, m.width-12), max(8, m.height-8)), m.width-2, bodyHeight)
		}
		if overlay := m.overlays.Top(); overlay != nil {
			body = widgets.RenderPopup(body, overlay.View(max(20, m.width-12), max(8, m.height-8)), m.width-2, bodyHeight)
		}
	}
	body = fitHeight(body, bodyHeight)

	parts := make([]string, 0, 4)
	if header != "" {
		parts = append(parts, header)
	}
	parts = append(parts, status, body)
	main := strings.TrimSuffix(strings.Join(parts, "\n"), "\n")
	main = fitHeight(main, max(0, m.height-lipgloss.Height(footer)))
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// renderHeader draws the chrome header for the top route using its resolved
// header theme. The route title sits left, desk context right.
func renderHeader(m Model, entry nav.RouteEntry) string {
	bar := headerBarStyle
	loc := headerLocStyle
	if entry.Header.Background != "" {
		bar = bar.Background(lipgloss.Color(entry.Header.Background))
		loc = loc.Background(lipgloss.Color(entry.Header.Background))
	}
	if entry.Header.Tint != "" {
		bar = bar.Foreground(lipgloss.Color(entry.Header.Tint))
	}
	titleStyle := bar.Bold(entry.Header.TitleBold)

	title := entry.Options.Title
	if title == "" {
		title = entry.Name
	}
	left := titleStyle.Render(title)
	right := loc.Render(fmt.Sprintf("%s · %d in building", m.Data.Location, m.Data.SignedIn))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(bar, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
