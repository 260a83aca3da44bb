package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var listHeadingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7f7fd5")).
	Bold(true)

// List renders a titled bullet list, newest entries first. The activity log
// renders through this.
type List struct {
	Title string
	Items []string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := []string{listHeadingStyle.Render(l.Title)}
	for _, item := range l.Items {
		if len(rows) >= height {
			break
		}
		rows = append(rows, "• "+ansi.Truncate(item, max(1, width-2), "…"))
	}
	return strings.Join(rows, "\n")
}
