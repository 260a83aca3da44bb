package widgets

import "github.com/charmbracelet/lipgloss"

var (
	boxFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3b3b66")).
			Padding(0, 1)
	boxTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f7fd5")).
			Bold(true)
	boxBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8a8ab0"))
)

// Box is a bordered placeholder panel, used for empty states like an empty
// visitor list.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	body := boxTitleStyle.Render(b.Title) + "\n\n" + boxBodyStyle.Render(b.Content)
	return boxFrameStyle.
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		Render(body)
}
