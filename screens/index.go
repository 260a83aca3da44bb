package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/core"
)

// IndexScreen is the welcome page at the bottom of the route stack.
type IndexScreen struct {
	location string
	data     core.DeskData
	refresh  tea.Cmd
}

func NewIndexScreen(location string, refresh tea.Cmd) *IndexScreen {
	return &IndexScreen{location: location, refresh: refresh}
}

func (s *IndexScreen) Title() string { return "Gatehouse" }
func (s *IndexScreen) Scope() string { return "route:index" }

func (s *IndexScreen) InitScreen() tea.Cmd { return s.refresh }

func (s *IndexScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if data, ok := msg.Data.(core.DeskData); ok && msg.Err == nil {
			s.data = data
		}
		return s, nil, false
	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.refresh, false
		}
	}
	return s, nil, false
}

func (s *IndexScreen) View(width, height int) string {
	lines := []string{
		"",
		"  " + s.location,
		"",
		fmt.Sprintf("  In building now : %d", s.data.SignedIn),
		fmt.Sprintf("  Checked in today: %d", s.data.Today),
		"",
		"  n  check in a visitor",
		"  t  open desk tabs",
		"  q  quit",
	}
	return core.ClipHeight(strings.Join(lines, "\n"), max(1, height))
}
