package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/widgets"
)

// SettingsTab shows the resolved configuration, read-only.
type SettingsTab struct {
	storage string
	chrome  string
}

func NewSettingsTab(dbPath, logPath, location, background string) *SettingsTab {
	return &SettingsTab{
		storage: "Database: " + dbPath + "\nLog file: " + logPath,
		chrome:  "Location: " + location + "\nBackground: " + background,
	}
}

func (t *SettingsTab) ID() string    { return "settings" }
func (t *SettingsTab) Title() string { return "Settings" }
func (t *SettingsTab) Scope() string { return "tab:settings" }

func (t *SettingsTab) Init() tea.Cmd { return nil }

func (t *SettingsTab) Update(msg tea.Msg) (Tab, tea.Cmd) { return t, nil }

func (t *SettingsTab) Build(ctx GroupContext) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: "Storage", Height: 8, Content: t.storage},
			widgets.Pane{Title: "Chrome", Height: 8, Content: t.chrome},
		},
		Ratios: []float64{0.5, 0.5},
		Gap:    1,
	}
}
