package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"gatehouse/core"
	"gatehouse/widgets"
)

// Tab is one member of the desk tab group.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Tab, tea.Cmd)
	Build(m GroupContext) widgets.Widget
}

// GroupContext is the slice of shared state tabs may read while building.
type GroupContext struct {
	Width  int
	Height int
}

// GroupScreen hosts the tab group as one route body. Switching tabs re-runs
// the incoming tab's Init so its data is fresh.
type GroupScreen struct {
	tabs   []Tab
	active int
}

func NewGroupScreen(tabs ...Tab) *GroupScreen {
	return &GroupScreen{tabs: tabs}
}

func (g *GroupScreen) Title() string {
	if len(g.tabs) == 0 {
		return "Desk"
	}
	return g.tabs[g.active].Title()
}

func (g *GroupScreen) Scope() string {
	if len(g.tabs) == 0 {
		return "tab:none"
	}
	return g.tabs[g.active].Scope()
}

func (g *GroupScreen) InitScreen() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(g.tabs))
	for _, t := range g.tabs {
		if cmd := t.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (g *GroupScreen) ActiveID() string {
	if len(g.tabs) == 0 {
		return ""
	}
	return g.tabs[g.active].ID()
}

func (g *GroupScreen) Switch(index int) tea.Cmd {
	if index < 0 || index >= len(g.tabs) || index == g.active {
		return nil
	}
	g.active = index
	return g.tabs[g.active].Init()
}

func (g *GroupScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return g, nil, true
		case "tab":
			next := 0
			if len(g.tabs) > 0 {
				next = (g.active + 1) % len(g.tabs)
			}
			return g, g.Switch(next), false
		}
		for i := range g.tabs {
			if key.String() == fmt.Sprintf("%d", i+1) {
				return g, g.Switch(i), false
			}
		}
		if len(g.tabs) > 0 {
			next, cmd := g.tabs[g.active].Update(msg)
			if next != nil {
				g.tabs[g.active] = next
			}
			return g, cmd, false
		}
		return g, nil, false
	}

	// Data messages fan out to every tab so background tabs stay current.
	var cmds []tea.Cmd
	for i, t := range g.tabs {
		next, cmd := t.Update(msg)
		if next != nil {
			g.tabs[i] = next
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return g, tea.Batch(cmds...), false
}

func (g *GroupScreen) View(width, height int) string {
	bar := g.renderTabBar(width)
	bodyHeight := height - 1
	body := ""
	if len(g.tabs) > 0 && bodyHeight > 0 {
		body = g.tabs[g.active].Build(GroupContext{Width: width, Height: bodyHeight}).Render(width, bodyHeight)
	}
	return bar + "\n" + core.ClipHeight(body, max(0, bodyHeight))
}

func (g *GroupScreen) renderTabBar(width int) string {
	active, inactive, sep := core.TabBarStyles()
	labels := make([]string, 0, len(g.tabs))
	for i, t := range g.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		if i == g.active {
			labels = append(labels, active.Render(label))
		} else {
			labels = append(labels, inactive.Render(label))
		}
	}
	line := strings.Join(labels, sep.Render("│"))
	return ansi.Truncate(line, max(1, width), "")
}
