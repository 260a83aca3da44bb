package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gatehouse/core"
)

// PaletteItem is one searchable desk command shown in the palette.
type PaletteItem struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i PaletteItem) Title() string {
	if i.Disabled {
		return i.Name + " (unavailable)"
	}
	return i.Name
}

func (i PaletteItem) Description() string {
	if i.Disabled && i.Reason != "" {
		return i.Reason
	}
	return i.Desc
}

func (i PaletteItem) FilterValue() string { return i.ID + " " + i.Name + " " + i.Desc }

var paletteHeadingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7f7fd5")).
	Bold(true)

// CommandPalette is the transient overlay listing desk commands. Every
// keystroke re-queries the command registry, so filtering stays in the
// registry rather than in the list widget.
type CommandPalette struct {
	search  func(query string) []PaletteItem
	onRun   func(id string) tea.Msg
	query   textinput.Model
	results list.Model
}

func NewCommandPalette(search func(query string) []PaletteItem, onRun func(id string) tea.Msg) *CommandPalette {
	q := textinput.New()
	q.Placeholder = "find a desk command"
	q.Prompt = "> "
	q.CharLimit = 60
	q.Focus()

	results := list.New(nil, list.NewDefaultDelegate(), 60, 12)
	results.SetShowTitle(false)
	results.SetShowStatusBar(false)
	results.SetShowHelp(false)
	results.SetFilteringEnabled(false)

	p := &CommandPalette{search: search, onRun: onRun, query: q, results: results}
	p.requery()
	return p
}

func (p *CommandPalette) Title() string { return "Commands" }
func (p *CommandPalette) Scope() string { return "screen:command" }

func (p *CommandPalette) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+k":
			return p, nil, true
		case "enter":
			return p.runSelected()
		}
	}
	before := p.query.Value()
	var qCmd tea.Cmd
	p.query, qCmd = p.query.Update(msg)
	if p.query.Value() != before {
		p.requery()
	}
	var lCmd tea.Cmd
	p.results, lCmd = p.results.Update(msg)
	return p, tea.Batch(qCmd, lCmd), false
}

// runSelected closes the palette and hands the chosen command id back to the
// model. Picking an unavailable command keeps the palette open.
func (p *CommandPalette) runSelected() (core.Screen, tea.Cmd, bool) {
	item, ok := p.results.SelectedItem().(PaletteItem)
	if !ok {
		return p, nil, false
	}
	if item.Disabled {
		reason := item.Reason
		if reason == "" {
			reason = "Command unavailable"
		}
		return p, core.StatusCmd(reason), false
	}
	if p.onRun == nil {
		return p, nil, true
	}
	id := item.ID
	return p, func() tea.Msg { return p.onRun(id) }, true
}

func (p *CommandPalette) requery() {
	items := p.search(strings.TrimSpace(p.query.Value()))
	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = it
	}
	p.results.ResetSelected()
	_ = p.results.SetItems(rows)
}

func (p *CommandPalette) View(width, height int) string {
	p.results.SetWidth(max(20, width))
	p.results.SetHeight(max(5, height-3))
	return paletteHeadingStyle.Render("Gatehouse commands") + "\n" +
		p.query.View() + "\n" +
		p.results.View()
}
