package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

type DataLoadedMsg struct {
	Key  string
	Data any
	Err  error
}

// PushRouteMsg opens a registered route by name.
type PushRouteMsg struct {
	Name string
}

// PopRouteMsg closes the top route. The root route never pops.
type PopRouteMsg struct{}

// PushScreenMsg opens a transient overlay (palette, picker) that is not part
// of the route registry.
type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func PushRouteCmd(name string) tea.Cmd {
	return func() tea.Msg { return PushRouteMsg{Name: name} }
}

func PopRouteCmd() tea.Cmd {
	return func() tea.Msg { return PopRouteMsg{} }
}
