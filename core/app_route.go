package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/nav"
)

// routeAction pairs a key action with the route it opens. Bindings are kept
// in bind order so dispatch is deterministic when keys overlap.
type routeAction struct {
	action string
	route  string
}

// BindRouteAction maps a key action to a route push. Wiring fills these so
// core stays ignorant of concrete route names. Rebinding an action replaces
// its route without changing its position.
func (m *Model) BindRouteAction(action, route string) {
	for i, ra := range m.routeActions {
		if ra.action == action {
			m.routeActions[i].route = route
			return
		}
	}
	m.routeActions = append(m.routeActions, routeAction{action: action, route: route})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case DataLoadedMsg:
		if msg.Err != nil {
			m.Log.Error().Err(msg.Err).Str("key", msg.Key).Msg("data load failed")
			m.SetError(msg.Err)
			return m, nil
		}
		if data, ok := msg.Data.(DeskData); ok {
			m.Data = data
		}
		m.SetStatus("Data loaded: " + msg.Key)
		return m, m.forward(msg)
	case PushRouteMsg:
		return m, m.PushRoute(msg.Name)
	case PopRouteMsg:
		m.routes.Pop()
		return m, nil
	case PushScreenMsg:
		m.overlays.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.overlays.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		// Transient overlays eat keys first.
		if top := m.overlays.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.overlays.Pop()
				return m, cmd
			}
			if next != nil {
				m.overlays.items[len(m.overlays.items)-1] = next
			}
			return m, cmd
		}

		// A modal route owns the keyboard while open.
		if top, ok := m.routes.Top(); ok && top.entry.Options.Mode == nav.ModeModal {
			next, cmd, pop := top.screen.Update(msg)
			if pop {
				m.routes.Pop()
				return m, cmd
			}
			if next != nil {
				m.routes.ReplaceTopScreen(next)
			}
			return m, cmd
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "back", scope) {
			m.routes.Pop()
			return m, nil
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.overlays.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		for _, ra := range m.routeActions {
			if m.keys.IsAction(msg, ra.action, scope) {
				return m, m.PushRoute(ra.route)
			}
		}

		if top, ok := m.routes.Top(); ok {
			next, cmd, pop := top.screen.Update(msg)
			if pop {
				m.routes.Pop()
				return m, cmd
			}
			if next != nil {
				m.routes.ReplaceTopScreen(next)
			}
			return m, cmd
		}
		return m, nil
	}

	return m, m.forward(msg)
}

// forward hands a non-key message to the top overlay if one is open,
// otherwise to the top route's screen.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if top := m.overlays.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.overlays.Pop()
			return cmd
		}
		if next != nil {
			m.overlays.items[len(m.overlays.items)-1] = next
		}
		return cmd
	}
	if top, ok := m.routes.Top(); ok {
		next, cmd, pop := top.screen.Update(msg)
		if pop {
			m.routes.Pop()
			return cmd
		}
		if next != nil {
			m.routes.ReplaceTopScreen(next)
		}
		return cmd
	}
	return nil
}
