package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is one palette entry. Disabled commands stay listed with a reason
// so the desk operator sees why an action is unavailable right now.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

// CommandRegistry holds palette commands in registration order. Wiring fills
// it during startup; after that it is read-only.
type CommandRegistry struct {
	order []string
	byID  map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	r := &CommandRegistry{byID: map[string]Command{}}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, seen := r.byID[c.ID]; !seen {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = c
}

// Search returns the commands visible in scope whose text matches query,
// runnable ones first, keeping registration order within each group.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	var runnable, held []CommandResult
	for _, id := range r.order {
		c := r.byID[id]
		if !scopeAllows(scope, c.Scopes) {
			continue
		}
		if q != "" && !commandMatches(c, q) {
			continue
		}
		res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
		if c.Disabled != nil {
			res.Disabled, res.Reason = c.Disabled(m)
		}
		if res.Disabled {
			held = append(held, res)
		} else {
			runnable = append(runnable, res)
		}
	}
	return append(runnable, held...)
}

func commandMatches(c Command, q string) bool {
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Description), q) ||
		strings.Contains(strings.ToLower(c.ID), q)
}

// Execute runs the command registered under id, or reports why it cannot run.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.byID[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		if disabled, reason := c.Disabled(m); disabled {
			if reason == "" {
				reason = "Command unavailable"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
