package core

import (
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"gatehouse/nav"
)

// Screen is one live route body or transient overlay. Update returns the next
// screen state, a command, and whether the screen wants to close.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// ScreenInitializer is implemented by screens that load data when opened.
type ScreenInitializer interface {
	InitScreen() tea.Cmd
}

// ScreenBuilder constructs the screen body for a registered route.
type ScreenBuilder func(m *Model, entry nav.RouteEntry) Screen

// DeskData is the shared front-desk snapshot shown in chrome and on the
// index screen.
type DeskData struct {
	SignedIn int
	Today    int
	Location string
}

type Model struct {
	width            int
	height           int
	shell            *nav.Shell
	builders         map[string]ScreenBuilder
	routes           routeStack
	overlays         ScreenStack
	keys             *KeyRegistry
	commands         *CommandRegistry
	status           string
	statusErr        bool
	quitting         bool
	routeActions     []routeAction
	Data             DeskData
	DB               *sql.DB
	Log              zerolog.Logger
	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(shell *nav.Shell, builders map[string]ScreenBuilder, keys *KeyRegistry, commands *CommandRegistry, db *sql.DB, log zerolog.Logger, data DeskData) Model {
	m := Model{
		shell:    shell,
		builders: builders,
		keys:     keys,
		commands: commands,
		DB:       db,
		Log:      log,
		Data:     data,
		status:   "Ready",
		width:    100,
		height:   32,
	}
	if entries := shell.Entries(); len(entries) > 0 {
		if screen := m.buildScreen(entries[0]); screen != nil {
			m.routes.Push(entries[0], screen)
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if top, ok := m.routes.Top(); ok {
		if init, ok := top.screen.(ScreenInitializer); ok {
			if cmd := init.InitScreen(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// ActiveScope resolves the key-binding scope: transient overlays win, then
// the top route's screen.
func (m Model) ActiveScope() string {
	if top := m.overlays.Top(); top != nil {
		return top.Scope()
	}
	if top, ok := m.routes.Top(); ok {
		return top.screen.Scope()
	}
	return "app"
}

// PushRoute opens a registered route by name. An unknown name is a wiring
// defect surfaced on the status bar; the session keeps running.
func (m *Model) PushRoute(name string) tea.Cmd {
	entry, ok := m.shell.Lookup(name)
	if !ok {
		m.Log.Error().Str("route", name).Msg("push of unregistered route")
		m.SetError(fmt.Errorf("no such route: %s", name))
		return nil
	}
	if top, topOK := m.routes.Top(); topOK && top.entry.Name == name {
		return nil
	}
	screen := m.buildScreen(entry)
	if screen == nil {
		m.Log.Error().Str("route", name).Msg("route has no screen builder")
		m.SetError(fmt.Errorf("no screen wired for route: %s", name))
		return nil
	}
	m.routes.Push(entry, screen)
	if init, ok := screen.(ScreenInitializer); ok {
		return init.InitScreen()
	}
	return nil
}

// PopRoute closes the top route; the root route stays.
func (m *Model) PopRoute() bool {
	return m.routes.Pop()
}

func (m *Model) PushScreen(s Screen) {
	m.overlays.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

// Routes returns the names of the currently open routes, bottom first.
func (m Model) Routes() []string {
	out := make([]string, 0, m.routes.Len())
	for _, r := range m.routes.items {
		out = append(out, r.entry.Name)
	}
	return out
}

func (m Model) OverlayCount() int {
	return m.overlays.Len()
}

func (m *Model) buildScreen(entry nav.RouteEntry) Screen {
	build, ok := m.builders[entry.Name]
	if !ok || build == nil {
		return nil
	}
	return build(m, entry)
}
