// Package app wires the route table, screens, commands, and key actions
// together over the core model.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/core"
	"gatehouse/internal/config"
	"gatehouse/internal/database/repository"
	"gatehouse/nav"
	"gatehouse/screens"
	"gatehouse/tabs"
)

// Route names registered with the shell. The route registry is static; these
// are the only navigable destinations.
const (
	RouteIndex       = "index"
	RouteTabs        = "tabs"
	RouteVisitorForm = "visitor-form"
)

// BuildShell configures defaults from config and registers the route table.
// Any error here is fatal to startup.
func BuildShell(cfg config.Config) (*nav.Shell, error) {
	shell := nav.NewShell()
	shell.Configure(nav.Defaults{
		Presentation: nav.PresentationOptions{
			Mode:        nav.ModeScreen,
			HeaderShown: cfg.UI.HeaderShown,
			Title:       cfg.UI.LocationName,
		},
		Header: nav.HeaderOptions{
			Background: cfg.UI.HeaderBackground,
			Tint:       cfg.UI.HeaderTint,
			TitleBold:  true,
		},
	})

	registrations := []struct {
		name      string
		overrides nav.Overrides
	}{
		{RouteIndex, nav.Overrides{HeaderShown: nav.Bool(false)}},
		{RouteTabs, nav.Overrides{HeaderShown: nav.Bool(false), Title: "Desk"}},
		{RouteVisitorForm, nav.Overrides{Mode: nav.ModeModal, Title: "Visitor Entry"}},
	}
	for _, reg := range registrations {
		if _, err := shell.Register(reg.name, reg.overrides); err != nil {
			return nil, fmt.Errorf("register route: %w", err)
		}
	}
	return shell, nil
}

// Builders binds each route name to its screen constructor.
func Builders(visitors *repository.VisitorRepo, activity *repository.ActivityRepo, cfg config.Config) map[string]core.ScreenBuilder {
	return map[string]core.ScreenBuilder{
		RouteIndex: func(m *core.Model, entry nav.RouteEntry) core.Screen {
			return screens.NewIndexScreen(cfg.UI.LocationName, RefreshCmd(visitors, cfg.UI.LocationName))
		},
		RouteTabs: func(m *core.Model, entry nav.RouteEntry) core.Screen {
			return tabs.NewGroupScreen(
				tabs.NewVisitorsTab(visitors),
				tabs.NewActivityTab(activity),
				tabs.NewSettingsTab(cfg.Database.Path, cfg.Log.Path, cfg.UI.LocationName, cfg.UI.Background),
			)
		},
		RouteVisitorForm: func(m *core.Model, entry nav.RouteEntry) core.Screen {
			hosts, err := visitors.RecentHosts(context.Background(), 20)
			if err != nil {
				m.Log.Warn().Err(err).Msg("loading recent hosts")
			}
			refresh := RefreshCmd(visitors, cfg.UI.LocationName)
			return screens.NewVisitorForm(hosts, func(input screens.VisitorInput) tea.Msg {
				_, err := visitors.CheckIn(context.Background(), repository.Visitor{
					Name:    input.Name,
					Company: input.Company,
					Host:    input.Host,
					Badge:   input.Badge,
				})
				if err != nil {
					return core.StatusMsg{Text: err.Error(), IsErr: true}
				}
				return tea.BatchMsg{
					core.StatusCmd("Checked in " + input.Name),
					refresh,
				}
			})
		},
	}
}

// RefreshCmd reloads the desk counters shown in chrome and on the index page.
func RefreshCmd(visitors *repository.VisitorRepo, location string) tea.Cmd {
	return func() tea.Msg {
		today, signedIn, err := visitors.CountToday(context.Background())
		if err != nil {
			return core.DataLoadedMsg{Key: "desk-stats", Err: err}
		}
		return core.DataLoadedMsg{
			Key:  "desk-stats",
			Data: core.DeskData{SignedIn: signedIn, Today: today, Location: location},
		}
	}
}

// ConfigureModel binds key actions to routes and installs the command palette.
func ConfigureModel(m *core.Model, visitors *repository.VisitorRepo, cfg config.Config) {
	if m == nil {
		return
	}
	m.BindRouteAction("new-visitor", RouteVisitorForm)
	m.BindRouteAction("open-tabs", RouteTabs)

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandPalette(
			func(query string) []screens.PaletteItem {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.PaletteItem, 0, len(results))
				for _, r := range results {
					out = append(out, screens.PaletteItem{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	RegisterCommands(m.CommandRegistry(), visitors, cfg)
}

func RegisterCommands(reg *core.CommandRegistry, visitors *repository.VisitorRepo, cfg config.Config) {
	reg.Register(core.Command{
		ID:          "check-in",
		Name:        "Check in a visitor",
		Description: "Open the visitor entry form",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return core.PushRouteCmd(RouteVisitorForm)
		},
	})
	reg.Register(core.Command{
		ID:          "open-tabs",
		Name:        "Open desk tabs",
		Description: "Visitors, activity, and settings",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return core.PushRouteCmd(RouteTabs)
		},
	})
	reg.Register(core.Command{
		ID:          "go-home",
		Name:        "Go to the welcome page",
		Description: "Pop back to the index route",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			for m.PopRoute() {
			}
			return core.StatusCmd("Home")
		},
	})
	reg.Register(core.Command{
		ID:          "refresh-stats",
		Name:        "Refresh desk counters",
		Description: "Reload in-building and today counts",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return RefreshCmd(visitors, cfg.UI.LocationName)
		},
	})
}
