package tabs

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/core"
	"gatehouse/internal/database/repository"
	"gatehouse/widgets"
)

type activityLoadedMsg struct {
	events []repository.Event
	err    error
}

// ActivityTab shows the chronological check-in/check-out log.
type ActivityTab struct {
	repo   *repository.ActivityRepo
	events []repository.Event
}

func NewActivityTab(repo *repository.ActivityRepo) *ActivityTab {
	return &ActivityTab{repo: repo}
}

func (t *ActivityTab) ID() string    { return "activity" }
func (t *ActivityTab) Title() string { return "Activity" }
func (t *ActivityTab) Scope() string { return "tab:activity" }

func (t *ActivityTab) Init() tea.Cmd {
	repo := t.repo
	return func() tea.Msg {
		events, err := repo.ListRecent(context.Background(), 100)
		return activityLoadedMsg{events: events, err: err}
	}
}

func (t *ActivityTab) Update(msg tea.Msg) (Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.err != nil {
			return t, core.ErrorCmd(msg.err)
		}
		t.events = msg.events
		return t, nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			return t, t.Init()
		}
		return t, nil
	}
	return t, nil
}

func (t *ActivityTab) Build(ctx GroupContext) widgets.Widget {
	if len(t.events) == 0 {
		return widgets.Box{Title: "Activity", Content: "No activity yet today."}
	}
	items := make([]string, 0, len(t.events))
	for _, e := range t.events {
		verb := "in "
		if e.Kind == repository.KindCheckOut {
			verb = "out"
		}
		items = append(items, fmt.Sprintf("%s  %s  %s (host %s)",
			e.At.Local().Format("15:04"), verb, e.VisitorName, e.Host))
	}
	return widgets.List{Title: "Activity", Items: items}
}
