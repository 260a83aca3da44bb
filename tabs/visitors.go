package tabs

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/core"
	"gatehouse/internal/database/repository"
	"gatehouse/widgets"
)

type visitorsLoadedMsg struct {
	rows []repository.Visitor
	err  error
}

// VisitorsTab lists everyone currently in the building.
type VisitorsTab struct {
	repo   *repository.VisitorRepo
	rows   []repository.Visitor
	cursor int
}

func NewVisitorsTab(repo *repository.VisitorRepo) *VisitorsTab {
	return &VisitorsTab{repo: repo}
}

func (t *VisitorsTab) ID() string    { return "visitors" }
func (t *VisitorsTab) Title() string { return "Visitors" }
func (t *VisitorsTab) Scope() string { return "tab:visitors" }

func (t *VisitorsTab) Init() tea.Cmd {
	repo := t.repo
	return func() tea.Msg {
		rows, err := repo.ListSignedIn(context.Background())
		return visitorsLoadedMsg{rows: rows, err: err}
	}
}

func (t *VisitorsTab) Update(msg tea.Msg) (Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case visitorsLoadedMsg:
		if msg.err != nil {
			return t, core.ErrorCmd(msg.err)
		}
		t.rows = msg.rows
		if t.cursor >= len(t.rows) {
			t.cursor = max(0, len(t.rows)-1)
		}
		return t, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if t.cursor < len(t.rows)-1 {
				t.cursor++
			}
		case "k", "up":
			if t.cursor > 0 {
				t.cursor--
			}
		case "x":
			return t, t.checkOutSelected()
		case "r":
			return t, t.Init()
		}
		return t, nil
	}
	return t, nil
}

func (t *VisitorsTab) checkOutSelected() tea.Cmd {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil
	}
	selected := t.rows[t.cursor]
	repo := t.repo
	reload := t.Init()
	return func() tea.Msg {
		if err := repo.CheckOut(context.Background(), selected.ID); err != nil {
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return tea.BatchMsg{
			core.StatusCmd(fmt.Sprintf("Checked out %s", selected.Name)),
			reload,
		}
	}
}

func (t *VisitorsTab) Build(ctx GroupContext) widgets.Widget {
	rows := make([][]string, 0, len(t.rows))
	for _, v := range t.rows {
		rows = append(rows, []string{
			v.Name,
			v.Company,
			v.Host,
			v.SignedInAt.Local().Format("15:04"),
		})
	}
	if len(rows) == 0 {
		return widgets.Box{Title: "Visitors", Content: "Nobody is signed in. Press n to check someone in."}
	}
	return widgets.Table{
		Headers:  []string{"Name", "Company", "Host", "In since"},
		Rows:     rows,
		Selected: t.cursor,
	}
}
