package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/core"
)

func staticSearch(items ...PaletteItem) func(string) []PaletteItem {
	return func(string) []PaletteItem { return items }
}

func TestPaletteRunsSelectedCommand(t *testing.T) {
	ran := ""
	p := NewCommandPalette(
		staticSearch(PaletteItem{ID: "check-in", Name: "Check in a visitor"}),
		func(id string) tea.Msg { ran = id; return nil },
	)
	_, cmd, pop := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("running a command should close the palette")
	}
	if cmd == nil {
		t.Fatalf("expected a command for the selection")
	}
	cmd()
	if ran != "check-in" {
		t.Fatalf("ran %q, want check-in", ran)
	}
}

func TestPaletteEscAndCtrlKClose(t *testing.T) {
	p := NewCommandPalette(staticSearch(), nil)
	if _, _, pop := p.Update(tea.KeyMsg{Type: tea.KeyEsc}); !pop {
		t.Fatalf("esc should close the palette")
	}
	if _, _, pop := p.Update(tea.KeyMsg{Type: tea.KeyCtrlK}); !pop {
		t.Fatalf("ctrl+k should toggle the palette closed")
	}
}

func TestPaletteUnavailableCommandStaysOpen(t *testing.T) {
	p := NewCommandPalette(
		staticSearch(PaletteItem{ID: "check-out", Name: "Check out", Disabled: true, Reason: "nobody is signed in"}),
		func(id string) tea.Msg { t.Fatalf("must not run a disabled command"); return nil },
	)
	_, cmd, pop := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if pop {
		t.Fatalf("picking an unavailable command should keep the palette open")
	}
	if cmd == nil {
		t.Fatalf("expected a status command explaining why")
	}
	msg, ok := cmd().(core.StatusMsg)
	if !ok || msg.Text != "nobody is signed in" {
		t.Fatalf("expected the disable reason on the status bar, got %v", msg)
	}
}

func TestPaletteRequeriesAsTheOperatorTypes(t *testing.T) {
	queries := []string{}
	p := NewCommandPalette(func(q string) []PaletteItem {
		queries = append(queries, q)
		return nil
	}, nil)
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	if len(queries) < 3 {
		t.Fatalf("expected a re-query per keystroke, got %v", queries)
	}
	if queries[len(queries)-1] != "ch" {
		t.Fatalf("last query = %q, want ch", queries[len(queries)-1])
	}
}
