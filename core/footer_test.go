package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestFooterHintsDedupByAction(t *testing.T) {
	hints := footerHints([]KeyBinding{
		{Keys: []string{"esc"}, Action: "back", Description: "back"},
		{Keys: []string{"backspace"}, Action: "back", Description: "back"},
		{Keys: []string{"q"}, Action: "quit", Description: "quit"},
		{Keys: []string{"ctrl+x"}, Action: "hidden"},
	})
	if len(hints) != 2 {
		t.Fatalf("expected two hints, got %d", len(hints))
	}
	if hints[0].Key != "esc" || hints[1].Key != "q" {
		t.Fatalf("unexpected hint keys: %+v", hints)
	}
}

func TestRenderFooterShowsScopedHints(t *testing.T) {
	keys := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"n"}, Action: "new-visitor", Description: "check in", Scopes: []string{"route:index"}},
		{Keys: []string{"x"}, Action: "check-out", Description: "check out", Scopes: []string{"tab:visitors"}},
	})
	index := &fakeScreen{scope: "route:index"}
	m := testModel(t, keys, map[string]*fakeScreen{"index": index})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	plain := ansi.Strip(RenderFooter(m))
	if !strings.Contains(plain, "check in") {
		t.Fatalf("expected the index hint, got %q", plain)
	}
	if strings.Contains(plain, "check out") {
		t.Fatalf("hints from other scopes must not show, got %q", plain)
	}
}
