package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/nav"
)

type fakeScreen struct {
	scope string
	hits  int
	pop   bool
}

func (s *fakeScreen) Title() string        { return "Fake" }
func (s *fakeScreen) Scope() string        { return s.scope }
func (s *fakeScreen) View(int, int) string { return "fake" }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.hits++
		if s.pop && km.String() == "esc" {
			return s, nil, true
		}
	}
	return s, nil, false
}

func entry(name string, mode nav.Mode) nav.RouteEntry {
	return nav.RouteEntry{
		Name:    name,
		Options: nav.PresentationOptions{Mode: mode, HeaderShown: true, Title: name},
	}
}

func TestRouteStackRootNeverPops(t *testing.T) {
	var s routeStack
	s.Push(entry("index", nav.ModeScreen), &fakeScreen{scope: "route:index"})
	if s.Pop() {
		t.Fatalf("root route must not pop")
	}
	if s.Len() != 1 {
		t.Fatalf("expected root to remain, got len %d", s.Len())
	}

	s.Push(entry("tabs", nav.ModeScreen), &fakeScreen{scope: "tab:visitors"})
	if !s.Pop() {
		t.Fatalf("expected pop above root to succeed")
	}
	top, ok := s.Top()
	if !ok || top.entry.Name != "index" {
		t.Fatalf("expected index on top, got %+v", top.entry)
	}
}

func TestRouteStackBaseSkipsModals(t *testing.T) {
	var s routeStack
	s.Push(entry("index", nav.ModeScreen), &fakeScreen{})
	s.Push(entry("tabs", nav.ModeScreen), &fakeScreen{})
	s.Push(entry("visitor-form", nav.ModeModal), &fakeScreen{})

	base, ok := s.Base()
	if !ok || base.entry.Name != "tabs" {
		t.Fatalf("expected tabs as base, got %+v", base.entry)
	}
	modals := s.Modals()
	if len(modals) != 1 || modals[0].entry.Name != "visitor-form" {
		t.Fatalf("expected one modal above base, got %d", len(modals))
	}
}

func TestRouteStackNoModals(t *testing.T) {
	var s routeStack
	s.Push(entry("index", nav.ModeScreen), &fakeScreen{})
	if modals := s.Modals(); len(modals) != 0 {
		t.Fatalf("expected no modals, got %d", len(modals))
	}
	base, ok := s.Base()
	if !ok || base.entry.Name != "index" {
		t.Fatalf("expected index base")
	}
}

func TestScreenStackLIFO(t *testing.T) {
	var s ScreenStack
	a := &fakeScreen{scope: "a"}
	b := &fakeScreen{scope: "b"}
	s.Push(a)
	s.Push(b)
	if s.Top() != b {
		t.Fatalf("expected b on top")
	}
	if got := s.Pop(); got != b {
		t.Fatalf("expected to pop b")
	}
	if s.Top() != a || s.Len() != 1 {
		t.Fatalf("expected a to remain")
	}
	s.Pop()
	if s.Pop() != nil {
		t.Fatalf("pop on empty stack should return nil")
	}
}
