package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(f *VisitorForm, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(f *VisitorForm, msg tea.KeyMsg) (tea.Cmd, bool) {
	_, cmd, pop := f.Update(msg)
	return cmd, pop
}

func TestVisitorFormFieldNavigation(t *testing.T) {
	f := NewVisitorForm(nil, nil)
	if f.Focused() != "Name" {
		t.Fatalf("expected Name focused first, got %s", f.Focused())
	}
	press(f, tea.KeyMsg{Type: tea.KeyTab})
	if f.Focused() != "Company" {
		t.Fatalf("expected tab to advance to Company, got %s", f.Focused())
	}
	press(f, tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.Focused() != "Name" {
		t.Fatalf("expected shift+tab back to Name, got %s", f.Focused())
	}
	press(f, tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.Focused() != "Badge" {
		t.Fatalf("expected wrap to Badge, got %s", f.Focused())
	}
}

func TestVisitorFormEnterAdvancesAndSubmitsOnLastField(t *testing.T) {
	var got VisitorInput
	f := NewVisitorForm(nil, func(in VisitorInput) tea.Msg {
		got = in
		return nil
	})

	typeString(f, "Ada Lovelace")
	press(f, tea.KeyMsg{Type: tea.KeyEnter})
	typeString(f, "Analytical Ltd")
	press(f, tea.KeyMsg{Type: tea.KeyEnter})
	typeString(f, "Charles")
	press(f, tea.KeyMsg{Type: tea.KeyEnter})
	if f.Focused() != "Badge" {
		t.Fatalf("expected enter to walk to Badge, got %s", f.Focused())
	}
	typeString(f, "B-12")

	cmd, pop := press(f, tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("expected submit to close the form")
	}
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	cmd()
	if got.Name != "Ada Lovelace" || got.Company != "Analytical Ltd" || got.Host != "Charles" || got.Badge != "B-12" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestVisitorFormValidation(t *testing.T) {
	f := NewVisitorForm(nil, func(VisitorInput) tea.Msg { return nil })

	_, pop := press(f, tea.KeyMsg{Type: tea.KeyCtrlS})
	if pop {
		t.Fatalf("empty form must not submit")
	}
	if f.Problem() != "Name is required" {
		t.Fatalf("expected name problem, got %q", f.Problem())
	}

	typeString(f, "Ada")
	_, pop = press(f, tea.KeyMsg{Type: tea.KeyCtrlS})
	if pop {
		t.Fatalf("form without host must not submit")
	}
	if f.Problem() != "Host is required" {
		t.Fatalf("expected host problem, got %q", f.Problem())
	}
	if f.Focused() != "Host" {
		t.Fatalf("expected focus moved to Host, got %s", f.Focused())
	}
}

func TestVisitorFormEscCancels(t *testing.T) {
	f := NewVisitorForm(nil, nil)
	_, pop := press(f, tea.KeyMsg{Type: tea.KeyEsc})
	if !pop {
		t.Fatalf("expected esc to close the form")
	}
}

func TestVisitorFormHostPicker(t *testing.T) {
	f := NewVisitorForm([]string{"James Park", "Priya Nair"}, nil)

	// ctrl+p does nothing outside the host field
	press(f, tea.KeyMsg{Type: tea.KeyCtrlP})
	if f.picker != nil {
		t.Fatalf("picker should only open on the host field")
	}

	press(f, tea.KeyMsg{Type: tea.KeyTab})
	press(f, tea.KeyMsg{Type: tea.KeyTab})
	if f.Focused() != "Host" {
		t.Fatalf("expected Host focused, got %s", f.Focused())
	}
	press(f, tea.KeyMsg{Type: tea.KeyCtrlP})
	if f.picker == nil {
		t.Fatalf("expected picker open on host field")
	}

	typeString(f, "priya")
	_, pop := press(f, tea.KeyMsg{Type: tea.KeyEnter})
	if pop {
		t.Fatalf("picking a host must not close the form")
	}
	if f.picker != nil {
		t.Fatalf("picker should close after selection")
	}
	if f.Value("Host") != "Priya Nair" {
		t.Fatalf("expected host filled from picker, got %q", f.Value("Host"))
	}

	press(f, tea.KeyMsg{Type: tea.KeyCtrlP})
	_, pop = press(f, tea.KeyMsg{Type: tea.KeyEsc})
	if pop {
		t.Fatalf("esc inside the picker returns to the form, not out of it")
	}
	if f.picker != nil {
		t.Fatalf("expected picker dismissed")
	}
}
