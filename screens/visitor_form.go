package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gatehouse/core"
)

// VisitorInput is the submitted form payload.
type VisitorInput struct {
	Name    string
	Company string
	Host    string
	Badge   string
}

const (
	fieldName = iota
	fieldCompany
	fieldHost
	fieldBadge
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Company", "Host", "Badge"}

// VisitorForm is the check-in form presented by the visitor-form route.
// Ctrl+p on the host field opens an inline typo-tolerant picker over the
// hosts seen before.
type VisitorForm struct {
	inputs   [fieldCount]textinput.Model
	focus    int
	picker   *core.Picker
	hosts    []core.PickerItem
	onSubmit func(VisitorInput) tea.Msg
	problem  string
}

func NewVisitorForm(hosts []string, onSubmit func(VisitorInput) tea.Msg) *VisitorForm {
	f := &VisitorForm{onSubmit: onSubmit}
	for i := range f.inputs {
		inp := textinput.New()
		inp.Prompt = ""
		inp.CharLimit = 80
		f.inputs[i] = inp
	}
	f.inputs[fieldName].Placeholder = "visitor name"
	f.inputs[fieldCompany].Placeholder = "company (optional)"
	f.inputs[fieldHost].Placeholder = "who are they here to see"
	f.inputs[fieldBadge].Placeholder = "badge number (optional)"
	f.inputs[fieldName].Focus()
	for _, h := range hosts {
		f.hosts = append(f.hosts, core.PickerItem{ID: h, Label: h})
	}
	return f
}

func (f *VisitorForm) Title() string { return "Visitor Entry" }
func (f *VisitorForm) Scope() string { return "route:visitor-form" }

func (f *VisitorForm) InitScreen() tea.Cmd { return textinput.Blink }

func (f *VisitorForm) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd, false
	}

	if f.picker != nil {
		return f.updatePicker(keyMsg)
	}

	switch keyMsg.String() {
	case "esc":
		return f, nil, true
	case "enter":
		if f.focus == fieldBadge {
			return f.submit()
		}
		f.setFocus(f.focus + 1)
		return f, nil, false
	case "ctrl+s":
		return f.submit()
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f, nil, false
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f, nil, false
	case "ctrl+p":
		if f.focus == fieldHost && len(f.hosts) > 0 {
			f.picker = core.NewPicker("Pick host", f.hosts)
		}
		return f, nil, false
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

func (f *VisitorForm) updatePicker(msg tea.KeyMsg) (core.Screen, tea.Cmd, bool) {
	result := f.picker.HandleKey(msg.String())
	switch result.Action {
	case core.PickerActionCancelled:
		f.picker = nil
	case core.PickerActionSelected:
		f.inputs[fieldHost].SetValue(result.Item.Label)
		f.picker = nil
	}
	return f, nil, false
}

func (f *VisitorForm) submit() (core.Screen, tea.Cmd, bool) {
	input := VisitorInput{
		Name:    strings.TrimSpace(f.inputs[fieldName].Value()),
		Company: strings.TrimSpace(f.inputs[fieldCompany].Value()),
		Host:    strings.TrimSpace(f.inputs[fieldHost].Value()),
		Badge:   strings.TrimSpace(f.inputs[fieldBadge].Value()),
	}
	if input.Name == "" {
		f.problem = "Name is required"
		f.setFocus(fieldName)
		return f, nil, false
	}
	if input.Host == "" {
		f.problem = "Host is required"
		f.setFocus(fieldHost)
		return f, nil, false
	}
	if f.onSubmit == nil {
		return f, nil, true
	}
	return f, func() tea.Msg { return f.onSubmit(input) }, true
}

func (f *VisitorForm) setFocus(idx int) {
	if idx < 0 {
		idx = fieldCount - 1
	}
	if idx >= fieldCount {
		idx = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
	f.problem = ""
}

// Focused returns the label of the focused field.
func (f *VisitorForm) Focused() string { return fieldLabels[f.focus] }

// Value returns the current value of the labeled field.
func (f *VisitorForm) Value(label string) string {
	for i, l := range fieldLabels {
		if l == label {
			return f.inputs[i].Value()
		}
	}
	return ""
}

// Problem returns the current validation message, if any.
func (f *VisitorForm) Problem() string { return f.problem }

func (f *VisitorForm) View(width, height int) string {
	if f.picker != nil {
		return f.viewPicker(height)
	}
	lines := []string{"Visitor Entry", ""}
	for i, inp := range f.inputs {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		lines = append(lines, marker+fieldLabels[i]+": "+inp.View())
	}
	lines = append(lines, "")
	if f.problem != "" {
		lines = append(lines, "! "+f.problem)
	}
	lines = append(lines, "Enter next. Ctrl+s save. Ctrl+p pick host. Esc cancel.")
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}

func (f *VisitorForm) viewPicker(height int) string {
	lines := []string{f.picker.Title()}
	filter := f.picker.Query()
	if filter == "" {
		filter = "(type to filter)"
	}
	lines = append(lines, "Filter: "+filter, "")
	items := f.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No hosts")
	} else {
		for idx, item := range items {
			prefix := "  "
			if idx == f.picker.Cursor() {
				prefix = "> "
			}
			lines = append(lines, prefix+item.Label)
		}
	}
	lines = append(lines, "", "Enter select. Esc back to form.")
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}
