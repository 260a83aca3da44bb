package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps one or more keys to a named desk action within the scopes
// it applies to. An empty scope list makes the binding global.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves pressed keys to desk actions per scope. Bindings are
// indexed by action; keys are normalized once at registration.
type KeyRegistry struct {
	order    []KeyBinding
	byAction map[string][]KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byAction: map[string][]KeyBinding{}}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(b KeyBinding) {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		keys = append(keys, normalizeKey(k))
	}
	b.Keys = keys
	r.order = append(r.order, b)
	r.byAction[b.Action] = append(r.byAction[b.Action], b)
}

// BindingsForScope returns the bindings visible in scope, in registration
// order. The footer builds its help strip from this.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.order {
		if scopeAllows(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether the pressed key triggers action within scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.byAction[action] {
		if scopeAllows(scope, b.Scopes) && slices.Contains(b.Keys, pressed) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// scopeAllows reports whether a binding or command restricted to scopes is
// visible from scope. No scopes and the "*" scope both mean everywhere.
func scopeAllows(scope string, scopes []string) bool {
	return len(scopes) == 0 || slices.Contains(scopes, "*") || slices.Contains(scopes, scope)
}
