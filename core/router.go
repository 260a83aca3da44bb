package core

import "gatehouse/nav"

// openRoute pairs a registered entry with its live screen instance.
type openRoute struct {
	entry  nav.RouteEntry
	screen Screen
}

// routeStack is the runtime stack of opened routes. The bottom element is the
// root route and never pops.
type routeStack struct {
	items []openRoute
}

func (s *routeStack) Push(entry nav.RouteEntry, screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, openRoute{entry: entry, screen: screen})
}

func (s *routeStack) Pop() bool {
	if len(s.items) <= 1 {
		return false
	}
	s.items = s.items[:len(s.items)-1]
	return true
}

func (s routeStack) Top() (openRoute, bool) {
	if len(s.items) == 0 {
		return openRoute{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *routeStack) ReplaceTopScreen(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1].screen = screen
}

// Base returns the highest non-modal route; modal routes above it render as
// overlays on its body.
func (s routeStack) Base() (openRoute, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].entry.Options.Mode != nav.ModeModal {
			return s.items[i], true
		}
	}
	if len(s.items) == 0 {
		return openRoute{}, false
	}
	return s.items[0], true
}

// Modals returns the modal routes stacked above the base, bottom first.
func (s routeStack) Modals() []openRoute {
	var out []openRoute
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].entry.Options.Mode != nav.ModeModal {
			break
		}
		out = append([]openRoute{s.items[i]}, out...)
	}
	return out
}

func (s routeStack) Len() int {
	return len(s.items)
}

// ScreenStack holds transient overlays pushed over the route stack.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
