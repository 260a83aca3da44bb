package nav

// RouteEntry is one registered route with its fully resolved options.
// Identity is Name; entries are created during startup and immutable after.
type RouteEntry struct {
	Name    string
	Options PresentationOptions
	Header  HeaderOptions
}

// Shell assembles the ordered route registry. All registration happens
// synchronously during startup on the program goroutine; after that the
// entry list is read-only, so no locking is needed.
//
// The shell has two states: unconfigured and configured. Configure moves it
// forward once; Register fails until that happens.
type Shell struct {
	configured bool
	defaults   Defaults
	entries    []RouteEntry
	byName     map[string]int
}

func NewShell() *Shell {
	return &Shell{byName: map[string]int{}}
}

// Configure establishes the fallback options applied to every route unless
// overridden. Calling it again is a no-op returning the active defaults;
// reapplying defaults carries no mutable-state risk, so it is not an error.
func (s *Shell) Configure(d Defaults) Defaults {
	if s.configured {
		return s.defaults
	}
	s.defaults = d
	s.configured = true
	return s.defaults
}

// Configured reports whether Configure has been called.
func (s *Shell) Configured() bool { return s.configured }

// Defaults returns the active defaults. Zero value before Configure.
func (s *Shell) Defaults() Defaults { return s.defaults }

// Register resolves o over the configured defaults and appends the entry.
// Registration order determines stacking order only; it never affects how
// options resolve.
func (s *Shell) Register(name string, o Overrides) (RouteEntry, error) {
	if !s.configured {
		return RouteEntry{}, &MissingDefaultsError{Name: name}
	}
	if name == "" {
		return RouteEntry{}, errEmptyRouteName
	}
	if _, exists := s.byName[name]; exists {
		return RouteEntry{}, &DuplicateRouteError{Name: name}
	}
	p, h := o.resolve(s.defaults)
	entry := RouteEntry{Name: name, Options: p, Header: h}
	s.byName[name] = len(s.entries)
	s.entries = append(s.entries, entry)
	return entry, nil
}

// Entries returns the ordered resolved entries.
func (s *Shell) Entries() []RouteEntry {
	return append([]RouteEntry(nil), s.entries...)
}

// Lookup returns the entry registered under name.
func (s *Shell) Lookup(name string) (RouteEntry, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return RouteEntry{}, false
	}
	return s.entries[idx], true
}

// Len returns the number of registered routes.
func (s *Shell) Len() int { return len(s.entries) }
