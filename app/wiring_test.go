package app

import (
	"testing"

	"gatehouse/internal/config"
	"gatehouse/nav"
)

func testConfig() config.Config {
	return config.Config{
		Database: config.DatabaseConfig{Path: "/tmp/gatehouse.db"},
		Log:      config.LogConfig{Path: "/tmp/gatehouse.log", Level: "info"},
		UI: config.UIConfig{
			HeaderShown:      true,
			Background:       "#0f0f23",
			HeaderBackground: "#151530",
			HeaderTint:       "#e0e0ff",
			LocationName:     "Front Desk",
		},
	}
}

func TestBuildShellRegistersRoutesInOrder(t *testing.T) {
	shell, err := BuildShell(testConfig())
	if err != nil {
		t.Fatalf("build shell: %v", err)
	}
	entries := shell.Entries()
	want := []string{RouteIndex, RouteTabs, RouteVisitorForm}
	if len(entries) != len(want) {
		t.Fatalf("expected %d routes, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Fatalf("route %d = %s, want %s", i, entries[i].Name, name)
		}
	}
}

func TestBuildShellExactlyOneModal(t *testing.T) {
	shell, err := BuildShell(testConfig())
	if err != nil {
		t.Fatalf("build shell: %v", err)
	}
	modals := 0
	for _, e := range shell.Entries() {
		if e.Options.Mode == nav.ModeModal {
			modals++
			if e.Name != RouteVisitorForm {
				t.Fatalf("unexpected modal route %s", e.Name)
			}
		}
	}
	if modals != 1 {
		t.Fatalf("expected exactly one modal route, got %d", modals)
	}
}

func TestBuildShellVisitorFormInheritsHeader(t *testing.T) {
	shell, err := BuildShell(testConfig())
	if err != nil {
		t.Fatalf("build shell: %v", err)
	}
	form, ok := shell.Lookup(RouteVisitorForm)
	if !ok {
		t.Fatalf("visitor-form not registered")
	}
	if !form.Options.HeaderShown {
		t.Fatalf("visitor-form should inherit the header default")
	}
	if form.Options.Title != "Visitor Entry" {
		t.Fatalf("title = %q, want Visitor Entry", form.Options.Title)
	}
	if form.Header.Background != "#151530" || form.Header.Tint != "#e0e0ff" {
		t.Fatalf("header theme should come from defaults, got %+v", form.Header)
	}

	index, _ := shell.Lookup(RouteIndex)
	if index.Options.HeaderShown {
		t.Fatalf("index should override the header off")
	}
}

func TestBuildersCoverEveryRoute(t *testing.T) {
	shell, err := BuildShell(testConfig())
	if err != nil {
		t.Fatalf("build shell: %v", err)
	}
	builders := Builders(nil, nil, testConfig())
	for _, e := range shell.Entries() {
		if builders[e.Name] == nil {
			t.Fatalf("route %s has no screen builder", e.Name)
		}
	}
}
