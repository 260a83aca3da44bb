package core

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"route:index", "tab:visitors", "tab:activity", "tab:settings"}},
		{Keys: []string{"esc"}, Action: "back", Description: "back", Scopes: []string{"tab:visitors", "tab:activity", "tab:settings"}},
		{Keys: []string{"n"}, Action: "new-visitor", Description: "check in", Scopes: []string{"route:index", "tab:visitors", "tab:activity"}},
		{Keys: []string{"t"}, Action: "open-tabs", Description: "desk tabs", Scopes: []string{"route:index"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "visitors", Scopes: []string{"tab:visitors", "tab:activity", "tab:settings"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "activity", Scopes: []string{"tab:visitors", "tab:activity", "tab:settings"}},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "settings", Scopes: []string{"tab:visitors", "tab:activity", "tab:settings"}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "row down", Scopes: []string{"tab:visitors", "tab:activity"}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "row up", Scopes: []string{"tab:visitors", "tab:activity"}},
		{Keys: []string{"x"}, Action: "check-out", Description: "check out", Scopes: []string{"tab:visitors"}},
		{Keys: []string{"r"}, Action: "refresh", Description: "refresh", Scopes: []string{"route:index", "tab:visitors", "tab:activity"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"route:visitor-form", "screen:host-picker", "screen:command"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:host-picker", "screen:command"}},
		{Keys: []string{"ctrl+s"}, Action: "submit", Description: "save", Scopes: []string{"route:visitor-form"}},
	}
}
