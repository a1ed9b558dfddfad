package model

import "github.com/charmbracelet/bubbles/key"

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		ToggleFilter: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "toggle all/running"),
		),
		Console: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "console"),
		),
		SSH: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "ssh"),
		),
		SSHAsUser: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "ssh as user"),
		),
		Start: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "start"),
		),
		Shutdown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "shutdown"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy name"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "connect"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Console, k.SSH, k.Start, k.Shutdown, k.ToggleFilter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleFilter, k.Refresh},
		{k.Console, k.SSH, k.SSHAsUser, k.Copy},
		{k.Start, k.Shutdown},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
