package bubbletea

import "github.com/charmbracelet/bubbles/key"

// -----------------------------------------------------------------------------
// Key Bindings
// -----------------------------------------------------------------------------

// KeyMap defines all keyboard shortcuts for the application.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Enter key.Binding
	Tab   key.Binding

	// Application
	Quit   key.Binding
	Help   key.Binding
	Reload key.Binding

	// Sample navigation
	NextSample key.Binding
	PrevSample key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load dump"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		NextSample: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n/]", "next sample"),
		),
		PrevSample: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p/[", "prev sample"),
		),
	}
}

// ShortHelp returns abbreviated help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.NextSample, k.PrevSample, k.Reload, k.Help, k.Quit}
}

// FullHelp returns complete help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Enter, k.Tab},
		{k.NextSample, k.PrevSample},
		{k.Reload, k.Help, k.Quit},
	}
}
