package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts for the accounts browser.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Reveal  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
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
		Reveal: key.NewBinding(
			key.WithKeys("enter", "b"),
			key.WithHelp("enter", "check balance"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpLine renders the one-line help footer for the accounts browser.
func (k KeyMap) HelpLine() string {
	return "[↑↓] Navigate | [Enter] Check balance | [d] Delete | [r] Refresh | [q] Quit"
}
