package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding // Open the selected item
	Back  key.Binding // Return to the previous screen

	// Comments
	NewComment key.Binding // Compose a new top-level comment
	Reply      key.Binding // Reply to the selected comment
	Edit       key.Binding // Edit the selected comment
	Thread     key.Binding // Open the selected comment's thread

	// Detail view
	SwitchPanel key.Binding // Move focus between description and comments

	// View
	Docs    key.Binding // Open workspace documents
	CopyURL key.Binding // Copy the selected item's web URL
	Refresh key.Binding // Reload the current screen
	Help    key.Binding // Show help

	// Compose form
	Submit key.Binding // Submit the compose form

	// General
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
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
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h"),
			key.WithHelp("esc", "back"),
		),
		NewComment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reply"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Thread: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open thread"),
		),
		SwitchPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Docs: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "docs"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "copy url"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the keybindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.NewComment, k.Reply, k.Edit, k.Thread},
		{k.SwitchPanel, k.Docs, k.CopyURL, k.Refresh},
		{k.Submit, k.Help, k.Quit},
	}
}
