// Package tui provides the terminal user interface for taskdeck.
package tui

// Screen represents which view is active.
type Screen int

const (
	ScreenAuth       Screen = iota // Token entry
	ScreenWorkspaces               // Workspace picker
	ScreenSpaces                   // Spaces of a workspace
	ScreenBrowse                   // Folders and folderless lists of a space
	ScreenLists                    // Lists of a folder
	ScreenTasks                    // Tasks of a list
	ScreenTaskDetail               // Task description and comments
	ScreenDocs                     // Documents of a workspace
	ScreenPage                     // A document's pages
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenAuth:
		return "auth"
	case ScreenWorkspaces:
		return "workspaces"
	case ScreenSpaces:
		return "spaces"
	case ScreenBrowse:
		return "browse"
	case ScreenLists:
		return "lists"
	case ScreenTasks:
		return "tasks"
	case ScreenTaskDetail:
		return "task_detail"
	case ScreenDocs:
		return "docs"
	case ScreenPage:
		return "page"
	default:
		return "unknown"
	}
}

// Mode represents the current input mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeCompose             // Comment compose/edit form open
	ModeToken               // Token input on the auth screen
	ModeHelp                // Help overlay
	ModeConfirm             // Quit confirmation dialog
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCompose:
		return "compose"
	case ModeToken:
		return "token"
	case ModeHelp:
		return "help"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeCompose, ModeToken:
		return true
	case ModeNormal, ModeHelp, ModeConfirm:
		return false
	}
	return false
}

// Focus identifies which panel of the task detail view scrolls.
type Focus int

const (
	FocusComments Focus = iota
	FocusDescription
)
