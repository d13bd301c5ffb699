package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// List item colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color

	// Task status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	InReview   lipgloss.Color
	Done       lipgloss.Color
	Closed     lipgloss.Color

	// Panel borders
	BorderNormal  lipgloss.Color
	BorderFocused lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	InReview:   lipgloss.Color("#A29BFE"), // Lavender
	Done:       lipgloss.Color("#00B894"), // Green
	Closed:     lipgloss.Color("#636E72"), // Gray

	BorderNormal:  lipgloss.Color("#636E72"),
	BorderFocused: lipgloss.Color("#6C5CE7"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Lists (workspaces, spaces, lists, tasks, docs)
	Item          lipgloss.Style
	ItemNormal    lipgloss.Style
	ItemSelected  lipgloss.Style
	ItemDesc      lipgloss.Style
	ItemDescSel   lipgloss.Style
	CursorNormal  lipgloss.Style
	CursorActive  lipgloss.Style
	SectionHeader lipgloss.Style

	// Status badges
	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusInReview   lipgloss.Style
	StatusDone       lipgloss.Style
	StatusClosed     lipgloss.Style

	// Task detail panels
	Panel         lipgloss.Style
	PanelFocused  lipgloss.Style
	PanelTitle    lipgloss.Style
	DetailLabel   lipgloss.Style
	DetailValue   lipgloss.Style
	Overdue       lipgloss.Style
	CommentAuthor lipgloss.Style
	CommentTime   lipgloss.Style
	CommentBody   lipgloss.Style
	ThreadMarker  lipgloss.Style

	// Compose form
	Compose       lipgloss.Style
	ComposeTitle  lipgloss.Style
	ComposePrompt lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Status bar
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	CacheBadge lipgloss.Style
	Saving     lipgloss.Style
	ErrorMsg   lipgloss.Style

	// Help
	Help lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Item: lipgloss.NewStyle().
			PaddingLeft(1),

		ItemNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		ItemDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		ItemDescSel: lipgloss.NewStyle().
			Foreground(Colors.DescSelected),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorActive: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		SectionHeader: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Bold(true),

		StatusTodo: lipgloss.NewStyle().
			Foreground(Colors.Todo),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusInReview: lipgloss.NewStyle().
			Foreground(Colors.InReview),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		StatusClosed: lipgloss.NewStyle().
			Foreground(Colors.Closed),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.BorderNormal).
			Padding(0, 1),

		PanelFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.BorderFocused).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),

		DetailValue: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Overdue: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		CommentAuthor: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		CommentTime: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CommentBody: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ThreadMarker: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Compose: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),

		ComposeTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		ComposePrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Input: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		CacheBadge: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Saving: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Italic(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// statusStyle picks the badge style for a task status name.
func (s Styles) statusStyle(status string) lipgloss.Style {
	switch status {
	case "to do", "open", "backlog":
		return s.StatusTodo
	case "in progress":
		return s.StatusInProgress
	case "in review", "urgent review":
		return s.StatusInReview
	case "done", "complete":
		return s.StatusDone
	case "closed":
		return s.StatusClosed
	default:
		return s.StatusTodo
	}
}
