package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/tui/comments"
	"github.com/taskdeck/taskdeck/internal/tui/scroll"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// Comment panel engine
	store   *comments.Store
	panel   *comments.Panel
	session *comments.Session

	// Loaded data (slices - contain pointers)
	workspaces []domain.Workspace
	spaces     []domain.Space
	folders    []domain.Folder
	lists      []domain.List
	tasks      []*domain.Task
	docs       []domain.Document
	pages      []domain.Page

	// Current selection context
	user        *domain.User // Authenticated user, gates comment editing
	task        *domain.Task
	workspaceID string
	spaceID     string
	folderID    string
	listID      string
	docID       string
	statusMsg   string

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	composeInput textarea.Model
	tokenInput   textinput.Model

	// Scroll state
	listScroll scroll.State // Active list screen
	descScroll scroll.State // Task detail description panel
	comScroll  scroll.State // Task detail comment panel

	// Rendered markdown, rebuilt on load and on resize
	descLines []string
	pageLines []string

	// Numeric state (smaller types last)
	screen     Screen
	docsReturn Screen // Screen to return to when leaving the docs view
	mode       Mode
	focus      Focus
	cursor     int // Selection on the active list screen
	width      int
	height     int
	loading    bool
	fromCache  bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ci := textarea.New()
	ci.Placeholder = "Write a comment..."
	ci.CharLimit = 0
	ci.ShowLineNumbers = false

	ti := textinput.New()
	ti.Placeholder = "API token"
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 200

	store := comments.NewStore()

	m := &Model{
		container:    c,
		store:        store,
		panel:        comments.NewPanel(store),
		keys:         DefaultKeyMap(),
		styles:       DefaultStyles(),
		help:         help.New(),
		composeInput: ci,
		tokenInput:   ti,
		screen:       ScreenAuth,
		mode:         ModeToken,
	}
	if c.Authenticated() {
		m.screen = ScreenWorkspaces
		m.mode = ModeNormal
		m.loading = true
	} else {
		m.tokenInput.Focus()
	}
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	if m.screen == ScreenAuth {
		return textinput.Blink
	}
	return tea.Batch(m.loadWorkspaces(), m.loadUser())
}

// Command builders. Each returns a tea.Cmd that runs a use case in the
// background and reports the result as a Msg.

func (m *Model) login(tok string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoginUseCase().Execute(context.Background(), usecase.LoginInput{Token: tok})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgLoggedIn{User: out.User, Token: tok}
	}
}

// loadUser identifies the authenticated user when the TUI starts with a
// client already built, so edit permissions can be checked.
func (m *Model) loadUser() tea.Cmd {
	return func() tea.Msg {
		user, err := m.container.API.AuthorizedUser(context.Background())
		if err != nil {
			return MsgUserLoaded{}
		}
		return MsgUserLoaded{User: user}
	}
}

func (m *Model) loadWorkspaces() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListWorkspacesUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgWorkspacesLoaded{Workspaces: out.Workspaces, FromCache: out.FromCache}
	}
}

func (m *Model) loadSpaces(workspaceID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListSpacesUseCase().Execute(context.Background(), usecase.ListSpacesInput{WorkspaceID: workspaceID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSpacesLoaded{Spaces: out.Spaces, FromCache: out.FromCache}
	}
}

// loadBrowse loads a space's folders and its folderless lists together.
func (m *Model) loadBrowse(spaceID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		folders, err := m.container.ListFoldersUseCase().Execute(ctx, usecase.ListFoldersInput{SpaceID: spaceID})
		if err != nil {
			return MsgError{Err: err}
		}
		lists, err := m.container.ListListsUseCase().Execute(ctx, usecase.ListListsInput{SpaceID: spaceID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBrowseLoaded{
			Folders:   folders.Folders,
			Lists:     lists.Lists,
			FromCache: folders.FromCache || lists.FromCache,
		}
	}
}

func (m *Model) loadLists(folderID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListListsUseCase().Execute(context.Background(), usecase.ListListsInput{FolderID: folderID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgListsLoaded{Lists: out.Lists, FromCache: out.FromCache}
	}
}

func (m *Model) loadTasks(listID string) tea.Cmd {
	includeClosed := m.container.Config.UI.IncludeClosed
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
			ListID:        listID,
			IncludeClosed: includeClosed,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, FromCache: out.FromCache}
	}
}

func (m *Model) loadComments(taskID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoadCommentsUseCase().Execute(context.Background(), usecase.LoadCommentsInput{TaskID: taskID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgCommentsLoaded{TaskID: taskID, Comments: out.Comments, FromCache: out.FromCache}
	}
}

// submitSession dispatches the active compose session's draft to the
// service. The text passed in is the trimmed draft from BeginSubmit; the
// session keeps the raw draft in case the submit fails.
func (m *Model) submitSession(target comments.Target, text string) tea.Cmd {
	// Captured now so a late completion can be matched against the task
	// and session it was dispatched for.
	sess := m.session
	taskID := ""
	if m.task != nil {
		taskID = m.task.ID
	}
	return func() tea.Msg {
		ctx := context.Background()
		switch t := target.(type) {
		case comments.TargetNewTopLevel:
			out, err := m.container.CreateCommentUseCase().Execute(ctx, usecase.CreateCommentInput{TaskID: taskID, Text: text})
			if err != nil {
				return MsgCommentSaveFailed{Session: sess, Err: err}
			}
			return MsgCommentSaved{TaskID: taskID, Session: sess, Target: t, Comment: out.Comment}
		case comments.TargetReply:
			parentID := t.ParentID
			out, err := m.container.CreateCommentUseCase().Execute(ctx, usecase.CreateCommentInput{TaskID: taskID, Text: text, ParentID: &parentID})
			if err != nil {
				return MsgCommentSaveFailed{Session: sess, Err: err}
			}
			return MsgCommentSaved{TaskID: taskID, Session: sess, Target: t, Comment: out.Comment}
		case comments.TargetEdit:
			out, err := m.container.UpdateCommentUseCase().Execute(ctx, usecase.UpdateCommentInput{TaskID: taskID, CommentID: t.CommentID, Text: text})
			if err != nil {
				return MsgCommentSaveFailed{Session: sess, Err: err}
			}
			return MsgCommentSaved{TaskID: taskID, Session: sess, Target: t, Comment: out.Comment}
		default:
			return MsgCommentSaveFailed{Session: sess, Err: domain.ErrCommentNotFound}
		}
	}
}

// persistConfig writes the config back so the next session can restore
// the navigation position. A failed write is not surfaced.
func (m *Model) persistConfig() tea.Cmd {
	return func() tea.Msg {
		_ = m.container.SaveConfig()
		return nil
	}
}

func (m *Model) loadDocs(workspaceID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SearchDocsUseCase().Execute(context.Background(), usecase.SearchDocsInput{WorkspaceID: workspaceID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgDocsLoaded{Docs: out.Docs, FromCache: out.FromCache}
	}
}

func (m *Model) loadPages(workspaceID, docID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoadPagesUseCase().Execute(context.Background(), usecase.LoadPagesInput{WorkspaceID: workspaceID, DocID: docID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgPagesLoaded{Pages: out.Pages, FromCache: out.FromCache}
	}
}

// listLen returns the item count of the active list screen.
func (m *Model) listLen() int {
	switch m.screen {
	case ScreenWorkspaces:
		return len(m.workspaces)
	case ScreenSpaces:
		return len(m.spaces)
	case ScreenBrowse:
		return len(m.folders) + len(m.lists)
	case ScreenLists:
		return len(m.lists)
	case ScreenTasks:
		return len(m.tasks)
	case ScreenDocs:
		return len(m.docs)
	case ScreenPage:
		return len(m.pages)
	default:
		return 0
	}
}

// clampCursor keeps the list cursor inside the active list, or at 0 when
// the list is empty.
func (m *Model) clampCursor() {
	n := m.listLen()
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
