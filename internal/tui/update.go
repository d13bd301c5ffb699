package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/tui/comments"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		if m.screen == ScreenTaskDetail {
			m.buildDescLines()
		}
		if m.screen == ScreenPage {
			m.buildPageLines()
		}
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case MsgLoggedIn:
		m.container.SetAPI(m.container.NewAPI(msg.Token))
		user := msg.User
		m.user = &user
		m.statusMsg = "Logged in as " + msg.User.Username
		m.tokenInput.Reset()
		m.screen = ScreenWorkspaces
		m.mode = ModeNormal
		m.loading = true
		return m, m.loadWorkspaces()

	case MsgUserLoaded:
		m.user = msg.User
		return m, nil

	case MsgWorkspacesLoaded:
		m.workspaces = msg.Workspaces
		m.afterListLoad(msg.FromCache)
		// Start on the workspace from the previous session.
		if last := m.container.Config.UI.LastWorkspaceID; last != "" {
			m.restoreCursor(func(i int) bool { return m.workspaces[i].ID == last }, len(m.workspaces))
			m.listScroll.EnsureVisible(m.cursor, m.listLen())
		}
		return m, nil

	case MsgSpacesLoaded:
		m.spaces = msg.Spaces
		m.afterListLoad(msg.FromCache)
		if last := m.container.Config.UI.LastSpaceID; last != "" {
			m.restoreCursor(func(i int) bool { return m.spaces[i].ID == last }, len(m.spaces))
			m.listScroll.EnsureVisible(m.cursor, m.listLen())
		}
		return m, nil

	case MsgBrowseLoaded:
		m.folders = msg.Folders
		m.lists = msg.Lists
		m.afterListLoad(msg.FromCache)
		return m, nil

	case MsgListsLoaded:
		m.lists = msg.Lists
		m.afterListLoad(msg.FromCache)
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.afterListLoad(msg.FromCache)
		return m, nil

	case MsgCommentsLoaded:
		// A stale result for a task the user already left is dropped.
		if m.task == nil || m.task.ID != msg.TaskID {
			return m, nil
		}
		m.loading = false
		m.fromCache = msg.FromCache
		m.store.Load(msg.Comments)
		if err := m.panel.Revalidate(); err != nil {
			m.statusMsg = "thread parent is gone, back to all comments"
		}
		m.comScroll.EnsureVisible(max(m.panel.Selected(), 0), len(m.panel.Visible()))
		return m, nil

	case MsgCommentSaved:
		return m.handleCommentSaved(msg)

	case MsgCommentSaveFailed:
		// Only the session that dispatched the submit keeps the failure;
		// it holds the draft so nothing the user typed is lost. A failure
		// for a cancelled session must not touch whatever is open now.
		if m.session != nil && m.session == msg.Session {
			m.session.FailSubmit()
			m.err = msg.Err
		}
		return m, nil

	case MsgDocsLoaded:
		m.docs = msg.Docs
		m.afterListLoad(msg.FromCache)
		return m, nil

	case MsgPagesLoaded:
		m.pages = msg.Pages
		m.loading = false
		m.fromCache = msg.FromCache
		m.listScroll.Reset()
		m.buildPageLines()
		return m, nil
	}

	return m, nil
}

// afterListLoad finishes a list screen load: clears the spinner, records
// cache provenance, and keeps cursor and scroll inside the new list.
func (m *Model) afterListLoad(fromCache bool) {
	m.loading = false
	m.fromCache = fromCache
	m.clampCursor()
	m.listScroll.EnsureVisible(m.cursor, m.listLen())
}

// handleCommentSaved applies a successful comment mutation to the local
// store and closes the compose form. A completion for a task the user
// already left is dropped; one whose session was cancelled still lands in
// the store by id, but leaves the compose state and view mode alone.
func (m *Model) handleCommentSaved(msg MsgCommentSaved) (tea.Model, tea.Cmd) {
	if m.task == nil || m.task.ID != msg.TaskID {
		return m, nil
	}
	current := m.session != nil && m.session == msg.Session
	if current {
		m.session = nil
		m.mode = ModeNormal
		m.composeInput.Reset()
		m.composeInput.Blur()
		m.err = nil
	}

	switch msg.Target.(type) {
	case comments.TargetNewTopLevel:
		m.store.Insert(msg.Comment)
		if current {
			// A new top-level comment posted from inside a thread lands
			// in the top-level view, so return there and select it.
			m.panel.ExitThread()
			m.panel.Select(msg.Comment.ID)
			m.statusMsg = "comment posted"
		}
	case comments.TargetReply:
		m.store.Insert(msg.Comment)
		m.panel.Revalidate()
		if current {
			m.panel.Select(msg.Comment.ID)
			m.statusMsg = "reply posted"
		}
	case comments.TargetEdit:
		if err := m.store.Replace(msg.Comment); err != nil {
			if current {
				m.err = err
			}
			return m, nil
		}
		m.panel.Revalidate()
		if current {
			m.statusMsg = "comment updated"
		}
	}
	m.comScroll.EnsureVisible(max(m.panel.Selected(), 0), len(m.panel.Visible()))
	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key press clears a stale error or status line.
	if m.err != nil {
		m.err = nil
	}
	m.statusMsg = ""

	switch m.mode {
	case ModeCompose:
		return m.handleComposeMode(msg)
	case ModeToken:
		return m.handleTokenMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleConfirmMode handles the quit confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "ctrl+c":
		return m, tea.Quit
	default:
		m.mode = ModeNormal
		return m, nil
	}
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.mode = ModeConfirm
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshScreen()

	case key.Matches(msg, m.keys.CopyURL):
		m.copyURL()
		return m, nil

	case key.Matches(msg, m.keys.Docs):
		if m.workspaceID != "" && m.screen != ScreenDocs && m.screen != ScreenPage {
			m.docsReturn = m.screen
			m.screen = ScreenDocs
			m.cursor = 0
			m.listScroll.Reset()
			m.loading = true
			return m, m.loadDocs(m.workspaceID)
		}
		return m, nil
	}

	if m.screen == ScreenTaskDetail {
		return m.handleDetailKeys(msg)
	}
	if m.screen == ScreenPage {
		return m.handlePageKeys(msg)
	}
	return m.handleListKeys(msg)
}

// handleListKeys drives the cursor on the active list screen.
func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.listScroll.EnsureVisible(m.cursor, m.listLen())
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		m.listScroll.EnsureVisible(m.cursor, m.listLen())
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.openSelected()

	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	}
	return m, nil
}

// openSelected descends into the item under the cursor.
func (m *Model) openSelected() (tea.Model, tea.Cmd) {
	if m.listLen() == 0 {
		return m, nil
	}
	switch m.screen {
	case ScreenWorkspaces:
		m.workspaceID = m.workspaces[m.cursor].ID
		m.container.Config.UI.LastWorkspaceID = m.workspaceID
		return m.enterList(ScreenSpaces, tea.Batch(m.loadSpaces(m.workspaceID), m.persistConfig()))

	case ScreenSpaces:
		m.spaceID = m.spaces[m.cursor].ID
		m.container.Config.UI.LastSpaceID = m.spaceID
		return m.enterList(ScreenBrowse, tea.Batch(m.loadBrowse(m.spaceID), m.persistConfig()))

	case ScreenBrowse:
		if m.cursor < len(m.folders) {
			m.folderID = m.folders[m.cursor].ID
			return m.enterList(ScreenLists, m.loadLists(m.folderID))
		}
		m.folderID = ""
		m.listID = m.lists[m.cursor-len(m.folders)].ID
		return m.enterList(ScreenTasks, m.loadTasks(m.listID))

	case ScreenLists:
		m.listID = m.lists[m.cursor].ID
		return m.enterList(ScreenTasks, m.loadTasks(m.listID))

	case ScreenTasks:
		return m.openTask(m.tasks[m.cursor])

	case ScreenDocs:
		m.docID = m.docs[m.cursor].ID
		m.screen = ScreenPage
		m.listScroll.Reset()
		m.loading = true
		return m, m.loadPages(m.workspaceID, m.docID)
	}
	return m, nil
}

// enterList switches to a child list screen and starts its load.
func (m *Model) enterList(screen Screen, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.screen = screen
	m.cursor = 0
	m.listScroll.Reset()
	m.loading = true
	return m, cmd
}

// openTask opens the task detail view and starts the comment load.
func (m *Model) openTask(task *domain.Task) (tea.Model, tea.Cmd) {
	m.task = task
	m.screen = ScreenTaskDetail
	m.focus = FocusComments
	m.store.Load(nil)
	m.panel.Reset()
	m.descScroll.Reset()
	m.comScroll.Reset()
	m.buildDescLines()
	m.loading = true
	return m, m.loadComments(task.ID)
}

// goBack returns to the parent screen, restoring the cursor onto the item
// that was descended into.
func (m *Model) goBack() (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenSpaces:
		m.screen = ScreenWorkspaces
		m.restoreCursor(func(i int) bool { return m.workspaces[i].ID == m.workspaceID }, len(m.workspaces))
	case ScreenBrowse:
		m.screen = ScreenSpaces
		m.restoreCursor(func(i int) bool { return m.spaces[i].ID == m.spaceID }, len(m.spaces))
	case ScreenLists:
		m.screen = ScreenBrowse
		m.restoreCursor(func(i int) bool {
			return i < len(m.folders) && m.folders[i].ID == m.folderID
		}, len(m.folders)+len(m.lists))
	case ScreenTasks:
		if m.folderID != "" {
			m.screen = ScreenLists
			m.restoreCursor(func(i int) bool { return m.lists[i].ID == m.listID }, len(m.lists))
		} else {
			m.screen = ScreenBrowse
			m.restoreCursor(func(i int) bool {
				return i >= len(m.folders) && m.lists[i-len(m.folders)].ID == m.listID
			}, len(m.folders)+len(m.lists))
		}
	case ScreenTaskDetail:
		m.task = nil
		m.screen = ScreenTasks
		m.clampCursor()
	case ScreenDocs:
		m.screen = m.docsReturn
		m.cursor = 0
		m.clampCursor()
	case ScreenPage:
		m.screen = ScreenDocs
		m.restoreCursor(func(i int) bool { return m.docs[i].ID == m.docID }, len(m.docs))
	}
	m.listScroll.Reset()
	m.listScroll.EnsureVisible(m.cursor, m.listLen())
	return m, nil
}

// restoreCursor points the cursor at the first index matching the
// predicate, or leaves it clamped when nothing matches.
func (m *Model) restoreCursor(match func(i int) bool, n int) {
	for i := 0; i < n; i++ {
		if match(i) {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

// handleDetailKeys drives the task detail view: panel focus, comment
// selection, thread navigation, and the compose entry points.
func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchPanel):
		if m.focus == FocusComments {
			m.focus = FocusDescription
		} else {
			m.focus = FocusComments
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.focus == FocusDescription {
			m.descScroll.Offset--
			m.descScroll.Clamp(len(m.descLines))
			return m, nil
		}
		m.panel.MoveUp()
		m.comScroll.EnsureVisible(max(m.panel.Selected(), 0), len(m.panel.Visible()))
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.focus == FocusDescription {
			m.descScroll.Offset++
			m.descScroll.Clamp(len(m.descLines))
			return m, nil
		}
		m.panel.MoveDown()
		m.comScroll.EnsureVisible(max(m.panel.Selected(), 0), len(m.panel.Visible()))
		return m, nil

	case key.Matches(msg, m.keys.Thread):
		if m.focus != FocusComments {
			return m, nil
		}
		if err := m.panel.EnterThread(); err != nil {
			return m, nil
		}
		m.comScroll.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.focus == FocusComments && m.panel.Mode() == comments.ModeInThread {
			m.panel.ExitThread()
			m.comScroll.EnsureVisible(max(m.panel.Selected(), 0), len(m.panel.Visible()))
			return m, nil
		}
		return m.goBack()

	case key.Matches(msg, m.keys.NewComment):
		m.session = comments.NewCompose()
		return m.openCompose("")

	case key.Matches(msg, m.keys.Reply):
		if m.focus != FocusComments {
			return m, nil
		}
		// Replies are written from inside a thread and target its parent.
		if m.panel.Mode() != comments.ModeInThread {
			m.statusMsg = "press o to open the thread, then r to reply"
			return m, nil
		}
		id, author := m.panel.ThreadParent()
		m.session = comments.NewReply(id, author)
		return m.openCompose("")

	case key.Matches(msg, m.keys.Edit):
		if m.focus != FocusComments {
			return m, nil
		}
		c, ok := m.panel.SelectedComment()
		if !ok {
			return m, nil
		}
		if !m.ownComment(c) {
			m.statusMsg = "only your own comments can be edited"
			return m, nil
		}
		m.session = comments.NewEdit(c.ID, c.Text)
		return m.openCompose(c.Text)
	}
	return m, nil
}

// ownComment reports whether the comment was written by the logged-in
// user.
func (m *Model) ownComment(c *domain.Comment) bool {
	return m.user != nil && c != nil && c.Commenter != nil && c.Commenter.ID == m.user.ID
}

// openCompose opens the compose form with the given prefill.
func (m *Model) openCompose(prefill string) (tea.Model, tea.Cmd) {
	m.mode = ModeCompose
	m.composeInput.SetValue(prefill)
	m.composeInput.CursorEnd()
	return m, m.composeInput.Focus()
}

// handlePageKeys scrolls the rendered document pages.
func (m *Model) handlePageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.listScroll.Offset--
		m.listScroll.Clamp(len(m.pageLines))
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.listScroll.Offset++
		m.listScroll.Clamp(len(m.pageLines))
		return m, nil
	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	}
	return m, nil
}

// handleComposeMode routes keys into the compose form. Submit hands the
// draft to the session, which owns the empty-check and the in-flight gate.
func (m *Model) handleComposeMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		m.mode = ModeNormal
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.session.SetDraft(m.composeInput.Value())
		text, err := m.session.BeginSubmit()
		if err != nil {
			// ErrEmptyComment or ErrSubmitInFlight; the form stays open.
			m.err = err
			return m, nil
		}
		return m, m.submitSession(m.session.Target(), text)

	case key.Matches(msg, m.keys.Back):
		// Esc discards the draft even while a submit is in flight; the
		// late completion still applies to the store by comment id.
		m.session = nil
		m.mode = ModeNormal
		m.composeInput.Reset()
		m.composeInput.Blur()
		return m, nil
	}

	if m.session.Saving() {
		// The call runs off the loop; panel focus and comment navigation
		// stay live while it is outstanding, only text entry is frozen.
		switch {
		case key.Matches(msg, m.keys.SwitchPanel),
			key.Matches(msg, m.keys.Up),
			key.Matches(msg, m.keys.Down):
			return m.handleDetailKeys(msg)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.composeInput, cmd = m.composeInput.Update(msg)
	m.session.SetDraft(m.composeInput.Value())
	return m, cmd
}

// handleTokenMode routes keys into the token input on the auth screen.
func (m *Model) handleTokenMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		tok := m.tokenInput.Value()
		m.loading = true
		return m, m.login(tok)
	}
	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	default:
		m.mode = ModeNormal
		return m, nil
	}
}

// refreshScreen reloads the data behind the active screen.
func (m *Model) refreshScreen() tea.Cmd {
	m.loading = true
	switch m.screen {
	case ScreenWorkspaces:
		return m.loadWorkspaces()
	case ScreenSpaces:
		return m.loadSpaces(m.workspaceID)
	case ScreenBrowse:
		return m.loadBrowse(m.spaceID)
	case ScreenLists:
		return m.loadLists(m.folderID)
	case ScreenTasks:
		return m.loadTasks(m.listID)
	case ScreenTaskDetail:
		if m.task != nil {
			return m.loadComments(m.task.ID)
		}
	case ScreenDocs:
		return m.loadDocs(m.workspaceID)
	case ScreenPage:
		return m.loadPages(m.workspaceID, m.docID)
	}
	m.loading = false
	return nil
}
