package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
	"github.com/taskdeck/taskdeck/internal/tui/comments"
)

func newTestModel(api *testutil.MockAPI) *Model {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := app.NewWithDeps(api, &testutil.MockTokenStore{Stored: "tok"}, testutil.NewMockCache(), &testutil.MockClock{}, logger)
	m := New(c)
	m.width = 120
	m.height = 40
	m.updateLayoutSizes()
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testComment(id string, parentID *string, createdAt int64) domain.Comment {
	ts := createdAt
	return domain.Comment{
		ID:        id,
		Text:      "text of " + id,
		ParentID:  parentID,
		CreatedAt: &ts,
		Commenter: &domain.User{ID: 1, Username: "maya"},
	}
}

func TestNew_StartsOnWorkspacesWhenAuthenticated(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	assert.Equal(t, ScreenWorkspaces, m.screen)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_WindowSizeTooSmall(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.True(t, m.tooSmall())
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestUpdate_OpenWorkspaceLoadsSpaces(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.Update(MsgWorkspacesLoaded{Workspaces: []domain.Workspace{{ID: "ws-1", Name: "Acme"}}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ScreenSpaces, m.screen)
	assert.Equal(t, "ws-1", m.workspaceID)
	assert.True(t, m.loading)
}

func TestUpdate_BackRestoresCursor(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.Update(MsgWorkspacesLoaded{Workspaces: []domain.Workspace{
		{ID: "ws-1", Name: "Acme"},
		{ID: "ws-2", Name: "Globex"},
	}})

	m.Update(keyRune('j'))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ScreenSpaces, m.screen)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScreenWorkspaces, m.screen)
	assert.Equal(t, 1, m.cursor)
}

func TestUpdate_StaleCommentsDropped(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail

	m.Update(MsgCommentsLoaded{TaskID: "task-2", Comments: []domain.Comment{testComment("c1", nil, 100)}})
	assert.Equal(t, 0, m.store.Len())

	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{testComment("c1", nil, 100)}})
	assert.Equal(t, 1, m.store.Len())
}

func TestUpdate_CommentSavedReplyStaysInThread(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	parentID := "c1"
	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{
		testComment("c1", nil, 100),
		testComment("r1", &parentID, 200),
	}})
	m.panel.Reset()
	require.NoError(t, m.panel.EnterThread())

	m.session = comments.NewReply(parentID, "maya")
	m.mode = ModeCompose

	m.Update(MsgCommentSaved{
		TaskID:  "task-1",
		Session: m.session,
		Target:  comments.TargetReply{ParentID: parentID, ParentAuthor: "maya"},
		Comment: testComment("r2", &parentID, 300),
	})

	assert.Equal(t, comments.ModeInThread, m.panel.Mode())
	assert.Equal(t, ModeNormal, m.mode)
	assert.Nil(t, m.session)
	selected, ok := m.panel.SelectedComment()
	require.True(t, ok)
	assert.Equal(t, "r2", selected.ID)
}

func TestUpdate_CommentSavedTopLevelLeavesThread(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{
		testComment("c1", nil, 100),
	}})
	m.panel.Reset()
	require.NoError(t, m.panel.EnterThread())
	m.session = comments.NewCompose()
	m.mode = ModeCompose

	m.Update(MsgCommentSaved{
		TaskID:  "task-1",
		Session: m.session,
		Target:  comments.TargetNewTopLevel{},
		Comment: testComment("c2", nil, 300),
	})

	assert.Equal(t, comments.ModeTopLevel, m.panel.Mode())
	selected, ok := m.panel.SelectedComment()
	require.True(t, ok)
	assert.Equal(t, "c2", selected.ID)
}

func TestUpdate_CommentSaveFailedKeepsDraft(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	m.mode = ModeCompose
	m.session = comments.NewCompose()
	m.session.SetDraft("  my careful words  ")
	_, err := m.session.BeginSubmit()
	require.NoError(t, err)

	m.Update(MsgCommentSaveFailed{Session: m.session, Err: assert.AnError})

	require.NotNil(t, m.session)
	assert.Equal(t, ModeCompose, m.mode)
	assert.Equal(t, "  my careful words  ", m.session.Draft())
	assert.False(t, m.session.Saving())
	assert.Equal(t, assert.AnError, m.err)
}

func TestUpdate_LateSaveAfterCancelKeepsNewDraft(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail

	// A submit goes out, then the user cancels the form.
	old := comments.NewCompose()
	old.SetDraft("first attempt")
	_, err := old.BeginSubmit()
	require.NoError(t, err)
	m.session = old
	m.mode = ModeCompose
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, m.session)

	// A fresh draft is open when the old submit completes.
	m.Update(keyRune('c'))
	require.Equal(t, ModeCompose, m.mode)
	m.composeInput.SetValue("second draft")
	m.session.SetDraft("second draft")

	m.Update(MsgCommentSaved{
		TaskID:  "task-1",
		Session: old,
		Target:  comments.TargetNewTopLevel{},
		Comment: testComment("c9", nil, 400),
	})

	require.NotNil(t, m.session)
	assert.Equal(t, ModeCompose, m.mode)
	assert.Equal(t, "second draft", m.composeInput.Value())
	assert.Equal(t, "second draft", m.session.Draft())
	// The completed comment still lands in the store by id.
	assert.Equal(t, 1, m.store.Len())
}

func TestUpdate_LateSaveFailureAfterCancelDropped(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail

	old := comments.NewCompose()
	old.SetDraft("first attempt")
	_, err := old.BeginSubmit()
	require.NoError(t, err)
	m.session = old
	m.mode = ModeCompose
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m.Update(keyRune('c'))
	require.NotNil(t, m.session)
	m.session.SetDraft("second draft")

	m.Update(MsgCommentSaveFailed{Session: old, Err: assert.AnError})

	assert.Nil(t, m.err)
	assert.Equal(t, ModeCompose, m.mode)
	assert.Equal(t, "second draft", m.session.Draft())
}

func TestUpdate_SavingComposeKeepsNavigationLive(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{
		testComment("c1", nil, 100),
		testComment("c2", nil, 200),
	}})
	m.panel.Reset()

	m.session = comments.NewCompose()
	m.session.SetDraft("posting this")
	_, err := m.session.BeginSubmit()
	require.NoError(t, err)
	m.mode = ModeCompose

	before := m.panel.Selected()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, before+1, m.panel.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusDescription, m.focus)

	// The form stays open with its draft frozen.
	assert.Equal(t, ModeCompose, m.mode)
	assert.Equal(t, "posting this", m.session.Draft())
}

func TestUpdate_SaveForOtherTaskDropped(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-2"}
	m.screen = ScreenTaskDetail

	m.Update(MsgCommentSaved{
		TaskID:  "task-1",
		Session: comments.NewCompose(),
		Target:  comments.TargetNewTopLevel{},
		Comment: testComment("c1", nil, 100),
	})

	assert.Equal(t, 0, m.store.Len())
}

func TestUpdate_ComposeEmptySubmitRejected(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	m.Update(keyRune('c'))
	require.Equal(t, ModeCompose, m.mode)

	m.composeInput.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.err, domain.ErrEmptyComment)
	assert.Equal(t, ModeCompose, m.mode)
}

func TestUpdate_ReplyTargetsThreadParent(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	parentID := "c1"
	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{
		testComment("c1", nil, 100),
		testComment("r1", &parentID, 200),
	}})
	m.panel.Reset()
	require.NoError(t, m.panel.EnterThread())
	m.panel.MoveDown() // Selection on the reply, not the parent

	m.Update(keyRune('r'))
	require.NotNil(t, m.session)
	target, ok := m.session.Target().(comments.TargetReply)
	require.True(t, ok)
	assert.Equal(t, "c1", target.ParentID)
}

func TestUpdate_ReplyFromTopLevelShowsHint(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{
		testComment("c1", nil, 100),
	}})
	m.panel.Reset()

	m.Update(keyRune('r'))
	assert.Nil(t, m.session)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Contains(t, m.statusMsg, "open the thread")
}

func TestUpdate_EditPrefillsDraft(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.Update(MsgUserLoaded{User: &domain.User{ID: 1, Username: "maya"}})
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{
		testComment("c1", nil, 100),
	}})
	m.panel.Reset()

	m.Update(keyRune('e'))
	require.NotNil(t, m.session)
	assert.Equal(t, "text of c1", m.session.Draft())
	assert.Equal(t, "text of c1", m.composeInput.Value())
}

func TestUpdate_EditOthersCommentBlocked(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.Update(MsgUserLoaded{User: &domain.User{ID: 99, Username: "sam"}})
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{
		testComment("c1", nil, 100), // Authored by user 1
	}})
	m.panel.Reset()

	m.Update(keyRune('e'))
	assert.Nil(t, m.session)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Contains(t, m.statusMsg, "your own comments")
}

func TestUpdate_EscInThreadExitsThreadNotScreen(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail
	parentID := "c1"
	m.Update(MsgCommentsLoaded{TaskID: "task-1", Comments: []domain.Comment{
		testComment("c1", nil, 100),
		testComment("r1", &parentID, 200),
	}})
	m.panel.Reset()
	require.NoError(t, m.panel.EnterThread())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScreenTaskDetail, m.screen)
	assert.Equal(t, comments.ModeTopLevel, m.panel.Mode())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScreenTasks, m.screen)
}

func TestUpdate_TabTogglesFocus(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.task = &domain.Task{ID: "task-1"}
	m.screen = ScreenTaskDetail

	assert.Equal(t, FocusComments, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusDescription, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusComments, m.focus)
}

func TestUpdate_BrowseCursorSpansFoldersAndLists(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.screen = ScreenBrowse
	m.spaceID = "space-1"
	m.Update(MsgBrowseLoaded{
		Folders: []domain.Folder{{ID: "folder-1", Name: "Sprint"}},
		Lists:   []domain.List{{ID: "list-9", Name: "Inbox"}},
	})

	m.Update(keyRune('j'))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ScreenTasks, m.screen)
	assert.Equal(t, "list-9", m.listID)
	assert.Empty(t, m.folderID)
}
