package tui

import (
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/tui/comments"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgError is sent when an async operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgLoggedIn is sent when a token was validated and stored. Token rides
// along so Update can build the service client on the UI goroutine.
type MsgLoggedIn struct {
	User  domain.User
	Token string
}

func (MsgLoggedIn) sealed() {}

// MsgUserLoaded identifies the authenticated user when the TUI starts
// from a stored token. User is nil when identification failed.
type MsgUserLoaded struct {
	User *domain.User
}

func (MsgUserLoaded) sealed() {}

// MsgWorkspacesLoaded is sent when the workspace list is loaded.
type MsgWorkspacesLoaded struct {
	Workspaces []domain.Workspace
	FromCache  bool
}

func (MsgWorkspacesLoaded) sealed() {}

// MsgSpacesLoaded is sent when a workspace's spaces are loaded.
type MsgSpacesLoaded struct {
	Spaces    []domain.Space
	FromCache bool
}

func (MsgSpacesLoaded) sealed() {}

// MsgBrowseLoaded is sent when a space's folders and folderless lists are
// loaded.
type MsgBrowseLoaded struct {
	Folders   []domain.Folder
	Lists     []domain.List
	FromCache bool
}

func (MsgBrowseLoaded) sealed() {}

// MsgListsLoaded is sent when a folder's lists are loaded.
type MsgListsLoaded struct {
	Lists     []domain.List
	FromCache bool
}

func (MsgListsLoaded) sealed() {}

// MsgTasksLoaded is sent when a list's tasks are loaded.
type MsgTasksLoaded struct {
	Tasks     []*domain.Task
	FromCache bool
}

func (MsgTasksLoaded) sealed() {}

// MsgCommentsLoaded is sent when a task's comments are loaded. TaskID
// guards against a stale result arriving after the user moved on.
type MsgCommentsLoaded struct {
	TaskID    string
	Comments  []domain.Comment
	FromCache bool
}

func (MsgCommentsLoaded) sealed() {}

// MsgCommentSaved is sent when a comment mutation succeeded. TaskID and
// Session identify the dispatch: a completion for another task is dropped,
// and one whose session was cancelled only touches the store, never the
// compose state the user has open now.
type MsgCommentSaved struct {
	TaskID  string
	Session *comments.Session
	Target  comments.Target
	Comment domain.Comment
}

func (MsgCommentSaved) sealed() {}

// MsgCommentSaveFailed is sent when a comment mutation failed. The
// originating session stays open with the draft intact; a failure for a
// cancelled session is dropped.
type MsgCommentSaveFailed struct {
	Session *comments.Session
	Err     error
}

func (MsgCommentSaveFailed) sealed() {}

// MsgDocsLoaded is sent when a workspace's documents are loaded.
type MsgDocsLoaded struct {
	Docs      []domain.Document
	FromCache bool
}

func (MsgDocsLoaded) sealed() {}

// MsgPagesLoaded is sent when a document's pages are loaded.
type MsgPagesLoaded struct {
	Pages     []domain.Page
	FromCache bool
}

func (MsgPagesLoaded) sealed() {}
