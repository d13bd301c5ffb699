package domain

import (
	"context"
	"time"
)

// API is the remote task service. All calls honor ctx cancellation.
type API interface {
	// AuthorizedUser returns the user the token belongs to.
	AuthorizedUser(ctx context.Context) (*User, error)

	// Workspaces returns the workspaces visible to the token.
	Workspaces(ctx context.Context) ([]Workspace, error)

	// Spaces returns the spaces of a workspace.
	Spaces(ctx context.Context, workspaceID string) ([]Space, error)

	// Folders returns the folders of a space.
	Folders(ctx context.Context, spaceID string) ([]Folder, error)

	// Lists returns the lists of a folder.
	Lists(ctx context.Context, folderID string) ([]List, error)

	// FolderlessLists returns the lists that sit directly in a space.
	FolderlessLists(ctx context.Context, spaceID string) ([]List, error)

	// Tasks returns the tasks of a list.
	Tasks(ctx context.Context, listID string, filter TaskFilter) ([]*Task, error)

	// Task returns a single task by ID.
	Task(ctx context.Context, taskID string) (*Task, error)

	// TaskComments returns the top-level comments of a task.
	// Replies are fetched separately per parent.
	TaskComments(ctx context.Context, taskID string) ([]Comment, error)

	// CommentReplies returns the replies of a top-level comment.
	CommentReplies(ctx context.Context, commentID string) ([]Comment, error)

	// CreateComment posts a new top-level comment on a task.
	CreateComment(ctx context.Context, taskID, text string) (*Comment, error)

	// CreateReply posts a reply under a top-level comment.
	CreateReply(ctx context.Context, parentID, text string) (*Comment, error)

	// UpdateComment replaces the text of an existing comment.
	UpdateComment(ctx context.Context, commentID, text string) (*Comment, error)

	// SearchDocs returns the documents of a workspace.
	SearchDocs(ctx context.Context, workspaceID string) ([]Document, error)

	// DocPages returns the pages of a document with content.
	DocPages(ctx context.Context, workspaceID, docID string) ([]Page, error)
}

// TaskFilter narrows a task listing.
// Fields are ordered to minimize memory padding.
type TaskFilter struct {
	Statuses        []string // Only these statuses; empty = all
	IncludeClosed   bool
	IncludeSubtasks bool
}

// TokenStore persists the API token between runs.
type TokenStore interface {
	// Token returns the stored token. Returns ErrTokenNotFound
	// when none is stored.
	Token() (string, error)

	// Save stores a token, replacing any previous one.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is not
	// an error.
	Clear() error
}

// Cache persists fetched entities for offline fallback.
type Cache interface {
	// Get loads the cached value for key into v. Returns ErrCacheMiss
	// when the key is absent.
	Get(key string, v any) error

	// Put stores v under key, replacing any previous value.
	Put(key string, v any) error

	// Clear removes all cached values.
	Clear() error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
