// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"encoding/json"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTokenStore is a test double for domain.TokenStore.
type MockTokenStore struct {
	SaveErr error
	Stored  string
}

// Token returns the stored token.
func (m *MockTokenStore) Token() (string, error) {
	if m.Stored == "" {
		return "", domain.ErrTokenNotFound
	}
	return m.Stored, nil
}

// Save stores a token.
func (m *MockTokenStore) Save(token string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = token
	return nil
}

// Clear removes the stored token.
func (m *MockTokenStore) Clear() error {
	m.Stored = ""
	return nil
}

// MockCache is a test double for domain.Cache backed by encoded entries.
type MockCache struct {
	Entries map[string]any
	PutErr  error
}

// NewMockCache creates a MockCache with an initialized map.
func NewMockCache() *MockCache {
	return &MockCache{Entries: make(map[string]any)}
}

// Get loads the cached value for key into v.
func (m *MockCache) Get(key string, v any) error {
	stored, ok := m.Entries[key]
	if !ok {
		return domain.ErrCacheMiss
	}
	return copyValue(stored, v)
}

// Put stores v under key.
func (m *MockCache) Put(key string, v any) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Entries[key] = v
	return nil
}

// Clear removes all cached values.
func (m *MockCache) Clear() error {
	m.Entries = make(map[string]any)
	return nil
}

// MockAPI is a test double for domain.API. Results and errors are set per
// call; unset calls return empty results.
// Fields are ordered to minimize memory padding.
type MockAPI struct {
	UserResult *domain.User
	UserErr    error

	WorkspacesResult []domain.Workspace
	WorkspacesErr    error

	SpacesResult []domain.Space
	SpacesErr    error

	FoldersResult []domain.Folder
	FoldersErr    error

	ListsResult      []domain.List
	ListsErr         error
	FolderlessResult []domain.List
	FolderlessErr    error

	TasksResult []*domain.Task
	TasksErr    error
	TaskResult  *domain.Task
	TaskErr     error

	// Comments maps a task id to its top-level comments, Replies a
	// comment id to its replies.
	Comments    map[string][]domain.Comment
	Replies     map[string][]domain.Comment
	CommentsErr error
	RepliesErr  error

	CreateResult *domain.Comment
	CreateErr    error
	ReplyResult  *domain.Comment
	ReplyErr     error
	UpdateResult *domain.Comment
	UpdateErr    error

	DocsResult  []domain.Document
	DocsErr     error
	PagesResult []domain.Page
	PagesErr    error

	// Recorded calls.
	CreatedOnTask   []string
	RepliedToParent []string
	UpdatedComment  []string
	SentText        []string
}

// NewMockAPI creates a MockAPI with initialized maps.
func NewMockAPI() *MockAPI {
	return &MockAPI{
		Comments: make(map[string][]domain.Comment),
		Replies:  make(map[string][]domain.Comment),
	}
}

// AuthorizedUser returns the configured user.
func (m *MockAPI) AuthorizedUser(_ context.Context) (*domain.User, error) {
	if m.UserErr != nil {
		return nil, m.UserErr
	}
	if m.UserResult == nil {
		return &domain.User{ID: 1, Username: "tester"}, nil
	}
	return m.UserResult, nil
}

// Workspaces returns the configured workspaces.
func (m *MockAPI) Workspaces(_ context.Context) ([]domain.Workspace, error) {
	return m.WorkspacesResult, m.WorkspacesErr
}

// Spaces returns the configured spaces.
func (m *MockAPI) Spaces(_ context.Context, _ string) ([]domain.Space, error) {
	return m.SpacesResult, m.SpacesErr
}

// Folders returns the configured folders.
func (m *MockAPI) Folders(_ context.Context, _ string) ([]domain.Folder, error) {
	return m.FoldersResult, m.FoldersErr
}

// Lists returns the configured lists.
func (m *MockAPI) Lists(_ context.Context, _ string) ([]domain.List, error) {
	return m.ListsResult, m.ListsErr
}

// FolderlessLists returns the configured folderless lists.
func (m *MockAPI) FolderlessLists(_ context.Context, _ string) ([]domain.List, error) {
	return m.FolderlessResult, m.FolderlessErr
}

// Tasks returns the configured tasks.
func (m *MockAPI) Tasks(_ context.Context, _ string, _ domain.TaskFilter) ([]*domain.Task, error) {
	return m.TasksResult, m.TasksErr
}

// Task returns the configured task.
func (m *MockAPI) Task(_ context.Context, _ string) (*domain.Task, error) {
	return m.TaskResult, m.TaskErr
}

// TaskComments returns the comments configured for the task.
func (m *MockAPI) TaskComments(_ context.Context, taskID string) ([]domain.Comment, error) {
	if m.CommentsErr != nil {
		return nil, m.CommentsErr
	}
	return m.Comments[taskID], nil
}

// CommentReplies returns the replies configured for the comment.
func (m *MockAPI) CommentReplies(_ context.Context, commentID string) ([]domain.Comment, error) {
	if m.RepliesErr != nil {
		return nil, m.RepliesErr
	}
	return m.Replies[commentID], nil
}

// CreateComment records the call and returns the configured comment.
func (m *MockAPI) CreateComment(_ context.Context, taskID, text string) (*domain.Comment, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.CreatedOnTask = append(m.CreatedOnTask, taskID)
	m.SentText = append(m.SentText, text)
	if m.CreateResult != nil {
		return m.CreateResult, nil
	}
	return &domain.Comment{ID: "created", Text: text}, nil
}

// CreateReply records the call and returns the configured comment.
func (m *MockAPI) CreateReply(_ context.Context, parentID, text string) (*domain.Comment, error) {
	if m.ReplyErr != nil {
		return nil, m.ReplyErr
	}
	m.RepliedToParent = append(m.RepliedToParent, parentID)
	m.SentText = append(m.SentText, text)
	if m.ReplyResult != nil {
		return m.ReplyResult, nil
	}
	pid := parentID
	return &domain.Comment{ID: "replied", Text: text, ParentID: &pid}, nil
}

// UpdateComment records the call and returns the configured comment.
func (m *MockAPI) UpdateComment(_ context.Context, commentID, text string) (*domain.Comment, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	m.UpdatedComment = append(m.UpdatedComment, commentID)
	m.SentText = append(m.SentText, text)
	if m.UpdateResult != nil {
		return m.UpdateResult, nil
	}
	return &domain.Comment{ID: commentID, Text: text}, nil
}

// SearchDocs returns the configured documents.
func (m *MockAPI) SearchDocs(_ context.Context, _ string) ([]domain.Document, error) {
	return m.DocsResult, m.DocsErr
}

// DocPages returns the configured pages.
func (m *MockAPI) DocPages(_ context.Context, _, _ string) ([]domain.Page, error) {
	return m.PagesResult, m.PagesErr
}

// copyValue copies src into dst through a JSON round trip, matching how
// the real cache stores values.
func copyValue(src, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
