package api

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Mock is an in-memory domain.API backed by a seeded demo workspace. It
// powers the --mock flag so the UI can be exercised without a token.
// Safe for concurrent use; dispatched mutations run off the UI loop.
type Mock struct {
	mu       sync.Mutex
	user     domain.User
	comments map[string][]domain.Comment // taskID -> comments (replies included)
	tasks    map[string][]*domain.Task   // listID -> tasks
	byID     map[string]*domain.Task
	now      int64
}

var _ domain.API = (*Mock)(nil)

// NewMock returns a mock pre-seeded with a small demo hierarchy.
func NewMock() *Mock {
	m := &Mock{
		user:     domain.User{ID: 1, Username: "demo"},
		comments: make(map[string][]domain.Comment),
		tasks:    make(map[string][]*domain.Task),
		byID:     make(map[string]*domain.Task),
		now:      1700000000000,
	}
	m.seed()
	return m
}

func (m *Mock) seed() {
	status := func(s, color string) *domain.TaskStatus {
		return &domain.TaskStatus{Status: s, Color: color}
	}
	tasks := []*domain.Task{
		{
			ID: "task-1", Name: "Fix login redirect loop",
			Status:      status("in progress", "#4194f6"),
			Priority:    &domain.TaskPriority{Priority: "high", Color: "#f50000"},
			Description: &domain.Description{Markdown: "# Login redirect\n\nThe OAuth callback bounces between `/login` and `/home` when the session cookie is stale.\n\n- reproduce with an expired cookie\n- check the redirect allowlist"},
			DueDate:     m.millis(86400000),
		},
		{
			ID: "task-2", Name: "Write release notes",
			Status:      status("to do", "#d3d3d3"),
			Description: &domain.Description{Text: "Collect the changelog entries since v0.1."},
		},
		{
			ID: "task-3", Name: "Upgrade CI runners",
			Status: status("done", "#6bc950"),
		},
	}
	for _, t := range tasks {
		m.tasks["list-1"] = append(m.tasks["list-1"], t)
		m.byID[t.ID] = t
	}

	alice := &domain.User{ID: 2, Username: "alice"}
	bot := &domain.User{ID: 3, Username: "ci-bot"}
	parent := domain.Comment{
		ID: "comment-1", Text: "I can reproduce this on staging.",
		Commenter: alice, CreatedAt: m.millis(-3600000),
	}
	m.comments["task-1"] = []domain.Comment{
		parent,
		{
			ID: "comment-2", Text: "Same here, only with expired cookies though.",
			Commenter: &m.user, CreatedAt: m.millis(-1800000),
			ParentID: &parent.ID,
		},
		{
			ID: "comment-3", Text: "Build 4821 failed on this branch.",
			Commenter: bot, CreatedAt: m.millis(-600000),
		},
	}
}

func (m *Mock) millis(offset int64) *int64 {
	v := m.now + offset
	return &v
}

// AuthorizedUser returns the demo user.
func (m *Mock) AuthorizedUser(ctx context.Context) (*domain.User, error) {
	u := m.user
	return &u, nil
}

// Workspaces returns the demo workspace.
func (m *Mock) Workspaces(ctx context.Context) ([]domain.Workspace, error) {
	return []domain.Workspace{{ID: "ws-1", Name: "Demo Workspace", MemberCount: 3}}, nil
}

// Spaces returns the demo space.
func (m *Mock) Spaces(ctx context.Context, workspaceID string) ([]domain.Space, error) {
	return []domain.Space{{ID: "space-1", Name: "Engineering"}}, nil
}

// Folders returns the demo folder.
func (m *Mock) Folders(ctx context.Context, spaceID string) ([]domain.Folder, error) {
	return []domain.Folder{{ID: "folder-1", Name: "Backend"}}, nil
}

// Lists returns the demo list.
func (m *Mock) Lists(ctx context.Context, folderID string) ([]domain.List, error) {
	return []domain.List{{ID: "list-1", Name: "Sprint 12"}}, nil
}

// FolderlessLists returns nothing; the demo keeps its list in a folder.
func (m *Mock) FolderlessLists(ctx context.Context, spaceID string) ([]domain.List, error) {
	return nil, nil
}

// Tasks returns the demo tasks of a list.
func (m *Mock) Tasks(ctx context.Context, listID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Task, len(m.tasks[listID]))
	copy(out, m.tasks[listID])
	return out, nil
}

// Task returns a demo task by ID.
func (m *Mock) Task(ctx context.Context, taskID string) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byID[taskID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	copied := *t
	return &copied, nil
}

// TaskComments returns the top-level comments of a task.
func (m *Mock) TaskComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Comment
	for _, c := range m.comments[taskID] {
		if !c.IsReply() {
			out = append(out, c)
		}
	}
	return out, nil
}

// CommentReplies returns the replies of a comment.
func (m *Mock) CommentReplies(ctx context.Context, commentID string) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Comment
	for _, cs := range m.comments {
		for _, c := range cs {
			if c.ParentID != nil && *c.ParentID == commentID {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

// CreateComment adds a top-level comment to a task.
func (m *Mock) CreateComment(ctx context.Context, taskID, text string) (*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[taskID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	c := m.newComment(text, nil)
	m.comments[taskID] = append(m.comments[taskID], c)
	return &c, nil
}

// CreateReply adds a reply under an existing comment.
func (m *Mock) CreateReply(ctx context.Context, parentID, text string) (*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for taskID, cs := range m.comments {
		for _, existing := range cs {
			if existing.ID == parentID {
				c := m.newComment(text, &parentID)
				m.comments[taskID] = append(m.comments[taskID], c)
				return &c, nil
			}
		}
	}
	return nil, domain.ErrParentNotFound
}

// UpdateComment replaces the text of an existing comment.
func (m *Mock) UpdateComment(ctx context.Context, commentID, text string) (*domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for taskID, cs := range m.comments {
		for i := range cs {
			if cs[i].ID == commentID {
				cs[i].Text = text
				updated := *m.millis(0)
				cs[i].UpdatedAt = &updated
				out := cs[i]
				m.comments[taskID] = cs
				return &out, nil
			}
		}
	}
	return nil, domain.ErrCommentNotFound
}

// SearchDocs returns the demo documents.
func (m *Mock) SearchDocs(ctx context.Context, workspaceID string) ([]domain.Document, error) {
	return []domain.Document{{ID: "doc-1", Name: "Onboarding Notes"}}, nil
}

// DocPages returns the pages of the demo document.
func (m *Mock) DocPages(ctx context.Context, workspaceID, docID string) ([]domain.Page, error) {
	if docID != "doc-1" {
		return nil, domain.ErrPageNotFound
	}
	return []domain.Page{
		{ID: "page-1", Name: "Welcome", Content: "# Welcome\n\nStart with the sprint board."},
		{ID: "page-2", Name: "Conventions", Content: "## Branch names\n\nUse `feat/` and `fix/` prefixes."},
	}, nil
}

func (m *Mock) newComment(text string, parentID *string) domain.Comment {
	created := *m.millis(0)
	user := m.user
	return domain.Comment{
		ID:        uuid.NewString(),
		Text:      text,
		Commenter: &user,
		CreatedAt: &created,
		ParentID:  parentID,
	}
}
