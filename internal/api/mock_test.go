package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestMock_commentRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMock()

	top, err := m.TaskComments(ctx, "task-1")
	require.NoError(t, err)
	require.Len(t, top, 2)

	created, err := m.CreateComment(ctx, "task-1", "new comment")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.ParentID)

	reply, err := m.CreateReply(ctx, created.ID, "a reply")
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, created.ID, *reply.ParentID)

	replies, err := m.CommentReplies(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "a reply", replies[0].Text)
}

func TestMock_updateComment(t *testing.T) {
	ctx := context.Background()
	m := NewMock()

	updated, err := m.UpdateComment(ctx, "comment-1", "edited text")
	require.NoError(t, err)
	assert.Equal(t, "edited text", updated.Text)
	assert.NotNil(t, updated.UpdatedAt)

	_, err = m.UpdateComment(ctx, "ghost", "x")
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestMock_replyToMissingParent(t *testing.T) {
	m := NewMock()

	_, err := m.CreateReply(context.Background(), "ghost", "text")

	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestMock_hierarchy(t *testing.T) {
	ctx := context.Background()
	m := NewMock()

	ws, err := m.Workspaces(ctx)
	require.NoError(t, err)
	require.Len(t, ws, 1)

	tasks, err := m.Tasks(ctx, "list-1", domain.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	_, err = m.Task(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
