package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// UpdateCommentInput contains the parameters for editing a comment.
type UpdateCommentInput struct {
	// TaskID locates the cached comment snapshot to refresh. Leaving it
	// empty skips the cache update.
	TaskID    string
	CommentID string
	Text      string
}

// UpdateCommentOutput contains the updated comment.
type UpdateCommentOutput struct {
	Comment domain.Comment
}

// UpdateComment replaces the text of an existing comment.
type UpdateComment struct {
	api   domain.API
	cache domain.Cache
}

// NewUpdateComment creates a new UpdateComment use case.
func NewUpdateComment(api domain.API, cache domain.Cache) *UpdateComment {
	return &UpdateComment{api: api, cache: cache}
}

// Execute updates the comment and replaces it in the cached snapshot.
func (uc *UpdateComment) Execute(ctx context.Context, in UpdateCommentInput) (*UpdateCommentOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyComment
	}

	updated, err := uc.api.UpdateComment(ctx, in.CommentID, text)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	if in.TaskID != "" {
		var cached []domain.Comment
		if uc.cache.Get(commentsCacheKey(in.TaskID), &cached) == nil {
			for i := range cached {
				if cached[i].ID == updated.ID {
					cached[i] = *updated
				}
			}
			_ = uc.cache.Put(commentsCacheKey(in.TaskID), cached)
		}
	}

	return &UpdateCommentOutput{Comment: *updated}, nil
}
