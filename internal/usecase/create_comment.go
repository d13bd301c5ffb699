package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// CreateCommentInput contains the parameters for posting a comment.
// Fields are ordered to minimize memory padding.
type CreateCommentInput struct {
	// ParentID, when set, posts a reply under that top-level comment
	// instead of a new top-level comment.
	ParentID *string
	TaskID   string
	Text     string
}

// CreateCommentOutput contains the created comment as returned by the
// service.
type CreateCommentOutput struct {
	Comment domain.Comment
}

// CreateComment posts a top-level comment or a reply.
type CreateComment struct {
	api   domain.API
	cache domain.Cache
}

// NewCreateComment creates a new CreateComment use case.
func NewCreateComment(api domain.API, cache domain.Cache) *CreateComment {
	return &CreateComment{api: api, cache: cache}
}

// Execute posts the comment and appends it to the cached snapshot so an
// offline fallback straight after posting still shows it.
func (uc *CreateComment) Execute(ctx context.Context, in CreateCommentInput) (*CreateCommentOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyComment
	}

	var created *domain.Comment
	var err error
	if in.ParentID != nil {
		created, err = uc.api.CreateReply(ctx, *in.ParentID, text)
	} else {
		created, err = uc.api.CreateComment(ctx, in.TaskID, text)
	}
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	var cached []domain.Comment
	if uc.cache.Get(commentsCacheKey(in.TaskID), &cached) == nil {
		_ = uc.cache.Put(commentsCacheKey(in.TaskID), append(cached, *created))
	}

	return &CreateCommentOutput{Comment: *created}, nil
}
