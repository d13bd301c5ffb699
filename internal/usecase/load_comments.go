package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// LoadCommentsInput contains the parameters for loading a task's comments.
type LoadCommentsInput struct {
	TaskID string
}

// LoadCommentsOutput contains the loaded comments.
// Fields are ordered to minimize memory padding.
type LoadCommentsOutput struct {
	Comments []domain.Comment
	// FromCache is true when the service was unreachable and the result
	// came from the local cache.
	FromCache bool
}

// LoadComments fetches a task's full comment set: the top-level comments
// plus the replies of each, with the parent id stamped on every reply. The
// result is cached for offline fallback.
type LoadComments struct {
	api   domain.API
	cache domain.Cache
}

// NewLoadComments creates a new LoadComments use case.
func NewLoadComments(api domain.API, cache domain.Cache) *LoadComments {
	return &LoadComments{api: api, cache: cache}
}

// Execute loads the comments of a task.
func (uc *LoadComments) Execute(ctx context.Context, in LoadCommentsInput) (*LoadCommentsOutput, error) {
	topLevel, err := uc.api.TaskComments(ctx, in.TaskID)
	if err != nil {
		return uc.fromCache(in.TaskID, err)
	}

	all := make([]domain.Comment, 0, len(topLevel))
	all = append(all, topLevel...)
	for _, parent := range topLevel {
		replies, err := uc.api.CommentReplies(ctx, parent.ID)
		if err != nil {
			return uc.fromCache(in.TaskID, fmt.Errorf("load replies of %s: %w", parent.ID, err))
		}
		for _, reply := range replies {
			// The reply listing omits parent_id; stamp it so the
			// store can thread the comment.
			if reply.ParentID == nil {
				pid := parent.ID
				reply.ParentID = &pid
			}
			all = append(all, reply)
		}
	}

	_ = uc.cache.Put(commentsCacheKey(in.TaskID), all)

	return &LoadCommentsOutput{Comments: all}, nil
}

// fromCache serves the last fetched comment set when the service failed.
// Auth failures are not masked; a cached view cannot fix a bad token.
func (uc *LoadComments) fromCache(taskID string, fetchErr error) (*LoadCommentsOutput, error) {
	if !fallbackToCache(fetchErr) {
		return nil, fetchErr
	}
	var cached []domain.Comment
	if err := uc.cache.Get(commentsCacheKey(taskID), &cached); err != nil {
		return nil, fetchErr
	}
	return &LoadCommentsOutput{Comments: cached, FromCache: true}, nil
}

func commentsCacheKey(taskID string) string {
	return "comments:" + taskID
}
