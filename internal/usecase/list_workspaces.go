package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ListWorkspacesOutput contains the workspaces visible to the token.
type ListWorkspacesOutput struct {
	Workspaces []domain.Workspace
	FromCache  bool
}

// ListWorkspaces fetches the workspaces, with cached offline fallback.
type ListWorkspaces struct {
	api   domain.API
	cache domain.Cache
}

// NewListWorkspaces creates a new ListWorkspaces use case.
func NewListWorkspaces(api domain.API, cache domain.Cache) *ListWorkspaces {
	return &ListWorkspaces{api: api, cache: cache}
}

// Execute lists the workspaces. An empty result is an error: a token with
// no workspace cannot browse anything.
func (uc *ListWorkspaces) Execute(ctx context.Context) (*ListWorkspacesOutput, error) {
	workspaces, err := uc.api.Workspaces(ctx)
	if err != nil {
		var cached []domain.Workspace
		if !fallbackToCache(err) || uc.cache.Get("workspaces", &cached) != nil {
			return nil, err
		}
		return &ListWorkspacesOutput{Workspaces: cached, FromCache: true}, nil
	}

	if len(workspaces) == 0 {
		return nil, domain.ErrNoWorkspace
	}
	_ = uc.cache.Put("workspaces", workspaces)

	return &ListWorkspacesOutput{Workspaces: workspaces}, nil
}
