package usecase

import (
	"context"
	"errors"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ListSpacesInput identifies the workspace to browse.
type ListSpacesInput struct {
	WorkspaceID string
}

// ListSpacesOutput contains the spaces of a workspace.
type ListSpacesOutput struct {
	Spaces    []domain.Space
	FromCache bool
}

// ListSpaces fetches the spaces of a workspace, with cached fallback.
type ListSpaces struct {
	api   domain.API
	cache domain.Cache
}

// NewListSpaces creates a new ListSpaces use case.
func NewListSpaces(api domain.API, cache domain.Cache) *ListSpaces {
	return &ListSpaces{api: api, cache: cache}
}

// Execute lists the spaces.
func (uc *ListSpaces) Execute(ctx context.Context, in ListSpacesInput) (*ListSpacesOutput, error) {
	key := "spaces:" + in.WorkspaceID
	spaces, err := uc.api.Spaces(ctx, in.WorkspaceID)
	if err != nil {
		var cached []domain.Space
		if !fallbackToCache(err) || uc.cache.Get(key, &cached) != nil {
			return nil, err
		}
		return &ListSpacesOutput{Spaces: cached, FromCache: true}, nil
	}
	_ = uc.cache.Put(key, spaces)
	return &ListSpacesOutput{Spaces: spaces}, nil
}

// ListFoldersInput identifies the space to browse.
type ListFoldersInput struct {
	SpaceID string
}

// ListFoldersOutput contains the folders of a space.
type ListFoldersOutput struct {
	Folders   []domain.Folder
	FromCache bool
}

// ListFolders fetches the folders of a space, with cached fallback.
type ListFolders struct {
	api   domain.API
	cache domain.Cache
}

// NewListFolders creates a new ListFolders use case.
func NewListFolders(api domain.API, cache domain.Cache) *ListFolders {
	return &ListFolders{api: api, cache: cache}
}

// Execute lists the folders.
func (uc *ListFolders) Execute(ctx context.Context, in ListFoldersInput) (*ListFoldersOutput, error) {
	key := "folders:" + in.SpaceID
	folders, err := uc.api.Folders(ctx, in.SpaceID)
	if err != nil {
		var cached []domain.Folder
		if !fallbackToCache(err) || uc.cache.Get(key, &cached) != nil {
			return nil, err
		}
		return &ListFoldersOutput{Folders: cached, FromCache: true}, nil
	}
	_ = uc.cache.Put(key, folders)
	return &ListFoldersOutput{Folders: folders}, nil
}

// ListListsInput identifies the container to list. FolderID takes
// precedence; with an empty FolderID the folderless lists of SpaceID are
// returned.
type ListListsInput struct {
	FolderID string
	SpaceID  string
}

// ListListsOutput contains the lists of a folder or space.
type ListListsOutput struct {
	Lists     []domain.List
	FromCache bool
}

// ListLists fetches the lists of a folder, or the folderless lists of a
// space, with cached fallback.
type ListLists struct {
	api   domain.API
	cache domain.Cache
}

// NewListLists creates a new ListLists use case.
func NewListLists(api domain.API, cache domain.Cache) *ListLists {
	return &ListLists{api: api, cache: cache}
}

// Execute lists the lists.
func (uc *ListLists) Execute(ctx context.Context, in ListListsInput) (*ListListsOutput, error) {
	var (
		key   string
		lists []domain.List
		err   error
	)
	if in.FolderID != "" {
		key = "lists:" + in.FolderID
		lists, err = uc.api.Lists(ctx, in.FolderID)
	} else {
		key = "folderless:" + in.SpaceID
		lists, err = uc.api.FolderlessLists(ctx, in.SpaceID)
	}
	if err != nil {
		var cached []domain.List
		if !fallbackToCache(err) || uc.cache.Get(key, &cached) != nil {
			return nil, err
		}
		return &ListListsOutput{Lists: cached, FromCache: true}, nil
	}
	_ = uc.cache.Put(key, lists)
	return &ListListsOutput{Lists: lists}, nil
}

// fallbackToCache reports whether a fetch error may be masked by serving
// cached data. Auth failures may not; a cached view cannot fix a bad token.
func fallbackToCache(err error) bool {
	return !errors.Is(err, domain.ErrNotAuthenticated)
}
