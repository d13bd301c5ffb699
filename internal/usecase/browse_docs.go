package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// SearchDocsInput identifies the workspace to search.
type SearchDocsInput struct {
	WorkspaceID string
}

// SearchDocsOutput contains the workspace's documents.
type SearchDocsOutput struct {
	Docs      []domain.Document
	FromCache bool
}

// SearchDocs fetches the documents of a workspace, with cached fallback.
type SearchDocs struct {
	api   domain.API
	cache domain.Cache
}

// NewSearchDocs creates a new SearchDocs use case.
func NewSearchDocs(api domain.API, cache domain.Cache) *SearchDocs {
	return &SearchDocs{api: api, cache: cache}
}

// Execute searches the documents.
func (uc *SearchDocs) Execute(ctx context.Context, in SearchDocsInput) (*SearchDocsOutput, error) {
	key := "docs:" + in.WorkspaceID
	docs, err := uc.api.SearchDocs(ctx, in.WorkspaceID)
	if err != nil {
		var cached []domain.Document
		if !fallbackToCache(err) || uc.cache.Get(key, &cached) != nil {
			return nil, err
		}
		return &SearchDocsOutput{Docs: cached, FromCache: true}, nil
	}
	_ = uc.cache.Put(key, docs)
	return &SearchDocsOutput{Docs: docs}, nil
}

// LoadPagesInput identifies the document to read.
type LoadPagesInput struct {
	WorkspaceID string
	DocID       string
}

// LoadPagesOutput contains the document's pages flattened into reading
// order, nested pages included.
type LoadPagesOutput struct {
	Pages     []domain.Page
	FromCache bool
}

// LoadPages fetches the pages of a document, with cached fallback.
type LoadPages struct {
	api   domain.API
	cache domain.Cache
}

// NewLoadPages creates a new LoadPages use case.
func NewLoadPages(api domain.API, cache domain.Cache) *LoadPages {
	return &LoadPages{api: api, cache: cache}
}

// Execute loads the pages.
func (uc *LoadPages) Execute(ctx context.Context, in LoadPagesInput) (*LoadPagesOutput, error) {
	key := "pages:" + in.WorkspaceID + ":" + in.DocID
	pages, err := uc.api.DocPages(ctx, in.WorkspaceID, in.DocID)
	if err != nil {
		var cached []domain.Page
		if !fallbackToCache(err) || uc.cache.Get(key, &cached) != nil {
			return nil, err
		}
		return &LoadPagesOutput{Pages: cached, FromCache: true}, nil
	}

	var flat []domain.Page
	for _, p := range pages {
		flat = append(flat, p.Flatten()...)
	}
	_ = uc.cache.Put(key, flat)
	return &LoadPagesOutput{Pages: flat}, nil
}
