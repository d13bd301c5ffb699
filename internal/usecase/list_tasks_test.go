package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestListTasks_sortsForDisplay(t *testing.T) {
	api := testutil.NewMockAPI()
	api.TasksResult = []*domain.Task{
		{ID: "a", Name: "done", Status: &domain.TaskStatus{Status: "done"}},
		{ID: "b", Name: "active", Status: &domain.TaskStatus{Status: "in progress"}},
	}

	uc := NewListTasks(api, testutil.NewMockCache())
	out, err := uc.Execute(context.Background(), ListTasksInput{ListID: "l1"})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "b", out.Tasks[0].ID)
}

func TestListTasks_cacheFallback(t *testing.T) {
	cache := testutil.NewMockCache()
	cache.Entries["tasks:l1"] = []*domain.Task{{ID: "cached", Name: "x"}}

	api := testutil.NewMockAPI()
	api.TasksErr = errors.New("timeout")

	uc := NewListTasks(api, cache)
	out, err := uc.Execute(context.Background(), ListTasksInput{ListID: "l1"})

	require.NoError(t, err)
	assert.True(t, out.FromCache)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "cached", out.Tasks[0].ID)
}

func TestListWorkspaces_emptyIsError(t *testing.T) {
	api := testutil.NewMockAPI()

	uc := NewListWorkspaces(api, testutil.NewMockCache())
	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, domain.ErrNoWorkspace)
}

func TestListLists_folderVsFolderless(t *testing.T) {
	api := testutil.NewMockAPI()
	api.ListsResult = []domain.List{{ID: "in-folder"}}
	api.FolderlessResult = []domain.List{{ID: "folderless"}}

	uc := NewListLists(api, testutil.NewMockCache())

	out, err := uc.Execute(context.Background(), ListListsInput{FolderID: "f1"})
	require.NoError(t, err)
	assert.Equal(t, "in-folder", out.Lists[0].ID)

	out, err = uc.Execute(context.Background(), ListListsInput{SpaceID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "folderless", out.Lists[0].ID)
}

func TestLoadPages_flattensNestedPages(t *testing.T) {
	api := testutil.NewMockAPI()
	api.PagesResult = []domain.Page{
		{ID: "p1", Name: "Root", Children: []domain.Page{
			{ID: "p2", Name: "Child"},
		}},
		{ID: "p3", Name: "Sibling"},
	}

	uc := NewLoadPages(api, testutil.NewMockCache())
	out, err := uc.Execute(context.Background(), LoadPagesInput{WorkspaceID: "w1", DocID: "d1"})

	require.NoError(t, err)
	require.Len(t, out.Pages, 3)
	assert.Equal(t, "p1", out.Pages[0].ID)
	assert.Equal(t, "p2", out.Pages[1].ID)
	assert.Equal(t, "p3", out.Pages[2].ID)
}
