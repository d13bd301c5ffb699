package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	ListID        string
	IncludeClosed bool
}

// ListTasksOutput contains the tasks in display order.
// Fields are ordered to minimize memory padding.
type ListTasksOutput struct {
	Tasks     []*domain.Task
	FromCache bool
}

// ListTasks fetches the tasks of a list, sorted for display, with cached
// offline fallback.
type ListTasks struct {
	api   domain.API
	cache domain.Cache
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(api domain.API, cache domain.Cache) *ListTasks {
	return &ListTasks{api: api, cache: cache}
}

// Execute lists the tasks.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter := domain.TaskFilter{IncludeClosed: in.IncludeClosed}
	tasks, err := uc.api.Tasks(ctx, in.ListID, filter)
	if err != nil {
		var cached []*domain.Task
		if !fallbackToCache(err) || uc.cache.Get("tasks:"+in.ListID, &cached) != nil {
			return nil, err
		}
		domain.SortTasks(cached)
		return &ListTasksOutput{Tasks: cached, FromCache: true}, nil
	}

	domain.SortTasks(tasks)
	_ = uc.cache.Put("tasks:"+in.ListID, tasks)

	return &ListTasksOutput{Tasks: tasks}, nil
}
