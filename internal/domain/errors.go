package domain

import "errors"

// Domain errors.
var (
	ErrEmptyComment     = errors.New("comment cannot be empty")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrParentNotFound   = errors.New("parent comment not found")
	ErrSubmitInFlight   = errors.New("a submit is already in flight")
	ErrTaskNotFound     = errors.New("task not found")
	ErrListNotFound     = errors.New("list not found")
	ErrPageNotFound     = errors.New("page not found")
	ErrNotAuthenticated = errors.New("not authenticated (run 'taskdeck auth login' first)")
	ErrTokenNotFound    = errors.New("no API token stored")
	ErrNoWorkspace      = errors.New("no workspace available for this token")
	ErrRateLimited      = errors.New("rate limited by the API")
	ErrCacheMiss        = errors.New("not in cache")
)
