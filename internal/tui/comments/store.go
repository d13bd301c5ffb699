// Package comments implements the comment panel engine for the task detail
// view: the comment store, the thread view-mode state machine, and the
// compose session lifecycle. Nothing in this package performs I/O.
package comments

import (
	"sort"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store owns the comment set of the currently open task. Views hold id and
// index references into it, never mutable copies.
type Store struct {
	comments []domain.Comment
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the full comment set for the current task.
func (s *Store) Load(comments []domain.Comment) {
	s.comments = make([]domain.Comment, len(comments))
	copy(s.comments, comments)
	s.normalize()
}

// normalize rewrites any reply whose parent is itself a reply to point at
// the top-level ancestor instead. The service models exactly two levels;
// deeper nesting is flattened rather than rendered.
func (s *Store) normalize() {
	parents := make(map[string]*string, len(s.comments))
	for i := range s.comments {
		parents[s.comments[i].ID] = s.comments[i].ParentID
	}
	for i := range s.comments {
		pid := s.comments[i].ParentID
		if pid == nil {
			continue
		}
		root := *pid
		// Bounded walk in case the service ever hands back a cycle.
		for hops := 0; hops < len(s.comments); hops++ {
			gp, ok := parents[root]
			if !ok || gp == nil {
				break
			}
			root = *gp
		}
		if root != *pid {
			ancestor := root
			s.comments[i].ParentID = &ancestor
		}
	}
}

// Len returns the number of comments held.
func (s *Store) Len() int {
	return len(s.comments)
}

// Get returns the comment with the given id.
func (s *Store) Get(id string) (*domain.Comment, bool) {
	for i := range s.comments {
		if s.comments[i].ID == id {
			c := s.comments[i]
			return &c, true
		}
	}
	return nil, false
}

// TopLevel returns the top-level comments sorted by creation time, newest
// first. Comments without a timestamp sort last.
func (s *Store) TopLevel() []domain.Comment {
	var out []domain.Comment
	for _, c := range s.comments {
		if !c.IsReply() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return millisNewerFirst(out[i].CreatedAt, out[j].CreatedAt)
	})
	return out
}

// RepliesOf returns the replies of a top-level comment sorted by creation
// time, oldest first. Comments without a timestamp sort last.
func (s *Store) RepliesOf(parentID string) []domain.Comment {
	var out []domain.Comment
	for _, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return millisLess(out[i].CreatedAt, out[j].CreatedAt)
	})
	return out
}

// Insert adds a newly created comment or reply. Ordering is applied at
// query time, so this is a plain append.
func (s *Store) Insert(c domain.Comment) {
	s.comments = append(s.comments, c)
	s.normalize()
}

// Replace swaps the stored comment with the same id for the given one.
// Used after a successful edit.
func (s *Store) Replace(c domain.Comment) error {
	for i := range s.comments {
		if s.comments[i].ID == c.ID {
			s.comments[i] = c
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

// millisLess orders two nullable millisecond timestamps ascending with
// nil last.
func millisLess(a, b *int64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a < *b
	}
}

// millisNewerFirst orders two nullable millisecond timestamps descending
// with nil last.
func millisNewerFirst(a, b *int64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}
