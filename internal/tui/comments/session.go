package comments

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Target identifies what a compose session writes when submitted. It is a
// sealed interface; the variants are the only implementations.
type Target interface {
	target()
}

// TargetNewTopLevel creates a new top-level comment on the open task.
type TargetNewTopLevel struct{}

// TargetReply creates a reply under a top-level comment. ParentID is
// captured when the session opens and never re-derived, so a mode change
// while the submit is in flight cannot redirect the reply.
type TargetReply struct {
	ParentID     string
	ParentAuthor string
}

// TargetEdit replaces the text of an existing comment.
type TargetEdit struct {
	CommentID string
}

func (TargetNewTopLevel) target() {}
func (TargetReply) target()       {}
func (TargetEdit) target()        {}

// Session is a compose or edit form over the comment panel. It exists only
// while the form is open; a successful save or a cancel destroys it. At
// most one session exists at a time.
type Session struct {
	target Target
	draft  string
	saving bool
}

// NewCompose opens a session for a new top-level comment.
func NewCompose() *Session {
	return &Session{target: TargetNewTopLevel{}}
}

// NewReply opens a session replying to the given top-level comment.
func NewReply(parentID, parentAuthor string) *Session {
	return &Session{target: TargetReply{ParentID: parentID, ParentAuthor: parentAuthor}}
}

// NewEdit opens a session editing an existing comment, pre-filled with its
// current text.
func NewEdit(commentID, currentText string) *Session {
	return &Session{target: TargetEdit{CommentID: commentID}, draft: currentText}
}

// Target returns what the session writes on submit.
func (s *Session) Target() Target {
	return s.target
}

// Draft returns the current buffer contents.
func (s *Session) Draft() string {
	return s.draft
}

// SetDraft replaces the buffer contents. Rejected while a submit is in
// flight.
func (s *Session) SetDraft(text string) {
	if s.saving {
		return
	}
	s.draft = text
}

// Saving reports whether a submit is in flight.
func (s *Session) Saving() bool {
	return s.saving
}

// BeginSubmit validates the draft and arms the saving gate. It returns the
// trimmed text to send. The draft itself is not modified, so a failed
// submit hands the user back exactly what they typed.
func (s *Session) BeginSubmit() (string, error) {
	if s.saving {
		return "", domain.ErrSubmitInFlight
	}
	text := strings.TrimSpace(s.draft)
	if text == "" {
		return "", domain.ErrEmptyComment
	}
	s.saving = true
	return text, nil
}

// FailSubmit releases the saving gate after a failed submit, keeping the
// draft intact for retry.
func (s *Session) FailSubmit() {
	s.saving = false
}
