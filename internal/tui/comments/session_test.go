package comments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestSession_beginSubmitTrims(t *testing.T) {
	s := NewCompose()
	s.SetDraft("  hello world \n")

	text, err := s.BeginSubmit()

	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.True(t, s.Saving())
	assert.Equal(t, "  hello world \n", s.Draft())
}

func TestSession_emptySubmitBlocked(t *testing.T) {
	tests := []struct {
		name  string
		draft string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"whitespace", " \t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCompose()
			s.SetDraft(tt.draft)

			_, err := s.BeginSubmit()

			assert.ErrorIs(t, err, domain.ErrEmptyComment)
			assert.False(t, s.Saving())
			assert.Equal(t, tt.draft, s.Draft())
		})
	}
}

func TestSession_doubleSubmitRejected(t *testing.T) {
	s := NewCompose()
	s.SetDraft("text")

	_, err := s.BeginSubmit()
	require.NoError(t, err)

	_, err = s.BeginSubmit()
	assert.ErrorIs(t, err, domain.ErrSubmitInFlight)
}

func TestSession_failPreservesDraft(t *testing.T) {
	s := NewReply("p1", "maya")
	s.SetDraft("my careful reply")

	_, err := s.BeginSubmit()
	require.NoError(t, err)

	s.FailSubmit()

	assert.False(t, s.Saving())
	assert.Equal(t, "my careful reply", s.Draft())

	// Retry goes through.
	text, err := s.BeginSubmit()
	require.NoError(t, err)
	assert.Equal(t, "my careful reply", text)
}

func TestSession_draftFrozenWhileSaving(t *testing.T) {
	s := NewCompose()
	s.SetDraft("original")

	_, err := s.BeginSubmit()
	require.NoError(t, err)

	s.SetDraft("overwritten")

	assert.Equal(t, "original", s.Draft())
}

func TestSession_replyTargetCapturedAtOpen(t *testing.T) {
	store := NewStore()
	store.Load([]domain.Comment{
		comment("a", nil, int64Ptr(20)),
		comment("b", nil, int64Ptr(10)),
	})
	panel := NewPanel(store)
	panel.Reset()
	require.NoError(t, panel.EnterThread())

	id, author := panel.ThreadParent()
	s := NewReply(id, author)

	// The user leaves the thread while the submit is still open.
	panel.ExitThread()
	panel.MoveDown()

	target, ok := s.Target().(TargetReply)
	require.True(t, ok)
	assert.Equal(t, "a", target.ParentID)
}

func TestSession_editPrefills(t *testing.T) {
	s := NewEdit("c1", "current text")

	assert.Equal(t, "current text", s.Draft())
	target, ok := s.Target().(TargetEdit)
	require.True(t, ok)
	assert.Equal(t, "c1", target.CommentID)
}
