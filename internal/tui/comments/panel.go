package comments

import "github.com/taskdeck/taskdeck/internal/domain"

// ViewMode identifies which comment subset the panel renders.
type ViewMode int

const (
	// ModeTopLevel shows the task's top-level comments.
	ModeTopLevel ViewMode = iota
	// ModeInThread shows one top-level comment and its replies.
	ModeInThread
)

// String returns the mode name for logging.
func (m ViewMode) String() string {
	switch m {
	case ModeTopLevel:
		return "top-level"
	case ModeInThread:
		return "in-thread"
	default:
		return "unknown"
	}
}

// Panel is the view-mode state machine for the comment panel. It holds the
// active mode, the selection into the currently visible sequence, and the
// selection remembered across thread entry. Selection is -1 when the
// visible sequence is empty.
type Panel struct {
	store *Store

	mode         ViewMode
	parentID     string
	parentAuthor string

	selected   int
	remembered int
}

// NewPanel returns a panel in top-level mode over the given store.
func NewPanel(store *Store) *Panel {
	return &Panel{store: store, selected: -1, remembered: -1}
}

// Mode returns the active view mode.
func (p *Panel) Mode() ViewMode {
	return p.mode
}

// ThreadParent returns the id and author of the open thread's parent
// comment. Both are empty in top-level mode.
func (p *Panel) ThreadParent() (id, author string) {
	return p.parentID, p.parentAuthor
}

// Visible returns the comment sequence the active mode renders. In thread
// mode index 0 is the parent and the replies follow oldest first.
func (p *Panel) Visible() []domain.Comment {
	if p.mode == ModeTopLevel {
		return p.store.TopLevel()
	}
	parent, ok := p.store.Get(p.parentID)
	if !ok {
		return nil
	}
	return append([]domain.Comment{*parent}, p.store.RepliesOf(p.parentID)...)
}

// Selected returns the index of the selected comment in Visible, or -1
// when the visible sequence is empty.
func (p *Panel) Selected() int {
	return p.selected
}

// SelectedComment returns the selected comment, if any.
func (p *Panel) SelectedComment() (*domain.Comment, bool) {
	visible := p.Visible()
	if p.selected < 0 || p.selected >= len(visible) {
		return nil, false
	}
	c := visible[p.selected]
	return &c, true
}

// MoveUp moves the selection one entry up, stopping at the top.
func (p *Panel) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves the selection one entry down, stopping at the bottom.
func (p *Panel) MoveDown() {
	if p.selected < len(p.Visible())-1 {
		p.selected++
	}
}

// EnterThread opens the thread of the selected top-level comment. It
// remembers the current selection so ExitThread can restore it, and seeds
// the thread selection at the parent. A no-op when already in a thread.
func (p *Panel) EnterThread() error {
	if p.mode == ModeInThread {
		return nil
	}
	c, ok := p.SelectedComment()
	if !ok {
		return domain.ErrCommentNotFound
	}
	p.remembered = p.selected
	p.mode = ModeInThread
	p.parentID = c.ID
	p.parentAuthor = c.AuthorName()
	p.selected = 0
	return nil
}

// ExitThread returns to top-level mode, restoring the selection that was
// active before EnterThread. A no-op in top-level mode.
func (p *Panel) ExitThread() {
	if p.mode == ModeTopLevel {
		return
	}
	p.mode = ModeTopLevel
	p.parentID = ""
	p.parentAuthor = ""
	p.selected = p.remembered
	p.remembered = -1
	p.Revalidate()
}

// Reset returns the panel to top-level mode with the selection on the
// newest comment. Called when a new task's comments are loaded.
func (p *Panel) Reset() {
	p.mode = ModeTopLevel
	p.parentID = ""
	p.parentAuthor = ""
	p.remembered = -1
	if p.store.Len() == 0 {
		p.selected = -1
	} else {
		p.selected = 0
	}
	p.Revalidate()
}

// Select moves the selection to the comment with the given id. It returns
// false and leaves the selection alone when the id is not visible.
func (p *Panel) Select(id string) bool {
	for i, c := range p.Visible() {
		if c.ID == id {
			p.selected = i
			return true
		}
	}
	return false
}

// Revalidate clamps the selection into the current visible sequence after
// the store changed underneath the panel. If the open thread's parent no
// longer exists it forces a return to top-level mode and reports
// ErrParentNotFound.
func (p *Panel) Revalidate() error {
	if p.mode == ModeInThread {
		if _, ok := p.store.Get(p.parentID); !ok {
			p.mode = ModeTopLevel
			p.parentID = ""
			p.parentAuthor = ""
			p.selected = p.remembered
			p.remembered = -1
			p.clampSelection()
			return domain.ErrParentNotFound
		}
	}
	p.clampSelection()
	return nil
}

func (p *Panel) clampSelection() {
	n := len(p.Visible())
	if n == 0 {
		p.selected = -1
		return
	}
	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected >= n {
		p.selected = n - 1
	}
}
