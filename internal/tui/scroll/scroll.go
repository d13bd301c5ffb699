// Package scroll keeps a list offset in sync with a moving selection.
package scroll

// State is a scroll window over a list of content lines. The zero value is
// ready to use.
type State struct {
	// Offset is the index of the first visible line.
	Offset int
	// Height is the number of visible lines, set from the last layout.
	Height int
}

// EnsureVisible moves the window the minimum distance needed to bring
// selected into view, then clamps the offset to the valid range for
// contentLen lines. Calling it again with the same arguments is a no-op.
func (s *State) EnsureVisible(selected, contentLen int) {
	if s.Height <= 0 {
		s.Offset = 0
		return
	}
	if selected < s.Offset {
		s.Offset = selected
	} else if selected >= s.Offset+s.Height {
		s.Offset = selected - s.Height + 1
	}
	s.Clamp(contentLen)
}

// Clamp forces the offset into [0, max(0, contentLen-Height)].
func (s *State) Clamp(contentLen int) {
	maxOffset := contentLen - s.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.Offset > maxOffset {
		s.Offset = maxOffset
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// Reset returns the window to the top.
func (s *State) Reset() {
	s.Offset = 0
}

// Visible reports whether the line at index is inside the window.
func (s *State) Visible(index int) bool {
	return index >= s.Offset && index < s.Offset+s.Height
}
