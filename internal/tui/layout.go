package tui

// Minimum terminal size the TUI renders at. Below this the view shows a
// diagnostic instead of a broken layout.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Rows reserved outside the content area: header with margin, footer with
// margin.
const chromeRows = 4

// tooSmall reports whether the terminal is below the minimum size.
func (m *Model) tooSmall() bool {
	return m.width > 0 && m.height > 0 && (m.width < MinWidth || m.height < MinHeight)
}

// contentHeight returns the rows available to the active screen's body.
func (m *Model) contentHeight() int {
	h := m.height - chromeRows
	if h < 0 {
		return 0
	}
	return h
}

// contentWidth returns the columns available inside the app padding.
func (m *Model) contentWidth() int {
	w := m.width - 2
	if w < 0 {
		return 0
	}
	return w
}

// detailHeights splits the task detail rows between the description panel
// on top and the comment panel below it. The comment panel gets the
// larger share.
func (m *Model) detailHeights() (descH, comH int) {
	h := m.contentHeight()
	descH = h * 3 / 10
	comH = h - descH
	return descH, comH
}

// panelInnerRows returns the rows inside a bordered panel of the given
// outer height: minus the border rows and the panel title row.
func panelInnerRows(outer int) int {
	rows := outer - 3
	if rows < 0 {
		return 0
	}
	return rows
}

// updateLayoutSizes pushes the current terminal size into every
// layout-dependent component.
func (m *Model) updateLayoutSizes() {
	m.help.Width = m.width

	m.listScroll.Height = m.contentHeight()
	m.listScroll.Clamp(m.listLen())

	descH, comH := m.detailHeights()
	m.descScroll.Height = panelInnerRows(descH)
	// Comments scroll by entry, not by row; an entry renders as roughly
	// three rows.
	m.comScroll.Height = panelInnerRows(comH) / 3
	if m.comScroll.Height < 1 {
		m.comScroll.Height = 1
	}

	composeW := m.contentWidth() - 8
	if composeW < 20 {
		composeW = 20
	}
	m.composeInput.SetWidth(composeW)
	m.composeInput.SetHeight(5)
	m.tokenInput.Width = composeW
}
