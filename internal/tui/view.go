package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/tui/comments"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: %dx%d (need at least %dx%d)",
			m.width, m.height, MinWidth, MinHeight)
	}

	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.screen {
	case ScreenAuth:
		b.WriteString(m.viewAuth())
	case ScreenTaskDetail:
		b.WriteString(m.viewTaskDetail())
	case ScreenPage:
		b.WriteString(m.viewPage())
	default:
		b.WriteString(m.viewList())
	}

	if m.mode == ModeCompose {
		b.WriteString("\n")
		b.WriteString(m.viewCompose())
	}
	if m.mode == ModeConfirm {
		b.WriteString("\n")
		b.WriteString(m.styles.Compose.Render(
			m.styles.ComposeTitle.Render("Quit taskdeck?") + "\n\n" +
				m.styles.ComposePrompt.Render("y to quit, any other key to stay")))
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return m.styles.App.Render(b.String())
}

// viewHeader renders the title row with the current location and load
// state.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("taskdeck")
	crumb := m.styles.ItemDesc.Render(m.breadcrumb())

	var right string
	switch {
	case m.loading:
		right = m.styles.Saving.Render("loading...")
	case m.fromCache:
		right = m.styles.CacheBadge.Render("offline (cached)")
	}

	left := title + " " + crumb
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// breadcrumb names where the user is in the hierarchy.
func (m *Model) breadcrumb() string {
	switch m.screen {
	case ScreenAuth:
		return "sign in"
	case ScreenWorkspaces:
		return "workspaces"
	case ScreenSpaces:
		return m.nameOfWorkspace() + " / spaces"
	case ScreenBrowse:
		return m.nameOfWorkspace() + " / " + m.nameOfSpace()
	case ScreenLists:
		return m.nameOfSpace() + " / " + m.nameOfFolder()
	case ScreenTasks:
		return m.nameOfSpace() + " / " + m.nameOfList()
	case ScreenTaskDetail:
		if m.task != nil {
			return m.nameOfList() + " / " + truncate(m.task.Name, 40)
		}
		return m.nameOfList()
	case ScreenDocs:
		return m.nameOfWorkspace() + " / docs"
	case ScreenPage:
		return m.nameOfWorkspace() + " / " + m.nameOfDoc()
	default:
		return ""
	}
}

func (m *Model) nameOfWorkspace() string {
	for _, w := range m.workspaces {
		if w.ID == m.workspaceID {
			return w.Name
		}
	}
	return "workspace"
}

func (m *Model) nameOfSpace() string {
	for _, s := range m.spaces {
		if s.ID == m.spaceID {
			return s.Name
		}
	}
	return "space"
}

func (m *Model) nameOfFolder() string {
	for _, f := range m.folders {
		if f.ID == m.folderID {
			return f.Name
		}
	}
	return "folder"
}

func (m *Model) nameOfList() string {
	for _, l := range m.lists {
		if l.ID == m.listID {
			return l.Name
		}
	}
	return "list"
}

func (m *Model) nameOfDoc() string {
	for _, d := range m.docs {
		if d.ID == m.docID {
			return d.Name
		}
	}
	return "doc"
}

// viewAuth renders the token entry screen.
func (m *Model) viewAuth() string {
	var b strings.Builder
	b.WriteString(m.styles.ComposeTitle.Render("Sign in"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ComposePrompt.Render("Paste your personal API token and press enter."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.InputPrompt.Render("Token: "))
	b.WriteString(m.tokenInput.View())
	b.WriteString("\n")
	return b.String()
}

// viewList renders the active list screen inside the scroll window.
func (m *Model) viewList() string {
	rows := m.listRows()
	if len(rows) == 0 {
		if m.loading {
			return m.styles.ItemDesc.Render("  loading...")
		}
		return m.styles.ItemDesc.Render("  (empty)")
	}

	start := m.listScroll.Offset
	end := start + m.listScroll.Height
	if end > len(rows) {
		end = len(rows)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.CursorActive.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(rows[i])
		b.WriteString("\n")
	}
	return b.String()
}

// listRows builds one rendered row per item of the active list screen.
func (m *Model) listRows() []string {
	sel := func(i int) lipgloss.Style {
		if i == m.cursor {
			return m.styles.ItemSelected
		}
		return m.styles.ItemNormal
	}
	muted := m.styles.ItemDesc

	switch m.screen {
	case ScreenWorkspaces:
		rows := make([]string, len(m.workspaces))
		for i, w := range m.workspaces {
			rows[i] = sel(i).Render(w.Name) + " " + muted.Render(fmt.Sprintf("(%d members)", w.MemberCount))
		}
		return rows

	case ScreenSpaces:
		rows := make([]string, len(m.spaces))
		for i, s := range m.spaces {
			row := sel(i).Render(s.Name)
			if s.Private {
				row += " " + muted.Render("(private)")
			}
			rows[i] = row
		}
		return rows

	case ScreenBrowse:
		rows := make([]string, 0, len(m.folders)+len(m.lists))
		for i, f := range m.folders {
			rows = append(rows, sel(i).Render(f.Name)+" "+muted.Render(fmt.Sprintf("folder · %d lists", len(f.Lists))))
		}
		for j, l := range m.lists {
			rows = append(rows, sel(len(m.folders)+j).Render(l.Name)+" "+muted.Render(listCount(l)))
		}
		return rows

	case ScreenLists:
		rows := make([]string, len(m.lists))
		for i, l := range m.lists {
			rows[i] = sel(i).Render(l.Name) + " " + muted.Render(listCount(l))
		}
		return rows

	case ScreenTasks:
		rows := make([]string, len(m.tasks))
		for i, t := range m.tasks {
			rows[i] = m.taskRow(t, sel(i))
		}
		return rows

	case ScreenDocs:
		rows := make([]string, len(m.docs))
		for i, d := range m.docs {
			row := sel(i).Render(d.Name)
			if ts := formatMillis(d.UpdatedAt, m.dateFormat()); ts != "" {
				row += " " + muted.Render(ts)
			}
			rows[i] = row
		}
		return rows
	}
	return nil
}

func listCount(l domain.List) string {
	if l.TaskCount == nil {
		return "list"
	}
	return fmt.Sprintf("%d tasks", *l.TaskCount)
}

// taskRow renders one task line: status badge, name, due date.
func (m *Model) taskRow(t *domain.Task, nameStyle lipgloss.Style) string {
	status := t.StatusName()
	badge := m.styles.statusStyle(status).Render("[" + status + "]")

	row := badge + " " + nameStyle.Render(truncate(t.Name, m.contentWidth()-lipgloss.Width(badge)-24))

	if due := t.DueTime(); !due.IsZero() {
		ts := due.Format("Jan 02")
		if t.Overdue(m.container.Clock.Now()) {
			row += " " + m.styles.Overdue.Render("due "+ts)
		} else {
			row += " " + m.styles.ItemDesc.Render("due "+ts)
		}
	}
	return row
}

// viewTaskDetail renders the description panel above the comment panel.
func (m *Model) viewTaskDetail() string {
	descH, comH := m.detailHeights()
	desc := m.viewDescriptionPanel(descH)
	com := m.viewCommentPanel(comH)
	return lipgloss.JoinVertical(lipgloss.Left, desc, com)
}

func (m *Model) viewDescriptionPanel(height int) string {
	style := m.styles.Panel
	if m.focus == FocusDescription {
		style = m.styles.PanelFocused
	}

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render("Description"))
	b.WriteString("\n")

	start := m.descScroll.Offset
	end := start + m.descScroll.Height
	if end > len(m.descLines) {
		end = len(m.descLines)
	}
	for i := start; i < end; i++ {
		b.WriteString(m.descLines[i])
		b.WriteString("\n")
	}

	return style.Width(m.contentWidth() - 2).Height(height - 2).Render(b.String())
}

// taskMetaRows renders the status, priority, assignee, and due date rows
// shown above the description body.
func (m *Model) taskMetaRows() []string {
	if m.task == nil {
		return nil
	}
	t := m.task
	label := m.styles.DetailLabel
	value := m.styles.DetailValue

	rows := []string{label.Render("status") + value.Render(t.StatusName())}
	if p := t.PriorityName(); p != "" {
		rows = append(rows, label.Render("priority")+value.Render(p))
	}
	if len(t.Assignees) > 0 {
		names := make([]string, len(t.Assignees))
		for i, u := range t.Assignees {
			names[i] = u.Username
		}
		rows = append(rows, label.Render("assignees")+value.Render(strings.Join(names, ", ")))
	}
	if due := formatMillis(t.DueDate, m.dateFormat()); due != "" {
		style := value
		if t.Overdue(m.container.Clock.Now()) {
			style = m.styles.Overdue
		}
		rows = append(rows, label.Render("due")+style.Render(due))
	}
	return append(rows, "")
}

func (m *Model) viewCommentPanel(height int) string {
	style := m.styles.Panel
	if m.focus == FocusComments {
		style = m.styles.PanelFocused
	}
	width := m.contentWidth()

	visible := m.panel.Visible()

	title := fmt.Sprintf("Comments (%d)", len(visible))
	if m.panel.Mode() == comments.ModeInThread {
		_, author := m.panel.ThreadParent()
		title = "Thread with " + author
	}

	var b strings.Builder
	b.WriteString(m.styles.PanelTitle.Render(title))
	b.WriteString("\n")

	if len(visible) == 0 {
		if m.loading {
			b.WriteString(m.styles.ItemDesc.Render("loading..."))
		} else {
			b.WriteString(m.styles.ItemDesc.Render("no comments yet, press c to write one"))
		}
	}

	start := m.comScroll.Offset
	end := start + m.comScroll.Height
	if end > len(visible) {
		end = len(visible)
	}
	for i := start; i < end; i++ {
		b.WriteString(m.commentEntry(visible[i], i, width-6))
	}

	return style.Width(width - 2).Height(height - 2).Render(b.String())
}

// commentEntry renders one comment: author and time header, then the
// wrapped body. In thread mode the replies are indented under the parent.
func (m *Model) commentEntry(c domain.Comment, index int, width int) string {
	indent := ""
	if m.panel.Mode() == comments.ModeInThread && index > 0 {
		indent = "  "
	}

	marker := "  "
	if index == m.panel.Selected() {
		marker = m.styles.CursorActive.Render("> ")
	}

	header := m.styles.CommentAuthor.Render(c.AuthorName())
	if ts := formatMillis(c.CreatedAt, m.dateFormat()); ts != "" {
		header += " " + m.styles.CommentTime.Render(ts)
	}
	if c.Edited() {
		header += " " + m.styles.CommentTime.Render("(edited)")
	}

	var b strings.Builder
	b.WriteString(indent + marker + header + "\n")
	for _, line := range wrapText(c.Text, width-len(indent)-2) {
		b.WriteString(indent + "  " + m.styles.CommentBody.Render(line) + "\n")
	}

	if m.panel.Mode() == comments.ModeTopLevel {
		if n := len(m.store.RepliesOf(c.ID)); n > 0 {
			b.WriteString(indent + "  " + m.styles.ThreadMarker.Render(fmt.Sprintf("%d replies, press o to open", n)) + "\n")
		}
	}
	return b.String()
}

// viewPage renders the document pages inside the scroll window.
func (m *Model) viewPage() string {
	if len(m.pageLines) == 0 {
		if m.loading {
			return m.styles.ItemDesc.Render("  loading...")
		}
		return m.styles.ItemDesc.Render("  (empty document)")
	}

	start := m.listScroll.Offset
	end := start + m.listScroll.Height
	if end > len(m.pageLines) {
		end = len(m.pageLines)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.pageLines[i])
		b.WriteString("\n")
	}
	return b.String()
}

// viewCompose renders the comment compose form.
func (m *Model) viewCompose() string {
	if m.session == nil {
		return ""
	}

	title := "New comment"
	switch t := m.session.Target().(type) {
	case comments.TargetReply:
		title = "Reply to " + t.ParentAuthor
	case comments.TargetEdit:
		title = "Edit comment"
	}

	var b strings.Builder
	b.WriteString(m.styles.ComposeTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.composeInput.View())
	b.WriteString("\n\n")
	if m.session.Saving() {
		b.WriteString(m.styles.Saving.Render("saving..."))
	} else {
		b.WriteString(m.styles.ComposePrompt.Render("ctrl+s save · esc cancel"))
	}

	return m.styles.Compose.Render(b.String())
}

// viewFooter renders the status line: error, status message, and key help.
func (m *Model) viewFooter() string {
	if m.err != nil {
		return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	}
	if m.statusMsg != "" {
		return m.styles.FooterKey.Render(m.statusMsg)
	}
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// viewHelp renders the full keybinding overlay.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Help"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ItemDesc.Render("press any key to close"))
	return b.String()
}

func (m *Model) dateFormat() string {
	return m.container.Config.UI.DateFormat
}
