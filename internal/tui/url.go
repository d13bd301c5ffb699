package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Web app base for share links.
const webBaseURL = "https://app.clickup.com"

// writeClipboard is a seam for tests; clipboard access is not available
// in headless environments.
var writeClipboard = clipboard.WriteAll

// selectedURL builds the web URL for the item under the cursor, or ""
// when the current screen has nothing to link.
func (m *Model) selectedURL() string {
	switch m.screen {
	case ScreenWorkspaces:
		if m.cursor < len(m.workspaces) {
			return fmt.Sprintf("%s/%s", webBaseURL, m.workspaces[m.cursor].ID)
		}
	case ScreenSpaces:
		if m.workspaceID != "" && m.cursor < len(m.spaces) {
			return fmt.Sprintf("%s/%s/s/%s", webBaseURL, m.workspaceID, m.spaces[m.cursor].ID)
		}
	case ScreenBrowse:
		if m.workspaceID == "" {
			return ""
		}
		if m.cursor < len(m.folders) {
			return fmt.Sprintf("%s/%s/f/%s", webBaseURL, m.workspaceID, m.folders[m.cursor].ID)
		}
		if i := m.cursor - len(m.folders); i >= 0 && i < len(m.lists) {
			return fmt.Sprintf("%s/%s/l/%s", webBaseURL, m.workspaceID, m.lists[i].ID)
		}
	case ScreenLists:
		if m.workspaceID != "" && m.cursor < len(m.lists) {
			return fmt.Sprintf("%s/%s/l/%s", webBaseURL, m.workspaceID, m.lists[m.cursor].ID)
		}
	case ScreenTasks:
		if m.workspaceID != "" && m.listID != "" && m.cursor < len(m.tasks) {
			return fmt.Sprintf("%s/%s/l/%s/t/%s", webBaseURL, m.workspaceID, m.listID, m.tasks[m.cursor].ID)
		}
	case ScreenTaskDetail:
		if m.workspaceID != "" && m.listID != "" && m.task != nil {
			return fmt.Sprintf("%s/%s/l/%s/t/%s", webBaseURL, m.workspaceID, m.listID, m.task.ID)
		}
	case ScreenDocs:
		if m.workspaceID != "" && m.cursor < len(m.docs) {
			return fmt.Sprintf("%s/%s/d/%s", webBaseURL, m.workspaceID, m.docs[m.cursor].ID)
		}
	case ScreenPage:
		if m.workspaceID != "" && m.docID != "" {
			return fmt.Sprintf("%s/%s/d/%s", webBaseURL, m.workspaceID, m.docID)
		}
	}
	return ""
}

// copyURL copies the current item's web URL to the system clipboard and
// reports the outcome in the status line.
func (m *Model) copyURL() {
	url := m.selectedURL()
	if url == "" {
		m.statusMsg = "nothing to copy here"
		return
	}
	if err := writeClipboard(url); err != nil {
		m.err = fmt.Errorf("clipboard: %w", err)
		return
	}
	m.statusMsg = "copied " + url
}
