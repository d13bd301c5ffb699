package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestSelectedURL(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.workspaces = []domain.Workspace{{ID: "ws-1"}}
	m.spaces = []domain.Space{{ID: "sp-1"}}
	m.folders = []domain.Folder{{ID: "fo-1"}}
	m.lists = []domain.List{{ID: "li-1"}}
	m.tasks = []*domain.Task{{ID: "ta-1"}}
	m.docs = []domain.Document{{ID: "do-1"}}
	m.workspaceID = "ws-1"
	m.listID = "li-1"
	m.docID = "do-1"
	m.task = &domain.Task{ID: "ta-1"}

	tests := []struct {
		name   string
		screen Screen
		cursor int
		want   string
	}{
		{"workspace", ScreenWorkspaces, 0, "https://app.clickup.com/ws-1"},
		{"space", ScreenSpaces, 0, "https://app.clickup.com/ws-1/s/sp-1"},
		{"browse folder", ScreenBrowse, 0, "https://app.clickup.com/ws-1/f/fo-1"},
		{"browse list", ScreenBrowse, 1, "https://app.clickup.com/ws-1/l/li-1"},
		{"list", ScreenLists, 0, "https://app.clickup.com/ws-1/l/li-1"},
		{"task", ScreenTasks, 0, "https://app.clickup.com/ws-1/l/li-1/t/ta-1"},
		{"task detail", ScreenTaskDetail, 0, "https://app.clickup.com/ws-1/l/li-1/t/ta-1"},
		{"doc", ScreenDocs, 0, "https://app.clickup.com/ws-1/d/do-1"},
		{"page", ScreenPage, 0, "https://app.clickup.com/ws-1/d/do-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.screen = tt.screen
			m.cursor = tt.cursor
			assert.Equal(t, tt.want, m.selectedURL())
		})
	}
}

func TestSelectedURL_emptyList(t *testing.T) {
	m := newTestModel(testutil.NewMockAPI())
	m.screen = ScreenWorkspaces
	assert.Empty(t, m.selectedURL())
}

func TestCopyURL_writesClipboard(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := newTestModel(testutil.NewMockAPI())
	m.Update(MsgWorkspacesLoaded{Workspaces: []domain.Workspace{{ID: "ws-1", Name: "Acme"}}})

	m.Update(keyRune('u'))
	assert.Equal(t, "https://app.clickup.com/ws-1", copied)
	assert.Contains(t, m.statusMsg, "copied")
}

func TestCopyURL_clipboardFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return assert.AnError }
	t.Cleanup(func() { writeClipboard = orig })

	m := newTestModel(testutil.NewMockAPI())
	m.Update(MsgWorkspacesLoaded{Workspaces: []domain.Workspace{{ID: "ws-1", Name: "Acme"}}})

	m.Update(keyRune('u'))
	assert.ErrorContains(t, m.err, "clipboard")
}
