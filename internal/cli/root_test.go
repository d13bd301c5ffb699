package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/app"
)

// execute runs the root command with the given args against a temporary
// config dir and the mock service, returning stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container) error { return nil }
	t.Cleanup(func() { launchTUIFunc = orig })

	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--mock", "--config-dir", t.TempDir()))

	err := root.Execute()
	return out.String(), err
}

func TestRoot_NoArgsLaunchesTUI(t *testing.T) {
	launched := false
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container) error {
		launched = true
		return nil
	}
	defer func() { launchTUIFunc = orig }()

	root := NewRootCommand("test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--mock", "--config-dir", t.TempDir()})

	require.NoError(t, root.Execute())
	assert.True(t, launched)
}

func TestAuthLogin_Mock(t *testing.T) {
	out, err := execute(t, "auth", "login", "pk_demo_token")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as demo")
}

func TestAuthStatus_NotLoggedIn(t *testing.T) {
	out, err := execute(t, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

func TestTasks_TextOutput(t *testing.T) {
	out, err := execute(t, "tasks", "list-1")
	require.NoError(t, err)
	assert.Contains(t, out, "task-1")
	assert.Contains(t, out, "Fix login redirect loop")
	// task-1 carries a due date in the mock data.
	assert.Contains(t, out, "due ")
}

func TestTasks_JSONOutput(t *testing.T) {
	out, err := execute(t, "tasks", "list-1", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "task-1"`)
}

func TestTasks_YAMLOutput(t *testing.T) {
	out, err := execute(t, "tasks", "list-1", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "task-1")
}

func TestTasks_UnknownFormat(t *testing.T) {
	_, err := execute(t, "tasks", "list-1", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestComments_ThreadedListing(t *testing.T) {
	out, err := execute(t, "comments", "task-1")
	require.NoError(t, err)
	assert.Contains(t, out, "comment-1")
	// The header line carries the formatted creation timestamp.
	assert.Regexp(t, `comment-1\s+alice\s+[A-Z][a-z]{2} \d{2}, \d{4}`, out)
}

func TestCommentsAdd_Reply(t *testing.T) {
	out, err := execute(t, "comments", "add", "task-1", "confirmed", "--reply-to", "comment-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Posted comment")
}

func TestCachePath(t *testing.T) {
	out, err := execute(t, "cache", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "cache.json")
}

func TestCacheClear(t *testing.T) {
	out, err := execute(t, "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared")
}
