// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/tui"
)

// Command group IDs.
const (
	groupAuth   = "auth"
	groupBrowse = "browse"
	groupMaint  = "maintenance"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it
// to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskdeck. Running it with no
// subcommand launches the interactive TUI.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "Terminal client for hierarchical task tracking",
		Long: `taskdeck is a terminal client for a hierarchical task tracker.
It browses workspaces, spaces, folders, lists, and tasks, and reads and
writes threaded task comments. Run it without arguments for the
interactive TUI, or use the subcommands for scripting.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents cobra from printing errors (main handles it)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().Bool("mock", false, "Use a built-in demo dataset instead of the real service")
	root.PersistentFlags().String("config-dir", "", "Override the config directory")

	root.AddGroup(
		&cobra.Group{ID: groupAuth, Title: "Authentication:"},
		&cobra.Group{ID: groupBrowse, Title: "Browsing:"},
		&cobra.Group{ID: groupMaint, Title: "Maintenance:"},
	)

	authCmd := newAuthCommand()
	authCmd.GroupID = groupAuth

	tasksCmd := newTasksCommand()
	tasksCmd.GroupID = groupBrowse

	commentsCmd := newCommentsCommand()
	commentsCmd.GroupID = groupBrowse

	cacheCmd := newCacheCommand()
	cacheCmd.GroupID = groupMaint

	root.AddCommand(authCmd, tasksCmd, commentsCmd, cacheCmd, newVersionCommand(version))
	return root
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the taskdeck version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskdeck %s\n", version)
		},
	}
}

// openContainer builds the application container from the persistent
// flags.
func openContainer(cmd *cobra.Command) (*app.Container, error) {
	mock, _ := cmd.Root().PersistentFlags().GetBool("mock")
	dir, _ := cmd.Root().PersistentFlags().GetString("config-dir")
	return app.New(app.Options{ConfigDir: dir, Mock: mock})
}

// launchTUI runs the interactive interface until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
