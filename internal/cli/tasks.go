package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
	"gopkg.in/yaml.v3"
)

// newTasksCommand creates the tasks command for listing a list's tasks.
func newTasksCommand() *cobra.Command {
	var opts struct {
		Output        string
		IncludeClosed bool
	}

	cmd := &cobra.Command{
		Use:   "tasks <list-id>",
		Short: "List the tasks of a list",
		Long: `List the tasks of a list in display order.

Examples:
  # Human-readable listing
  taskdeck tasks 901201234

  # Machine-readable output for scripting
  taskdeck tasks 901201234 --output json
  taskdeck tasks 901201234 --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if !c.Authenticated() {
				return domain.ErrNotAuthenticated
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				ListID:        args[0],
				IncludeClosed: opts.IncludeClosed,
			})
			if err != nil {
				return err
			}

			if out.FromCache {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: service unreachable, showing cached tasks")
			}
			return printTasks(cmd.OutOrStdout(), out.Tasks, opts.Output, c.Config.UI.DateFormat)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.IncludeClosed, "include-closed", false, "Include closed tasks")

	return cmd
}

// printTasks writes the task list in the requested format.
func printTasks(w io.Writer, tasks []*domain.Task, format, dateFormat string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(tasks)
	case "text":
		for _, t := range tasks {
			line := fmt.Sprintf("%-10s [%s] %s", t.ID, t.StatusName(), t.Name)
			if due := t.DueTime(); !due.IsZero() {
				line += fmt.Sprintf("  due %s", due.Format(dateFormat))
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}
