package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/tui/comments"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newCommentsCommand creates the comments command for reading and writing
// task comments.
func newCommentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments <task-id>",
		Short: "Show a task's comment threads",
		Long: `Show a task's comments, threaded: top-level comments newest first,
each followed by its replies oldest first.`,
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

			out, err := c.LoadCommentsUseCase().Execute(cmd.Context(), usecase.LoadCommentsInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			if out.FromCache {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: service unreachable, showing cached comments")
			}
			return printThreads(cmd.OutOrStdout(), out.Comments, c.Config.UI.DateFormat)
		},
	}

	cmd.AddCommand(newCommentAddCommand(), newCommentEditCommand())
	return cmd
}

func newCommentAddCommand() *cobra.Command {
	var replyTo string

	cmd := &cobra.Command{
		Use:   "add <task-id> <text>",
		Short: "Post a comment or a reply",
		Long: `Post a top-level comment on a task, or a reply under an existing
comment with --reply-to.

Examples:
  taskdeck comments add 86c2x4y "Deploy went out at noon"
  taskdeck comments add 86c2x4y "Confirmed" --reply-to 9012734`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if !c.Authenticated() {
				return domain.ErrNotAuthenticated
			}

			in := usecase.CreateCommentInput{TaskID: args[0], Text: args[1]}
			if replyTo != "" {
				in.ParentID = &replyTo
			}
			out, err := c.CreateCommentUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Posted comment %s\n", out.Comment.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&replyTo, "reply-to", "", "Post as a reply under this comment id")
	return cmd
}

func newCommentEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <comment-id> <text>",
		Short: "Replace a comment's text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if !c.Authenticated() {
				return domain.ErrNotAuthenticated
			}

			out, err := c.UpdateCommentUseCase().Execute(cmd.Context(), usecase.UpdateCommentInput{
				CommentID: args[0],
				Text:      args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated comment %s\n", out.Comment.ID)
			return nil
		},
	}
}

// printThreads writes the comments threaded, reusing the panel's ordering
// rules.
func printThreads(w io.Writer, cs []domain.Comment, dateFormat string) error {
	store := comments.NewStore()
	store.Load(cs)

	for _, top := range store.TopLevel() {
		if err := printComment(w, top, "", dateFormat); err != nil {
			return err
		}
		for _, reply := range store.RepliesOf(top.ID) {
			if err := printComment(w, reply, "    ", dateFormat); err != nil {
				return err
			}
		}
	}
	return nil
}

func printComment(w io.Writer, c domain.Comment, indent, dateFormat string) error {
	header := c.AuthorName()
	if ts := c.CreatedTime(); !ts.IsZero() {
		header += "  " + ts.Format(dateFormat)
	}
	if c.Edited() {
		header += "  (edited)"
	}
	if _, err := fmt.Fprintf(w, "%s%s  %s\n", indent, c.ID, header); err != nil {
		return err
	}
	for _, line := range strings.Split(c.Text, "\n") {
		if _, err := fmt.Fprintf(w, "%s  %s\n", indent, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
