package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// newAuthCommand creates the auth command with its login, logout, and
// status subcommands.
func newAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the API token",
	}
	cmd.AddCommand(newLoginCommand(), newLogoutCommand(), newAuthStatusCommand())
	return cmd
}

func newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [token]",
		Short: "Validate and store an API token",
		Long: `Validate an API token against the service and store it.

The token can be passed as an argument or entered on stdin, which keeps
it out of the shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			tok := ""
			if len(args) == 1 {
				tok = args[0]
			} else {
				fmt.Fprint(cmd.OutOrStdout(), "Token: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read token: %w", err)
				}
				tok = strings.TrimSpace(line)
			}

			out, err := c.LoginUseCase().Execute(cmd.Context(), usecase.LoginInput{Token: tok})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", out.User.Username)
			return nil
		},
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if err := c.LogoutUseCase().Execute(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newAuthStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a valid token is stored",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			out, err := c.AuthStatusUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if !out.Authenticated {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", out.User.Username)
			return nil
		},
	}
}
