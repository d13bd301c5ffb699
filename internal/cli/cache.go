package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCacheCommand creates the cache command with its clear and path
// subcommands.
func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the offline cache",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all cached data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if err := c.Cache.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the cache file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := openContainer(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			fmt.Fprintln(cmd.OutOrStdout(), c.Paths.CacheFile)
			return nil
		},
	}

	cmd.AddCommand(clearCmd, pathCmd)
	return cmd
}
