package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spliit/internal/config"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration file operations",
	}
	configCmd.AddCommand(newConfigInitCommand(opts), newConfigShowCommand(opts))
	return configCmd
}

func newConfigInitCommand(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default " + config.DefaultPath + " (or the --config path)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			switch {
			case len(args) > 0:
				path = args[0]
			case opts.configPath != "":
				path = opts.configPath
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("checking %s: %w", path, err)
				}
			}

			cfg := config.Default()
			cfg.GroupID = opts.groupID
			if opts.baseURL != "" {
				cfg.BaseURL = opts.baseURL
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "group_id: %s\n", cfg.GroupID)
			fmt.Fprintf(out, "base_url: %s\n", cfg.BaseURL)
			fmt.Fprintf(out, "timeout: %s\n", cfg.Timeout)
			fmt.Fprintf(out, "max_pages: %d\n", cfg.MaxPages)
			fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
			return nil
		},
	}
}
