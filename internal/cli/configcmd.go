package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/anomredux/boomi-du/internal/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(newConfigInitCommand(rootOpts))
	cmd.AddCommand(newConfigShowCommand(rootOpts))
	return cmd
}

func newConfigInitCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:           "init",
		Short:         "Write a config file with the default settings",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rootOpts.ConfigPath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}
			if err := config.Save(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Print the effective configuration",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
}
