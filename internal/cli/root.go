// Package cli wires configuration, loaders, the reconciliation engine and
// reporting into the boomi-du command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/anomredux/boomi-du/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command. Running it without a subcommand
// performs an analysis.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}
	analyze := NewAnalyzeCommand(opts)

	cmd := &cobra.Command{
		Use:           "boomi-du",
		Short:         "Disk usage of Boomi Atom processes and executions",
		Long:          "boomi-du measures how much disk space each Boomi process uses across its definition and execution history, ranks the processes and exports a CSV report.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          analyze.RunE,
	}
	cmd.Flags().AddFlagSet(analyze.Flags())

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath(), "config file path")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(analyze)
	cmd.AddCommand(NewConfigCommand(opts))
	return cmd
}
