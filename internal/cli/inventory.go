package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/swima/internal/collector"
	"github.com/roach88/swima/internal/config"
)

// InventoryOptions holds flags for the inventory command.
type InventoryOptions struct {
	*RootOptions
	IDsOnly     bool
	TargetsFile string
}

// NewInventoryCommand creates the inventory command.
func NewInventoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InventoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Collect the installed-software inventory",
		Long: `Collect the installed-software inventory from the package manager
(or the sw-collector database in identifiers-only mode) plus swidtag
files discovered under the configured directory.

Example:
  swima inventory --ids-only
  swima inventory --targets-file targets.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventory(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.IDsOnly, "ids-only", false, "collect software identifiers without tag payloads")
	cmd.Flags().StringVar(&opts.TargetsFile, "targets-file", "", "YAML file listing target software identifiers")

	return cmd
}

func runInventory(opts *InventoryOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading configuration", err)
	}

	targets, err := LoadTargets(opts.TargetsFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading targets", err)
	}

	c := collector.New(cfg, newLogger(cmd, opts.RootOptions))
	defer c.Close()

	inv, err := c.CollectInventory(cmd.Context(), opts.IDsOnly, targets)
	if err != nil {
		writeError(cmd.OutOrStdout(), opts.Format, err)
		return WrapExitError(ExitFailure, "inventory collection failed", err)
	}

	return writeInventory(cmd.OutOrStdout(), opts.Format, inv)
}
