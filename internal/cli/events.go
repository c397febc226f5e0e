package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/swima/internal/collector"
	"github.com/roach88/swima/internal/config"
)

// EventsOptions holds flags for the events command.
type EventsOptions struct {
	*RootOptions
	TargetsFile string
}

// NewEventsCommand creates the events command.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EventsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Collect install/remove events since the last watermark",
		Long: `Collect the install/remove event delta from the sw-collector
database, starting at the watermark adopted when the collector connected.
Requires swid_database to be configured; events are identifier-only.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.TargetsFile, "targets-file", "", "YAML file listing target software identifiers")

	return cmd
}

func runEvents(opts *EventsOptions, cmd *cobra.Command) error {
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

	// Event deltas only exist in identifiers-only form.
	log, err := c.CollectEvents(cmd.Context(), true, targets)
	if err != nil {
		writeError(cmd.OutOrStdout(), opts.Format, err)
		return WrapExitError(ExitFailure, "event collection failed", err)
	}

	return writeEvents(cmd.OutOrStdout(), opts.Format, log)
}
