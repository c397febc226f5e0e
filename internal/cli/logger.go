package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newLogger builds the command's diagnostic logger. Diagnostics go to
// stderr so JSON output on stdout stays parseable.
func newLogger(cmd *cobra.Command, opts *RootOptions) logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
