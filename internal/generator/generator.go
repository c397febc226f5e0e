// Package generator invokes the external swid_generator tool and feeds
// its standard output through the tag stream reader.
//
// Commands are spawned with an explicit argument vector; no shell is
// involved. Target identifiers come from network input and are checked
// against the identifier grammar before they reach the argument vector.
package generator

import (
	"context"
	"io"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/roach88/swima/internal/swid"
	"github.com/roach88/swima/internal/tags"
)

// docSeparator is the document boundary the generator is asked to emit
// between consecutive tags in full-tag mode.
const docSeparator = "\n\n"

// Generator runs the swid_generator executable.
type Generator struct {
	// Path is the generator executable path.
	Path string

	// Pretty forwards --pretty to the generator in full-tag mode.
	Pretty bool

	// Full forwards --full to the generator in full-tag mode.
	Full bool

	// Log receives diagnostic output. Must not be nil.
	Log logrus.FieldLogger
}

// Collect runs the generator and appends the resulting records to inv.
//
// Without targets it runs a single command: `software-id` in
// identifiers-only mode, `swid --doc-separator ...` in full-tag mode.
// With targets it runs one `swid --software-id <id>` command per target
// (full-tag mode only; identifiers-only with targets collects nothing).
// The first failing target aborts the remaining ones; records collected
// for earlier targets are kept.
func (g *Generator) Collect(ctx context.Context, inv *swid.Inventory, swIDOnly bool, targets swid.TargetSet) error {
	if targets.Empty() {
		if swIDOnly {
			g.Log.Debug("software identifier generation by package manager")
			return g.run(ctx, inv, swIDOnly, []string{"software-id"})
		}
		g.Log.Debug("tag generation by package manager")
		return g.run(ctx, inv, swIDOnly, g.tagArgs("--doc-separator", docSeparator))
	}

	if swIDOnly {
		// Targeted identifier-only generation is not supported.
		return nil
	}

	for _, target := range targets {
		if err := swid.ValidateSoftwareID(target); err != nil {
			return err
		}
		if err := g.run(ctx, inv, swIDOnly, g.tagArgs("--software-id", target)); err != nil {
			return err
		}
	}
	return nil
}

// tagArgs assembles the argument vector for a full-tag invocation.
func (g *Generator) tagArgs(selector, value string) []string {
	args := []string{"swid", selector, value}
	if g.Pretty {
		args = append(args, "--pretty")
	}
	if g.Full {
		args = append(args, "--full")
	}
	return args
}

// run spawns one generator command and reads its standard output.
func (g *Generator) run(ctx context.Context, inv *swid.Inventory, swIDOnly bool, args []string) error {
	cmd := exec.CommandContext(ctx, g.Path, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return swid.WrapStatusError(swid.StatusNotSupported, "connecting to swid_generator output", err)
	}
	if err := cmd.Start(); err != nil {
		g.Log.WithError(err).Warn("failed to run swid_generator command")
		return swid.WrapStatusError(swid.StatusNotSupported, "starting swid_generator", err)
	}

	var readErr error
	if swIDOnly {
		readErr = tags.ReadIDs(stdout, inv)
	} else {
		readErr = tags.ReadTags(stdout, inv)
	}
	if readErr != nil {
		// Drain so Wait cannot block on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()
	if readErr != nil {
		return readErr
	}
	if waitErr != nil {
		g.Log.WithError(waitErr).Warn("swid_generator command failed")
		return swid.WrapStatusError(swid.StatusNotSupported, "swid_generator exited unsuccessfully", waitErr)
	}
	return nil
}
