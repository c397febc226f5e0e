package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/swima/internal/testutil"
)

func TestRootCommand_RejectsInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"inventory", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid format")
}

func TestInventoryCommand_EndToEnd(t *testing.T) {
	gen := testutil.FakeGenerator(t, `
if [ "$1" = "swid" ]; then
	printf '<SoftwareIdentity tagId="T1" regid="R"/>\n\n'
	printf '<SoftwareIdentity tagId="T2" regid="R"/>\n'
fi`)

	cfgPath := filepath.Join(t.TempDir(), "swima.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("swid_generator: "+gen+"\n"), 0o644))

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"inventory", "--config", cfgPath})

	require.NoError(t, cmd.Execute())
	require.Equal(t,
		"2 software records (eid 1, epoch 287454020)\n"+
			"[generator] R__T1\n"+
			"[generator] R__T2\n",
		out.String())
}

func TestEventsCommand_UnavailableWithoutDatabase(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"events"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Equal(t, ExitFailure, GetExitCode(err))
	require.Contains(t, out.String(), "UNAVAILABLE")
}
