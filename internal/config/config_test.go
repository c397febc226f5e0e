package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "", cfg.Directory)
	require.Equal(t, DefaultGenerator, cfg.Generator)
	require.False(t, cfg.Pretty)
	require.False(t, cfg.Full)
	require.Equal(t, "", cfg.Database)
	require.Equal(t, uint32(DefaultEpoch), cfg.Epoch)
}

func TestLoad_NoFileYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swima.yaml")
	content := `swid_directory: /opt/tags
swid_generator: /opt/bin/swid_generator
swid_pretty: true
swid_full: true
swid_database: /var/lib/swima/collector.db
eid_epoch: 4660
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/opt/tags", cfg.Directory)
	require.Equal(t, "/opt/bin/swid_generator", cfg.Generator)
	require.True(t, cfg.Pretty)
	require.True(t, cfg.Full)
	require.Equal(t, "/var/lib/swima/collector.db", cfg.Database)
	require.Equal(t, uint32(0x1234), cfg.Epoch)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swima.yaml")
	require.NoError(t, os.WriteFile(path, []byte("swid_directory: /from-file\n"), 0o644))

	t.Setenv("SWIMA_SWID_DIRECTORY", "/from-env")
	t.Setenv("SWIMA_SWID_PRETTY", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/from-env", cfg.Directory)
	require.True(t, cfg.Pretty)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
