// Package testutil provides helpers shared by collector tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

// FakeGenerator writes an executable shell script standing in for
// swid_generator and returns its path. The script body decides what to
// emit per subcommand; "$@" is available to it.
func FakeGenerator(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "swid_generator")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake generator: %v", err)
	}
	return path
}

// DiscardLogger returns a logger that swallows all output, for
// components that require one in tests.
func DiscardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// TagFile writes a minimal tag document named name under dir (creating
// it) and returns the file path.
func TagFile(t *testing.T, dir, name, regid, tagid string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	content := `<SoftwareIdentity name="` + tagid + `" tagId="` + tagid + `" regid="` + regid + `"/>`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing tag file: %v", err)
	}
	return path
}
