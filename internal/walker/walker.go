// Package walker discovers pre-existing swidtag files under a root
// directory.
//
// The walk is an explicit depth-first recursion so the swidtag discovery
// mode can be threaded through it: a directory literally named "swidtag"
// switches its whole subtree into tag mode, and the mode is never turned
// off by a deeper directory. While not in tag mode, regular files are
// ignored.
package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/roach88/swima/internal/swid"
	"github.com/roach88/swima/internal/tags"
)

// tagDirName triggers tag-discovery mode for its subtree.
const tagDirName = "swidtag"

// tagFileMark identifies tag files by name while in tag mode.
const tagFileMark = ".swidtag"

// DefaultSkipDirs are distribution documentation/help/icon directories
// the walker never enters. Matching is by exact absolute path.
var DefaultSkipDirs = []string{
	"/usr/share/doc",
	"/usr/share/help",
	"/usr/share/icons",
	"/usr/share/gnome/help",
}

// Walker collects swidtag files below Root.
type Walker struct {
	// Root is the discovery root. An empty Root disables discovery;
	// Collect then succeeds without doing anything.
	Root string

	// SkipDirs overrides DefaultSkipDirs when non-nil.
	SkipDirs []string

	// Log receives diagnostic output. Must not be nil.
	Log logrus.FieldLogger
}

// Collect walks the tree under Root and appends one collector-sourced
// record per discovered tag file to inv. With a non-empty target set,
// files whose extracted identifier matches no target are skipped. The
// raw tag payload is attached only when swIDOnly is false.
//
// The first directory, read, or extraction failure aborts the whole
// walk; records appended before the failure are kept. Callers treat the
// walk as best effort (see the collector package).
func (w *Walker) Collect(inv *swid.Inventory, swIDOnly bool, targets swid.TargetSet) error {
	if w.Root == "" {
		return nil
	}
	return w.collectDir(inv, w.Root, swIDOnly, targets, false)
}

// collectDir processes one directory level. inTagMode is sticky: once a
// swidtag directory has been entered, every descendant inherits it.
func (w *Walker) collectDir(inv *swid.Inventory, dir string, swIDOnly bool, targets swid.TargetSet, inTagMode bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.Log.WithError(err).Warnf("directory %q can not be opened", dir)
		return swid.WrapStatusError(swid.StatusFailed, "opening directory "+dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if w.skip(path) {
				continue
			}
			isTagDir := name == tagDirName
			if isTagDir {
				w.Log.Debugf("entering %s", dir)
			}
			if err := w.collectDir(inv, path, swIDOnly, targets, inTagMode || isTagDir); err != nil {
				return err
			}
			if isTagDir {
				w.Log.Debugf("leaving %s", dir)
			}
			continue
		}

		if !inTagMode || !strings.Contains(name, tagFileMark) {
			continue
		}

		tag, err := os.ReadFile(path)
		if err != nil {
			w.Log.WithError(err).Warnf("opening %q failed", path)
			return swid.WrapStatusError(swid.StatusFailed, "reading tag file "+path, err)
		}

		swID, err := tags.Extract(tag)
		if err != nil {
			w.Log.Warn("software id could not be extracted from tag file ", path)
			return err
		}

		if !targets.Empty() && !targets.Contains(swID) {
			continue
		}
		w.Log.Debugf("  %s", name)

		rec := swid.Record{
			SoftwareID: swID,
			Locator:    locator(dir),
			Source:     swid.SourceCollector,
		}
		if !swIDOnly {
			rec.Tag = tag
		}
		inv.Add(rec)
	}

	return nil
}

// skip reports whether path exactly matches the exclusion list.
func (w *Walker) skip(path string) bool {
	skipDirs := w.SkipDirs
	if skipDirs == nil {
		skipDirs = DefaultSkipDirs
	}
	for _, d := range skipDirs {
		if path == d {
			return true
		}
	}
	return false
}

// locator returns the path prefix preceding the first "/swidtag" segment
// of dir, or "" when dir contains none.
func locator(dir string) string {
	if i := strings.Index(dir, "/"+tagDirName); i >= 0 {
		return dir[:i]
	}
	return ""
}
