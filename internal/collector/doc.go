// Package collector orchestrates the two discovery sources and exposes
// the collector's public operations.
//
// Source 1 is either the sw-collector database (identifiers-only
// requests with a configured database) or the swid_generator subprocess.
// Source 2 is always the filesystem walk over the configured swidtag
// root. Source-1 failures are fatal to the call; source-2 failures are
// logged and swallowed - the walk is best effort by documented design.
//
// A Collector is not reentrant: each operation clears and repopulates
// shared state before returning it. Operations serialize on an internal
// mutex, so concurrent callers wait rather than corrupt the inventory.
package collector
