package swid

import "strconv"

// Source identifies where a record was discovered. Values 1 and 2 are
// fixed by the collector; records read back from the sw-collector
// database carry whatever numeric source code was persisted.
type Source uint32

const (
	// SourceGenerator marks records produced by the swid_generator tool.
	SourceGenerator Source = 1

	// SourceCollector marks records discovered as swidtag files on disk.
	SourceCollector Source = 2
)

// String renders known source codes symbolically and unknown persisted
// codes numerically.
func (s Source) String() string {
	switch s {
	case SourceGenerator:
		return "generator"
	case SourceCollector:
		return "collector"
	default:
		return "source(" + strconv.FormatUint(uint64(s), 10) + ")"
	}
}

// Action distinguishes install and remove events. The numeric values
// match the sw_events.action column of the sw-collector schema.
type Action uint8

const (
	// ActionInstall records a software installation.
	ActionInstall Action = 1

	// ActionRemove records a software removal.
	ActionRemove Action = 2
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case ActionInstall:
		return "install"
	case ActionRemove:
		return "remove"
	default:
		return "action(" + strconv.FormatUint(uint64(a), 10) + ")"
	}
}

// Record is one installed-software entry.
//
// RecordID is the persisted row ID; zero means the record is ephemeral
// (discovered this call, never written anywhere). Tag holds the full tag
// document only when the request asked for full payloads.
type Record struct {
	// RecordID is the sw_identifiers row ID, or 0 for ephemeral records.
	RecordID uint32 `json:"record_id,omitempty"`

	// SoftwareID is the canonical "<regid>__<tagId>" identifier.
	SoftwareID string `json:"software_id"`

	// Locator is an optional filesystem path hint for file-discovered tags.
	Locator string `json:"locator,omitempty"`

	// Source identifies the discovery source.
	Source Source `json:"source"`

	// Tag is the raw tag document, present only in full-tag mode.
	Tag []byte `json:"tag,omitempty"`
}