// Package swid defines the data vocabulary shared by every collector
// component: software records, the per-request inventory and event log,
// the (event ID, epoch) watermark, target sets, and the status-coded
// error type used across package boundaries.
//
// # Identity and Ordering
//
// A record's identity is its software identifier, the canonical string
// "<regid>__<tagId>". The inventory does NOT enforce uniqueness: the same
// identifier discovered by two independent sources produces two records,
// and consumers may rely on seeing both.
//
// Insertion order is discovery order. The inventory and event log are
// cleared and repopulated at the start of every collection call; they
// never accumulate across calls.
//
// # Epochs
//
// Event IDs are only comparable within a single epoch. A consumer that
// observes a different epoch than its cached watermark must discard all
// incremental state and resynchronize from a full inventory.
package swid
