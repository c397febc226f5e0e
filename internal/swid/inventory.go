package swid

// Watermark marks the point up to which a consumer has synchronized.
// EID is only meaningful relative to Epoch; see the package doc.
type Watermark struct {
	// EID is the last event ID covered by this watermark.
	EID uint32 `json:"eid"`

	// Epoch identifies the numbering lineage EID belongs to.
	Epoch uint32 `json:"epoch"`
}

// Inventory is the ordered software-record collection built by one
// collection call. Insertion order is discovery order; duplicates are
// kept verbatim.
type Inventory struct {
	records   []Record
	watermark Watermark
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends a record. No uniqueness check: the same software ID from
// two sources yields two records.
func (inv *Inventory) Add(rec Record) {
	inv.records = append(inv.records, rec)
}

// Clear discards all records, keeping the watermark.
func (inv *Inventory) Clear() {
	inv.records = inv.records[:0]
}

// Count returns the number of records.
func (inv *Inventory) Count() int {
	return len(inv.records)
}

// Records returns the records in insertion order. The returned slice is
// the inventory's backing storage; it is valid until the next Clear.
func (inv *Inventory) Records() []Record {
	return inv.records
}

// SetWatermark sets the (event ID, epoch) pair.
func (inv *Inventory) SetWatermark(eid, epoch uint32) {
	inv.watermark = Watermark{EID: eid, Epoch: epoch}
}

// Watermark returns the current (event ID, epoch) pair.
func (inv *Inventory) Watermark() Watermark {
	return inv.watermark
}

// TargetSet filters discovery to specific software identifiers.
// An empty (or nil) set means "all".
type TargetSet []string

// Empty reports whether the set places no restriction on discovery.
func (t TargetSet) Empty() bool {
	return len(t) == 0
}

// Contains reports whether swID matches one of the targets.
func (t TargetSet) Contains(swID string) bool {
	for _, id := range t {
		if id == swID {
			return true
		}
	}
	return false
}
