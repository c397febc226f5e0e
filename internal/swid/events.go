package swid

// Event is one install/remove occurrence from the sw-collector database.
// EventID is monotonic within its epoch only.
type Event struct {
	// EventID numbers the synchronization tick the event belongs to.
	EventID uint32 `json:"eid"`

	// Timestamp is the tick's timestamp as stored, an opaque text value.
	Timestamp string `json:"timestamp"`

	// Action distinguishes install from remove.
	Action Action `json:"action"`

	// Record is the affected software record.
	Record Record `json:"record"`
}

// EventLog is the ordered event collection built by one collect-events
// call, carrying the watermark the query resumed from.
type EventLog struct {
	events    []Event
	watermark Watermark
}

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Add appends an event.
func (l *EventLog) Add(ev Event) {
	l.events = append(l.events, ev)
}

// Clear discards all events, keeping the watermark.
func (l *EventLog) Clear() {
	l.events = l.events[:0]
}

// Count returns the number of events.
func (l *EventLog) Count() int {
	return len(l.events)
}

// Events returns the events in insertion order. The returned slice is
// the log's backing storage; it is valid until the next Clear.
func (l *EventLog) Events() []Event {
	return l.events
}

// SetWatermark sets the (event ID, epoch) pair.
func (l *EventLog) SetWatermark(eid, epoch uint32) {
	l.watermark = Watermark{EID: eid, Epoch: epoch}
}

// Watermark returns the current (event ID, epoch) pair.
func (l *EventLog) Watermark() Watermark {
	return l.watermark
}

// Earliest returns the event ID an incremental query should resume from:
// the watermark's event ID.
func (l *EventLog) Earliest() uint32 {
	return l.watermark.EID
}
