package store

import (
	"context"

	"github.com/roach88/swima/internal/swid"
)

// ReadInstalled appends every identifier flagged installed to inv,
// ordered by name. Records carry the numeric source code that was
// persisted when the identifier was collected.
func (s *Store) ReadInstalled(ctx context.Context, inv *swid.Inventory) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, source FROM sw_identifiers WHERE installed = 1
		ORDER BY name ASC
	`)
	if err != nil {
		return swid.WrapStatusError(swid.StatusFailed, "database query for installed sw_identifiers failed", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recordID uint32
			name     string
			source   uint32
		)
		if err := rows.Scan(&recordID, &name, &source); err != nil {
			return swid.WrapStatusError(swid.StatusFailed, "scan sw_identifier", err)
		}
		inv.Add(swid.Record{
			RecordID:   recordID,
			SoftwareID: name,
			Source:     swid.Source(source),
		})
	}

	if err := rows.Err(); err != nil {
		return swid.WrapStatusError(swid.StatusFailed, "iterate sw_identifiers", err)
	}

	return nil
}

// ReadEventsSince appends every event with an event ID at or above
// earliest to log, ordered by (event ID, name, action), each joined with
// its software record.
func (s *Store) ReadEventsSince(ctx context.Context, log *swid.EventLog, earliest uint32) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.timestamp, i.id, i.name, i.source, s.action
		FROM sw_events AS s JOIN events AS e ON s.eid = e.id
		JOIN sw_identifiers AS i ON s.sw_id = i.id
		WHERE s.eid >= ?
		ORDER BY s.eid, i.name, s.action ASC
	`, earliest)
	if err != nil {
		return swid.WrapStatusError(swid.StatusFailed, "database query for sw_events failed", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			eid       uint32
			timestamp string
			recordID  uint32
			name      string
			source    uint32
			action    uint32
		)
		if err := rows.Scan(&eid, &timestamp, &recordID, &name, &source, &action); err != nil {
			return swid.WrapStatusError(swid.StatusFailed, "scan sw_event", err)
		}
		log.Add(swid.Event{
			EventID:   eid,
			Timestamp: timestamp,
			Action:    swid.Action(action),
			Record: swid.Record{
				RecordID:   recordID,
				SoftwareID: name,
				Source:     swid.Source(source),
			},
		})
	}

	if err := rows.Err(); err != nil {
		return swid.WrapStatusError(swid.StatusFailed, "iterate sw_events", err)
	}

	return nil
}
