package collector

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/roach88/swima/internal/config"
	"github.com/roach88/swima/internal/generator"
	"github.com/roach88/swima/internal/store"
	"github.com/roach88/swima/internal/swid"
	"github.com/roach88/swima/internal/walker"
)

// Collector builds software inventories and event deltas on request.
type Collector struct {
	mu sync.Mutex

	cfg config.Config
	log logrus.FieldLogger

	// db is nil when no collector database is configured or reachable;
	// the collector then runs in discovery-only mode.
	db *store.Store

	inventory *swid.Inventory
	events    *swid.EventLog
}

// New creates a collector from an explicit configuration.
//
// If a database URI is configured, New connects and adopts the latest
// (event ID, epoch) watermark. On any failure - connect or query - the
// connection is discarded and the collector falls back to the configured
// epoch with event ID 1; it stays fully functional without a backing
// store.
func New(cfg config.Config, log logrus.FieldLogger) *Collector {
	c := &Collector{
		cfg:       cfg,
		log:       log,
		inventory: swid.NewInventory(),
		events:    swid.NewEventLog(),
	}

	lastEID := uint32(1)
	epoch := cfg.Epoch

	if cfg.Database != "" {
		db, err := store.Open(cfg.Database)
		if err != nil {
			log.WithError(err).Warnf("opening sw-collector database URI %q failed", cfg.Database)
		} else {
			eid, dbEpoch, err := db.LatestWatermark(context.Background())
			if err != nil {
				log.WithError(err).Warn("database query for last event failed")
				db.Close()
			} else {
				// The query worked, keep the connection for the
				// collector's lifetime.
				c.db = db
				lastEID, epoch = eid, dbEpoch
			}
		}
	}

	c.inventory.SetWatermark(lastEID, epoch)
	c.events.SetWatermark(lastEID, epoch)

	return c
}

// Close releases the database connection, if any.
func (c *Collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// CollectInventory clears and rebuilds the inventory from both sources
// and returns it.
//
// Source 1 is the database query when swIDOnly is set and a database is
// attached, the generator otherwise; its failure fails the call. Source
// 2 is the filesystem walk; its failure is logged and swallowed. The
// returned inventory is owned by the collector and valid until the next
// operation.
func (c *Collector) CollectInventory(ctx context.Context, swIDOnly bool, targets swid.TargetSet) (*swid.Inventory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inventory.Clear()

	var err error
	if swIDOnly && c.db != nil {
		err = c.db.ReadInstalled(ctx, c.inventory)
	} else {
		gen := &generator.Generator{
			Path:   c.cfg.Generator,
			Pretty: c.cfg.Pretty,
			Full:   c.cfg.Full,
			Log:    c.log,
		}
		err = gen.Collect(ctx, c.inventory, swIDOnly, targets)
	}

	// Source 2 runs regardless of source 1's outcome; its own failure
	// never overrides a source-1 success.
	w := &walker.Walker{Root: c.cfg.Directory, Log: c.log}
	if walkErr := w.Collect(c.inventory, swIDOnly, targets); walkErr != nil {
		c.log.WithError(walkErr).Warn("swidtag file collection failed")
	}

	if err != nil {
		return nil, err
	}
	return c.inventory, nil
}

// CollectEvents clears and rebuilds the event delta from the attached
// database, resuming from the adopted watermark.
//
// Only meaningful for identifiers-only requests with an attached
// database; otherwise it fails with UNAVAILABLE. The returned log is
// owned by the collector and valid until the next operation.
func (c *Collector) CollectEvents(ctx context.Context, swIDOnly bool, targets swid.TargetSet) (*swid.EventLog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !swIDOnly || c.db == nil {
		return nil, swid.NewStatusError(swid.StatusUnavailable,
			"event collection requires identifiers-only mode and a collector database")
	}

	c.events.Clear()

	if err := c.db.ReadEventsSince(ctx, c.events, c.events.Earliest()); err != nil {
		return nil, err
	}
	return c.events, nil
}
