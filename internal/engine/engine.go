// Package engine owns the process-wide launcher state: the committed
// index snapshot, the published scan progress, and the single-scan
// guard. It is the in-process command surface consumed by the CLI and
// the interactive front-end.
package engine

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"lantern/internal/entry"
	"lantern/internal/index"
	"lantern/internal/scan"
)

// defaultSyncInterval is the cadence at which the scan's private
// progress is copied into the published tracker.
const defaultSyncInterval = 200 * time.Millisecond

// Engine coordinates scans and queries. At most one scan runs at a
// time; queries only ever read the committed snapshot, so they never
// block on scan work.
type Engine struct {
	root      string
	opts      *scan.Options
	indexPath string

	store    *index.Store
	tracker  *scan.Tracker
	scanning atomic.Bool

	syncInterval time.Duration
}

// New creates an Engine scanning root with the given options and
// persisting the index at indexPath. An empty indexPath disables
// persistence entirely.
func New(root string, opts *scan.Options, indexPath string) *Engine {
	if opts == nil {
		opts = scan.DefaultOptions()
	}
	return &Engine{
		root:         root,
		opts:         opts,
		indexPath:    indexPath,
		store:        index.NewStore(),
		tracker:      scan.NewTracker(),
		syncInterval: defaultSyncInterval,
	}
}

// SetSyncInterval overrides the progress-sync cadence.
func (e *Engine) SetSyncInterval(d time.Duration) {
	if d > 0 {
		e.syncInterval = d
	}
}

// StartScan begins a full background scan and returns immediately.
// If a scan is already running the call is a no-op, not an error.
// A missing or non-directory root fails fast: no background work is
// spawned and the scan flag is left clear.
func (e *Engine) StartScan() error {
	info, err := os.Stat(e.root)
	if err != nil {
		return fmt.Errorf("scan root unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan root is not a directory: %s", e.root)
	}

	if !e.scanning.CompareAndSwap(false, true) {
		return nil
	}

	go e.runScan()
	return nil
}

// runScan owns a private tracker for the duration of the walk. A
// helper goroutine copies it into the published tracker at a fixed
// cadence, decoupling lock-hold time on the shared record from the
// per-directory listing work, and pushes one final exact copy once
// the walk marks itself complete.
func (e *Engine) runScan() {
	defer e.scanning.Store(false)

	live := scan.NewTracker()
	live.Set(scan.Progress{TotalFolders: 1})

	walkDone := make(chan struct{})
	syncDone := make(chan struct{})
	go func() {
		defer close(syncDone)
		ticker := time.NewTicker(e.syncInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				e.tracker.Set(live.Snapshot())
			case <-walkDone:
				// Final exact copy, published without waiting for
				// the next tick.
				e.tracker.Set(live.Snapshot())
				return
			}
		}
	}()

	entries := scan.Walk(e.root, e.opts, live)
	live.MarkComplete(len(entries))
	close(walkDone)
	<-syncDone

	e.store.Replace(entries)

	if e.indexPath == "" {
		return
	}
	if err := index.Save(e.indexPath, entries); err != nil {
		// The in-memory index stays authoritative for this session;
		// only durability across restarts is affected.
		fmt.Fprintf(os.Stderr, "warning: failed to persist index: %v\n", err)
	}
}

// Progress returns the latest published scan progress. It never
// blocks and returns a zeroed record if no scan has ever run.
func (e *Engine) Progress() scan.Progress {
	return e.tracker.Snapshot()
}

// Scanning reports whether a scan is currently active.
func (e *Engine) Scanning() bool {
	return e.scanning.Load()
}

// Search returns ranked matches from the committed snapshot. Queries
// issued during a scan see the previous snapshot (or nothing, if none
// was ever committed) until the scan commits.
func (e *Engine) Search(query string) []entry.Entry {
	return index.Search(query, e.store.Snapshot())
}

// Count returns the size of the committed snapshot.
func (e *Engine) Count() int {
	return e.store.Count()
}

// Root returns the configured scan root.
func (e *Engine) Root() string {
	return e.root
}

// LoadPersistedIndex hydrates the store from the persisted index.
// It reports false for a missing or malformed file and leaves the
// in-memory index untouched in that case. On success the published
// progress reflects the loaded count as a completed scan.
func (e *Engine) LoadPersistedIndex() bool {
	entries, ok := index.Load(e.indexPath)
	if !ok {
		return false
	}
	e.store.Replace(entries)
	e.tracker.Set(scan.Progress{
		TotalFiles: len(entries),
		IsComplete: true,
	})
	return true
}
