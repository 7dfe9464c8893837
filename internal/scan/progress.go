package scan

import "sync"

// Progress describes the status of one scan. It is a plain value;
// concurrent access goes through a Tracker.
type Progress struct {
	// TotalFolders is an estimate that grows as subfolders are
	// discovered. It is advisory, for display only.
	TotalFolders int `json:"total_folders"`

	// IndexedFolders counts directories fully processed.
	IndexedFolders int `json:"indexed_folders"`

	// TotalFiles is the cumulative entry count discovered so far.
	// It is refreshed at a bounded cadence during a scan and exact
	// once IsComplete is set.
	TotalFiles int `json:"total_files"`

	// CurrentFolder is the path last entered.
	CurrentFolder string `json:"current_folder"`

	// IsComplete is the terminal flag.
	IsComplete bool `json:"is_complete"`
}

// Tracker guards one Progress for concurrent observation. The walker
// writes into a private Tracker; a sync goroutine copies it into the
// published Tracker that poll callers read. The lock is only ever held
// for the copy, never across a filesystem call.
type Tracker struct {
	mu   sync.Mutex
	prog Progress
}

// NewTracker returns a Tracker holding a zeroed Progress.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Snapshot returns a copy of the current Progress. It never blocks on
// scan work and returns the zero value if no scan has ever run.
func (t *Tracker) Snapshot() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prog
}

// Set replaces the whole Progress record.
func (t *Tracker) Set(p Progress) {
	t.mu.Lock()
	t.prog = p
	t.mu.Unlock()
}

// EnterDir records the directory the walker just entered.
func (t *Tracker) EnterDir(path string) {
	t.mu.Lock()
	t.prog.CurrentFolder = path
	t.mu.Unlock()
}

// DirQueued bumps the estimated total by one newly discovered subfolder.
func (t *Tracker) DirQueued() {
	t.mu.Lock()
	t.prog.TotalFolders++
	t.mu.Unlock()
}

// DirDone marks one directory fully processed and refreshes the
// cumulative entry count.
func (t *Tracker) DirDone(totalEntries int) {
	t.mu.Lock()
	t.prog.IndexedFolders++
	t.prog.TotalFiles = totalEntries
	t.mu.Unlock()
}

// SetFileCount refreshes the cumulative entry count mid-directory.
func (t *Tracker) SetFileCount(n int) {
	t.mu.Lock()
	t.prog.TotalFiles = n
	t.mu.Unlock()
}

// MarkComplete sets the terminal flag with the exact final count.
func (t *Tracker) MarkComplete(totalEntries int) {
	t.mu.Lock()
	t.prog.TotalFiles = totalEntries
	t.prog.IsComplete = true
	t.mu.Unlock()
}

// Complete reports whether the terminal flag is set.
func (t *Tracker) Complete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prog.IsComplete
}
