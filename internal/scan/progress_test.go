package scan

import (
	"sync"
	"testing"
)

func TestTrackerZeroValueSnapshot(t *testing.T) {
	tr := NewTracker()
	p := tr.Snapshot()
	if p.TotalFolders != 0 || p.IndexedFolders != 0 || p.TotalFiles != 0 ||
		p.CurrentFolder != "" || p.IsComplete {
		t.Fatalf("expected zeroed progress before any scan, got %+v", p)
	}
}

func TestTrackerUpdates(t *testing.T) {
	tr := NewTracker()
	tr.Set(Progress{TotalFolders: 1})
	tr.EnterDir("/home/user")
	tr.DirQueued()
	tr.DirQueued()
	tr.SetFileCount(100)
	tr.DirDone(123)
	tr.MarkComplete(150)

	p := tr.Snapshot()
	if p.TotalFolders != 3 {
		t.Fatalf("total folders = %d, want 3", p.TotalFolders)
	}
	if p.IndexedFolders != 1 {
		t.Fatalf("indexed folders = %d, want 1", p.IndexedFolders)
	}
	if p.TotalFiles != 150 {
		t.Fatalf("total files = %d, want 150", p.TotalFiles)
	}
	if p.CurrentFolder != "/home/user" {
		t.Fatalf("current folder = %q", p.CurrentFolder)
	}
	if !p.IsComplete || !tr.Complete() {
		t.Fatalf("expected complete")
	}
}

func TestTrackerConcurrentReadersNeverBlockWriter(t *testing.T) {
	tr := NewTracker()
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					p := tr.Snapshot()
					if p.IndexedFolders > p.TotalFolders {
						t.Errorf("indexed %d exceeds total %d", p.IndexedFolders, p.TotalFolders)
						return
					}
				}
			}
		}()
	}

	tr.Set(Progress{TotalFolders: 1})
	for i := 0; i < 1000; i++ {
		tr.DirQueued()
		tr.DirDone(i)
	}
	tr.MarkComplete(1000)
	close(done)
	wg.Wait()

	if got := tr.Snapshot().TotalFiles; got != 1000 {
		t.Fatalf("final count = %d, want 1000", got)
	}
}
