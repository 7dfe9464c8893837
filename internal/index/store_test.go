package index

import (
	"sync"
	"testing"

	"lantern/internal/entry"
)

func TestStoreEmptyByDefault(t *testing.T) {
	s := NewStore()
	if s.Count() != 0 {
		t.Fatalf("new store count = %d", s.Count())
	}
	if got := s.Snapshot(); len(got) != 0 {
		t.Fatalf("new store snapshot has %d entries", len(got))
	}
}

func TestStoreReplaceSwapsSnapshot(t *testing.T) {
	s := NewStore()
	first := []entry.Entry{file("one", "/a")}
	second := []entry.Entry{file("two", "/b"), file("three", "/b")}

	s.Replace(first)
	if s.Count() != 1 {
		t.Fatalf("count after first replace = %d", s.Count())
	}

	s.Replace(second)
	if s.Count() != 2 {
		t.Fatalf("count after second replace = %d", s.Count())
	}
	if s.Snapshot()[0].Name != "two" {
		t.Fatalf("old snapshot still visible")
	}
}

func TestStoreReadersNeverSeeMixedSnapshots(t *testing.T) {
	s := NewStore()

	genA := make([]entry.Entry, 50)
	genB := make([]entry.Entry, 80)
	for i := range genA {
		genA[i] = entry.Entry{Name: "a", ParentFolder: "genA"}
	}
	for i := range genB {
		genB[i] = entry.Entry{Name: "b", ParentFolder: "genB"}
	}

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
				}
				snap := s.Snapshot()
				if len(snap) == 0 {
					continue
				}
				gen := snap[0].ParentFolder
				for _, e := range snap {
					if e.ParentFolder != gen {
						t.Errorf("torn snapshot: saw %s and %s", gen, e.ParentFolder)
						return
					}
				}
				if len(snap) != 50 && len(snap) != 80 {
					t.Errorf("snapshot length %d matches neither generation", len(snap))
					return
				}
			}
		}()
	}

	for i := 0; i < 500; i++ {
		s.Replace(genA)
		s.Replace(genB)
	}
	close(done)
	wg.Wait()
}
