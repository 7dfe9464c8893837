package index

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"lantern/internal/entry"
)

func TestLoadMissingFileReportsNoIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	entries, ok := Load(path)
	if ok {
		t.Fatalf("expected no index for missing file")
	}
	if entries != nil {
		t.Fatalf("expected nil entries, got %d", len(entries))
	}
}

func TestLoadCorruptFileReportsNoIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := Load(path); ok {
		t.Fatalf("expected failure for corrupt file")
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "index.json")
	if err := Save(path, []entry.Entry{file("a", "/h")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("index file missing: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	original := []entry.Entry{
		{Name: "docs", Path: "/home/user/docs", IsDir: true, ParentFolder: "user"},
		{Name: "readme.md", Path: "/home/user/docs/readme.md", IsDir: false, ParentFolder: "docs"},
		{Name: "wëird name.txt", Path: "/home/user/wëird name.txt", IsDir: false, ParentFolder: "user"},
	}

	if err := Save(path, original); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok := Load(path)
	if !ok {
		t.Fatalf("load failed")
	}
	if len(loaded) != len(original) {
		t.Fatalf("count mismatch: %d vs %d", len(loaded), len(original))
	}

	seen := make(map[entry.Entry]bool, len(loaded))
	for _, e := range loaded {
		seen[e] = true
	}
	for _, e := range original {
		if !seen[e] {
			t.Fatalf("entry lost in round trip: %+v", e)
		}
	}
}

func TestPersistedFieldNamesAreStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := Save(path, []entry.Entry{{Name: "a", Path: "/a", IsDir: true, ParentFolder: "~"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, field := range []string{`"name"`, `"path"`, `"is_directory"`, `"parent_folder"`} {
		if !bytes.Contains(data, []byte(field)) {
			t.Fatalf("persisted format missing field %s: %s", field, data)
		}
	}
}
