package main

import (
	"path/filepath"
	"testing"
)

func TestResolveRootDefaultsToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	root, err := resolveRoot("")
	if err != nil {
		t.Fatalf("resolve root: %v", err)
	}
	if root != home {
		t.Fatalf("resolveRoot(\"\") = %q, want %q", root, home)
	}
}

func TestResolveRootExpandsAndNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	root, err := resolveRoot("~/projects/")
	if err != nil {
		t.Fatalf("resolve root: %v", err)
	}
	if root != filepath.Join(home, "projects") {
		t.Fatalf("resolveRoot(~/projects/) = %q", root)
	}
}
