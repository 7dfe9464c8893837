package pathutil

import (
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"/home/user/":     "/home/user",
		"/home//user":     "/home/user",
		"/home/user/./a":  "/home/user/a",
		"/home/user/b/..": "/home/user",
		"relative/path":   "relative/path",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandUser("~"); got != home {
		t.Fatalf("ExpandUser(~) = %q, want %q", got, home)
	}
	if got := ExpandUser("~/projects"); got != filepath.Join(home, "projects") {
		t.Fatalf("ExpandUser(~/projects) = %q", got)
	}
	if got := ExpandUser("~other/dir"); got != "~other/dir" {
		t.Fatalf("~user form should pass through, got %q", got)
	}
	if got := ExpandUser("/abs/path"); got != "/abs/path" {
		t.Fatalf("absolute path changed: %q", got)
	}
}
