package scan

import (
	"os"
	"path/filepath"

	"lantern/internal/entry"
)

// fileCountInterval bounds how often the cumulative entry count is
// pushed to the tracker mid-directory. The final count is always exact.
const fileCountInterval = 100

// Walk performs a depth-first traversal from root, emitting one entry
// per surviving filesystem node and reporting progress into prog as it
// goes. A listing error abandons only the affected subtree; partial
// results from sibling subtrees remain valid. Directory classification
// uses lstat semantics, so symlinks are indexed but never followed and
// filesystem cycles cannot cause non-termination.
func Walk(root string, opts *Options, prog *Tracker) []entry.Entry {
	if opts == nil {
		opts = DefaultOptions()
	}
	w := &walker{opts: opts, prog: prog}
	w.walkDir(root)
	return w.entries
}

type walker struct {
	opts    *Options
	prog    *Tracker
	entries []entry.Entry
}

func (w *walker) walkDir(dir string) {
	children, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable subtree: skip it, keep the rest of the scan.
		return
	}

	parent := parentLabel(dir)
	w.prog.EnterDir(dir)

	var subdirs []string
	for _, child := range children {
		name := child.Name()

		if w.opts.SkipHidden && len(name) > 0 && name[0] == '.' {
			continue
		}

		childPath := filepath.Join(dir, name)
		isDir := child.IsDir()

		w.entries = append(w.entries, entry.Entry{
			Name:         name,
			Path:         childPath,
			IsDir:        isDir,
			ParentFolder: parent,
		})

		if len(w.entries)%fileCountInterval == 0 {
			w.prog.SetFileCount(len(w.entries))
		}

		if isDir && !w.opts.Excluded(name) {
			w.prog.DirQueued()
			subdirs = append(subdirs, childPath)
		}
	}

	w.prog.DirDone(len(w.entries))

	for _, subdir := range subdirs {
		w.walkDir(subdir)
	}
}

// parentLabel returns the base name of a directory for use as its
// children's ParentFolder, falling back to the sentinel when the path
// has no usable base name.
func parentLabel(dir string) string {
	base := filepath.Base(dir)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return entry.RootParent
	}
	return base
}
