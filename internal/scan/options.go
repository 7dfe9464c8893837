package scan

// Options configures the traversal behavior.
type Options struct {
	// SkipHidden excludes names starting with "." entirely: no entry
	// is emitted and hidden directories are never descended into.
	SkipHidden bool

	// ExcludedNames are directory base names whose subtrees are never
	// visited. The directory itself still gets an entry if its parent
	// was visited. Matching is case-sensitive on the base name only.
	ExcludedNames map[string]struct{}
}

// defaultExcludedNames covers build output, VCS metadata, dependency
// and cache directories, plus the user-library folders that dominate
// a home directory without ever being launch targets.
var defaultExcludedNames = []string{
	"node_modules", "target", ".git", "dist", "build", ".next",
	"vendor", "__pycache__", ".venv", "venv", ".cargo",
	"Library", ".Trash", "Applications",
}

// DefaultOptions returns the traversal defaults used by the launcher:
// hidden files skipped and the fixed exclusion list applied.
func DefaultOptions() *Options {
	opts := &Options{
		SkipHidden:    true,
		ExcludedNames: make(map[string]struct{}, len(defaultExcludedNames)),
	}
	for _, name := range defaultExcludedNames {
		opts.ExcludedNames[name] = struct{}{}
	}
	return opts
}

// WithSkipHidden sets hidden-name handling.
func (o *Options) WithSkipHidden(skip bool) *Options {
	o.SkipHidden = skip
	return o
}

// AddExcludedName adds a directory base name to the exclusion list.
func (o *Options) AddExcludedName(name string) *Options {
	if o.ExcludedNames == nil {
		o.ExcludedNames = make(map[string]struct{})
	}
	o.ExcludedNames[name] = struct{}{}
	return o
}

// Excluded reports whether a directory base name is on the exclusion list.
func (o *Options) Excluded(name string) bool {
	_, ok := o.ExcludedNames[name]
	return ok
}
