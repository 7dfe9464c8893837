package entry

// Entry represents one catalogued filesystem node discovered by a scan.
// Entries are immutable once created; a rescan produces a new slice.
type Entry struct {
	// Name is the base name with no path separators.
	Name string `json:"name"`

	// Path is the absolute path with platform-native separators.
	// It always resolves to Name as its final component.
	Path string `json:"path"`

	// IsDir classifies the node.
	IsDir bool `json:"is_directory"`

	// ParentFolder is the base name of the immediate containing
	// directory, not its full path. RootParent marks a containing
	// path with no usable base name.
	ParentFolder string `json:"parent_folder"`
}

// RootParent is the ParentFolder sentinel used when the containing
// directory has no usable base name (e.g. the filesystem root).
const RootParent = "~"
