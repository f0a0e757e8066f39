package domain

// EntryKind classifies a filesystem entry.
type EntryKind string

const (
	KindFile EntryKind = "file"
	KindDir  EntryKind = "dir"
	KindLink EntryKind = "link"
)

// IsValidEntryKind checks if the provided kind is supported as a find filter.
func IsValidEntryKind(kind string) bool {
	switch EntryKind(kind) {
	case KindFile, KindDir, KindLink:
		return true
	}
	return false
}

// Entry represents a single filesystem entry produced by a listing or a
// find walk. Size and Modified are human-formatted strings and are only
// populated for detailed listings; they stay empty otherwise.
type Entry struct {
	Path     string    `json:"path" yaml:"path"`
	Name     string    `json:"name" yaml:"name"`
	Kind     EntryKind `json:"kind" yaml:"kind"`
	Size     string    `json:"size,omitempty" yaml:"size,omitempty"`
	Modified string    `json:"modified,omitempty" yaml:"modified,omitempty"`
}
