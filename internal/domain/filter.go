package domain

// SizeFilter is a parsed size predicate such as ">1MB". Thresholds are
// binary multiples (1KB = 1024B). A filter is immutable once parsed.
type SizeFilter struct {
	Op        string
	Threshold int64
}

// Matches reports whether a file of sizeBytes satisfies the filter.
// Unknown operators never match; Parse only produces the four below,
// so the default arm is unreachable in practice but handled anyway.
func (f SizeFilter) Matches(sizeBytes int64) bool {
	switch f.Op {
	case ">":
		return sizeBytes > f.Threshold
	case ">=":
		return sizeBytes >= f.Threshold
	case "<":
		return sizeBytes < f.Threshold
	case "<=":
		return sizeBytes <= f.Threshold
	}
	return false
}

// FindOptions holds the optional filters for a find walk. Empty fields
// mean "no filter for this dimension".
type FindOptions struct {
	Name string    // glob matched against the entry's base name
	Size string    // size spec such as ">1MB", applied to plain files only
	Kind EntryKind // file, dir or link
}
