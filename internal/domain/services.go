package domain

import (
	"context"
	"io"
)

// FileOperator defines fail-soft single-file operations. Every method
// converts OS-level failures into a plain false; callers cannot
// distinguish "not found" from "permission denied".
type FileOperator interface {
	Copy(src, dst string, overwrite bool) bool
	Move(src, dst string, overwrite bool) bool
	Remove(path string, recursive, force bool) bool
	Rename(path, newName string) bool
}

// DirOperator defines directory-level operations. Sync is the one
// fail-hard operation in the tool: filesystem errors during its
// copy/delete steps abort the call instead of degrading to a boolean.
type DirOperator interface {
	CreateDirectory(path string, parents bool) bool
	List(path string, showHidden, detailed bool) []Entry
	Tree(w io.Writer, path string, maxDepth int)
	Sync(ctx context.Context, src, dst string, opts SyncOptions) (SyncResult, error)
}

// Searcher defines the find and content-search walks. Both degrade a
// missing root to an empty result set and return entries in a stable,
// path-sorted order.
type Searcher interface {
	Find(ctx context.Context, root string, opts FindOptions) []Entry
	SearchText(ctx context.Context, pattern, root, include, exclude string) []SearchMatch
}
