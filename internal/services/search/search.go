// Package search implements the find and content-search walks plus the
// size-filter predicate they share.
//
// Both walks run over fastwalk, which parallelizes directory traversal;
// results are collected under a mutex and sorted by path before return
// so output stays deterministic regardless of arrival order.
package search

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"fscmd/internal/domain"
)

// Service provides filesystem search operations.
type Service struct {
	logger *slog.Logger
}

// New creates a new search service.
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Find recursively enumerates entries under root, applying the optional
// name glob, kind filter and size spec from opts. The size spec only
// constrains plain files; directories and links pass it silently. A
// missing root yields an empty slice. Results are sorted by path.
func (s *Service) Find(ctx context.Context, root string, opts domain.FindOptions) []domain.Entry {
	if _, err := os.Lstat(root); err != nil {
		return []domain.Entry{}
	}

	var filter *domain.SizeFilter
	if opts.Size != "" {
		f := ParseSizeFilter(opts.Size)
		filter = &f
	}

	var mu sync.Mutex
	entries := []domain.Entry{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil || path == root {
			return nil
		}

		if opts.Name != "" {
			if ok, _ := doublestar.Match(opts.Name, d.Name()); !ok {
				return nil
			}
		}

		kind := kindOf(d)
		if opts.Kind != "" && kind != opts.Kind {
			return nil
		}

		if filter != nil && d.Type().IsRegular() {
			info, infoErr := d.Info()
			if infoErr != nil || !filter.Matches(info.Size()) {
				return nil
			}
		}

		mu.Lock()
		entries = append(entries, domain.Entry{Path: path, Name: d.Name(), Kind: kind})
		mu.Unlock()
		return nil
	})
	if err != nil {
		s.logger.Debug("find walk aborted", "root", root, "error", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// kindOf classifies an entry without following symlinks.
func kindOf(d fs.DirEntry) domain.EntryKind {
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		return domain.KindLink
	case d.IsDir():
		return domain.KindDir
	default:
		return domain.KindFile
	}
}
