// Package dirops implements directory-level operations: creation,
// listing, tree rendering and synchronization.
//
// Everything except Sync is fail-soft: unreadable or missing
// directories degrade to empty results. Sync is the tool's one
// fail-hard operation and reports structured errors.
package dirops

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fscmd/internal/domain"
)

// modifiedFormat is the timestamp layout used in detailed listings.
const modifiedFormat = "2006-01-02 15:04"

// Service provides directory operations.
type Service struct {
	logger *slog.Logger
}

// New creates a new dirops service.
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// CreateDirectory creates a directory. With parents it creates missing
// ancestors and treats an already-existing directory as success;
// without, any failure (including an existing path) returns false.
func (s *Service) CreateDirectory(path string, parents bool) bool {
	var err error
	if parents {
		err = os.MkdirAll(path, 0o755)
	} else {
		err = os.Mkdir(path, 0o755)
	}
	if err != nil {
		s.logger.Debug("mkdir failed", "path", path, "parents", parents, "error", err)
		return false
	}
	return true
}

// List returns the immediate children of path, directories first, each
// group sorted case-insensitively by name. Hidden entries (dot prefix)
// are excluded unless showHidden is set. A missing path, a non-directory
// or a permission error all yield an empty slice.
func (s *Service) List(path string, showHidden, detailed bool) []domain.Entry {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return []domain.Entry{}
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		s.logger.Debug("list failed", "path", path, "error", err)
		return []domain.Entry{}
	}
	sortEntries(dirents)

	entries := []domain.Entry{}
	for _, d := range dirents {
		if !showHidden && strings.HasPrefix(d.Name(), ".") {
			continue
		}

		entry := domain.Entry{
			Path: filepath.Join(path, d.Name()),
			Name: d.Name(),
			Kind: kindOf(d),
		}
		if detailed {
			if fi, statErr := d.Info(); statErr == nil {
				entry.Size = FormatSize(fi.Size())
				entry.Modified = fi.ModTime().Format(modifiedFormat)
			} else {
				entry.Size = "-"
				entry.Modified = "-"
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// FormatSize renders a byte count with one decimal, scaling through
// binary units until the value drops under 1024, or PB past TB.
func FormatSize(sizeBytes int64) string {
	size := float64(sizeBytes)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f%s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1fPB", size)
}

// sortEntries orders children directories-before-files, then by
// lowercased name within each group.
func sortEntries(dirents []os.DirEntry) {
	sort.SliceStable(dirents, func(i, j int) bool {
		iFile, jFile := !dirents[i].IsDir(), !dirents[j].IsDir()
		if iFile != jFile {
			return !iFile
		}
		return strings.ToLower(dirents[i].Name()) < strings.ToLower(dirents[j].Name())
	})
}

// kindOf classifies a directory entry without following symlinks.
func kindOf(d os.DirEntry) domain.EntryKind {
	switch {
	case d.Type()&os.ModeSymlink != 0:
		return domain.KindLink
	case d.IsDir():
		return domain.KindDir
	default:
		return domain.KindFile
	}
}
