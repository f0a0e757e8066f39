package dirops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Markers used in tree and listing output.
const (
	dirMarker  = "📁"
	fileMarker = "📄"
)

// Tree writes a directory tree rendering of path to w, descending at
// most maxDepth levels. Hidden entries are always skipped, unlike List.
// Unreadable subdirectories truncate their branch silently. A missing
// root renders as just the root line.
func (s *Service) Tree(w io.Writer, path string, maxDepth int) {
	root, err := filepath.Abs(path)
	if err != nil {
		root = path
	}
	fmt.Fprintf(w, "%s %s\n", dirMarker, root)
	s.renderTree(w, root, "", 1, maxDepth)
}

func (s *Service) renderTree(w io.Writer, path, prefix string, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		s.logger.Debug("tree branch unreadable", "path", path, "error", err)
		return
	}
	sortEntries(dirents)

	visible := dirents[:0]
	for _, d := range dirents {
		if !strings.HasPrefix(d.Name(), ".") {
			visible = append(visible, d)
		}
	}

	for i, d := range visible {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(visible)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		if d.IsDir() {
			fmt.Fprintf(w, "%s%s%s %s\n", prefix, connector, dirMarker, d.Name())
			s.renderTree(w, filepath.Join(path, d.Name()), childPrefix, depth+1, maxDepth)
		} else {
			fmt.Fprintf(w, "%s%s%s %s\n", prefix, connector, fileMarker, d.Name())
		}
	}
}
