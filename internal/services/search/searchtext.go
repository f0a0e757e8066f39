package search

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"

	"fscmd/internal/domain"
)

// maxLineSize bounds the scanner's line buffer for content search.
const maxLineSize = 1 << 20

// SearchText scans files under root whose root-relative path matches
// the include glob (at any depth, rglob-style), skipping files whose
// base name matches the exclude glob. Each line containing the pattern
// yields a SearchMatch. The pattern compiles as a case-insensitive
// regular expression; an invalid pattern falls back to literal matching
// instead of erroring. Unreadable files are skipped silently. Results
// are sorted by (file, line).
func (s *Service) SearchText(ctx context.Context, pattern, root, include, exclude string) []domain.SearchMatch {
	if _, err := os.Lstat(root); err != nil {
		return []domain.SearchMatch{}
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		s.logger.Debug("pattern is not a valid regex, matching literally", "pattern", pattern)
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
	}

	if include == "" {
		include = "*.txt"
	}
	includePattern := "**/" + filepath.ToSlash(include)

	var mu sync.Mutex
	matches := []domain.SearchMatch{}
	conf := fastwalk.Config{Follow: false}

	walkErr := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, entryErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entryErr != nil || !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if ok, _ := doublestar.Match(includePattern, filepath.ToSlash(rel)); !ok {
			return nil
		}
		if exclude != "" {
			if ok, _ := doublestar.Match(exclude, d.Name()); ok {
				return nil
			}
		}

		fileMatches := scanFile(path, re)
		if len(fileMatches) > 0 {
			mu.Lock()
			matches = append(matches, fileMatches...)
			mu.Unlock()
		}
		return nil
	})
	if walkErr != nil {
		s.logger.Debug("search walk aborted", "root", root, "error", walkErr)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].File != matches[j].File {
			return matches[i].File < matches[j].File
		}
		return matches[i].Line < matches[j].Line
	})
	return matches
}

// scanFile reads one file line by line and collects matching lines.
// Read errors skip the file silently.
func scanFile(path string, re *regexp.Regexp) []domain.SearchMatch {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	scanner := bufio.NewScanner(decodeText(data))
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var matches []domain.SearchMatch
	lineNum := 1
	for scanner.Scan() {
		if re.MatchString(scanner.Text()) {
			matches = append(matches, domain.SearchMatch{
				File:    path,
				Line:    lineNum,
				Content: scanner.Text(),
			})
		}
		lineNum++
	}
	return matches
}

// decodeText wraps raw file bytes in a best-effort UTF-8 decoder.
// The charset is detected from the content; malformed bytes are
// replaced rather than failing. When detection or decoder construction
// fails, the raw bytes are scanned as-is.
func decodeText(data []byte) io.Reader {
	raw := bytes.NewReader(data)

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return raw
	}

	decoded, err := charset.NewReaderLabel(result.Charset, bytes.NewReader(data))
	if err != nil {
		return raw
	}
	return decoded
}
