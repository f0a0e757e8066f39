// Package fileops implements single-file operations: copy, move, remove
// and rename. Every operation is fail-soft: OS-level errors collapse to
// a boolean false so scripts can probe paths without special-casing
// error kinds.
package fileops

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Service provides fail-soft file operations.
type Service struct {
	logger *slog.Logger
}

// New creates a new fileops service.
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Copy copies src to dst, creating missing parent directories and
// preserving mode and modification time. Returns false if src is
// missing, dst exists without overwrite, or any OS error occurs.
func (s *Service) Copy(src, dst string, overwrite bool) bool {
	if _, err := os.Stat(src); err != nil {
		return false
	}
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return false
	}

	if err := CopyPreserving(src, dst); err != nil {
		s.logger.Debug("copy failed", "src", src, "dst", dst, "error", err)
		return false
	}
	return true
}

// Move moves or renames src to dst. A plain rename is attempted first;
// on failure (typically a cross-device move) it falls back to
// copy-then-remove. Gates on existence like Copy.
func (s *Service) Move(src, dst string, overwrite bool) bool {
	if _, err := os.Stat(src); err != nil {
		return false
	}
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return false
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		s.logger.Debug("move failed", "src", src, "dst", dst, "error", err)
		return false
	}
	if err := os.Rename(src, dst); err == nil {
		return true
	}

	// Cross-device rename: copy then remove the original.
	if err := CopyPreserving(src, dst); err != nil {
		s.logger.Debug("move failed", "src", src, "dst", dst, "error", err)
		return false
	}
	if err := os.Remove(src); err != nil {
		s.logger.Debug("move failed", "src", src, "dst", dst, "error", err)
		return false
	}
	return true
}

// Remove deletes a file or directory. Non-empty directories require
// recursive. A missing path returns the value of force, so forced
// removals of absent paths count as success.
func (s *Service) Remove(path string, recursive, force bool) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return force
	}

	if info.IsDir() && recursive {
		err = os.RemoveAll(path)
	} else {
		// os.Remove only deletes empty directories, matching rmdir.
		err = os.Remove(path)
	}
	if err != nil {
		s.logger.Debug("remove failed", "path", path, "error", err)
		return false
	}
	return true
}

// Rename renames path within its parent directory.
func (s *Service) Rename(path, newName string) bool {
	if _, err := os.Lstat(path); err != nil {
		return false
	}

	dst := filepath.Join(filepath.Dir(path), newName)
	if err := os.Rename(path, dst); err != nil {
		s.logger.Debug("rename failed", "path", path, "newName", newName, "error", err)
		return false
	}
	return true
}

// CopyPreserving copies a file's contents and carries over its mode and
// modification time, creating missing destination parents.
func CopyPreserving(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
