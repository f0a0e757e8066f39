package dirops

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"fscmd/internal/domain"
	"fscmd/internal/errors"
	"fscmd/internal/services/fileops"
)

// Sync copies every source file that is absent from the destination
// and, with opts.Delete, removes destination files absent from the
// source. The comparison is purely existence-based: files present on
// both sides are skipped, never compared or overwritten.
//
// A missing or non-directory source is a silent no-op. Dry-run performs
// no filesystem mutation at all (including directory creation) while
// still accumulating the counters a real run would produce. Unlike the
// rest of the tool, walk and copy/delete errors abort the call with an
// *errors.OpError.
func (s *Service) Sync(ctx context.Context, src, dst string, opts domain.SyncOptions) (domain.SyncResult, error) {
	result := domain.SyncResult{}

	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return result, nil
	}

	if !opts.DryRun {
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return result, errors.NewOpError("sync mkdir", dst, err)
		}
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return relErr
		}
		target := filepath.Join(dst, rel)

		if _, statErr := os.Stat(target); statErr == nil {
			result.Skipped++
			return nil
		}

		result.Copied++
		if opts.DryRun {
			return nil
		}
		return fileops.CopyPreserving(path, target)
	})
	if err != nil {
		return result, errors.NewOpError("sync copy", src, err)
	}

	if opts.Delete {
		if err := s.deleteExtra(ctx, src, dst, opts.DryRun, &result); err != nil {
			return result, errors.NewOpError("sync delete", dst, err)
		}
	}

	s.logger.Debug("sync finished",
		"src", src,
		"dst", dst,
		"copied", result.Copied,
		"skipped", result.Skipped,
		"deleted", result.Deleted,
		"dryRun", opts.DryRun)
	return result, nil
}

// deleteExtra removes destination files with no source counterpart.
func (s *Service) deleteExtra(ctx context.Context, src, dst string, dryRun bool, result *domain.SyncResult) error {
	// Under dry-run the destination may never have been created.
	if info, err := os.Stat(dst); err != nil || !info.IsDir() {
		return nil
	}

	return filepath.WalkDir(dst, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(dst, path)
		if relErr != nil {
			return relErr
		}

		if _, statErr := os.Stat(filepath.Join(src, rel)); statErr == nil {
			return nil
		}

		result.Deleted++
		if dryRun {
			return nil
		}
		return os.Remove(path)
	})
}
