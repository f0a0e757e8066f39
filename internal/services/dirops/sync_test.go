package dirops

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fscmd/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	setupSource := func(t *testing.T) string {
		src := t.TempDir()
		writeFile(t, filepath.Join(src, "a.txt"), "alpha")
		writeFile(t, filepath.Join(src, "sub", "b.txt"), "beta")
		writeFile(t, filepath.Join(src, "sub", "deep", "c.txt"), "gamma")
		return src
	}

	t.Run("copies full tree into empty destination", func(t *testing.T) {
		src := setupSource(t)
		dst := filepath.Join(t.TempDir(), "out")

		result, err := svc.Sync(ctx, src, dst, domain.SyncOptions{})

		require.NoError(t, err)
		assert.Equal(t, domain.SyncResult{Copied: 3}, result)
		assert.FileExists(t, filepath.Join(dst, "a.txt"))
		assert.FileExists(t, filepath.Join(dst, "sub", "deep", "c.txt"))
	})

	t.Run("second run skips everything", func(t *testing.T) {
		src := setupSource(t)
		dst := filepath.Join(t.TempDir(), "out")

		first, err := svc.Sync(ctx, src, dst, domain.SyncOptions{})
		require.NoError(t, err)

		second, err := svc.Sync(ctx, src, dst, domain.SyncOptions{})
		require.NoError(t, err)
		assert.Equal(t, 0, second.Copied)
		assert.Equal(t, first.Copied, second.Skipped)
	})

	t.Run("never overwrites existing destination files", func(t *testing.T) {
		src := setupSource(t)
		dst := t.TempDir()
		writeFile(t, filepath.Join(dst, "a.txt"), "stale")

		result, err := svc.Sync(ctx, src, dst, domain.SyncOptions{})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
		data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "stale", string(data))
	})

	t.Run("delete removes exactly the extra files", func(t *testing.T) {
		src := setupSource(t)
		dst := t.TempDir()
		writeFile(t, filepath.Join(dst, "a.txt"), "alpha")
		writeFile(t, filepath.Join(dst, "orphan.txt"), "o")
		writeFile(t, filepath.Join(dst, "sub", "orphan2.txt"), "o2")

		result, err := svc.Sync(ctx, src, dst, domain.SyncOptions{Delete: true})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Deleted)
		assert.Equal(t, 1, result.Skipped)
		assert.NoFileExists(t, filepath.Join(dst, "orphan.txt"))
		assert.NoFileExists(t, filepath.Join(dst, "sub", "orphan2.txt"))
		assert.FileExists(t, filepath.Join(dst, "a.txt"))
	})

	t.Run("without delete extra files survive", func(t *testing.T) {
		src := setupSource(t)
		dst := t.TempDir()
		writeFile(t, filepath.Join(dst, "orphan.txt"), "o")

		result, err := svc.Sync(ctx, src, dst, domain.SyncOptions{})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Deleted)
		assert.FileExists(t, filepath.Join(dst, "orphan.txt"))
	})

	t.Run("dry run reports counters without mutating", func(t *testing.T) {
		src := setupSource(t)
		dst := filepath.Join(t.TempDir(), "out")

		result, err := svc.Sync(ctx, src, dst, domain.SyncOptions{DryRun: true})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Copied)
		// No mutation at all, not even the destination directory.
		assert.NoDirExists(t, dst)
	})

	t.Run("dry run with delete leaves orphans in place", func(t *testing.T) {
		src := setupSource(t)
		dst := t.TempDir()
		writeFile(t, filepath.Join(dst, "orphan.txt"), "o")

		result, err := svc.Sync(ctx, src, dst, domain.SyncOptions{Delete: true, DryRun: true})

		require.NoError(t, err)
		assert.Equal(t, 3, result.Copied)
		assert.Equal(t, 1, result.Deleted)
		assert.FileExists(t, filepath.Join(dst, "orphan.txt"))
		assert.NoFileExists(t, filepath.Join(dst, "a.txt"))
	})

	t.Run("missing source is a silent no-op", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "out")

		result, err := svc.Sync(ctx, filepath.Join(t.TempDir(), "nope"), dst, domain.SyncOptions{})

		require.NoError(t, err)
		assert.Equal(t, domain.SyncResult{}, result)
		assert.NoDirExists(t, dst)
	})

	t.Run("file source is a silent no-op", func(t *testing.T) {
		dir := t.TempDir()
		srcFile := filepath.Join(dir, "plain.txt")
		writeFile(t, srcFile, "x")

		result, err := svc.Sync(ctx, srcFile, filepath.Join(dir, "out"), domain.SyncOptions{})

		require.NoError(t, err)
		assert.Equal(t, domain.SyncResult{}, result)
	})

	t.Run("copies preserve modification time", func(t *testing.T) {
		src := t.TempDir()
		path := filepath.Join(src, "a.txt")
		writeFile(t, path, "alpha")
		mtime := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
		dst := filepath.Join(t.TempDir(), "out")

		_, err := svc.Sync(ctx, src, dst, domain.SyncOptions{})
		require.NoError(t, err)

		info, err := os.Stat(filepath.Join(dst, "a.txt"))
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(mtime))
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		src := setupSource(t)
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Sync(cancelled, src, filepath.Join(t.TempDir(), "out"), domain.SyncOptions{DryRun: true})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
