package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchText(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("reports 1-based line numbers", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "hay.txt"),
			"line one\nhas needle here\nline three\nline four\nanother needle\n")

		matches := svc.SearchText(ctx, "needle", dir, "*.txt", "")

		require.Len(t, matches, 2)
		assert.Equal(t, 2, matches[0].Line)
		assert.Equal(t, "has needle here", matches[0].Content)
		assert.Equal(t, 5, matches[1].Line)
		assert.Equal(t, "another needle", matches[1].Content)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.txt"), "NEEDLE\nnothing\n")

		matches := svc.SearchText(ctx, "needle", dir, "*.txt", "")

		assert.Len(t, matches, 1)
	})

	t.Run("regex patterns are supported", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.txt"), "error: code 404\nok 200\nerror: code 500\n")

		matches := svc.SearchText(ctx, `error: code \d+`, dir, "*.txt", "")

		require.Len(t, matches, 2)
		assert.Equal(t, 1, matches[0].Line)
		assert.Equal(t, 3, matches[1].Line)
	})

	t.Run("invalid regex falls back to literal matching", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.txt"), "weird [token here\nnothing\n")

		matches := svc.SearchText(ctx, "[token", dir, "*.txt", "")

		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].Line)
	})

	t.Run("include glob matches at any depth", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "top.txt"), "needle\n")
		writeFile(t, filepath.Join(dir, "sub", "deep", "nested.txt"), "needle\n")
		writeFile(t, filepath.Join(dir, "sub", "skipped.log"), "needle\n")

		matches := svc.SearchText(ctx, "needle", dir, "*.txt", "")

		require.Len(t, matches, 2)
		assert.Equal(t, filepath.Join(dir, "sub", "deep", "nested.txt"), matches[0].File)
		assert.Equal(t, filepath.Join(dir, "top.txt"), matches[1].File)
	})

	t.Run("exclude glob skips by base name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "keep.txt"), "needle\n")
		writeFile(t, filepath.Join(dir, "keep_test.txt"), "needle\n")

		matches := svc.SearchText(ctx, "needle", dir, "*.txt", "*_test.txt")

		require.Len(t, matches, 1)
		assert.Equal(t, filepath.Join(dir, "keep.txt"), matches[0].File)
	})

	t.Run("results sorted by file then line", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "b.txt"), "needle\nneedle\n")
		writeFile(t, filepath.Join(dir, "a.txt"), "x\nneedle\n")

		matches := svc.SearchText(ctx, "needle", dir, "*.txt", "")

		require.Len(t, matches, 3)
		assert.Equal(t, filepath.Join(dir, "a.txt"), matches[0].File)
		assert.Equal(t, 2, matches[0].Line)
		assert.Equal(t, filepath.Join(dir, "b.txt"), matches[1].File)
		assert.Equal(t, 1, matches[1].Line)
		assert.Equal(t, 2, matches[2].Line)
	})

	t.Run("malformed bytes never abort a scan", func(t *testing.T) {
		dir := t.TempDir()
		content := append([]byte("needle before junk\n"), 0xff, 0xfe, 0xba, 0xad, '\n')
		content = append(content, []byte("needle after junk\n")...)
		writeFile(t, filepath.Join(dir, "bin.txt"), string(content))

		matches := svc.SearchText(ctx, "needle", dir, "*.txt", "")

		require.Len(t, matches, 2)
		assert.Equal(t, 1, matches[0].Line)
		assert.Equal(t, 3, matches[1].Line)
	})

	t.Run("missing root yields empty slice", func(t *testing.T) {
		matches := svc.SearchText(ctx, "x", filepath.Join(t.TempDir(), "nope"), "*.txt", "")

		assert.Empty(t, matches)
		assert.NotNil(t, matches)
	})

	t.Run("default include is txt", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.txt"), "needle\n")
		writeFile(t, filepath.Join(dir, "a.md"), "needle\n")

		matches := svc.SearchText(ctx, "needle", dir, "", "")

		require.Len(t, matches, 1)
		assert.Equal(t, filepath.Join(dir, "a.txt"), matches[0].File)
	})
}
