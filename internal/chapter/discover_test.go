// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/manga2pdf/pkg/types"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestIsImage(t *testing.T) {
	for _, name := range []string{"a.jpg", "a.JPEG", "a.Png", "a.webp", "a.BMP", "a.gif"} {
		assert.True(t, IsImage(name), name)
	}
	for _, name := range []string{"a.txt", "a.pdf", "jpg", "a.jpg.bak", ".DS_Store"} {
		assert.False(t, IsImage(name), name)
	}
}

func TestImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"page_10.jpg", "page_2.PNG", "page_1.webp", "notes.txt", "cover.GIF"} {
		touch(t, filepath.Join(dir, name))
	}
	// Nested images must not be collected.
	touch(t, filepath.Join(dir, "extras", "page_0.jpg"))
	// A directory named like an image is not a file.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.png"), 0o755))

	got, err := Images(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "cover.GIF"),
		filepath.Join(dir, "page_1.webp"),
		filepath.Join(dir, "page_2.PNG"),
		filepath.Join(dir, "page_10.jpg"),
	}, got)
}

func TestImagesEmpty(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.md"))

	got, err := Images(dir)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestImagesFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "real.png")
	touch(t, target)
	if err := os.Symlink(target, filepath.Join(dir, "link.png")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	// A dangling link is skipped.
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.png"), filepath.Join(dir, "dangling.png")))

	got, err := Images(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "link.png")}, got)
}

func TestImagesMissingFolder(t *testing.T) {
	_, err := Images(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFolders(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"Chapter_10", "Chapter_2", "Chapter_1"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}
	touch(t, filepath.Join(root, "Chapter_1.pdf"))

	got, err := Folders(root)
	require.NoError(t, err)
	// Lexicographic, not natural, order.
	assert.Equal(t, []types.Chapter{
		{Name: "Chapter_1", Path: filepath.Join(root, "Chapter_1")},
		{Name: "Chapter_10", Path: filepath.Join(root, "Chapter_10")},
		{Name: "Chapter_2", Path: filepath.Join(root, "Chapter_2")},
	}, got)
}

func TestValidateRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	touch(t, file)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"directory", dir, nil},
		{"missing", filepath.Join(dir, "missing"), ErrRootNotFound},
		{"file", file, ErrRootNotDir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoot(tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}
