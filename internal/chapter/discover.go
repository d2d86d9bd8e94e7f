// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/manga2pdf/internal/natsort"
	"github.com/pdiddy/manga2pdf/pkg/types"
)

// ImageExtensions lists the recognized page image extensions (lower case).
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".bmp", ".gif"}

var (
	// ErrRootNotFound is returned by ValidateRoot when the parent folder does not exist.
	ErrRootNotFound = errors.New("folder does not exist")
	// ErrRootNotDir is returned by ValidateRoot when the parent path is not a directory.
	ErrRootNotDir = errors.New("path is not a directory")
)

// IsImage reports whether name has a recognized image extension, ignoring case.
func IsImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ValidateRoot checks that root exists and is a directory.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("checking folder %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}
	return nil
}

// Folders returns the immediate subdirectories of root as chapters, in
// lexicographic order of their names. Symlinks to directories are included.
func Folders(root string) ([]types.Chapter, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", root, err)
	}

	// os.ReadDir returns entries sorted by name.
	var chapters []types.Chapter
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if !isKind(entry, path, fs.FileMode.IsDir) {
			continue
		}
		chapters = append(chapters, types.Chapter{Name: entry.Name(), Path: path})
	}
	return chapters, nil
}

// Images returns the image files directly inside dir, sorted in natural order
// of their base names. Subdirectories are not descended into. A folder
// without images yields an empty slice and a nil error.
func Images(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	images := []string{}
	for _, entry := range entries {
		if !IsImage(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isKind(entry, path, fs.FileMode.IsRegular) {
			continue
		}
		images = append(images, path)
	}

	natsort.SortFunc(images, filepath.Base)
	return images, nil
}

// isKind applies check to the entry's mode, following symlinks.
func isKind(entry fs.DirEntry, path string, check func(fs.FileMode) bool) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return check(entry.Type())
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return check(info.Mode())
}
