// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var errNoFolder = errors.New("no folder provided")

// promptFolder asks for the parent folder on in. An empty answer means the
// current directory. Quotes around a pasted path are dropped and a leading
// ~ is expanded.
func promptFolder(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "\nSelect the parent folder containing your chapter folders")
	fmt.Fprintln(out, "Each chapter folder should contain the manga page images")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Enter the full path to the parent folder containing chapter folders")
	fmt.Fprintln(out, "(or press Enter to use current directory):")
	fmt.Fprint(out, "> ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading folder: %w", err)
	}

	folder := strings.TrimSpace(line)
	if folder == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		folder = wd
	}
	folder = strings.Trim(folder, `"`)
	folder = strings.Trim(folder, `'`)
	return expandHome(folder), nil
}

// expandHome replaces a leading "~" (alone or followed by a separator) with
// the user's home directory. Other paths are returned unchanged.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~`+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
