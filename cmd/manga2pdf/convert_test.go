// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/manga2pdf/internal/chapter"
	"github.com/pdiddy/manga2pdf/pkg/types"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 6, 9))
	img.Set(1, 1, color.NRGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func testConfig(folder string) types.ConverterConfig {
	cfg := types.DefaultConverterConfig()
	cfg.Folder = folder
	cfg.Progress = false
	return cfg
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "Chapter_1", "a.png"))
	writePNG(t, filepath.Join(root, "Chapter_1", "b.png"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Chapter_2"), 0o755))

	reportPath := filepath.Join(root, "report.json")
	cfg := testConfig(root)
	cfg.Report = reportPath

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out, false))

	assert.FileExists(t, filepath.Join(root, "Chapter_1.pdf"))
	assert.NoFileExists(t, filepath.Join(root, "Chapter_2.pdf"))
	assert.FileExists(t, reportPath)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Manga Chapter to PDF Converter\n"))
	assert.Contains(t, got, "Successfully converted: 1\n")
	assert.Contains(t, got, "  - Chapter_2: No images found\n")
	assert.True(t, strings.HasSuffix(got, "\nConversion complete!\n"))
	assert.NotContains(t, got, "Select the parent folder", "no prompt when a folder is given")
}

func TestRunPromptsForFolder(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "c07", "001.png"))

	var out bytes.Buffer
	err := run(context.Background(), testConfig(""), strings.NewReader("'"+root+"'\n"), &out, false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Select the parent folder containing your chapter folders")
	assert.FileExists(t, filepath.Join(root, "Chapter_07.pdf"))
}

func TestRunConfigErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	var out bytes.Buffer
	err := run(context.Background(), testConfig(filepath.Join(dir, "missing")), nil, &out, false)
	assert.ErrorIs(t, err, chapter.ErrRootNotFound)

	err = run(context.Background(), testConfig(file), nil, &out, false)
	assert.ErrorIs(t, err, chapter.ErrRootNotDir)

	err = run(context.Background(), testConfig(""), strings.NewReader("\"\"\n"), &out, false)
	assert.ErrorIs(t, err, errNoFolder)

	assert.NotContains(t, out.String(), "CONVERSION SUMMARY")
}

func TestRunFailOnError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Chapter_1"), 0o755))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), testConfig(root), nil, &out, false),
		"chapter failures do not fail the run by default")

	cfg := testConfig(root)
	cfg.FailOnError = true
	err := run(context.Background(), cfg, nil, &out, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 chapter(s) failed")
}

func TestRunParallel(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"Chapter_1", "Chapter_2", "Chapter_3"} {
		writePNG(t, filepath.Join(root, name, "001.png"))
	}
	cfg := testConfig(root)
	cfg.Jobs = 3

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, nil, &out, false))
	for _, name := range []string{"Chapter_1.pdf", "Chapter_2.pdf", "Chapter_3.pdf"} {
		assert.FileExists(t, filepath.Join(root, name))
	}
	assert.Contains(t, out.String(), "Successfully converted: 3\n")
}

func TestRunInterrupted(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "Chapter_1", "001.png"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := run(ctx, testConfig(root), nil, &out, false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "  - Chapter_1: Interrupted\n")
	assert.NoFileExists(t, filepath.Join(root, "Chapter_1.pdf"))
}
