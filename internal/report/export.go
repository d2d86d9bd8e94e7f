// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/manga2pdf/pkg/types"
)

// Report is the document written by Write: the run summary plus when and
// by which build it was produced.
type Report struct {
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`

	types.Summary `json:",inline" yaml:",inline"`
}

// New returns a Report for s stamped with the current time.
func New(s types.Summary, version string) Report {
	return Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     version,
		Summary:     s,
	}
}

// Write saves r to path, as JSON when path ends in ".json" and as YAML
// otherwise. Missing parent directories are created.
func Write(path string, r Report) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
