// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Failure names a chapter folder that produced no PDF and why.
type Failure struct {
	Folder string `json:"folder" yaml:"folder"`
	Reason string `json:"reason" yaml:"reason"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates the outcomes of one run over a parent folder.
type Summary struct {
	// Root is the parent folder that was processed.
	Root string `json:"root" yaml:"root"`

	Total     int `json:"total" yaml:"total"`
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`

	// Created and Existing split Succeeded into new PDFs and PDFs that
	// were already present.
	Created  int `json:"created" yaml:"created"`
	Existing int `json:"existing" yaml:"existing"`

	// Failures lists failed chapters in processing order.
	Failures []Failure `json:"failures,omitempty" yaml:"failures,omitempty"`

	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Summarize builds a Summary from outcomes, which must be in processing order.
func Summarize(root string, outcomes []Outcome) Summary {
	s := Summary{
		Root:     root,
		Total:    len(outcomes),
		Outcomes: outcomes,
	}
	for _, o := range outcomes {
		switch o.Status {
		case OutcomeConverted:
			s.Succeeded++
			s.Created++
		case OutcomeSkipped:
			s.Succeeded++
			s.Existing++
		default:
			s.Failed++
			s.Failures = append(s.Failures, Failure{
				Folder: o.Chapter.Name,
				Reason: o.Reason,
				Error:  o.ErrorText(),
			})
		}
	}
	return s
}

// HasFailures reports whether any chapter failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
