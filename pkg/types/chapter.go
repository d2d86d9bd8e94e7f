// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data shared between the manga2pdf stages:
// chapter folders, per-chapter outcomes, the run summary, and configuration.
package types

// Chapter is one chapter folder under the parent directory.
type Chapter struct {
	// Name is the folder's base name (e.g. "Chapter_339").
	Name string `json:"name" yaml:"name"`

	// Path is the folder path, joined onto the parent directory as given.
	Path string `json:"path" yaml:"path"`
}

// OutcomeStatus is the final state of a chapter after processing.
type OutcomeStatus string

const (
	// OutcomeConverted means a new PDF was written.
	OutcomeConverted OutcomeStatus = "converted"
	// OutcomeSkipped means the PDF already existed and was left untouched.
	OutcomeSkipped OutcomeStatus = "skipped"
	// OutcomeFailed means no PDF was produced; Reason says why.
	OutcomeFailed OutcomeStatus = "failed"
)

// Failure reasons reported to the user.
const (
	ReasonNoImages    = "No images found"
	ReasonPDFFailed   = "PDF creation failed"
	ReasonUnreadable  = "Cannot read folder"
	ReasonInterrupted = "Interrupted"
)

// Outcome records what happened to one chapter folder.
type Outcome struct {
	Chapter Chapter `json:"chapter" yaml:"chapter"`

	// Number is the chapter number extracted from the folder name.
	Number string `json:"number" yaml:"number"`

	// Output is the PDF path for this chapter, whether or not it was written.
	Output string `json:"output" yaml:"output"`

	Status OutcomeStatus `json:"status" yaml:"status"`

	// Images is the number of page images found in the folder.
	Images int `json:"images" yaml:"images"`

	// Pages is the number of pages written; zero unless Status is converted.
	Pages int `json:"pages,omitempty" yaml:"pages,omitempty"`

	// Reason is set for failed outcomes.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Err holds the underlying error of a failed outcome, if any.
	Err error `json:"-" yaml:"-"`
}

// Succeeded reports whether the chapter has its PDF, either newly written or
// already present.
func (o Outcome) Succeeded() bool {
	return o.Status == OutcomeConverted || o.Status == OutcomeSkipped
}

// ErrorText returns the underlying error message, or "" when there is none.
func (o Outcome) ErrorText() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
