// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PDFConfig holds settings for assembling page images into a PDF.
type PDFConfig struct {
	// Resolution is the dots per inch used to turn pixel sizes into page
	// sizes (default 100). Pixels are never resampled.
	Resolution float64 `json:"resolution" yaml:"resolution" mapstructure:"resolution"`

	// JPEGQuality is the quality (1-100) used when a page has to be
	// re-encoded (default 95). YCbCr JPEG sources are embedded as-is.
	JPEGQuality int `json:"jpeg_quality" yaml:"jpeg_quality" mapstructure:"jpeg_quality"`

	// Verify re-reads the finished document with pdfcpu and checks the
	// page count before it is written to disk.
	Verify bool `json:"verify" yaml:"verify" mapstructure:"verify"`
}

// ConverterConfig holds settings for a conversion run.
type ConverterConfig struct {
	// Folder is the parent folder containing the chapter folders.
	Folder string `json:"folder" yaml:"folder" mapstructure:"folder"`

	// Jobs is the number of chapters converted concurrently (default 1).
	Jobs int `json:"jobs" yaml:"jobs" mapstructure:"jobs"`

	// Progress enables the per-page progress bar.
	Progress bool `json:"progress" yaml:"progress" mapstructure:"progress"`

	// Report is an optional path for a YAML or JSON run report.
	Report string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`

	// FailOnError makes the run exit non-zero when any chapter failed.
	FailOnError bool `json:"fail_on_error" yaml:"fail_on_error" mapstructure:"fail_on_error"`

	PDF PDFConfig `json:"pdf" yaml:"pdf" mapstructure:",squash"`
}

// Defaults for ConverterConfig.
const (
	DefaultJobs        = 1
	DefaultResolution  = 100.0
	DefaultJPEGQuality = 95
)

// DefaultConverterConfig returns the configuration used when nothing is set.
func DefaultConverterConfig() ConverterConfig {
	return ConverterConfig{
		Jobs:     DefaultJobs,
		Progress: true,
		PDF: PDFConfig{
			Resolution:  DefaultResolution,
			JPEGQuality: DefaultJPEGQuality,
			Verify:      true,
		},
	}
}

// Normalize replaces out-of-range values with their defaults.
func (c ConverterConfig) Normalize() ConverterConfig {
	if c.Jobs <= 0 {
		c.Jobs = DefaultJobs
	}
	c.PDF = c.PDF.Normalize()
	return c
}

// Normalize replaces out-of-range values with their defaults.
func (c PDFConfig) Normalize() PDFConfig {
	if c.Resolution <= 0 {
		c.Resolution = DefaultResolution
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = DefaultJPEGQuality
	}
	return c
}
