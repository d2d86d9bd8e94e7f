// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chapter discovers chapter folders under a parent directory, collects
// their page images, and derives the output file name from the folder name.
package chapter

import (
	"regexp"
)

// numberPatterns are tried in order; the first match wins. Each captures the
// digit run in group 1.
var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)chapter[_\s]+(\d+)`),
	regexp.MustCompile(`(?i)ch[_\s]+(\d+)`),
	regexp.MustCompile(`(?i)c(\d+)`),
	regexp.MustCompile(`(\d+)`),
}

const (
	outputPrefix = "Chapter_"
	outputExt    = ".pdf"
)

// Number extracts the chapter number from a folder name ("Chapter_339" ->
// "339", "Ch 12" -> "12", "c07" -> "07", "vol3" -> "3"). The digits are
// returned as written. A name without any digits is returned unchanged.
func Number(folder string) string {
	for _, re := range numberPatterns {
		if m := re.FindStringSubmatch(folder); m != nil {
			return m[1]
		}
	}
	return folder
}

// OutputName returns the PDF file name for a chapter folder.
func OutputName(folder string) string {
	return outputPrefix + Number(folder) + outputExt
}
