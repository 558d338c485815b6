// Package extract provides the text-extraction collaborator used by the
// resume pipeline. Extraction is opaque to the rest of the system: it takes a
// file path and returns plain text, or an empty string when nothing could be
// extracted.
package extract

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Extractor turns a stored resume file into plain text.
type Extractor interface {
	Extract(path string) string
}

// PlainText extracts text from plain-text resume files. PDF and DOCX
// extraction is handled by an external collaborator; unsupported formats
// yield an empty string rather than an error.
type PlainText struct{}

// NewPlainText creates a new PlainText extractor.
func NewPlainText() *PlainText {
	return &PlainText{}
}

// Extract reads the file and returns its contents with whitespace collapsed
// to single spaces. Any read failure or unsupported extension returns "".
func (e *PlainText) Extract(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md":
	default:
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error extracting resume text from %s: %v", path, err)
		return ""
	}

	return strings.Join(strings.Fields(string(data)), " ")
}
