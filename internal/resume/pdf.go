// Package resume handles uploaded resume documents: PDF text extraction and
// the staging store for anonymous uploads.
package resume

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// MaxUploadBytes caps accepted upload size.
	MaxUploadBytes = 5 << 20

	// minExtractedChars rejects scans and image-only PDFs that yield no
	// usable text.
	minExtractedChars = 50
)

// IsPDF sniffs the PDF magic header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// ExtractText extracts plain text from a PDF document. It fails for
// malformed documents and for extractions too short to analyze.
func ExtractText(data []byte) (string, error) {
	if len(data) > MaxUploadBytes {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", MaxUploadBytes)
	}
	if !IsPDF(data) {
		return "", fmt.Errorf("file is not a PDF document")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}

	extracted := textBuilder.String()
	if len(strings.TrimSpace(extracted)) < minExtractedChars {
		return "", fmt.Errorf("could not extract text from PDF")
	}
	return extracted, nil
}
