// Package ingestion turns uploaded resume documents into plain text and
// manages the uploads directory.
package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ExtractText extracts plain text from a PDF byte stream. A structurally
// broken document fails here and the error is reported for that file only;
// callers continue with the rest of the batch.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty document")
	}

	if err := validatePDF(data); err != nil {
		return "", fmt.Errorf("invalid PDF: %w", err)
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
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

// validatePDF runs a relaxed structural validation before text extraction so
// corrupt uploads surface a clear error instead of a parser panic.
func validatePDF(data []byte) error {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return api.Validate(bytes.NewReader(data), cfg)
}
