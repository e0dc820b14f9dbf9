// Package pdf provides pure-Go PDF text extraction.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/catalogix/catidx"
	pdflib "github.com/ledongthuc/pdf"
)

// Ensure Extractor implements catidx.TextExtractor at compile time.
var _ catidx.TextExtractor = (*Extractor)(nil)

// Extractor extracts plain text from PDF files using the ledongthuc/pdf
// library. It needs no external tools, at the cost of losing the column
// layout that pdftotext preserves.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the concatenated plain text of all pages in the PDF.
// PDF pages are joined with form feeds, matching the page separator the
// normalizer strips. Pages that fail to decode are skipped.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %q: %w", path, err)
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\f")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}
