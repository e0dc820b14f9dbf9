// Package pdftotext provides PDF text extraction by shelling out to the
// poppler pdftotext tool.
package pdftotext

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/catalogix/catidx"
)

// Ensure Extractor implements catidx.TextExtractor at compile time.
var _ catidx.TextExtractor = (*Extractor)(nil)

// Extractor runs `pdftotext -layout <file> -` per page document. The
// -layout flag preserves the column structure of catalog tables, which the
// line-based heuristics depend on.
type Extractor struct {
	// Binary overrides the executable name. Defaults to "pdftotext".
	Binary string
}

// NewExtractor creates a new Extractor using the pdftotext on PATH.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Available reports whether the pdftotext binary can be found on PATH.
func (e *Extractor) Available() bool {
	_, err := exec.LookPath(e.binary())
	return err == nil
}

// ExtractText runs pdftotext and returns its stdout. The context cancels
// the subprocess.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, e.binary(), "-layout", path, "-")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext %q: %w: %s", path, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.String(), nil
}

func (e *Extractor) binary() string {
	if e.Binary != "" {
		return e.Binary
	}
	return "pdftotext"
}
