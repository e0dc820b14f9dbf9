package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/catalogix/catidx"
)

// Output filenames within the index directory.
const (
	CatalogFile = "catalog_index.json"
	SectionFile = "section_index.json"
)

// Ensure Writer implements catidx.IndexWriter at compile time.
var _ catidx.IndexWriter = (*Writer)(nil)

// Writer persists the two index documents with atomic update semantics.
// Files are saved to a temporary directory, then moved into place on
// Commit, so an interrupted run never leaves a half-written index.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a new Writer.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.baseDir, w.name)
}

// Save writes catalog_index.json and section_index.json to the temporary
// directory.
func (w *Writer) Save(ctx context.Context, index *catidx.Index) error {
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}

	if err := writeJSON(filepath.Join(w.tempDir(), CatalogFile), index.Catalog); err != nil {
		return err
	}
	return writeJSON(filepath.Join(w.tempDir(), SectionFile), index.Sections)
}

// Commit atomically replaces the final output directory with the saved one.
func (w *Writer) Commit() error {
	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.finalDir())
}

// Abort discards any saved output.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
