package catidx

import "context"

// PageRef identifies one discovered source document.
type PageRef struct {
	Page int    // page number parsed from the filename
	Path string // absolute or base-relative path to the document
}

// PageSource discovers page documents to be indexed.
// Implementations hide the directory layout and filename convention.
type PageSource interface {
	// Discover returns one ref per source document, ascending by page.
	Discover(ctx context.Context) ([]PageRef, error)
}

// TextExtractor produces plain text from a page document.
// An empty string is a valid result meaning "no usable text"; it degrades
// the page's record rather than failing the run. Errors are treated the
// same way by callers.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// IndexWriter persists the finished index with atomic semantics.
// Save writes to a temporary location; Commit makes the output visible;
// Abort discards pending output. An interrupted run leaves either the
// previous output or none at all, never a partial one.
type IndexWriter interface {
	Save(ctx context.Context, index *Index) error
	Commit() error
	Abort() error
}
