package catidx

import (
	"context"
	"fmt"
	"time"
)

// CatalogEntry is the structured record produced for one catalog page.
type CatalogEntry struct {
	Page           int      `json:"page"`
	Filename       string   `json:"filename"`
	Thumbnail      string   `json:"thumbnail"`
	Section        string   `json:"section"`
	PageRangeGroup string   `json:"pageRangeGroup"`
	Title          string   `json:"title"`
	Products       []string `json:"products"`
	Keywords       []string `json:"keywords"`
	Summary        string   `json:"summary"`

	// Storage metadata, not part of the serialized catalog document.
	ID          string    `json:"-"`
	ContentHash string    `json:"-"`
	IndexedAt   time.Time `json:"-"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CatalogEntry) Validate() error {
	if e.Page <= 0 {
		return Errorf(EINVALID, "entry page number must be positive")
	}
	if e.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	if e.Summary == "" {
		return Errorf(EINVALID, "entry summary required")
	}
	return nil
}

// PageFilename returns the source document filename for a page number,
// following the corpus naming convention.
func PageFilename(page int) string {
	return fmt.Sprintf("ocr_trim_page_%04d.pdf", page)
}

// PageThumbnail returns the derived thumbnail path for a page number.
func PageThumbnail(page int) string {
	return fmt.Sprintf("thumbnails/page_%04d.png", page)
}

// Index holds the two output structures of a run: the catalog, sorted
// ascending by page, and the per-section page directory.
type Index struct {
	Catalog  []*CatalogEntry
	Sections *SectionIndex
}

// EntryService represents a service for persisting and querying catalog
// entries.
type EntryService interface {
	// CreateEntry stores a new entry.
	CreateEntry(ctx context.Context, entry *CatalogEntry) error

	// CreateEntries stores multiple entries in a batch.
	CreateEntries(ctx context.Context, entries []*CatalogEntry) error

	// FindEntryByPage retrieves the entry for a page number.
	// Returns ENOTFOUND if no entry exists for the page.
	FindEntryByPage(ctx context.Context, page int) (*CatalogEntry, error)

	// FindEntries retrieves entries matching the filter, ascending by page.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*CatalogEntry, error)

	// DeleteEntries removes all stored entries.
	DeleteEntries(ctx context.Context) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	Page    *int    `json:"page"`
	Section *string `json:"section"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
