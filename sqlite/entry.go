package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/catalogix/catidx"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ catidx.EntryService = (*EntryService)(nil)

// EntryService implements catidx.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// CreateEntry stores a new entry. The entry's ID and IndexedAt fields are
// assigned here.
func (s *EntryService) CreateEntry(ctx context.Context, entry *catidx.CatalogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.IndexedAt = time.Now().UTC()

	products, err := json.Marshal(entry.Products)
	if err != nil {
		return err
	}
	keywords, err := json.Marshal(entry.Keywords)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (id, page, filename, thumbnail, section, page_range_group, title, products, keywords, summary, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Page, entry.Filename, entry.Thumbnail, entry.Section, entry.PageRangeGroup,
		entry.Title, string(products), string(keywords), entry.Summary, entry.ContentHash,
		entry.IndexedAt.Format(time.RFC3339))

	return err
}

// CreateEntries stores multiple entries in a batch.
func (s *EntryService) CreateEntries(ctx context.Context, entries []*catidx.CatalogEntry) error {
	for _, entry := range entries {
		if err := s.CreateEntry(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// FindEntryByPage retrieves the entry for a page number.
func (s *EntryService) FindEntryByPage(ctx context.Context, page int) (*catidx.CatalogEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, page, filename, thumbnail, section, page_range_group, title, products, keywords, summary, content_hash, indexed_at
		FROM entries
		WHERE page = ?
	`, page)

	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, catidx.Errorf(catidx.ENOTFOUND, "entry for page %d not found", page)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindEntries retrieves entries matching the filter, ascending by page.
func (s *EntryService) FindEntries(ctx context.Context, filter catidx.EntryFilter) ([]*catidx.CatalogEntry, error) {
	var query strings.Builder
	query.WriteString(`
		SELECT id, page, filename, thumbnail, section, page_range_group, title, products, keywords, summary, content_hash, indexed_at
		FROM entries
	`)

	var where []string
	var args []any
	if filter.Page != nil {
		where = append(where, "page = ?")
		args = append(args, *filter.Page)
	}
	if filter.Section != nil {
		where = append(where, "section = ?")
		args = append(args, *filter.Section)
	}
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	query.WriteString(" ORDER BY page ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*catidx.CatalogEntry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// DeleteEntries removes all stored entries.
func (s *EntryService) DeleteEntries(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM entries`)
	return err
}

// scanEntry scans one entries row using the given scan function.
func scanEntry(scan func(dest ...any) error) (*catidx.CatalogEntry, error) {
	var entry catidx.CatalogEntry
	var products, keywords, indexedAt string

	if err := scan(&entry.ID, &entry.Page, &entry.Filename, &entry.Thumbnail, &entry.Section,
		&entry.PageRangeGroup, &entry.Title, &products, &keywords, &entry.Summary,
		&entry.ContentHash, &indexedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(products), &entry.Products); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(keywords), &entry.Keywords); err != nil {
		return nil, err
	}

	var err error
	entry.IndexedAt, err = parseRFC3339(indexedAt, "indexed_at")
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
