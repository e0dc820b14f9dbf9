package mock

import (
	"context"

	"github.com/catalogix/catidx"
)

var _ catidx.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of catidx.EntryService.
type EntryService struct {
	CreateEntryFn     func(ctx context.Context, entry *catidx.CatalogEntry) error
	CreateEntriesFn   func(ctx context.Context, entries []*catidx.CatalogEntry) error
	FindEntryByPageFn func(ctx context.Context, page int) (*catidx.CatalogEntry, error)
	FindEntriesFn     func(ctx context.Context, filter catidx.EntryFilter) ([]*catidx.CatalogEntry, error)
	DeleteEntriesFn   func(ctx context.Context) error
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *catidx.CatalogEntry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) CreateEntries(ctx context.Context, entries []*catidx.CatalogEntry) error {
	return s.CreateEntriesFn(ctx, entries)
}

func (s *EntryService) FindEntryByPage(ctx context.Context, page int) (*catidx.CatalogEntry, error) {
	return s.FindEntryByPageFn(ctx, page)
}

func (s *EntryService) FindEntries(ctx context.Context, filter catidx.EntryFilter) ([]*catidx.CatalogEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) DeleteEntries(ctx context.Context) error {
	return s.DeleteEntriesFn(ctx)
}
