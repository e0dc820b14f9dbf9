package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/catalogix/catidx"
	"github.com/catalogix/catidx/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testEntry(page int) *catidx.CatalogEntry {
	return &catidx.CatalogEntry{
		Page:           page,
		Filename:       catidx.PageFilename(page),
		Thumbnail:      catidx.PageThumbnail(page),
		Section:        "Hand Tools",
		PageRangeGroup: catidx.PageRangeGroup(page),
		Title:          fmt.Sprintf("HAMMERS – Page %d", page),
		Products:       []string{"CLAW HAMMER", "H-100X"},
		Keywords:       []string{"claw", "hammer"},
		Summary:        "Features CLAW HAMMER, H-100X. This page includes product listings.",
		ContentHash:    "abc123",
	}
}

func TestEntryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("creates entry with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		entry := testEntry(101)

		err := svc.CreateEntry(ctx, entry)
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID, "ID should be generated")
		assert.False(t, entry.IndexedAt.IsZero(), "IndexedAt should be set")
	})

	t.Run("returns error for invalid entry", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		err := svc.CreateEntry(context.Background(), &catidx.CatalogEntry{})

		require.Error(t, err)
		assert.Equal(t, catidx.EINVALID, catidx.ErrorCode(err))
	})

	t.Run("rejects duplicate page numbers", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateEntry(ctx, testEntry(101)))

		err := svc.CreateEntry(ctx, testEntry(101))

		require.Error(t, err)
	})
}

func TestEntryService_FindEntryByPage(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		entry := testEntry(101)
		require.NoError(t, svc.CreateEntry(ctx, entry))

		found, err := svc.FindEntryByPage(ctx, 101)

		require.NoError(t, err)
		assert.Equal(t, entry.ID, found.ID)
		assert.Equal(t, 101, found.Page)
		assert.Equal(t, "ocr_trim_page_0101.pdf", found.Filename)
		assert.Equal(t, "thumbnails/page_0101.png", found.Thumbnail)
		assert.Equal(t, "Hand Tools", found.Section)
		assert.Equal(t, "Pages 100–109", found.PageRangeGroup)
		assert.Equal(t, entry.Title, found.Title)
		assert.Equal(t, []string{"CLAW HAMMER", "H-100X"}, found.Products)
		assert.Equal(t, []string{"claw", "hammer"}, found.Keywords)
		assert.Equal(t, entry.Summary, found.Summary)
		assert.Equal(t, "abc123", found.ContentHash)
		assert.False(t, found.IndexedAt.IsZero())
	})

	t.Run("returns ENOTFOUND for a missing page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)

		_, err := svc.FindEntryByPage(context.Background(), 999)

		require.Error(t, err)
		assert.Equal(t, catidx.ENOTFOUND, catidx.ErrorCode(err))
	})
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	t.Run("returns entries ascending by page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		for _, page := range []int{105, 101, 103} {
			require.NoError(t, svc.CreateEntry(ctx, testEntry(page)))
		}

		entries, err := svc.FindEntries(ctx, catidx.EntryFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, 101, entries[0].Page)
		assert.Equal(t, 103, entries[1].Page)
		assert.Equal(t, 105, entries[2].Page)
	})

	t.Run("filters by section", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		first := testEntry(101)
		require.NoError(t, svc.CreateEntry(ctx, first))

		other := testEntry(250)
		other.Section = "Safety Equipment Supplies"
		require.NoError(t, svc.CreateEntry(ctx, other))

		section := "Safety Equipment Supplies"
		entries, err := svc.FindEntries(ctx, catidx.EntryFilter{Section: &section})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 250, entries[0].Page)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewEntryService(db)
		ctx := context.Background()

		for page := 101; page <= 110; page++ {
			require.NoError(t, svc.CreateEntry(ctx, testEntry(page)))
		}

		entries, err := svc.FindEntries(ctx, catidx.EntryFilter{Limit: 3, Offset: 2})

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, 103, entries[0].Page)
	})
}

func TestEntryService_DeleteEntries(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewEntryService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateEntry(ctx, testEntry(101)))
	require.NoError(t, svc.CreateEntry(ctx, testEntry(102)))

	require.NoError(t, svc.DeleteEntries(ctx))

	entries, err := svc.FindEntries(ctx, catidx.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
