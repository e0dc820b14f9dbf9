// Package build provides catalog index construction. It coordinates page
// discovery, text extraction, heuristic record building, and section
// grouping into the two output structures of a run.
package build

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/catalogix/catidx"
	"golang.org/x/sync/errgroup"
)

// Builder orchestrates one indexing run over a page corpus.
type Builder struct {
	Pages     catidx.PageSource
	Extractor catidx.TextExtractor
	Table     catidx.SectionTable

	// Entries, when set, receives the finished catalog entries, replacing
	// any previously stored run.
	Entries catidx.EntryService

	// Concurrency bounds parallel page processing. Defaults to 4.
	Concurrency int

	products *catidx.ProductExtractor
	keywords *catidx.KeywordExtractor
}

// Result holds the outcome of a build operation.
type Result struct {
	Index *catidx.Index

	Pages    int
	Degraded int // pages indexed from empty or failed extraction
	Products int
	Keywords int
	Bytes    int // total extracted text
}

// ProgressEvent reports progress during a build operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Page      int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressDegraded
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single page.
type pageResult struct {
	position int
	entry    *catidx.CatalogEntry
	bytes    int
	err      error // extraction failure; the entry is still present
}

// Build processes every discovered page and returns the finished index.
// Extraction failures degrade individual pages; only discovery or storage
// failures abort the run.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) (*Result, error) {
	refs, err := b.Pages.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("page discovery: %w", err)
	}

	// The source contract is ascending page order, but output correctness
	// depends on it, so it is not left to trust.
	sort.Slice(refs, func(i, j int) bool { return refs[i].Page < refs[j].Page })

	b.products = catidx.NewProductExtractor()
	b.keywords = catidx.NewKeywordExtractor()

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(refs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, ref := range refs {
			i, ref := i, ref
			g.Go(func() error {
				resultCh <- b.processPage(gctx, i, ref)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect into positional slots; completion order is not page order.
	results := make([]pageResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			Page:      result.entry.Page,
		}
		if result.err != nil {
			event.Type = ProgressDegraded
			event.Error = result.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	index := &catidx.Index{
		Catalog:  make([]*catidx.CatalogEntry, 0, total),
		Sections: catidx.NewSectionIndex(b.Table),
	}

	result := &Result{Index: index}
	for _, r := range results {
		index.Catalog = append(index.Catalog, r.entry)
		index.Sections.Add(r.entry.Section, r.entry.Page)

		result.Pages++
		result.Products += len(r.entry.Products)
		result.Keywords += len(r.entry.Keywords)
		result.Bytes += r.bytes
		if r.err != nil || r.bytes == 0 {
			result.Degraded++
		}
	}

	if b.Entries != nil {
		if err := b.Entries.DeleteEntries(ctx); err != nil {
			return nil, fmt.Errorf("clear stored entries: %w", err)
		}
		if err := b.Entries.CreateEntries(ctx, index.Catalog); err != nil {
			return nil, fmt.Errorf("store entries: %w", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processPage extracts text for one page and builds its catalog entry.
// Extraction errors yield an empty-text record rather than a failure.
func (b *Builder) processPage(ctx context.Context, position int, ref catidx.PageRef) pageResult {
	result := pageResult{position: position}

	raw, err := b.Extractor.ExtractText(ctx, ref.Path)
	if err != nil {
		result.err = err
		raw = ""
	}
	result.bytes = len(raw)

	lines := catidx.Lines(raw)
	normalized := catidx.Normalize(raw)

	section, rangeGroup := b.Table.Resolve(ref.Page)
	title := catidx.ExtractTitle(lines, ref.Page, b.Table)
	products := b.products.Extract(lines)
	keywords := b.keywords.Extract(normalized, title, products)

	result.entry = &catidx.CatalogEntry{
		Page:           ref.Page,
		Filename:       catidx.PageFilename(ref.Page),
		Thumbnail:      catidx.PageThumbnail(ref.Page),
		Section:        section,
		PageRangeGroup: rangeGroup,
		Title:          title,
		Products:       products,
		Keywords:       keywords,
		Summary:        catidx.GenerateSummary(normalized, products),
		ContentHash:    ComputeHash(normalized),
	}
	return result
}
