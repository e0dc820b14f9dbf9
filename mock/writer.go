package mock

import (
	"context"

	"github.com/catalogix/catidx"
)

var _ catidx.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of catidx.IndexWriter.
type IndexWriter struct {
	SaveFn   func(ctx context.Context, index *catidx.Index) error
	CommitFn func() error
	AbortFn  func() error
}

func (w *IndexWriter) Save(ctx context.Context, index *catidx.Index) error {
	return w.SaveFn(ctx, index)
}

func (w *IndexWriter) Commit() error {
	return w.CommitFn()
}

func (w *IndexWriter) Abort() error {
	return w.AbortFn()
}
