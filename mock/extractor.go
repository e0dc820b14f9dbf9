package mock

import (
	"context"

	"github.com/catalogix/catidx"
)

var _ catidx.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of catidx.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, path string) (string, error)
}

func (e *TextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return e.ExtractTextFn(ctx, path)
}
