// Package mock provides mock implementations of catidx interfaces for
// testing.
package mock

import (
	"context"

	"github.com/catalogix/catidx"
)

var _ catidx.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of catidx.PageSource.
type PageSource struct {
	DiscoverFn func(ctx context.Context) ([]catidx.PageRef, error)
}

func (s *PageSource) Discover(ctx context.Context) ([]catidx.PageRef, error) {
	return s.DiscoverFn(ctx)
}
