// Package mock provides function-field mock implementations of the
// kursdoc domain interfaces for tests.
package mock

import (
	"context"

	"github.com/hfal/kursdoc"
)

var _ kursdoc.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of kursdoc.PageFetcher.
type PageFetcher struct {
	FetchIDFn func(ctx context.Context, id int) (string, error)
}

func (f *PageFetcher) FetchID(ctx context.Context, id int) (string, error) {
	return f.FetchIDFn(ctx, id)
}
