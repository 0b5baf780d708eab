package mock

import (
	"context"

	"github.com/hfal/kursdoc"
)

var _ kursdoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of kursdoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn       func(ctx context.Context, doc *kursdoc.Document) error
	FindDocumentBySourceFn func(ctx context.Context, kind kursdoc.Kind, sourceURL string) (*kursdoc.Document, error)
	FindDocumentsFn        func(ctx context.Context, filter kursdoc.DocumentFilter) ([]*kursdoc.Document, error)
	SearchDocumentsFn      func(ctx context.Context, query []float32, k int, filter kursdoc.DocumentFilter) ([]*kursdoc.Document, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *kursdoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentBySource(ctx context.Context, kind kursdoc.Kind, sourceURL string) (*kursdoc.Document, error) {
	return s.FindDocumentBySourceFn(ctx, kind, sourceURL)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter kursdoc.DocumentFilter) ([]*kursdoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) SearchDocuments(ctx context.Context, query []float32, k int, filter kursdoc.DocumentFilter) ([]*kursdoc.Document, error) {
	return s.SearchDocumentsFn(ctx, query, k, filter)
}
