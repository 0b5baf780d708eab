package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/hfal/kursdoc"
)

// Ensure LoggingDocumentService implements kursdoc.DocumentService.
var _ kursdoc.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with debug logging.
type LoggingDocumentService struct {
	next   kursdoc.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next kursdoc.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// CreateDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *kursdoc.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create document",
			"kind", string(doc.Kind),
			"code", doc.Code,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

// FindDocumentBySource delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocumentBySource(ctx context.Context, kind kursdoc.Kind, sourceURL string) (*kursdoc.Document, error) {
	return s.next.FindDocumentBySource(ctx, kind, sourceURL)
}

// FindDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter kursdoc.DocumentFilter) (docs []*kursdoc.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocuments(ctx, filter)
}

// SearchDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) SearchDocuments(ctx context.Context, query []float32, k int, filter kursdoc.DocumentFilter) (docs []*kursdoc.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search documents",
			"k", k,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchDocuments(ctx, query, k, filter)
}
