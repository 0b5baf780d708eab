package kursdoc

import (
	"context"
	"time"
)

// Document is one crawled record prepared for semantic search: the raw
// JSON line from the record stream plus searchable metadata and an
// embedding vector.
type Document struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	SourceURL   string    `json:"sourceUrl"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Embedding   []float32 `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if err := d.Kind.Validate(); err != nil {
		return err
	}
	if d.Code == "" {
		return Errorf(EINVALID, "document code required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentFilter represents a filter for FindDocuments and
// SearchDocuments.
type DocumentFilter struct {
	Kind *Kind   `json:"kind"`
	Code *string `json:"code"`

	Limit int `json:"limit"`
}

// DocumentService represents a service for managing embedded documents.
type DocumentService interface {
	// CreateDocument creates a new document. An existing document for
	// the same kind, code and source URL is replaced.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentBySource retrieves the document for a kind and source
	// URL. Returns ENOTFOUND if no such document exists.
	FindDocumentBySource(ctx context.Context, kind Kind, sourceURL string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, newest
	// first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// SearchDocuments returns the k documents nearest to the query
	// embedding by cosine similarity, restricted by the filter.
	SearchDocuments(ctx context.Context, query []float32, k int, filter DocumentFilter) ([]*Document, error)
}

// Embedder produces embedding vectors for free text.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}
