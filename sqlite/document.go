package sqlite

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hfal/kursdoc"
)

// Compile-time interface verification.
var _ kursdoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements kursdoc.DocumentService using SQLite.
// Similarity search is a brute-force cosine scan over the candidate
// rows; at the scale of one university's course catalogue that is
// entirely adequate.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document, replacing any existing document
// for the same kind and source URL.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *kursdoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, kind, code, name, source_url, content, content_hash, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, source_url) DO UPDATE SET
			id = excluded.id,
			code = excluded.code,
			name = excluded.name,
			content = excluded.content,
			content_hash = excluded.content_hash,
			embedding = excluded.embedding,
			created_at = excluded.created_at
	`, doc.ID, string(doc.Kind), doc.Code, doc.Name, doc.SourceURL, doc.Content,
		doc.ContentHash, encodeEmbedding(doc.Embedding), doc.CreatedAt.Format(time.RFC3339))

	return err
}

// FindDocumentBySource retrieves the document for a kind and source URL.
func (s *DocumentService) FindDocumentBySource(ctx context.Context, kind kursdoc.Kind, sourceURL string) (*kursdoc.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, code, name, source_url, content, content_hash, embedding, created_at
		FROM documents
		WHERE kind = ? AND source_url = ?
	`, string(kind), sourceURL)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, kursdoc.Errorf(kursdoc.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter kursdoc.DocumentFilter) ([]*kursdoc.Document, error) {
	query, args := buildFilterQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*kursdoc.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// SearchDocuments returns the k documents nearest to the query embedding
// by cosine similarity, restricted by the filter.
func (s *DocumentService) SearchDocuments(ctx context.Context, query []float32, k int, filter kursdoc.DocumentFilter) ([]*kursdoc.Document, error) {
	if k <= 0 {
		return nil, kursdoc.Errorf(kursdoc.EINVALID, "k must be positive")
	}

	// Candidate rows honor the filter but not its limit; ranking decides.
	filter.Limit = 0
	candidates, err := s.FindDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	type scored struct {
		doc   *kursdoc.Document
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, doc := range candidates {
		if len(doc.Embedding) == 0 {
			continue
		}
		ranked = append(ranked, scored{doc: doc, score: cosineSimilarity(query, doc.Embedding)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if k > len(ranked) {
		k = len(ranked)
	}
	docs := make([]*kursdoc.Document, 0, k)
	for _, r := range ranked[:k] {
		docs = append(docs, r.doc)
	}
	return docs, nil
}

// buildFilterQuery assembles the SELECT for a DocumentFilter.
func buildFilterQuery(filter kursdoc.DocumentFilter) (string, []any) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, code, name, source_url, content, content_hash, embedding, created_at FROM documents WHERE 1=1")

	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Code != nil {
		query.WriteString(" AND code = ?")
		args = append(args, *filter.Code)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	return query.String(), args
}

// scanDocument reads one documents row via the given scan function.
func scanDocument(scan func(dest ...any) error) (*kursdoc.Document, error) {
	var doc kursdoc.Document
	var kind string
	var embedding []byte
	var createdAt string

	if err := scan(&doc.ID, &kind, &doc.Code, &doc.Name, &doc.SourceURL,
		&doc.Content, &doc.ContentHash, &embedding, &createdAt); err != nil {
		return nil, err
	}

	doc.Kind = kursdoc.Kind(kind)
	doc.Embedding = decodeEmbedding(embedding)

	var err error
	doc.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
