package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfal/kursdoc"
	"github.com/hfal/kursdoc/sqlite"
)

func newTestDocument(code string, embedding []float32) *kursdoc.Document {
	return &kursdoc.Document{
		Kind:        kursdoc.KindCourse,
		Code:        code,
		Name:        "datastrukturer",
		SourceURL:   fmt.Sprintf("https://www.mdu.se/utbildning/kursplan?id=%s", code),
		Content:     `{"kurskod":"` + code + `"}`,
		ContentHash: "hash-" + code,
		Embedding:   embedding,
	}
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates and retrieves a document", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		doc := newTestDocument("dva117", []float32{0.1, 0.2, 0.3})
		require.NoError(t, s.CreateDocument(ctx, doc))
		assert.NotEmpty(t, doc.ID)
		assert.False(t, doc.CreatedAt.IsZero())

		got, err := s.FindDocumentBySource(ctx, kursdoc.KindCourse, doc.SourceURL)
		require.NoError(t, err)
		assert.Equal(t, doc.ID, got.ID)
		assert.Equal(t, "dva117", got.Code)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, got.Embedding)
		assert.Equal(t, doc.ContentHash, got.ContentHash)
	})

	t.Run("replaces an existing document for the same source", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		doc := newTestDocument("dva117", nil)
		require.NoError(t, s.CreateDocument(ctx, doc))

		updated := newTestDocument("dva117", nil)
		updated.Content = `{"kurskod":"dva117","rev":2}`
		updated.ContentHash = "hash-2"
		require.NoError(t, s.CreateDocument(ctx, updated))

		got, err := s.FindDocumentBySource(ctx, kursdoc.KindCourse, doc.SourceURL)
		require.NoError(t, err)
		assert.Equal(t, "hash-2", got.ContentHash)

		docs, err := s.FindDocuments(ctx, kursdoc.DocumentFilter{})
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		err := s.CreateDocument(ctx, &kursdoc.Document{Kind: kursdoc.KindCourse, Content: "x"})
		assert.Equal(t, kursdoc.EINVALID, kursdoc.ErrorCode(err))

		err = s.CreateDocument(ctx, &kursdoc.Document{Kind: "exam", Code: "x", Content: "x"})
		assert.Equal(t, kursdoc.EINVALID, kursdoc.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentBySource(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for a missing document", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		_, err := s.FindDocumentBySource(context.Background(), kursdoc.KindCourse, "https://example.com")
		require.Error(t, err)
		assert.Equal(t, kursdoc.ENOTFOUND, kursdoc.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by kind and code", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		course := newTestDocument("dva117", nil)
		require.NoError(t, s.CreateDocument(ctx, course))

		program := newTestDocument("gkv02", nil)
		program.Kind = kursdoc.KindProgram
		require.NoError(t, s.CreateDocument(ctx, program))

		kind := kursdoc.KindProgram
		docs, err := s.FindDocuments(ctx, kursdoc.DocumentFilter{Kind: &kind})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "gkv02", docs[0].Code)

		code := "dva117"
		docs, err = s.FindDocuments(ctx, kursdoc.DocumentFilter{Code: &code})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, kursdoc.KindCourse, docs[0].Kind)
	})

	t.Run("honors the limit", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, s.CreateDocument(ctx, newTestDocument(fmt.Sprintf("dva%d", 100+i), nil)))
		}

		docs, err := s.FindDocuments(ctx, kursdoc.DocumentFilter{Limit: 3})
		require.NoError(t, err)
		assert.Len(t, docs, 3)
	})
}

func TestDocumentService_SearchDocuments(t *testing.T) {
	t.Parallel()

	t.Run("ranks by cosine similarity", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateDocument(ctx, newTestDocument("dva117", []float32{1, 0, 0})))
		require.NoError(t, s.CreateDocument(ctx, newTestDocument("dva118", []float32{0.9, 0.1, 0})))
		require.NoError(t, s.CreateDocument(ctx, newTestDocument("dva119", []float32{0, 1, 0})))

		docs, err := s.SearchDocuments(ctx, []float32{1, 0, 0}, 2, kursdoc.DocumentFilter{})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "dva117", docs[0].Code)
		assert.Equal(t, "dva118", docs[1].Code)
	})

	t.Run("skips documents without an embedding", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateDocument(ctx, newTestDocument("dva117", nil)))
		require.NoError(t, s.CreateDocument(ctx, newTestDocument("dva118", []float32{1, 0})))

		docs, err := s.SearchDocuments(ctx, []float32{1, 0}, 5, kursdoc.DocumentFilter{})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "dva118", docs[0].Code)
	})

	t.Run("rejects a non-positive k", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewDocumentService(mustOpenDB(t))
		_, err := s.SearchDocuments(context.Background(), []float32{1}, 0, kursdoc.DocumentFilter{})
		assert.Equal(t, kursdoc.EINVALID, kursdoc.ErrorCode(err))
	})
}
