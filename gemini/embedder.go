// Package gemini provides Google Gemini implementations of
// kursdoc.Embedder and kursdoc.Asker.
package gemini

import (
	"context"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/hfal/kursdoc"
)

const embeddingModel = "gemini-embedding-001"

// DefaultEmbedRPS caps embedding calls; the embedding API enforces its
// own quota and a local limiter keeps bulk ingestion under it.
const DefaultEmbedRPS = 5.0

// Ensure Embedder implements kursdoc.Embedder at compile time.
var _ kursdoc.Embedder = (*Embedder)(nil)

// Embedder produces embedding vectors using the Gemini embedding API.
type Embedder struct {
	client  *genai.Client
	limiter *rate.Limiter
}

// NewEmbedder creates a new Embedder. rps limits outgoing embedding
// calls per second; zero or negative applies DefaultEmbedRPS.
func NewEmbedder(client *genai.Client, rps float64) *Embedder {
	if rps <= 0 {
		rps = DefaultEmbedRPS
	}
	return &Embedder{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// EmbedText embeds free text into a vector.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, kursdoc.Errorf(kursdoc.EINVALID, "text required")
	}
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := e.client.Models.EmbedContent(ctx, embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, kursdoc.Errorf(kursdoc.EINTERNAL, "gemini returned an empty embedding")
	}

	return result.Embeddings[0].Values, nil
}
