package mock

import (
	"context"

	"github.com/hfal/kursdoc"
)

var (
	_ kursdoc.Embedder = (*Embedder)(nil)
	_ kursdoc.Asker    = (*Asker)(nil)
)

// Embedder is a mock implementation of kursdoc.Embedder.
type Embedder struct {
	EmbedTextFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedTextFn(ctx, text)
}

// Asker is a mock implementation of kursdoc.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
