package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfal/kursdoc/mock"
	kurslog "github.com/hfal/kursdoc/slog"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingEmbedder_EmbedText(t *testing.T) {
	t.Parallel()

	t.Run("logs chars, dims and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Embedder{
			EmbedTextFn: func(_ context.Context, text string) ([]float32, error) {
				return []float32{0.1, 0.2, 0.3}, nil
			},
		}

		embedder := kurslog.NewLoggingEmbedder(inner, debugLogger(&buf))
		vec, err := embedder.EmbedText(context.Background(), "hello")

		require.NoError(t, err)
		assert.Len(t, vec, 3)
		output := buf.String()
		assert.Contains(t, output, "embed text")
		assert.Contains(t, output, "chars=5")
		assert.Contains(t, output, "dims=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Embedder{
			EmbedTextFn: func(context.Context, string) ([]float32, error) {
				return nil, errors.New("quota exceeded")
			},
		}

		embedder := kurslog.NewLoggingEmbedder(inner, debugLogger(&buf))
		_, err := embedder.EmbedText(context.Background(), "hello")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"quota exceeded\"")
	})
}
