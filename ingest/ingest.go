// Package ingest loads crawled record streams into the embedded
// document store. Each JSON line becomes one document carrying its
// lowercased business code and name as searchable metadata, with the
// raw line as content.
package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hfal/kursdoc"
)

// maxLineSize bounds one record line; program records with per-year
// content run long but stay well under this.
const maxLineSize = 4 << 20

// Ingester embeds and stores crawled records.
type Ingester struct {
	Documents   kursdoc.DocumentService
	Embedder    kursdoc.Embedder
	Logger      *slog.Logger
	Concurrency int
}

// Result holds the outcome of an ingest run.
type Result struct {
	// Added counts documents embedded and stored.
	Added int
	// Skipped counts records without a business code and records whose
	// content is already stored unchanged.
	Skipped int
	// Failed counts records that could not be embedded or stored.
	Failed int
}

// job is one record line prepared for embedding.
type job struct {
	doc *kursdoc.Document
}

// IngestFile loads one record stream into the document store.
// Unchanged records (same content hash for the same kind and source
// URL) are skipped, so re-running after a crawl only embeds what moved.
func (ing *Ingester) IngestFile(ctx context.Context, kind kursdoc.Kind, path string) (*Result, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	logger := ing.Logger
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening record stream: %w", err)
	}
	defer f.Close()

	result := &Result{}
	var jobs []job

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		doc, err := ing.prepare(ctx, kind, line)
		if err != nil {
			logger.Warn("skipping record", "reason", kursdoc.ErrorMessage(err))
			result.Skipped++
			continue
		}
		if doc == nil {
			// Already stored with identical content.
			result.Skipped++
			continue
		}
		jobs = append(jobs, job{doc: doc})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading record stream: %w", err)
	}

	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var added, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, j := range jobs {
		g.Go(func() error {
			embedding, err := ing.Embedder.EmbedText(gctx, j.doc.Content)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Error("embedding failed", "code", j.doc.Code, "err", err)
				failed.Add(1)
				return nil
			}
			j.doc.Embedding = embedding

			if err := ing.Documents.CreateDocument(gctx, j.doc); err != nil {
				logger.Error("storing document failed", "code", j.doc.Code, "err", err)
				failed.Add(1)
				return nil
			}
			added.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	result.Added = int(added.Load())
	result.Failed = int(failed.Load())
	return result, nil
}

// prepare parses one record line into a document, or returns nil when
// the stored document already has this content.
func (ing *Ingester) prepare(ctx context.Context, kind kursdoc.Kind, line string) (*kursdoc.Document, error) {
	var rec kursdoc.Record
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return nil, kursdoc.Errorf(kursdoc.EINVALID, "malformed record line: %v", err)
	}

	code := strings.ToLower(rec.GetString(kind.IdentityKey()))
	if code == "" {
		return nil, kursdoc.Errorf(kursdoc.EINVALID, "record %s has no %s", rec.SourceID(), kind.IdentityKey())
	}

	doc := &kursdoc.Document{
		Kind:        kind,
		Code:        code,
		Name:        strings.ToLower(rec.GetString(kursdoc.FieldName)),
		SourceURL:   rec.GetString(kursdoc.FieldURL),
		Content:     line,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(line)),
	}

	if existing, err := ing.Documents.FindDocumentBySource(ctx, kind, doc.SourceURL); err == nil {
		if existing.ContentHash == doc.ContentHash {
			return nil, nil
		}
	}
	return doc, nil
}
