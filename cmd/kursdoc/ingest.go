package main

import (
	"fmt"
	"log/slog"

	"github.com/hfal/kursdoc"
	"github.com/hfal/kursdoc/fs"
	"github.com/hfal/kursdoc/ingest"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	kind := kursdoc.Kind(c.Kind)
	layout := fs.NewLayout(c.OutputDir, kind)

	ingester := &ingest.Ingester{
		Documents:   deps.Documents,
		Embedder:    deps.Embedder,
		Logger:      slog.New(slog.NewTextHandler(deps.Stderr, nil)),
		Concurrency: c.Concurrency,
	}

	result, err := ingester.IngestFile(deps.Ctx, kind, layout.RecordsPath())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kursdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ingested %s: %d added, %d skipped, %d failed\n",
		layout.RecordsPath(), result.Added, result.Skipped, result.Failed)
	return nil
}
