package main

import (
	"context"
	"io"

	"github.com/hfal/kursdoc"
	"github.com/hfal/kursdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents kursdoc.DocumentService
	Embedder  kursdoc.Embedder
	Asker     kursdoc.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Crawl course and/or program plans over an ID range"`
	Ingest IngestCmd `cmd:"" help:"Embed crawled records into the local search index"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about crawled courses and programs"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	CourseRange  *kursdoc.IDRange `help:"Course ID range, e.g. 25000-35000"`
	ProgramRange *kursdoc.IDRange `help:"Program ID range, e.g. 200-2000"`
	OutputDir    string           `default:"mdu_data" help:"Output directory for all data"`
	MinDelay     float64          `default:"2" help:"Minimum delay between requests in seconds"`
	MaxDelay     float64          `default:"5" help:"Maximum delay between requests in seconds"`
	NoDelay      bool             `help:"Disable delay between requests"`
	Verbose      bool             `short:"v" help:"Enable verbose logging"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Kind        string `arg:"" enum:"course,program" help:"Record stream to ingest (course or program)"`
	OutputDir   string `default:"mdu_data" help:"Output directory the crawl wrote to"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent embedding limit"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question to ask about the crawled courses and programs"`
}
