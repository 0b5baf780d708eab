package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hfal/kursdoc"
	"github.com/hfal/kursdoc/crawl"
	"github.com/hfal/kursdoc/fs"
	"github.com/hfal/kursdoc/goquery"
	kurshttp "github.com/hfal/kursdoc/http"
)

// Run executes the crawl command. Course and program crawls run
// sequentially when both ranges are given.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.CourseRange == nil && c.ProgramRange == nil {
		return kursdoc.Errorf(kursdoc.EINVALID,
			"at least one of --course-range or --program-range must be specified")
	}

	if c.CourseRange != nil {
		fmt.Fprintf(deps.Stdout, "Starting crawl for courses from ID %d to %d\n",
			c.CourseRange.Start, c.CourseRange.End)
		if err := c.runKind(deps, kursdoc.KindCourse, *c.CourseRange); err != nil {
			return err
		}
	}

	if c.ProgramRange != nil {
		fmt.Fprintf(deps.Stdout, "Starting crawl for programs from ID %d to %d\n",
			c.ProgramRange.Start, c.ProgramRange.End)
		if err := c.runKind(deps, kursdoc.KindProgram, *c.ProgramRange); err != nil {
			return err
		}
	}

	return nil
}

// runKind performs one crawl pass for one kind.
func (c *CrawlCmd) runKind(deps *Dependencies, kind kursdoc.Kind, ids kursdoc.IDRange) error {
	layout := fs.NewLayout(c.OutputDir, kind)
	if err := layout.MkdirAll(); err != nil {
		return fmt.Errorf("creating output directories: %w", err)
	}

	logFile, err := os.OpenFile(layout.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening crawl log: %w", err)
	}
	defer logFile.Close()

	logger := newLogger(io.MultiWriter(deps.Stderr, logFile), c.Verbose)

	records, err := fs.NewJSONLWriter(layout.RecordsPath())
	if err != nil {
		return fmt.Errorf("creating record stream: %w", err)
	}
	defer records.Close()

	var extractor kursdoc.Extractor = goquery.NewCourseExtractor()
	if kind == kursdoc.KindProgram {
		extractor = goquery.NewProgramExtractor()
	}

	crawler := &crawl.Crawler{
		Fetcher:   kurshttp.NewFetcher(kind.BaseURL(), kurshttp.WithLogger(logger)),
		Extractor: extractor,
		Pages:     fs.NewPageStore(layout),
		Records:   records,
		Versions:  fs.NewVersionFile(layout.VersionsPath()),
		Logger:    logger,
		Config: crawl.Config{
			Kind:     kind,
			StartID:  ids.Start,
			EndID:    ids.End,
			MinDelay: secondsToDuration(c.MinDelay),
			MaxDelay: secondsToDuration(c.MaxDelay),
			NoDelay:  c.NoDelay,
		},
	}

	result, err := crawler.Run(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawled %s IDs %s: %d fetched, %d persisted, %d newest versions\n",
		kind, ids, result.Fetched, result.Persisted, result.Versions)
	fmt.Fprintf(deps.Stdout, "  Records: %s\n", layout.RecordsPath())
	fmt.Fprintf(deps.Stdout, "  Newest versions: %s\n", layout.VersionsPath())
	fmt.Fprintf(deps.Stdout, "  HTML cache: %s\n", layout.HTMLDir())
	return nil
}

// newLogger builds the crawl logger: Info and up when verbose, Warn and
// up otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
