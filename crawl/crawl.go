// Package crawl provides the crawl driver. It orchestrates one linear
// pass over a numeric ID range: fetch, cache the raw page, extract a
// record, stream it out, and fold it into the per-code version index,
// which is flushed once at the end of the pass.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hfal/kursdoc"
)

// State is the driver's lifecycle state.
type State int

// Driver states. A run moves strictly forward through them.
const (
	StateIdle State = iota
	StateRunning
	StateFlushing
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFlushing:
		return "flushing"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Config holds the knobs for one crawl pass. It replaces ambient
// process-wide settings: delay and verbosity are explicit fields, wired
// in at construction.
type Config struct {
	Kind    kursdoc.Kind
	StartID int
	EndID   int

	// Inter-request pacing: a uniform random delay in [MinDelay,
	// MaxDelay] after each ID, or none at all when NoDelay is set.
	MinDelay time.Duration
	MaxDelay time.Duration
	NoDelay  bool
}

// Validate returns an error if the config is unusable.
func (c Config) Validate() error {
	if err := c.Kind.Validate(); err != nil {
		return err
	}
	if c.EndID < c.StartID {
		return kursdoc.Errorf(kursdoc.EINVALID, "ID range %d-%d is empty", c.StartID, c.EndID)
	}
	return nil
}

// Result holds the outcome of a crawl pass.
type Result struct {
	// Fetched counts IDs that returned a page.
	Fetched int
	// Persisted counts records written to the primary stream.
	Persisted int
	// Invalid counts program stubs excluded from the stream.
	Invalid int
	// Versions counts distinct codes in the flushed version index.
	Versions int
}

// Crawler drives one crawl pass. It exclusively owns the version index;
// processing is strictly sequential as a politeness constraint toward
// the origin server.
type Crawler struct {
	Fetcher   kursdoc.PageFetcher
	Extractor kursdoc.Extractor
	Pages     kursdoc.PageStore
	Records   kursdoc.RecordWriter
	Versions  kursdoc.VersionWriter
	Logger    *slog.Logger
	Config    Config

	index *kursdoc.VersionIndex
	pacer *Pacer
	state State
}

// State returns the driver's current lifecycle state.
func (c *Crawler) State() State {
	return c.state
}

// Run executes the pass. Absent pages, parse gaps and write failures are
// logged and skipped; only context cancellation and an invalid config
// abort the run. The version index is rebuilt from empty every time and
// flushed only after the last ID, so an interrupted run produces no
// latest-versions output.
func (c *Crawler) Run(ctx context.Context) (*Result, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.index == nil {
		c.index = kursdoc.NewVersionIndex()
	}
	c.index.Reset()
	c.pacer = NewPacer(c.Config.MinDelay, c.Config.MaxDelay, c.Config.NoDelay, c.Logger)

	c.Logger.Info("starting crawl",
		"kind", string(c.Config.Kind),
		"start", c.Config.StartID,
		"end", c.Config.EndID,
		"pacing", c.pacer.String(),
	)

	c.state = StateRunning
	result := &Result{}

	for id := c.Config.StartID; id <= c.Config.EndID; id++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := c.processID(ctx, id, result); err != nil {
			return result, err
		}
	}

	c.state = StateFlushing
	if err := c.Versions.WriteVersions(c.index.Entries()); err != nil {
		return result, err
	}
	result.Versions = c.index.Len()
	c.state = StateDone

	c.Logger.Info("crawl completed",
		"kind", string(c.Config.Kind),
		"fetched", result.Fetched,
		"persisted", result.Persisted,
		"versions", result.Versions,
	)
	return result, nil
}

// processID handles one numeric ID end to end.
func (c *Crawler) processID(ctx context.Context, id int, result *Result) error {
	c.Logger.Info("fetching", "kind", string(c.Config.Kind), "id", id)

	html, err := c.Fetcher.FetchID(ctx, id)
	if err != nil {
		// Absent page: transport failure, non-2xx or placeholder.
		c.Logger.Info("page absent", "id", id, "reason", kursdoc.ErrorMessage(err))
		return c.pacer.Wait(ctx)
	}
	result.Fetched++

	if err := c.Pages.SavePage(id, html); err != nil {
		c.Logger.Error("failed to cache page", "id", id, "err", err)
	}

	rec, err := c.Extractor.Extract(html, id)
	if err != nil {
		c.Logger.Error("extraction failed", "id", id, "err", err)
		return c.pacer.Wait(ctx)
	}

	// Program stubs for nonexistent IDs are dropped entirely: no record
	// line, no version entry.
	if !rec.IsValid() {
		result.Invalid++
		return nil
	}

	rec[kursdoc.FieldURL] = fmt.Sprintf("%s?id=%d", c.Config.Kind.BaseURL(), id)

	if err := c.Records.WriteRecord(rec); err != nil {
		c.Logger.Error("failed to write record", "id", id, "err", err)
	} else {
		result.Persisted++
	}

	c.observeVersion(rec, id)

	return c.pacer.Wait(ctx)
}

// observeVersion folds a record into the version index when it carries
// both a business code and a parseable validity date.
func (c *Crawler) observeVersion(rec kursdoc.Record, id int) {
	code := rec.GetString(c.Config.Kind.IdentityKey())
	dateStr := rec.GetString(kursdoc.FieldValidFrom)
	if code == "" || dateStr == "" {
		return
	}
	validFrom, ok := kursdoc.ParseValidFrom(dateStr)
	if !ok {
		// Unparseable date: still persisted above, just not comparable.
		return
	}

	name := ""
	if c.Config.Kind == kursdoc.KindProgram {
		name = rec.GetString(kursdoc.FieldName)
	}
	entry := kursdoc.VersionEntry{
		Code:      code,
		Title:     rec.GetString(kursdoc.FieldTitle),
		Name:      name,
		ValidFrom: validFrom,
		SourceID:  id,
		IsActive:  rec.IsActive(),
	}
	if c.index.Observe(entry) {
		c.Logger.Info("found newer version", "code", code, "valid_from", validFrom)
	}
}
