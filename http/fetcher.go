// Package http provides an HTTP-based implementation of
// kursdoc.PageFetcher for retrieving plan pages by numeric ID.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/hfal/kursdoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// PlaceholderToken is echoed by the origin system on pages for undefined
// IDs; a body containing it is treated as an absent page.
const PlaceholderToken = "$details.name"

// defaultUserAgents is the fixed pool the fetcher rotates through. The
// rotation is a best-effort anti-blocking measure, not a correctness
// requirement.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0",
}

// Ensure Fetcher implements kursdoc.PageFetcher at compile time.
var _ kursdoc.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves plan pages over HTTP by interpolating numeric IDs
// into a kind-specific base URL. All failure modes - transport errors,
// non-2xx statuses and placeholder pages - surface as ENOTFOUND so the
// caller can treat them uniformly as "page absent".
type Fetcher struct {
	baseURL    string
	client     *http.Client
	timeout    time.Duration
	userAgents []string
	logger     *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgents replaces the client-identity pool.
func WithUserAgents(agents []string) Option {
	return func(f *Fetcher) {
		f.userAgents = agents
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher for the given base URL.
func NewFetcher(baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:    baseURL,
		timeout:    DefaultFetchTimeout,
		userAgents: defaultUserAgents,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// URLFor returns the request URL for a numeric ID.
func (f *Fetcher) URLFor(id int) string {
	return fmt.Sprintf("%s?id=%d", f.baseURL, id)
}

// FetchID retrieves the raw HTML for the page with the given ID. Absent
// pages return an ENOTFOUND error; transport problems are logged but
// never propagated as anything more severe.
func (f *Fetcher) FetchID(ctx context.Context, id int) (string, error) {
	url := f.URLFor(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", kursdoc.Errorf(kursdoc.EINVALID, "building request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.rotateUserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("fetch failed", "id", id, "url", url, "err", err)
		return "", kursdoc.Errorf(kursdoc.ENOTFOUND, "page %d unreachable", id)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Error("fetch failed", "id", id, "url", url, "status", resp.StatusCode)
		return "", kursdoc.Errorf(kursdoc.ENOTFOUND, "page %d returned HTTP %d", id, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Error("fetch failed", "id", id, "url", url, "err", err)
		return "", kursdoc.Errorf(kursdoc.ENOTFOUND, "page %d body unreadable", id)
	}

	html := string(body)
	if strings.Contains(html, PlaceholderToken) {
		return "", kursdoc.Errorf(kursdoc.ENOTFOUND, "page %d is a placeholder", id)
	}

	return html, nil
}

// rotateUserAgent picks the outgoing client identity for the next
// request, uniformly at random from the pool.
func (f *Fetcher) rotateUserAgent() string {
	if len(f.userAgents) == 0 {
		return ""
	}
	agent := f.userAgents[rand.Intn(len(f.userAgents))]
	f.logger.Debug("rotated user agent", "agent", agent)
	return agent
}
