// Package fs provides the on-disk layout and file-based persistence for
// crawl output: raw HTML page caches and newline-delimited JSON record
// streams.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hfal/kursdoc"
)

// Layout computes the output paths for one crawl kind under a shared
// output root:
//
//	{root}/{kind}/html/{id}.html
//	{root}/{kind}/{kind}s.jsonl
//	{root}/{kind}/newest_versions.jsonl
//	{root}/{kind}/crawler.log
type Layout struct {
	Root string
	Kind kursdoc.Kind
}

// NewLayout creates a Layout for the given output root and crawl kind.
func NewLayout(root string, kind kursdoc.Kind) Layout {
	return Layout{Root: root, Kind: kind}
}

// Dir returns the kind's output directory.
func (l Layout) Dir() string {
	return filepath.Join(l.Root, string(l.Kind))
}

// HTMLDir returns the raw page cache directory.
func (l Layout) HTMLDir() string {
	return filepath.Join(l.Dir(), "html")
}

// PagePath returns the cache path for one raw page.
func (l Layout) PagePath(id int) string {
	return filepath.Join(l.HTMLDir(), fmt.Sprintf("%d.html", id))
}

// RecordsPath returns the primary record stream path.
func (l Layout) RecordsPath() string {
	return filepath.Join(l.Dir(), string(l.Kind)+"s.jsonl")
}

// VersionsPath returns the latest-version-per-code stream path.
func (l Layout) VersionsPath() string {
	return filepath.Join(l.Dir(), "newest_versions.jsonl")
}

// LogPath returns the crawl log path.
func (l Layout) LogPath() string {
	return filepath.Join(l.Dir(), "crawler.log")
}

// MkdirAll creates the output directories.
func (l Layout) MkdirAll() error {
	return os.MkdirAll(l.HTMLDir(), 0755)
}
