package kursdoc

import (
	"sort"
	"time"
)

// VersionEntry is the most recently valid revision seen for one business
// code during the current crawl pass.
type VersionEntry struct {
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Name      string    `json:"name"`
	ValidFrom time.Time `json:"giltig_fran"`
	SourceID  int       `json:"id"`
	IsActive  bool      `json:"is_active"`
}

// VersionWriter persists the deduplicated latest-version stream. The
// driver calls it exactly once, at the end of a completed pass; an
// interrupted run therefore produces no latest-version output at all.
type VersionWriter interface {
	WriteVersions(entries []VersionEntry) error
}

// VersionIndex tracks, per business code, the single entry with the
// greatest validity date seen so far. Page IDs are not monotonic with
// validity dates, so every dated record is compared against the current
// holder of its code's slot.
//
// The index is process-local state owned by a single crawl pass: it is
// reset at the start of a run and never loaded from a prior run's
// output.
type VersionIndex struct {
	entries map[string]VersionEntry
}

// NewVersionIndex returns an empty VersionIndex.
func NewVersionIndex() *VersionIndex {
	return &VersionIndex{entries: make(map[string]VersionEntry)}
}

// Get returns the current entry for a code. Unseen codes yield a zero
// entry whose ValidFrom is the minimum representable timestamp, so the
// first dated record for a code always installs itself.
func (idx *VersionIndex) Get(code string) VersionEntry {
	if entry, ok := idx.entries[code]; ok {
		return entry
	}
	return VersionEntry{Code: code}
}

// Observe offers an entry to the index. The entry replaces the current
// holder of its code's slot only when its validity date is strictly
// greater; at equal dates the first-seen entry keeps the slot. Returns
// true when the entry was installed.
func (idx *VersionIndex) Observe(entry VersionEntry) bool {
	if entry.Code == "" {
		return false
	}
	if !entry.ValidFrom.After(idx.Get(entry.Code).ValidFrom) {
		return false
	}
	idx.entries[entry.Code] = entry
	return true
}

// Reset clears the index for a fresh crawl pass.
func (idx *VersionIndex) Reset() {
	idx.entries = make(map[string]VersionEntry)
}

// Len returns the number of distinct codes tracked.
func (idx *VersionIndex) Len() int {
	return len(idx.entries)
}

// Entries returns all tracked entries sorted by code, for a
// deterministic end-of-run flush.
func (idx *VersionIndex) Entries() []VersionEntry {
	entries := make([]VersionEntry, 0, len(idx.entries))
	for _, entry := range idx.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries
}
