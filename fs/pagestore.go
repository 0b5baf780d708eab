package fs

import (
	"os"

	"github.com/hfal/kursdoc"
)

// Ensure PageStore implements kursdoc.PageStore at compile time.
var _ kursdoc.PageStore = (*PageStore)(nil)

// PageStore persists raw fetched HTML under the layout's html directory,
// keyed by numeric page ID, for audit and reprocessing.
type PageStore struct {
	layout Layout
}

// NewPageStore creates a PageStore for the given layout.
func NewPageStore(layout Layout) *PageStore {
	return &PageStore{layout: layout}
}

// SavePage writes the raw HTML for one page ID.
func (s *PageStore) SavePage(id int, html string) error {
	return os.WriteFile(s.layout.PagePath(id), []byte(html), 0644)
}
