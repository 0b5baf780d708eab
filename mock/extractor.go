package mock

import "github.com/hfal/kursdoc"

var _ kursdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of kursdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string, id int) (kursdoc.Record, error)
}

func (e *Extractor) Extract(html string, id int) (kursdoc.Record, error) {
	return e.ExtractFn(html, id)
}
