package mock

import "github.com/hfal/kursdoc"

var (
	_ kursdoc.PageStore     = (*PageStore)(nil)
	_ kursdoc.RecordWriter  = (*RecordWriter)(nil)
	_ kursdoc.VersionWriter = (*VersionWriter)(nil)
)

// PageStore is a mock implementation of kursdoc.PageStore.
type PageStore struct {
	SavePageFn func(id int, html string) error
}

func (s *PageStore) SavePage(id int, html string) error {
	return s.SavePageFn(id, html)
}

// RecordWriter is a mock implementation of kursdoc.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(rec kursdoc.Record) error
}

func (w *RecordWriter) WriteRecord(rec kursdoc.Record) error {
	return w.WriteRecordFn(rec)
}

// VersionWriter is a mock implementation of kursdoc.VersionWriter.
type VersionWriter struct {
	WriteVersionsFn func(entries []kursdoc.VersionEntry) error
}

func (w *VersionWriter) WriteVersions(entries []kursdoc.VersionEntry) error {
	return w.WriteVersionsFn(entries)
}
