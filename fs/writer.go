package fs

import (
	"encoding/json"
	"os"

	"github.com/hfal/kursdoc"
)

// Ensure the writers implement the stream interfaces at compile time.
var (
	_ kursdoc.RecordWriter  = (*JSONLWriter)(nil)
	_ kursdoc.VersionWriter = (*VersionFile)(nil)
)

// JSONLWriter appends one JSON object per line to a file. Lines hit the
// file as they are written, so an interrupted run keeps everything
// written so far.
type JSONLWriter struct {
	f   *os.File
	enc *json.Encoder
}

// NewJSONLWriter creates (truncating) the file at path.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &JSONLWriter{f: f, enc: newEncoder(f)}, nil
}

// Write appends v as one JSON line.
func (w *JSONLWriter) Write(v any) error {
	return w.enc.Encode(v)
}

// WriteRecord appends a crawl record to the stream.
func (w *JSONLWriter) WriteRecord(rec kursdoc.Record) error {
	return w.Write(rec)
}

// Close closes the underlying file.
func (w *JSONLWriter) Close() error {
	return w.f.Close()
}

// VersionFile persists the latest-version stream. The file is created
// only when the flush happens, so an interrupted crawl leaves no
// partial latest-version output behind.
type VersionFile struct {
	path string
}

// NewVersionFile creates a VersionFile writing to path.
func NewVersionFile(path string) *VersionFile {
	return &VersionFile{path: path}
}

// WriteVersions creates the file and writes one JSON line per entry.
func (w *VersionFile) WriteVersions(entries []kursdoc.VersionEntry) error {
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	enc := newEncoder(f)
	for _, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// newEncoder returns a JSON encoder that keeps the Swedish field values
// readable instead of escaping them.
func newEncoder(f *os.File) *json.Encoder {
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	return enc
}
