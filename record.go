package kursdoc

import "context"

// Kind selects which half of the university's plan system a crawl
// targets. It determines the base URL, the identity key field, and the
// extraction rules that apply.
type Kind string

// Crawl kinds.
const (
	KindCourse  Kind = "course"
	KindProgram Kind = "program"
)

// Base URLs per crawl kind. Pages are addressed as "{base}?id={N}".
const (
	CourseBaseURL  = "https://www.mdu.se/utbildning/kursplan"
	ProgramBaseURL = "https://www.mdu.se/utbildning/utbildningsplan"
)

// Validate returns an error if the kind is not a known crawl kind.
func (k Kind) Validate() error {
	switch k {
	case KindCourse, KindProgram:
		return nil
	}
	return Errorf(EINVALID, "unknown crawl kind %q", string(k))
}

// BaseURL returns the plan page base URL for the kind.
func (k Kind) BaseURL() string {
	if k == KindProgram {
		return ProgramBaseURL
	}
	return CourseBaseURL
}

// IdentityKey returns the record field holding the business code for the
// kind: course pages carry "kurskod", program pages "programkod".
func (k Kind) IdentityKey() string {
	if k == KindProgram {
		return FieldProgramCode
	}
	return FieldCourseCode
}

// Well-known record fields. Most record keys are the lowercased Swedish
// labels scraped from the page; these are the ones the pipeline itself
// reads or writes.
const (
	FieldName        = "name"
	FieldTitle       = "title"
	FieldIsActive    = "is_active"
	FieldIsValid     = "is_valid"
	FieldSourceID    = "source_id"
	FieldURL         = "url"
	FieldCourseCode  = "kurskod"
	FieldProgramCode = "programkod"
	FieldValidFrom   = "giltig från"
	FieldContent     = "innehåll"
	FieldLanguages   = "undervisningsspråk"
	FieldYears       = "årskurser"
)

// Record is one extracted plan page: a flat mapping from lowercased
// field labels to extracted values. Values are strings except for
// FieldLanguages ([]string), FieldYears (map[string][]string) and the
// boolean flags. Records are append-only facts; once produced they are
// never mutated beyond the driver attaching the source URL.
type Record map[string]any

// GetString returns the string value stored under key, or "" when the
// field is absent or not a string.
func (r Record) GetString(key string) string {
	s, _ := r[key].(string)
	return s
}

// SourceID returns the numeric page ID the record was extracted from,
// as stored (stringified).
func (r Record) SourceID() string {
	return r.GetString(FieldSourceID)
}

// IsActive reports whether the plan is still current. Records default to
// active; extraction flips the flag when the page carries the
// "no longer current" sentence.
func (r Record) IsActive() bool {
	if v, ok := r[FieldIsActive].(bool); ok {
		return v
	}
	return true
}

// IsValid reports whether the record describes a real plan. Only program
// stubs for nonexistent IDs are marked invalid; everything else is valid.
func (r Record) IsValid() bool {
	if v, ok := r[FieldIsValid].(bool); ok {
		return v
	}
	return true
}

// Extractor parses raw plan-page HTML into a Record. Implementations are
// kind-specific; the numeric id is recorded as FieldSourceID.
type Extractor interface {
	Extract(html string, id int) (Record, error)
}

// PageFetcher retrieves raw plan pages by numeric ID.
type PageFetcher interface {
	// FetchID fetches the page for the given numeric ID and returns its
	// raw HTML. Absent pages - transport failures, non-2xx statuses and
	// placeholder pages the origin serves for undefined IDs - are
	// reported as ENOTFOUND.
	FetchID(ctx context.Context, id int) (string, error)
}

// RecordWriter appends records to the primary record stream. Writes are
// durable as they happen; an interrupted crawl keeps every line written
// so far.
type RecordWriter interface {
	WriteRecord(rec Record) error
}

// PageStore persists raw fetched HTML keyed by numeric ID for audit and
// reprocessing.
type PageStore interface {
	SavePage(id int, html string) error
}
