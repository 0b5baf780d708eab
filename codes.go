package kursdoc

import (
	"regexp"
	"strings"
)

// Business code shapes as they appear in questions. Course codes end in
// three digits ("dva117"), program codes in two ("gkv02").
var (
	courseCodePattern  = regexp.MustCompile(`\b[a-z]{2,3}\d{3}\b`)
	programCodePattern = regexp.MustCompile(`\b[a-z]{2,3}\d{2}\b`)
)

// CodeQuery holds business codes recognized in a question.
type CodeQuery struct {
	CourseCodes  []string
	ProgramCodes []string
}

// Count returns how many codes were recognized. Course codes take
// precedence during retrieval, so they take precedence here too.
func (q CodeQuery) Count() int {
	if len(q.CourseCodes) > 0 {
		return len(q.CourseCodes)
	}
	return len(q.ProgramCodes)
}

// ExtractCodes scans a question for course and program codes. Matching
// is case-insensitive; returned codes are lowercased.
func ExtractCodes(question string) CodeQuery {
	q := strings.ToLower(strings.TrimSpace(question))
	query := CodeQuery{
		CourseCodes: courseCodePattern.FindAllString(q, -1),
	}
	if len(query.CourseCodes) == 0 {
		query.ProgramCodes = programCodePattern.FindAllString(q, -1)
	}
	return query
}
