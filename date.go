package kursdoc

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// termPattern matches the localized "season year" validity format used on
// older plan pages, e.g. "Hösttermin 2019".
var termPattern = regexp.MustCompile(`^(Hösttermin|Vårtermin) (\d{4})`)

// ParseValidFrom parses a human-entered validity date into a comparable
// timestamp. Two formats are recognized: strict ISO dates ("2006-01-02")
// and term tokens ("Hösttermin 2019" / "Vårtermin 2019"). Autumn terms
// map to August 1st, spring terms to January 1st. Anything else returns
// ok=false and the record is excluded from version comparison.
func ParseValidFrom(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}

	m := termPattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	month := time.January
	if m[1] == "Hösttermin" {
		month = time.August
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
}
