package kursdoc

import (
	"fmt"
	"strconv"
	"strings"
)

// IDRange is an inclusive range of numeric page IDs. It implements
// encoding.TextUnmarshaler so it can be used directly as a CLI flag
// value in the form "START-END".
type IDRange struct {
	Start int
	End   int
}

// UnmarshalText parses "START-END", e.g. "25000-35000".
func (r *IDRange) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return Errorf(EINVALID, "ID range %q must be START-END", s)
	}
	var err error
	if r.Start, err = strconv.Atoi(strings.TrimSpace(start)); err != nil {
		return Errorf(EINVALID, "invalid range start %q", start)
	}
	if r.End, err = strconv.Atoi(strings.TrimSpace(end)); err != nil {
		return Errorf(EINVALID, "invalid range end %q", end)
	}
	if r.End < r.Start {
		return Errorf(EINVALID, "ID range %q is empty", s)
	}
	return nil
}

// String returns the range in START-END form.
func (r IDRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Len returns the number of IDs in the range.
func (r IDRange) Len() int {
	return r.End - r.Start + 1
}
