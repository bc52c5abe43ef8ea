package normalize

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISOLayout is how deadlines are rendered outside of JSON/BSON encoding.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseDeadline parses a human-written date ("October 15, 2025",
// "10/15/2025", "2025-10-15") and returns the last millisecond of that
// calendar day in loc, expressed in UTC. It returns nil when the text is not
// a date; callers keep the original text for display either way.
func ParseDeadline(text string, loc *time.Location) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	t, err := dateparse.ParseIn(text, loc)
	if err != nil {
		return nil
	}
	// "Oct 15" parses with year 0; a deadline without a year is not a date
	if t.Year() == 0 {
		return nil
	}

	y, m, d := t.Date()
	end := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc).UTC()
	return &end
}

// IsRolling reports whether the deadline text describes rolling admission.
func IsRolling(text string) bool {
	return strings.Contains(strings.ToLower(text), "rolling")
}

// FormatDeadline renders a parsed deadline as ISO-8601, or "" for nil.
func FormatDeadline(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(ISOLayout)
}
