package dailylog

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in the user's local timezone, held as YYYY-MM-DD.
// Log records are keyed by (user, Date); all day-boundary decisions happen
// at construction time, so the rest of the engine never touches time.Time.
type Date string

// ParseDate validates and normalizes a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Date(t.Format(dateLayout)), nil
}

// Today returns the current calendar day in the given location. The location
// is a caller decision (per-user timezone policy), never assumed here.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return Date(time.Now().In(loc).Format(dateLayout))
}

func (d Date) String() string {
	return string(d)
}

// Before reports whether d is an earlier calendar day than other.
// Lexicographic comparison is correct for the fixed YYYY-MM-DD layout.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}
