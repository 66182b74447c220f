package rotation

import (
	"time"
)

// DayOfYear converts a calendar date into the deterministic index that seeds
// every daily rotation: 1 for January 1 through 365 (366 in leap years) for
// December 31.
//
// The index is derived from the Y/M/D triple in the time's own location, not
// from timestamp arithmetic, so a 23- or 25-hour DST day cannot shift it.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// DateKey formats a date the way daily selections are keyed and cached.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
