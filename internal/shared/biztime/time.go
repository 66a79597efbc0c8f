// Package biztime centralizes wall clock access. All timestamps are stored
// and rendered in UTC.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Later returns the later of a and b. Used to keep modification timestamps
// monotonic when the clock steps backwards.
func Later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
