package utils

import "time"

// Timestamps are stored as epoch seconds; these helpers convert them at
// the edges where a time.Time or a rendered string is wanted.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds converts an epoch value in seconds to UTC time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
