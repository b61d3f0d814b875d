package spliit

import "time"

// TimestampLayout is the expense date format Spliit expects, e.g.
// 2024-11-14T22:26:58.244Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// CurrentTimestamp returns the current time as FormatTimestamp does.
func CurrentTimestamp() string {
	return FormatTimestamp(time.Now())
}
