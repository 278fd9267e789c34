// Package humanize converts between machine timestamps and durations and
// human-friendly text.
//
// Every function is pure: nothing reads the system clock, so the reference
// point is always passed in explicitly. All calendar math happens in UTC.
//
//	humanize.TimeAgo(humanize.Unix(1704067110), humanize.Unix(1704067200)) // "2 minutes ago"
//	humanize.Duration(9000, humanize.DurationOptions{Compact: true})      // "2h 30m"
//	humanize.ParseDuration("1 day, 2 hours, and 30 minutes")             // 95400
package humanize
