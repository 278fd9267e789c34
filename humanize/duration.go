package humanize

import (
	"strconv"
	"strings"
)

const defaultMaxUnits = 2

// DurationOptions controls Duration rendering. The zero value renders
// verbose output with at most two units.
type DurationOptions struct {
	// Compact uses short codes ("2h 30m") instead of words
	// ("2 hours, 30 minutes").
	Compact bool

	// MaxUnits caps how many units are rendered. Values below 1 select the
	// default of 2.
	MaxUnits int
}

func (o DurationOptions) maxUnits() int {
	if o.MaxUnits < 1 {
		return defaultMaxUnits
	}
	return o.MaxUnits
}

type durationUnit struct {
	seconds int64
	name    string
	code    string
}

// Months and years are fixed approximations, not calendar-accurate.
var durationUnits = []durationUnit{
	{365 * day, "year", "y"},
	{30 * day, "month", "mo"},
	{day, "day", "d"},
	{hour, "hour", "h"},
	{minute, "minute", "m"},
	{1, "second", "s"},
}

type durationPart struct {
	value int64
	unit  durationUnit
}

// decompose greedily splits seconds into the largest units first, skipping
// units whose value is zero.
func decompose(seconds int64) []durationPart {
	var parts []durationPart
	remaining := seconds
	for _, u := range durationUnits {
		value := remaining / u.seconds
		remaining %= u.seconds
		if value > 0 {
			parts = append(parts, durationPart{value, u})
		}
	}
	return parts
}

// Duration formats a span of seconds, e.g. "1 day, 2 hours" or "1d 2h".
// Units beyond opts.MaxUnits are dropped, not rounded into the ones kept.
func Duration(seconds int64, opts DurationOptions) (string, error) {
	if seconds < 0 {
		return "", parseErr("Duration cannot be negative")
	}

	if seconds == 0 {
		if opts.Compact {
			return "0s", nil
		}
		return "0 seconds", nil
	}

	parts := decompose(seconds)
	if n := opts.maxUnits(); len(parts) > n {
		parts = parts[:n]
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strconv.FormatInt(p.value, 10)
		if opts.Compact {
			out = append(out, v+p.unit.code)
		} else {
			out = append(out, v+" "+pluralize(p.value, p.unit.name))
		}
	}

	if opts.Compact {
		return strings.Join(out, " "), nil
	}
	return strings.Join(out, ", "), nil
}
