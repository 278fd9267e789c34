package humanize

import (
	"math"
	"strconv"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

// agoStep is one rung of the relative time ladder. A step matches when the
// elapsed time is below Below seconds. Per is the length of Unit in seconds
// used for rounding; a zero Per means the count is always 1.
type agoStep struct {
	Below float64
	Unit  string
	Per   float64
}

// agoLadder is evaluated top-down, first match wins. The first rung has no
// unit and renders as "just now".
var agoLadder = []agoStep{
	{Below: 45, Unit: ""},
	{Below: 90, Unit: "minute"},
	{Below: 45 * minute, Unit: "minute", Per: minute},
	{Below: 90 * minute, Unit: "hour"},
	{Below: 22 * hour, Unit: "hour", Per: hour},
	{Below: 36 * hour, Unit: "day"},
	{Below: 26 * day, Unit: "day", Per: day},
	{Below: 46 * day, Unit: "month"},
	{Below: 320 * day, Unit: "month", Per: 30.44 * day},
	{Below: 548 * day, Unit: "year"},
	{Below: math.Inf(1), Unit: "year", Per: 365 * day},
}

// TimeAgo describes timestamp relative to reference, e.g. "3 hours ago" or
// "in 2 days".
func TimeAgo(timestamp, reference Instant) string {
	// float64 so the difference cannot wrap at the int64 extremes.
	diff := float64(reference.sec) - float64(timestamp.sec)
	future := diff < 0
	elapsed := math.Abs(diff)

	for _, step := range agoLadder {
		if elapsed >= step.Below {
			continue
		}
		if step.Unit == "" {
			return "just now"
		}

		n := int64(1)
		if step.Per > 0 {
			n = int64(math.Round(elapsed / step.Per))
		}

		phrase := strconv.FormatInt(n, 10) + " " + pluralize(n, step.Unit)
		if future {
			return "in " + phrase
		}
		return phrase + " ago"
	}

	panic("unreachable: ladder ends at +Inf")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
