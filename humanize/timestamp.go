package humanize

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Instant is a point in time stored as whole seconds since the Unix epoch.
// It carries no time zone; every view of it is UTC.
type Instant struct {
	sec int64
}

// Unix returns the Instant sec seconds after the epoch.
func Unix(sec int64) Instant {
	return Instant{sec: sec}
}

// UnixFloat truncates sec toward zero. Values outside the int64 range,
// infinities included, saturate to math.MinInt64 or math.MaxInt64; NaN
// yields the epoch.
func UnixFloat(sec float64) Instant {
	switch {
	case math.IsNaN(sec):
		return Instant{}
	case sec >= math.MaxInt64:
		return Instant{sec: math.MaxInt64}
	case sec < math.MinInt64:
		return Instant{sec: math.MinInt64}
	}
	return Instant{sec: int64(sec)}
}

// FromTime drops the sub-second part and the location of t.
func FromTime(t time.Time) Instant {
	return Instant{sec: t.Unix()}
}

func (i Instant) Unix() int64 { return i.sec }

func (i Instant) Time() time.Time { return time.Unix(i.sec, 0).UTC() }

// Compare returns -1, 0 or +1 depending on whether i is before, equal to or
// after j.
func (i Instant) Compare(j Instant) int {
	switch {
	case i.sec < j.sec:
		return -1
	case i.sec > j.sec:
		return 1
	default:
		return 0
	}
}

func (i Instant) Before(j Instant) bool { return i.sec < j.sec }
func (i Instant) After(j Instant) bool  { return i.sec > j.sec }
func (i Instant) Equal(j Instant) bool  { return i.sec == j.sec }

func (i Instant) String() string {
	return i.Time().Format(time.RFC3339)
}

// ParseISO8601 parses the RFC 3339 profile of ISO 8601: a full date and time
// followed by either "Z" or an explicit UTC offset.
func ParseISO8601(text string) (Instant, error) {
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return Instant{}, parseErr("Invalid timestamp format: " + text)
	}
	return FromTime(t), nil
}

// ParseTimestamp accepts integer seconds, decimal seconds or an RFC 3339
// string, in that order.
func ParseTimestamp(text string) (Instant, error) {
	text = strings.TrimSpace(text)
	if sec, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Unix(sec), nil
	}
	if sec, err := strconv.ParseFloat(text, 64); err == nil && isDecimal(text) {
		return UnixFloat(sec), nil
	}
	return ParseISO8601(text)
}

// isDecimal rejects the extra spellings strconv.ParseFloat understands
// ("NaN", "Inf", hex floats) so they fall through to ParseISO8601 and fail
// there with a timestamp error.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	dot := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.' && !dot:
			dot = true
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return s != "" && s != "."
}
