package humanize

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

var unitSeconds = map[string]int64{
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
	"m": minute, "min": minute, "mins": minute, "minute": minute, "minutes": minute,
	"h": hour, "hr": hour, "hrs": hour, "hour": hour, "hours": hour,
	"d": day, "day": day, "days": day,
	"w": 7 * day, "wk": 7 * day, "wks": 7 * day, "week": 7 * day, "weeks": 7 * day,

	// same approximations as Duration, so its compact output parses back
	"mo": 30 * day, "mos": 30 * day, "month": 30 * day, "months": 30 * day,
	"y": 365 * day, "yr": 365 * day, "yrs": 365 * day, "year": 365 * day, "years": 365 * day,
}

// ParseDuration turns human-written text into seconds. It accepts colon
// notation ("2:30", "1:30:00") and free-form pairs of numbers and units
// ("2h30m", "2.5 hours", "1 day, 2 hours, and 30 minutes").
func ParseDuration(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, parseErr("Duration string cannot be empty")
	}
	if strings.HasPrefix(text, "-") {
		return 0, parseErr("Duration cannot be negative")
	}

	if secs, ok, err := parseColon(text); ok {
		return secs, err
	}

	total, found, err := parseFreeForm(normalize(text))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, parseErr("Cannot parse duration: " + text)
	}
	if total < 0 {
		return 0, parseErr("Duration cannot be negative")
	}
	total = math.Round(total)
	// float64(math.MaxInt64) rounds up to 2^63, so equality overflows too.
	if !(total < math.MaxInt64) {
		return 0, parseErr("Cannot parse duration: " + text)
	}
	return int64(total), nil
}

// parseColon handles h:mm and h:mm:ss. ok is false when text is not colon
// notation at all, in which case the free-form grammar gets a turn.
func parseColon(text string) (secs int64, ok bool, err error) {
	fields := strings.Split(text, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return 0, false, nil
	}
	for _, f := range fields {
		if f == "" || strings.TrimLeft(f, "0123456789") != "" {
			return 0, false, nil
		}
	}

	mult := []int64{hour, minute, 1}
	for i, f := range fields {
		n, perr := strconv.ParseInt(f, 10, 64)
		if perr != nil {
			return 0, true, parseErr("Cannot parse duration: " + text)
		}
		if n > (math.MaxInt64-secs)/mult[i] {
			return 0, true, parseErr("Cannot parse duration: " + text)
		}
		secs += n * mult[i]
	}
	return secs, true, nil
}

func normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, " and ", " ")
	text = strings.ReplaceAll(text, ",", " ")
	return strings.Join(strings.Fields(text), " ")
}

// parseFreeForm scans the normalized text as a sequence of numeric runs, each
// optionally followed by a unit run. found reports whether any number and
// unit pair was seen.
func parseFreeForm(text string) (total float64, found bool, err error) {
	s := []rune(text)

	for i := 0; i < len(s); {
		if unicode.IsSpace(s[i]) {
			i++
			continue
		}

		start := i
		dot := false
		for i < len(s) && (isDigit(s[i]) || (s[i] == '.' && !dot)) {
			if s[i] == '.' {
				dot = true
			}
			i++
		}
		if i == start {
			// stray character
			i++
			continue
		}

		value, perr := strconv.ParseFloat(string(s[start:i]), 64)
		if perr != nil {
			continue
		}

		for i < len(s) && unicode.IsSpace(s[i]) {
			i++
		}
		ustart := i
		for i < len(s) && unicode.IsLetter(s[i]) {
			i++
		}
		if i == ustart {
			continue
		}

		unit := string(s[ustart:i])
		mult, ok := unitSeconds[unit]
		if !ok {
			return 0, false, parseErr("Unknown unit: " + unit)
		}
		total += value * float64(mult)
		found = true
	}

	return total, found, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
