package humanize

import (
	"strconv"
	"time"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// indexed by time.Weekday, Sunday first
var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

type civilDate struct {
	year  int
	month time.Month
	day   int
	wday  time.Weekday
}

func dateOf(i Instant) civilDate {
	t := i.Time()
	return civilDate{t.Year(), t.Month(), t.Day(), t.Weekday()}
}

func (d civilDate) monthDay() string {
	return monthNames[d.month-1] + " " + strconv.Itoa(d.day)
}

func (d civilDate) full() string {
	return d.monthDay() + ", " + strconv.Itoa(d.year)
}

// epochDay is the number of whole days between the epoch and the UTC
// midnight on or before i.
func epochDay(i Instant) int64 {
	d := i.sec / day
	if i.sec%day < 0 {
		d--
	}
	return d
}

// dateStep is one rung of the HumanDate ladder, matching day differences in
// the closed range [From, To].
type dateStep struct {
	From, To int64
	Label    func(target civilDate) string
}

var dateLadder = []dateStep{
	{0, 0, func(civilDate) string { return "Today" }},
	{-1, -1, func(civilDate) string { return "Yesterday" }},
	{1, 1, func(civilDate) string { return "Tomorrow" }},
	{-6, -2, func(d civilDate) string { return "Last " + weekdayNames[d.wday] }},
	{2, 6, func(d civilDate) string { return "This " + weekdayNames[d.wday] }},
}

// HumanDate labels timestamp by its calendar distance from reference:
// "Today", "Yesterday", "Last Friday", "This Sunday", "March 1" or
// "January 6, 2025". Only the UTC date matters, not the time of day.
func HumanDate(timestamp, reference Instant) string {
	diff := epochDay(timestamp) - epochDay(reference)
	target := dateOf(timestamp)

	for _, step := range dateLadder {
		if diff >= step.From && diff <= step.To {
			return step.Label(target)
		}
	}

	if target.year == dateOf(reference).year {
		return target.monthDay()
	}
	return target.full()
}

// DateRange formats the span between two instants, abbreviating the shared
// month and year:
//
//	January 15, 2024
//	January 15–22, 2024
//	January 15 – February 15, 2024
//	December 28, 2023 – January 15, 2024
//
// The arguments may be given in either order.
func DateRange(start, end Instant) string {
	if start.After(end) {
		start, end = end, start
	}
	s, e := dateOf(start), dateOf(end)

	switch {
	case s.year == e.year && s.month == e.month && s.day == e.day:
		return s.full()
	case s.year == e.year && s.month == e.month:
		return s.monthDay() + "–" + strconv.Itoa(e.day) + ", " + strconv.Itoa(s.year)
	case s.year == e.year:
		return s.monthDay() + " – " + e.monthDay() + ", " + strconv.Itoa(s.year)
	default:
		return s.full() + " – " + e.full()
	}
}
