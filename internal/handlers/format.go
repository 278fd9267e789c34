package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"olexsmir.xyz/whenwords/humanize"
)

func (h *handlers) healthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, "ok")
}

// GET /timeago?t=<timestamp>[&ref=<timestamp>]
func (h *handlers) timeAgoHandler(w http.ResponseWriter, r *http.Request) {
	ts, ref, err := h.timestampAndRef(r.URL.Query())
	if err != nil {
		h.write400(w, err)
		return
	}
	h.writeResult(w, humanize.TimeAgo(ts, ref))
}

// GET /date?t=<timestamp>[&ref=<timestamp>]
func (h *handlers) humanDateHandler(w http.ResponseWriter, r *http.Request) {
	ts, ref, err := h.timestampAndRef(r.URL.Query())
	if err != nil {
		h.write400(w, err)
		return
	}
	h.writeResult(w, humanize.HumanDate(ts, ref))
}

// GET /range?start=<timestamp>&end=<timestamp>
func (h *handlers) dateRangeHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := requiredTimestamp(q, "start")
	if err != nil {
		h.write400(w, err)
		return
	}
	end, err := requiredTimestamp(q, "end")
	if err != nil {
		h.write400(w, err)
		return
	}
	h.writeResult(w, humanize.DateRange(start, end))
}

// GET /duration?seconds=<n>[&compact=<bool>][&max_units=<n>]
func (h *handlers) durationHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	seconds, err := strconv.ParseInt(q.Get("seconds"), 10, 64)
	if err != nil {
		h.write400(w, fmt.Errorf("seconds: must be an integer"))
		return
	}

	opts := humanize.DurationOptions{
		Compact:  h.c.Duration.Compact,
		MaxUnits: h.c.Duration.MaxUnits,
	}
	if v := q.Get("compact"); v != "" {
		if opts.Compact, err = strconv.ParseBool(v); err != nil {
			h.write400(w, fmt.Errorf("compact: must be a boolean"))
			return
		}
	}
	if v := q.Get("max_units"); v != "" {
		if opts.MaxUnits, err = strconv.Atoi(v); err != nil || opts.MaxUnits < 1 {
			h.write400(w, fmt.Errorf("max_units: must be a positive integer"))
			return
		}
	}

	out, err := humanize.Duration(seconds, opts)
	if err != nil {
		h.write400(w, err)
		return
	}
	h.writeResult(w, out)
}

// GET /parse?text=<duration text>
func (h *handlers) parseHandler(w http.ResponseWriter, r *http.Request) {
	secs, err := humanize.ParseDuration(r.URL.Query().Get("text"))
	if err != nil {
		h.write400(w, err)
		return
	}
	h.writeResult(w, secs)
}

// GET /iso8601?text=<RFC 3339 timestamp>
func (h *handlers) iso8601Handler(w http.ResponseWriter, r *http.Request) {
	ts, err := humanize.ParseISO8601(r.URL.Query().Get("text"))
	if err != nil {
		h.write400(w, err)
		return
	}
	h.writeResult(w, ts.Unix())
}

// timestampAndRef reads "t" and the optional "ref", which defaults to the
// server clock.
func (h *handlers) timestampAndRef(q url.Values) (ts, ref humanize.Instant, err error) {
	if ts, err = requiredTimestamp(q, "t"); err != nil {
		return ts, ref, err
	}
	if q.Get("ref") == "" {
		return ts, humanize.FromTime(h.now()), nil
	}
	ref, err = requiredTimestamp(q, "ref")
	return ts, ref, err
}

func requiredTimestamp(q url.Values, key string) (humanize.Instant, error) {
	v := q.Get(key)
	if v == "" {
		return humanize.Instant{}, fmt.Errorf("%s: missing timestamp", key)
	}
	ts, err := humanize.ParseTimestamp(v)
	if err != nil {
		return ts, fmt.Errorf("%s: %w", key, err)
	}
	return ts, nil
}
